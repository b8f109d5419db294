package response

import (
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"time"
)

type Schedule struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Query     string            `json:"query"`
	Result    recurrence.Result `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}

func (s *Schedule) FromDomainSchedule(ds schedule.Schedule) {
	s.ID = int64(ds.ID)
	s.Name = string(ds.Name)
	s.Query = ds.Query
	s.Result = ds.Result
	s.CreatedAt = ds.CreatedAt
}
