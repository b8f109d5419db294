package schema

import (
	"encoding/json"
	c "schedtext/internal/core/domain/common"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"time"
)

// ScheduleCreated is published after a schedule has been stored.
type ScheduleCreated struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Query     string            `json:"query"`
	Result    recurrence.Result `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}

func (s *ScheduleCreated) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func (s *ScheduleCreated) Unmarshal(data []byte) error {
	return json.Unmarshal(data, s)
}

func NewScheduleCreated(s schedule.Schedule) ScheduleCreated {
	return ScheduleCreated{
		ID:        int64(s.ID),
		Name:      string(s.Name),
		Query:     s.Query,
		Result:    s.Result,
		CreatedAt: s.CreatedAt,
	}
}

func (s *ScheduleCreated) Schedule() schedule.Schedule {
	return schedule.Schedule{
		ID:        schedule.ID(s.ID),
		Name:      c.ScheduleName(s.Name),
		Query:     s.Query,
		Result:    s.Result,
		CreatedAt: s.CreatedAt,
	}
}
