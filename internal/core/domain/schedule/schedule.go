package schedule

import (
	c "schedtext/internal/core/domain/common"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/recurrence"
	"time"
)

type ID int64

// Schedule is a named, successfully parsed schedule description.
type Schedule struct {
	ID        ID
	Name      c.ScheduleName
	Query     string
	Result    recurrence.Result
	CreatedAt time.Time
}

func (s *Schedule) Validate() error {
	if s.Name == "" {
		return e.NewInvalidStateError("schedule name must not be empty")
	}
	if !s.Result.OK() {
		return e.NewInvalidStateError("schedule result must not carry a parse error")
	}
	if len(s.Result.Schedules) == 0 {
		return e.NewInvalidStateError("schedule must have at least one constraint set")
	}
	return nil
}
