package schedule

import (
	"context"
	"schedtext/internal/core/domain/recurrence"
	"time"
)

// Parser turns schedule text into a recurrence result. On failure the error
// wraps ErrTextParsing and the partial result is still returned.
type Parser interface {
	Parse(ctx context.Context, text string, now time.Time) (recurrence.Result, error)
}

// ParseCache stores parse results that do not depend on the parse time.
type ParseCache interface {
	Get(ctx context.Context, text string) (recurrence.Result, error)
	Set(ctx context.Context, text string, result recurrence.Result) error
}

// CronExporter renders a result as a cron spec when possible.
type CronExporter interface {
	Export(result recurrence.Result) (string, error)
}

// Publisher notifies downstream consumers about stored schedules.
type Publisher interface {
	PublishSchedule(ctx context.Context, s Schedule) error
}
