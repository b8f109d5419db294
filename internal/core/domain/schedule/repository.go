package schedule

import (
	"context"
	c "schedtext/internal/core/domain/common"
	"schedtext/internal/core/domain/recurrence"
	"time"
)

type CreateInput struct {
	Name      c.ScheduleName
	Query     string
	Result    recurrence.Result
	CreatedAt time.Time
}

type ReadOptions struct {
	NameEquals c.Optional[c.ScheduleName]
	OrderBy    OrderBy
	Limit      c.Optional[uint]
	Offset     uint
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Schedule, error)
	GetByID(ctx context.Context, id ID) (Schedule, error)
	Read(ctx context.Context, options ReadOptions) ([]Schedule, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Delete(ctx context.Context, id ID) error
}
