package listschedules

import (
	"context"
	c "schedtext/internal/core/domain/common"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
)

const DEFAULT_LIMIT = uint(100)

type Input struct {
	Name    c.Optional[c.ScheduleName]
	OrderBy schedule.OrderBy
	Limit   c.Optional[uint]
	Offset  uint
}

type Result struct {
	Schedules  []schedule.Schedule
	TotalCount uint
}

type service struct {
	log  logging.Logger
	repo schedule.Repository
}

func New(log logging.Logger, repo schedule.Repository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if repo == nil {
		panic(e.NewNilArgumentError("repo"))
	}
	return &service{log: log, repo: repo}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	orderBy := input.OrderBy
	if orderBy == schedule.OrderByNotSet {
		orderBy = schedule.OrderByIDDesc
	}
	limit := input.Limit
	if !limit.IsPresent || limit.Value > DEFAULT_LIMIT {
		limit = c.NewOptional(DEFAULT_LIMIT, true)
	}
	options := schedule.ReadOptions{
		NameEquals: input.Name,
		OrderBy:    orderBy,
		Limit:      limit,
		Offset:     input.Offset,
	}

	schedules, err := s.repo.Read(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	total, err := s.repo.Count(ctx, options)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Schedules: schedules, TotalCount: total}, nil
}
