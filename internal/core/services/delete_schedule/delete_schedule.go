package deleteschedule

import (
	"context"
	"errors"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
)

type Input struct {
	ID schedule.ID
}

type Result struct{}

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
	err = s.repo.Delete(ctx, input.ID)
	if errors.Is(err, schedule.ErrScheduleDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Schedule deleted.", logging.Entry("scheduleID", input.ID))
	return result, nil
}
