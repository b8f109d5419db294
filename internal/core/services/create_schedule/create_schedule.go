package createschedule

import (
	"context"
	"errors"
	"fmt"
	c "schedtext/internal/core/domain/common"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
	"time"
)

type Input struct {
	Name     string
	Query    string
	ClientIP string
}

func (i Input) GetRateLimitKey() string {
	return "create-schedule::" + i.ClientIP
}

type Result struct {
	Schedule schedule.Schedule
}

type service struct {
	log       logging.Logger
	parser    schedule.Parser
	repo      schedule.Repository
	publisher schedule.Publisher
	now       func() time.Time
}

func New(
	log logging.Logger,
	parser schedule.Parser,
	repo schedule.Repository,
	publisher schedule.Publisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if repo == nil {
		panic(e.NewNilArgumentError("repo"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, parser: parser, repo: repo, publisher: publisher, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	parsed, err := s.parser.Parse(ctx, input.Query, now)
	if err != nil {
		if !errors.Is(err, schedule.ErrTextParsing) {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}
	if len(parsed.Schedules) == 0 {
		return result, schedule.ErrEmptySchedule
	}

	candidate := schedule.Schedule{
		Name:      c.NewScheduleName(input.Name),
		Query:     input.Query,
		Result:    parsed,
		CreatedAt: now,
	}
	if err := candidate.Validate(); err != nil {
		return result, err
	}

	created, err := s.repo.Create(ctx, schedule.CreateInput{
		Name:      candidate.Name,
		Query:     candidate.Query,
		Result:    candidate.Result,
		CreatedAt: candidate.CreatedAt,
	})
	if errors.Is(err, schedule.ErrScheduleNameTaken) {
		s.log.Info(ctx, "Schedule name is already taken.", logging.Entry("name", candidate.Name))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, fmt.Errorf("could not create schedule: %w", err)
	}

	// The schedule is stored at this point, a failed notification is not
	// reported to the caller.
	if err := s.publisher.PublishSchedule(ctx, created); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("scheduleID", created.ID))
	}

	s.log.Info(
		ctx,
		"Schedule created.",
		logging.Entry("scheduleID", created.ID),
		logging.Entry("name", created.Name),
		logging.Entry("query", created.Query),
	)
	result.Schedule = created
	return result, nil
}
