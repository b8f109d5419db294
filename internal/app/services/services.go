package services

import (
	"schedtext/internal/app/deps"
	drl "schedtext/internal/core/domain/rate_limiter"
	"schedtext/internal/core/services"
	createschedule "schedtext/internal/core/services/create_schedule"
	deleteschedule "schedtext/internal/core/services/delete_schedule"
	getschedule "schedtext/internal/core/services/get_schedule"
	listschedules "schedtext/internal/core/services/list_schedules"
	parseschedule "schedtext/internal/core/services/parse_schedule"
	ratelimiting "schedtext/internal/core/services/rate_limiting"
)

type Services struct {
	ParseSchedule  services.Service[parseschedule.Input, parseschedule.Result]
	CreateSchedule services.Service[createschedule.Input, createschedule.Result]
	GetSchedule    services.Service[getschedule.Input, getschedule.Result]
	ListSchedules  services.Service[listschedules.Input, listschedules.Result]
	DeleteSchedule services.Service[deleteschedule.Input, deleteschedule.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.ParseSchedule = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: deps.Config.ParseRateLimitPerMinute},
		parseschedule.New(
			deps.Logger,
			deps.Parser,
			deps.ParseCache,
			deps.CronExporter,
			deps.Now,
		),
	)
	s.CreateSchedule = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: deps.Config.CreateRateLimitPerMinute},
		createschedule.New(
			deps.Logger,
			deps.Parser,
			deps.ScheduleRepository,
			deps.SchedulePublisher,
			deps.Now,
		),
	)
	s.GetSchedule = getschedule.New(deps.Logger, deps.ScheduleRepository)
	s.ListSchedules = listschedules.New(deps.Logger, deps.ScheduleRepository)
	s.DeleteSchedule = deleteschedule.New(deps.Logger, deps.ScheduleRepository)

	return s
}
