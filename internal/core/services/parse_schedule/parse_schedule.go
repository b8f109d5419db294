package parseschedule

import (
	"context"
	"errors"
	c "schedtext/internal/core/domain/common"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
	"time"
)

type Input struct {
	Query    string
	ClientIP string
}

func (i Input) GetRateLimitKey() string {
	return "parse-schedule::" + i.ClientIP
}

type Result struct {
	Result recurrence.Result
	Cron   c.Optional[string]
	Cached bool
}

type service struct {
	log      logging.Logger
	parser   schedule.Parser
	cache    schedule.ParseCache
	exporter schedule.CronExporter
	now      func() time.Time
}

func New(
	log logging.Logger,
	parser schedule.Parser,
	cache schedule.ParseCache,
	exporter schedule.CronExporter,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if parser == nil {
		panic(e.NewNilArgumentError("parser"))
	}
	if cache == nil {
		panic(e.NewNilArgumentError("cache"))
	}
	if exporter == nil {
		panic(e.NewNilArgumentError("exporter"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, parser: parser, cache: cache, exporter: exporter, now: now}
}

// Run parses the query. On a parse error the partial result is returned
// together with an error wrapping schedule.ErrTextParsing.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	parsed, cached := s.readCache(ctx, input.Query)
	if !cached {
		parsed, err = s.parser.Parse(ctx, input.Query, s.now())
		if err != nil {
			result.Result = parsed
			switch {
			case errors.Is(err, schedule.ErrTextParsing):
				s.log.Info(
					ctx,
					"Could not parse schedule text.",
					logging.Entry("query", input.Query),
					logging.Entry("offset", parsed.Error),
				)
			default:
				logging.Error(ctx, s.log, err, logging.Entry("input", input))
			}
			return result, err
		}
		s.writeCache(ctx, input.Query, parsed)
	}

	result.Result = parsed
	result.Cached = cached
	spec, err := s.exporter.Export(parsed)
	switch {
	case err == nil:
		result.Cron = c.NewOptional(spec, true)
	case errors.Is(err, schedule.ErrNotExpressibleAsCron):
		// do nothing
	default:
		s.log.Warning(ctx, "Could not export schedule as cron spec.", logging.Entry("err", err))
	}

	s.log.Info(
		ctx,
		"Schedule text parsed.",
		logging.Entry("query", input.Query),
		logging.Entry("cached", cached),
		logging.Entry("schedules", len(parsed.Schedules)),
		logging.Entry("exceptions", len(parsed.Exceptions)),
	)
	return result, nil
}

func (s *service) readCache(ctx context.Context, query string) (recurrence.Result, bool) {
	cached, err := s.cache.Get(ctx, query)
	switch {
	case err == nil:
		return cached, true
	case errors.Is(err, schedule.ErrCacheMiss):
		s.log.Debug(ctx, "Parse cache miss.", logging.Entry("query", query))
	default:
		s.log.Warning(ctx, "Could not read parse cache.", logging.Entry("err", err))
	}
	return recurrence.Result{}, false
}

// writeCache skips results holding timestamps derived from the parse time.
func (s *service) writeCache(ctx context.Context, query string, result recurrence.Result) {
	if result.DependsOnNow() {
		return
	}
	if err := s.cache.Set(ctx, query, result); err != nil {
		s.log.Warning(ctx, "Could not write parse cache.", logging.Entry("err", err))
	}
}
