package schedule

import "errors"

var (
	ErrTextParsing          = errors.New("could not parse schedule text")
	ErrEmptySchedule        = errors.New("schedule text produced no constraints")
	ErrScheduleDoesNotExist = errors.New("schedule does not exist")
	ErrScheduleNameTaken    = errors.New("schedule name is already taken")
	ErrCacheMiss            = errors.New("parse result is not cached")
	ErrNotExpressibleAsCron = errors.New("schedule is not expressible as a cron spec")
)
