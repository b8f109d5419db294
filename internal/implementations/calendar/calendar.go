package calendar

import (
	"schedtext/internal/core/domain/recurrence"
	"time"

	"github.com/golang-module/carbon/v2"
)

// daySearchLimit covers every day based value at least once, a 53rd ISO week
// and a 366th day of the year included.
const daySearchLimit = 366 * 8

const yearSearchLimit = 500

type unit int

const (
	unitSecond unit = iota
	unitMinute
	unitHour
	unitDay
	unitMonth
	unitYear
)

// Calendar computes recurrence field values in the location of the given
// timestamps.
type Calendar struct{}

func New() *Calendar {
	return &Calendar{}
}

func (c *Calendar) Val(t time.Time, f recurrence.Field) int {
	return val(toCarbon(t), f)
}

// Next returns the start of the earliest period after the one containing t
// whose field equals target. Targets outside the field range wrap around it,
// so minute 63 is minute 3. The zero time is returned when no such period
// exists within the search limit.
func (c *Calendar) Next(t time.Time, f recurrence.Field, target int) time.Time {
	switch f {
	case recurrence.FieldFullDate:
		return time.UnixMilli(int64(target)).In(t.Location())
	case recurrence.FieldTime:
		day := toCarbon(t).StartOfDay()
		next := day.AddSeconds(wrap(target, 0, 86399))
		if !next.Gt(toCarbon(t)) {
			next = day.AddDay().AddSeconds(wrap(target, 0, 86399))
		}
		return next.Carbon2Time()
	case recurrence.FieldUnknown:
		return time.Time{}
	}

	u, limit := unitOf(f)
	if min, max, ok := fieldRange(f); ok {
		target = wrap(target, min, max)
	}
	if f == recurrence.FieldYear {
		current := toCarbon(t).Year()
		if target <= current || target-current > yearSearchLimit {
			return time.Time{}
		}
	}

	start := startOf(toCarbon(t), u)
	for i := 1; i <= limit; i++ {
		candidate := add(start, u, i)
		if val(candidate, f) == target {
			return candidate.Carbon2Time()
		}
	}
	return time.Time{}
}

// toCarbon keeps the location of t, carbon defaults to the local one.
func toCarbon(t time.Time) carbon.Carbon {
	c := carbon.Time2Carbon(t)
	if t.Location() == time.Local {
		return c
	}
	if located := c.SetTimezone(t.Location().String()); located.Error == nil {
		return located
	}
	return c
}

func val(c carbon.Carbon, f recurrence.Field) int {
	switch f {
	case recurrence.FieldSecond:
		return c.Second()
	case recurrence.FieldMinute:
		return c.Minute()
	case recurrence.FieldHour:
		return c.Hour()
	case recurrence.FieldTime:
		return c.Hour()*3600 + c.Minute()*60 + c.Second()
	case recurrence.FieldDayOfMonth:
		return c.Day()
	case recurrence.FieldDayOfWeek:
		// carbon counts Monday as 1 and Sunday as 7.
		return c.DayOfWeek()%7 + 1
	case recurrence.FieldDayOfWeekCount:
		return (c.Day()-1)/7 + 1
	case recurrence.FieldDayOfYear:
		return c.DayOfYear()
	case recurrence.FieldWeekOfMonth:
		return c.WeekOfMonth()
	case recurrence.FieldWeekOfYear:
		return c.WeekOfYear()
	case recurrence.FieldMonth:
		return c.Month()
	case recurrence.FieldYear:
		return c.Year()
	case recurrence.FieldFullDate:
		return int(c.Carbon2Time().UnixMilli())
	default:
		return 0
	}
}

func unitOf(f recurrence.Field) (unit, int) {
	switch f {
	case recurrence.FieldSecond:
		return unitSecond, 60
	case recurrence.FieldMinute:
		return unitMinute, 60
	case recurrence.FieldHour:
		return unitHour, 24
	case recurrence.FieldMonth:
		return unitMonth, 12
	case recurrence.FieldYear:
		return unitYear, yearSearchLimit
	default:
		return unitDay, daySearchLimit
	}
}

func fieldRange(f recurrence.Field) (int, int, bool) {
	switch f {
	case recurrence.FieldSecond, recurrence.FieldMinute:
		return 0, 59, true
	case recurrence.FieldHour:
		return 0, 23, true
	case recurrence.FieldDayOfMonth:
		return 1, 31, true
	case recurrence.FieldDayOfWeek:
		return 1, 7, true
	case recurrence.FieldDayOfWeekCount, recurrence.FieldWeekOfMonth:
		return 1, 5, true
	case recurrence.FieldDayOfYear:
		return 1, 366, true
	case recurrence.FieldWeekOfYear:
		return 1, 53, true
	case recurrence.FieldMonth:
		return 1, 12, true
	default:
		return 0, 0, false
	}
}

func wrap(v, min, max int) int {
	size := max - min + 1
	r := (v - min) % size
	if r < 0 {
		r += size
	}
	return min + r
}

func startOf(c carbon.Carbon, u unit) carbon.Carbon {
	switch u {
	case unitSecond:
		t := c.Carbon2Time()
		return toCarbon(t.Truncate(time.Second))
	case unitMinute:
		return c.StartOfMinute()
	case unitHour:
		return c.StartOfHour()
	case unitMonth:
		return c.StartOfMonth()
	case unitYear:
		return c.StartOfYear()
	default:
		return c.StartOfDay()
	}
}

func add(c carbon.Carbon, u unit, n int) carbon.Carbon {
	switch u {
	case unitSecond:
		return c.AddSeconds(n)
	case unitMinute:
		return c.AddMinutes(n)
	case unitHour:
		return c.AddHours(n)
	case unitMonth:
		return c.AddMonths(n)
	case unitYear:
		return c.AddYears(n)
	default:
		return c.AddDays(n)
	}
}
