package recurrence

import (
	"errors"
	"fmt"
)

var ErrParseField = errors.New("invalid field")

// MaxFieldValue is the largest value any field admits.
const MaxFieldValue = 2450

// Field is a calendar granularity a constraint applies to.
type Field struct {
	v string
}

var (
	FieldUnknown        Field = Field{}
	FieldSecond         Field = Field{v: "s"}
	FieldMinute         Field = Field{v: "m"}
	FieldHour           Field = Field{v: "h"}
	FieldTime           Field = Field{v: "t"}
	FieldDayOfMonth     Field = Field{v: "D"}
	FieldDayOfWeek      Field = Field{v: "d"}
	FieldDayOfWeekCount Field = Field{v: "dc"}
	FieldDayOfYear      Field = Field{v: "dy"}
	FieldWeekOfMonth    Field = Field{v: "wm"}
	FieldWeekOfYear     Field = Field{v: "wy"}
	FieldMonth          Field = Field{v: "M"}
	FieldYear           Field = Field{v: "Y"}
	FieldFullDate       Field = Field{v: "fd"}
)

var fields = []Field{
	FieldSecond,
	FieldMinute,
	FieldHour,
	FieldTime,
	FieldDayOfMonth,
	FieldDayOfWeek,
	FieldDayOfWeekCount,
	FieldDayOfYear,
	FieldWeekOfMonth,
	FieldWeekOfYear,
	FieldMonth,
	FieldYear,
	FieldFullDate,
}

func ParseField(code string) (Field, error) {
	for _, f := range fields {
		if f.v == code {
			return f, nil
		}
	}
	return FieldUnknown, fmt.Errorf("%w: %q", ErrParseField, code)
}

func (f Field) Code() string {
	return f.v
}

func (f Field) String() string {
	switch f {
	case FieldSecond:
		return "second"
	case FieldMinute:
		return "minute"
	case FieldHour:
		return "hour"
	case FieldTime:
		return "time"
	case FieldDayOfMonth:
		return "day of month"
	case FieldDayOfWeek:
		return "day of week"
	case FieldDayOfWeekCount:
		return "day of week count"
	case FieldDayOfYear:
		return "day of year"
	case FieldWeekOfMonth:
		return "week of month"
	case FieldWeekOfYear:
		return "week of year"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	case FieldFullDate:
		return "full date"
	default:
		return "unknown"
	}
}

// bounds returns the range a stride is expanded over. Fields whose last
// value depends on the calendar report 0 as their maximum when the "last"
// shorthand is pending.
func (f Field) bounds(last bool) (min int, max int, ok bool) {
	switch f {
	case FieldSecond, FieldMinute:
		return 0, 59, true
	case FieldHour:
		return 0, 23, true
	case FieldDayOfWeek:
		return 1, 7, true
	case FieldMonth:
		return 1, 12, true
	case FieldYear:
		return 1970, MaxFieldValue, true
	case FieldDayOfMonth:
		return 1, lastOr(last, 31), true
	case FieldDayOfWeekCount:
		return 1, lastOr(last, 5), true
	case FieldDayOfYear:
		return 1, lastOr(last, 366), true
	case FieldWeekOfMonth:
		return 1, lastOr(last, 5), true
	case FieldWeekOfYear:
		return 1, lastOr(last, 53), true
	default:
		return 0, 0, false
	}
}

func lastOr(last bool, max int) int {
	if last {
		return 0
	}
	return max
}

// Modifier turns a field constraint into one side of a bracket.
type Modifier struct {
	v string
}

var (
	ModifierNone   Modifier = Modifier{}
	ModifierAfter  Modifier = Modifier{v: "a"}
	ModifierBefore Modifier = Modifier{v: "b"}
)

// Key renders the constraint set key of a field, e.g. "m", "t_a", "fd_b".
func Key(f Field, m Modifier) string {
	if m == ModifierNone {
		return f.v
	}
	return f.v + "_" + m.v
}
