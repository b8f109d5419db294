package recurrence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrValueKind = errors.New("unexpected value kind")

type valueKind int

const (
	numberValue valueKind = iota
	clockValue
	instantValue
)

// Value is an operand of a builder instruction: a number, a normalized
// "HH:MM" clock string or an absolute instant.
type Value struct {
	kind    valueKind
	number  int
	clock   string
	instant time.Time
}

func Number(n int) Value {
	return Value{kind: numberValue, number: n}
}

func Numbers(ns ...int) []Value {
	values := make([]Value, 0, len(ns))
	for _, n := range ns {
		values = append(values, Number(n))
	}
	return values
}

func Clock(hhmm string) Value {
	return Value{kind: clockValue, clock: hhmm}
}

func Instant(t time.Time) Value {
	return Value{kind: instantValue, instant: t}
}

func (v Value) String() string {
	switch v.kind {
	case clockValue:
		return v.clock
	case instantValue:
		return v.instant.Format(time.RFC3339)
	default:
		return strconv.Itoa(v.number)
	}
}

func (v Value) asNumber() (int, error) {
	if v.kind != numberValue {
		return 0, fmt.Errorf("%w: %s is not a number", ErrValueKind, v)
	}
	return v.number, nil
}

func (v Value) asSecondsOfDay() (int, error) {
	if v.kind != clockValue {
		return 0, fmt.Errorf("%w: %s is not a clock time", ErrValueKind, v)
	}
	parts := strings.Split(v.clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: malformed clock time %q", ErrValueKind, v.clock)
	}
	total := 0
	for ix, mult := range []int{3600, 60, 1} {
		if ix >= len(parts) {
			break
		}
		n, err := strconv.Atoi(parts[ix])
		if err != nil {
			return 0, fmt.Errorf("%w: malformed clock time %q", ErrValueKind, v.clock)
		}
		total += n * mult
	}
	return total, nil
}

func (v Value) asUnixMilli() (int, error) {
	if v.kind != instantValue {
		return 0, fmt.Errorf("%w: %s is not an instant", ErrValueKind, v)
	}
	return int(v.instant.UnixMilli()), nil
}
