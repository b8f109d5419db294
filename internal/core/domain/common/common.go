package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

// ValueOr returns the value if present, otherwise def.
func (p Optional[T]) ValueOr(def T) T {
	if p.IsPresent {
		return p.Value
	}
	return def
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// ScheduleName is a user supplied label of a stored schedule.
type ScheduleName string

func NewScheduleName(raw string) ScheduleName {
	return ScheduleName(strings.ToLower(strings.TrimSpace(raw)))
}
