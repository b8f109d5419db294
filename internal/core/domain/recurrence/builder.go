package recurrence

import (
	"errors"
	"fmt"
)

var (
	ErrNoStride     = errors.New("range requires a preceding stride")
	ErrUnknownField = errors.New("field can not be tagged")
	ErrUnknownOp    = errors.New("unknown instruction")
)

// ConstraintSet is one AND-combined group of field restrictions keyed by
// Key(field, modifier). Values keep insertion order and are unique.
type ConstraintSet map[string][]int

type strideMark struct {
	key    string
	field  Field
	stride int
	count  int
	max    int
}

// Builder accumulates recurrence constraints. Values, strides and modifiers
// stay pending until a field is tagged; tagging consumes all of them.
type Builder struct {
	schedules    []ConstraintSet
	exceptions   []ConstraintSet
	inExceptions bool
	cur          ConstraintSet

	values   []Value
	every    int
	modifier Modifier
	applyMin bool
	applyMax bool
	last     *strideMark
}

func NewBuilder() *Builder {
	return &Builder{
		schedules:  make([]ConstraintSet, 0),
		exceptions: make([]ConstraintSet, 0),
	}
}

func (b *Builder) Schedules() []ConstraintSet {
	return b.schedules
}

func (b *Builder) Exceptions() []ConstraintSet {
	return b.exceptions
}

func (b *Builder) Every(n int) {
	if n <= 0 {
		n = 1
	}
	b.every = n
}

func (b *Builder) On(values ...Value) {
	b.values = values
}

func (b *Builder) First() {
	b.applyMin = true
}

func (b *Builder) Last() {
	b.applyMax = true
}

func (b *Builder) After(v Value) {
	b.modifier = ModifierAfter
	b.values = []Value{v}
}

func (b *Builder) Before(v Value) {
	b.modifier = ModifierBefore
	b.values = []Value{v}
}

// Between restricts the most recent strided field to [start, end], keeping
// its stride. end is capped at the field maximum.
func (b *Builder) Between(start, end int) error {
	if b.last == nil || b.cur == nil {
		return ErrNoStride
	}
	mark := *b.last
	if _, max, _ := mark.field.bounds(false); end > max {
		end = max
	}
	if existing := b.cur[mark.key]; len(existing) > mark.count {
		b.cur[mark.key] = existing[:mark.count]
	}
	b.every = mark.stride
	return b.add(mark.key, mark.field, start, end, Value.asNumber)
}

// StartingOn offsets the most recent stride so that it starts at n.
func (b *Builder) StartingOn(n int) error {
	if b.last == nil {
		return ErrNoStride
	}
	return b.Between(n, b.last.max)
}

// And starts a new OR-branch in the current list.
func (b *Builder) And() {
	b.cur = make(ConstraintSet)
	b.appendToList(b.cur)
}

// Except routes subsequent constraints to the exceptions list.
func (b *Builder) Except() {
	b.inExceptions = true
	b.cur = nil
}

// Time tags pending "HH:MM[:SS]" values as seconds of the day.
func (b *Builder) Time() error {
	return b.tagWith(FieldTime, Value.asSecondsOfDay)
}

// FullDate tags pending instants as absolute Unix milliseconds.
func (b *Builder) FullDate() error {
	return b.tagWith(FieldFullDate, Value.asUnixMilli)
}

func (b *Builder) Second() error         { return b.Tag(FieldSecond) }
func (b *Builder) Minute() error         { return b.Tag(FieldMinute) }
func (b *Builder) Hour() error           { return b.Tag(FieldHour) }
func (b *Builder) DayOfMonth() error     { return b.Tag(FieldDayOfMonth) }
func (b *Builder) DayOfWeek() error      { return b.Tag(FieldDayOfWeek) }
func (b *Builder) DayOfWeekCount() error { return b.Tag(FieldDayOfWeekCount) }
func (b *Builder) DayOfYear() error      { return b.Tag(FieldDayOfYear) }
func (b *Builder) WeekOfMonth() error    { return b.Tag(FieldWeekOfMonth) }
func (b *Builder) WeekOfYear() error     { return b.Tag(FieldWeekOfYear) }
func (b *Builder) Month() error          { return b.Tag(FieldMonth) }
func (b *Builder) Year() error           { return b.Tag(FieldYear) }

// Tag applies the pending state to a field.
func (b *Builder) Tag(f Field) error {
	switch f {
	case FieldTime:
		return b.Time()
	case FieldFullDate:
		return b.FullDate()
	}
	return b.tagWith(f, Value.asNumber)
}

// Apply executes one instruction.
func (b *Builder) Apply(ins Instruction) error {
	switch ins.Op {
	case OpEvery:
		b.Every(ins.N)
	case OpOn:
		b.On(ins.Values...)
	case OpFirst:
		b.First()
	case OpLast:
		b.Last()
	case OpBetween:
		return b.Between(ins.N, ins.M)
	case OpStartingOn:
		return b.StartingOn(ins.N)
	case OpAfter:
		if len(ins.Values) != 1 {
			return fmt.Errorf("%w: after takes one value", ErrValueKind)
		}
		b.After(ins.Values[0])
	case OpBefore:
		if len(ins.Values) != 1 {
			return fmt.Errorf("%w: before takes one value", ErrValueKind)
		}
		b.Before(ins.Values[0])
	case OpAnd:
		b.And()
	case OpExcept:
		b.Except()
	case OpFullDate:
		return b.FullDate()
	case OpTime:
		return b.Time()
	case OpTag:
		return b.Tag(ins.Field)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOp, ins.Op)
	}
	return nil
}

func (b *Builder) tagWith(f Field, convert func(Value) (int, error)) error {
	min, max, ok := f.bounds(b.applyMax)
	if !ok && f != FieldTime && f != FieldFullDate {
		b.reset()
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	if !ok {
		// Clock and instant values carry no stride.
		b.every = 0
	}
	key := Key(f, b.modifier)
	return b.add(key, f, min, max, convert)
}

func (b *Builder) add(key string, f Field, min, max int, convert func(Value) (int, error)) error {
	defer b.reset()

	if b.cur == nil {
		b.cur = make(ConstraintSet)
		b.appendToList(b.cur)
	}
	if _, ok := b.cur[key]; !ok {
		b.cur[key] = []int{}
	}

	var values []int
	switch {
	case b.every > 0:
		for i := min; i <= max; i += b.every {
			values = append(values, i)
		}
		b.last = &strideMark{key: key, field: f, stride: b.every, count: len(b.cur[key]), max: max}
	case b.applyMin || b.applyMax:
	default:
		values = make([]int, 0, len(b.values))
		for _, v := range b.values {
			n, err := convert(v)
			if err != nil {
				return err
			}
			values = append(values, n)
		}
	}
	if b.applyMin {
		values = []int{min}
	} else if b.applyMax {
		values = []int{max}
	}

	seen := make(map[int]struct{}, len(b.cur[key])+len(values))
	for _, v := range b.cur[key] {
		seen[v] = struct{}{}
	}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		b.cur[key] = append(b.cur[key], v)
	}
	return nil
}

func (b *Builder) appendToList(set ConstraintSet) {
	if b.inExceptions {
		b.exceptions = append(b.exceptions, set)
	} else {
		b.schedules = append(b.schedules, set)
	}
}

func (b *Builder) reset() {
	b.values = nil
	b.every = 0
	b.modifier = ModifierNone
	b.applyMin = false
	b.applyMax = false
}
