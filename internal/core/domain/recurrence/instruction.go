package recurrence

import (
	"fmt"
	"strings"
)

type Op int

const (
	OpEvery Op = iota + 1
	OpOn
	OpFirst
	OpLast
	OpBetween
	OpStartingOn
	OpAfter
	OpBefore
	OpAnd
	OpExcept
	OpFullDate
	OpTime
	OpTag
)

func (op Op) String() string {
	switch op {
	case OpEvery:
		return "every"
	case OpOn:
		return "on"
	case OpFirst:
		return "first"
	case OpLast:
		return "last"
	case OpBetween:
		return "between"
	case OpStartingOn:
		return "startingOn"
	case OpAfter:
		return "after"
	case OpBefore:
		return "before"
	case OpAnd:
		return "and"
	case OpExcept:
		return "except"
	case OpFullDate:
		return "fullDate"
	case OpTime:
		return "time"
	case OpTag:
		return "tag"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Instruction is one abstract builder step. Offset is the input position the
// instruction was emitted at and is reported when the step cannot be applied.
type Instruction struct {
	Op     Op
	Offset int
	N      int
	M      int
	Values []Value
	Field  Field
}

func (i Instruction) String() string {
	switch i.Op {
	case OpEvery, OpStartingOn:
		return fmt.Sprintf("%s(%d)", i.Op, i.N)
	case OpBetween:
		return fmt.Sprintf("%s(%d, %d)", i.Op, i.N, i.M)
	case OpOn, OpAfter, OpBefore:
		parts := make([]string, 0, len(i.Values))
		for _, v := range i.Values {
			parts = append(parts, v.String())
		}
		return fmt.Sprintf("%s(%s)", i.Op, strings.Join(parts, ","))
	case OpTag:
		return fmt.Sprintf("%s(%s)", i.Op, i.Field.Code())
	default:
		return i.Op.String() + "()"
	}
}

// At returns a copy of the instruction bound to an input offset.
func (i Instruction) At(offset int) Instruction {
	i.Offset = offset
	return i
}

func Every(n int) Instruction {
	return Instruction{Op: OpEvery, N: n}
}

func On(values ...Value) Instruction {
	return Instruction{Op: OpOn, Values: values}
}

func First() Instruction {
	return Instruction{Op: OpFirst}
}

func Last() Instruction {
	return Instruction{Op: OpLast}
}

func Between(start, end int) Instruction {
	return Instruction{Op: OpBetween, N: start, M: end}
}

func StartingOn(n int) Instruction {
	return Instruction{Op: OpStartingOn, N: n}
}

func After(v Value) Instruction {
	return Instruction{Op: OpAfter, Values: []Value{v}}
}

func Before(v Value) Instruction {
	return Instruction{Op: OpBefore, Values: []Value{v}}
}

func And() Instruction {
	return Instruction{Op: OpAnd}
}

func Except() Instruction {
	return Instruction{Op: OpExcept}
}

func FullDate() Instruction {
	return Instruction{Op: OpFullDate}
}

func Time() Instruction {
	return Instruction{Op: OpTime}
}

func Tag(f Field) Instruction {
	return Instruction{Op: OpTag, Field: f}
}
