package recurrence

import "time"

// NoError is the Result.Error value of a successful parse.
const NoError = -1

// Result is the outcome of a parse. Error is NoError on success, otherwise
// the 0-based offset of the first unparsable token. Schedules and exceptions
// accumulated before a failure are still reported but must not be used.
type Result struct {
	Schedules  []ConstraintSet `json:"schedules" yaml:"schedules"`
	Exceptions []ConstraintSet `json:"exceptions" yaml:"exceptions"`
	Error      int             `json:"error" yaml:"error"`
}

func (r Result) OK() bool {
	return r.Error == NoError
}

// DependsOnNow reports whether the result carries absolute timestamps that
// were derived from the parse time.
func (r Result) DependsOnNow() bool {
	for _, sets := range [][]ConstraintSet{r.Schedules, r.Exceptions} {
		for _, set := range sets {
			for _, m := range []Modifier{ModifierNone, ModifierAfter, ModifierBefore} {
				if _, ok := set[Key(FieldFullDate, m)]; ok {
					return true
				}
			}
		}
	}
	return false
}

// Reduce folds an instruction sequence into a Result using a fresh Builder.
// Folding stops at the first instruction the builder rejects and its offset
// becomes the result error.
func Reduce(instructions []Instruction) Result {
	b := NewBuilder()
	result := Result{Error: NoError}
	for _, ins := range instructions {
		if err := b.Apply(ins); err != nil {
			result.Error = ins.Offset
			break
		}
	}
	result.Schedules = b.Schedules()
	result.Exceptions = b.Exceptions()
	return result
}

// Calendar computes field values of timestamps.
type Calendar interface {
	// Val returns the value of the field at t.
	Val(t time.Time, f Field) int
	// Next returns the start of the nearest period after the one containing
	// t whose field equals target.
	Next(t time.Time, f Field, target int) time.Time
}
