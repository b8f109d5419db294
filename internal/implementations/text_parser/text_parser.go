package textparser

import (
	"context"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"strings"
	"time"
)

// ParseText converts a schedule description into a recurrence result. now
// anchors "for N <period>" clauses and calendar computes them.
func ParseText(text string, now time.Time, calendar recurrence.Calendar) recurrence.Result {
	instructions, offset := Compile(text, now, calendar)
	result := recurrence.Reduce(instructions)
	if offset != recurrence.NoError && (result.OK() || offset < result.Error) {
		result.Error = offset
	}
	return result
}

// Compile runs the grammar alone and returns the emitted builder
// instructions with the offset of the first grammar error.
func Compile(text string, now time.Time, calendar recurrence.Calendar) ([]recurrence.Instruction, int) {
	p := newParser(strings.ToLower(text), now, calendar)
	p.parseSchedule()
	return p.instructions, p.err
}

type Parser struct {
	calendar recurrence.Calendar
}

func New(calendar recurrence.Calendar) *Parser {
	if calendar == nil {
		panic(e.NewNilArgumentError("calendar"))
	}
	return &Parser{calendar: calendar}
}

func (p *Parser) Parse(ctx context.Context, text string, now time.Time) (recurrence.Result, error) {
	result := ParseText(text, now, p.calendar)
	if result.OK() {
		return result, nil
	}
	word := wordAt(strings.ToLower(text), result.Error)
	return result, &e.OffsetError{Offset: result.Error, Word: word.Text, Err: schedule.ErrTextParsing}
}
