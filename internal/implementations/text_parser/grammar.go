package textparser

import (
	"schedtext/internal/core/domain/recurrence"
)

var defaultThrough = []TokenKind{KindThrough}

// parseSchedule consumes statements until the input is exhausted or an error
// is recorded.
func (p *parser) parseSchedule() {
	for p.pos < len(p.input) && p.err == recurrence.NoError {
		tok := p.peek(statementKinds...)
		if tok == nil {
			p.fail()
			return
		}
		if !p.parseStatement(tok) {
			return
		}
	}
}

func (p *parser) parseStatement(tok *Token) bool {
	if everyKinds[tok.Kind] {
		if tok.Kind == KindEvery {
			p.accept(tok)
		}
		return p.parseEvery()
	}

	switch tok.Kind {
	case KindAfter:
		p.accept(tok)
		return p.parseAfter()
	case KindBefore:
		p.accept(tok)
		return p.parseBefore()
	case KindOnThe:
		p.accept(tok)
		return p.parseOnThe()
	case KindOn, KindOf, KindIn, KindAt:
		p.accept(tok)
		return p.parseTime(defaultThrough)
	case KindAnd:
		p.accept(tok)
		return true
	case KindExcept:
		p.accept(tok)
		p.emit(recurrence.Except())
		return true
	case KindAlso:
		p.accept(tok)
		p.emit(recurrence.And())
		return true
	case KindFor:
		p.accept(tok)
		return p.parseFor()
	case KindBetween:
		return p.parseBetween()
	case KindEOF:
		p.accept(tok)
		return true
	}
	return p.fail()
}

func (p *parser) parseEvery() bool {
	if p.scan(KindWeekend) != nil {
		p.emit(recurrence.On(recurrence.Numbers(NameTable["sun"], NameTable["sat"])...))
		p.emit(recurrence.Tag(recurrence.FieldDayOfWeek))
		return true
	}
	if p.scan(KindWeekday) != nil {
		p.emit(recurrence.On(recurrence.Numbers(
			NameTable["mon"], NameTable["tue"], NameTable["wed"], NameTable["thu"], NameTable["fri"],
		)...))
		p.emit(recurrence.Tag(recurrence.FieldDayOfWeek))
		return true
	}
	if p.peek(KindTime, KindDayName, KindMonthName) != nil {
		return p.parseTime(defaultThrough)
	}
	return p.parseEveryRank()
}

func (p *parser) parseEveryRank() bool {
	if tok := p.scan(PeriodKinds...); tok != nil {
		p.emit(recurrence.Every(1))
		if !p.applyPeriod(tok.Kind) {
			return false
		}
	} else if p.scan(KindEveryday) != nil {
		p.emit(recurrence.Every(1))
		if !p.applyPeriod(KindDayOfWeek) {
			return false
		}
	} else {
		n, ok := p.parseNumber(KindRank)
		if !ok {
			return false
		}
		p.emit(recurrence.Every(n))
		if !p.parseTimePeriod() {
			return false
		}
	}

	if p.scan(KindStart) != nil {
		n, ok := p.parseNumber(KindRank)
		if !ok {
			return false
		}
		p.emit(recurrence.StartingOn(n))
		p.scan(PeriodKinds...)
		return true
	}

	if p.scan(KindBetween) != nil {
		if tok := p.peek(KindTime, KindDayName, KindMonthName, KindYearIndex); tok != nil {
			return p.parseTimeFrom(tok, []TokenKind{KindThrough, KindAnd})
		}
		start, ok := p.parseNumber(KindRank)
		if !ok {
			return false
		}
		if p.scan(KindAnd) != nil {
			end, ok := p.parseNumber(KindRank)
			if !ok {
				return false
			}
			p.emit(recurrence.Between(start, end))
			p.scan(PeriodKinds...)
		}
	}
	return true
}

// parseFor bounds the schedule to [now, now + n periods).
func (p *parser) parseFor() bool {
	n, ok := p.parseNumber(KindRank)
	if !ok {
		return false
	}
	tok, ok := p.expect(PeriodKinds...)
	if !ok {
		return false
	}
	field, ok := periodField(tok.Kind)
	if !ok || field == recurrence.FieldTime || p.calendar == nil {
		return p.fail()
	}

	current := p.calendar.Val(p.now, field)
	end := p.calendar.Next(p.now, field, current+n)

	p.emit(recurrence.After(recurrence.Instant(p.now)))
	p.emit(recurrence.FullDate())
	p.emit(recurrence.Before(recurrence.Instant(end)))
	p.emit(recurrence.FullDate())
	return true
}

func (p *parser) parseOnThe() bool {
	if p.scan(KindFirst) != nil {
		p.emit(recurrence.First())
		return p.parseTimePeriod()
	}
	if p.scan(KindLast) != nil {
		p.emit(recurrence.Last())
		return p.parseTimePeriod()
	}
	return p.parseTime(defaultThrough)
}

func (p *parser) parseAfter() bool {
	return p.parseBound(recurrence.After)
}

func (p *parser) parseBefore() bool {
	return p.parseBound(recurrence.Before)
}

func (p *parser) parseBound(bound func(recurrence.Value) recurrence.Instruction) bool {
	if p.peek(KindTime) != nil {
		clock, ok := p.parseClock()
		if !ok {
			return false
		}
		p.emit(bound(clock))
		p.emit(recurrence.Time())
		return true
	}

	n, ok := p.parseNumber(KindRank)
	if !ok {
		return false
	}
	p.emit(bound(recurrence.Number(n)))
	return p.parseTimePeriod()
}

// parseBetween accepts "and" as a range conjunction after a bare "between".
// After "between the" or "from", "and" joins a list.
func (p *parser) parseBetween() bool {
	tok, ok := p.expect(KindBetween)
	if !ok {
		return false
	}
	if tok.Text == "between" {
		return p.parseTime([]TokenKind{KindThrough, KindAnd})
	}
	return p.parseTime(defaultThrough)
}

func (p *parser) parseTime(through []TokenKind) bool {
	tok := p.peek(timeKinds...)
	if tok == nil {
		return p.fail()
	}
	return p.parseTimeFrom(tok, through)
}

// parseTimeFrom parses a time expression whose first token tok has been
// peeked but not consumed.
func (p *parser) parseTimeFrom(tok *Token, through []TokenKind) bool {
	if tok.Kind == KindTime {
		return p.parseTimeInstanceOrRange(through)
	}

	group, ok := p.parsePeriodInstanceOrRange(tok.Kind, through)
	if !ok {
		return false
	}
	values := group.values
	for p.scan(KindAnd) != nil {
		group, ok = p.parsePeriodInstanceOrRange(tok.Kind, through)
		if !ok {
			return false
		}
		values = append(values, group.values...)
	}
	p.emit(recurrence.On(recurrence.Numbers(values...)...))

	if tok.Kind == KindRank {
		return p.applyPeriod(group.period)
	}
	return p.applyPeriod(tok.Kind)
}

type periodGroup struct {
	values []int
	period TokenKind
}

// parsePeriodInstanceOrRange parses "A [period] [through B [period]]". A run
// whose end precedes its start is empty. Runs stop at the largest value any
// field admits.
func (p *parser) parsePeriodInstanceOrRange(kind TokenKind, through []TokenKind) (periodGroup, bool) {
	var group periodGroup

	start, ok := p.parseNumber(kind)
	if !ok {
		return group, false
	}
	if tok := p.scan(PeriodKinds...); tok != nil {
		group.period = tok.Kind
	}

	if p.scan(through...) == nil {
		group.values = []int{start}
		return group, true
	}

	end, ok := p.parseNumber(kind)
	if !ok {
		return group, false
	}
	if kind == KindRank && group.period == KindNone {
		if tok := p.scan(PeriodKinds...); tok != nil {
			group.period = tok.Kind
		}
	}
	if end > recurrence.MaxFieldValue {
		end = recurrence.MaxFieldValue
	}
	group.values = make([]int, 0)
	for i := start; i <= end; i++ {
		group.values = append(group.values, i)
	}
	return group, true
}

func (p *parser) parseTimeInstanceOrRange(through []TokenKind) bool {
	start, ok := p.parseClock()
	if !ok {
		return false
	}
	if p.scan(through...) == nil {
		p.emit(recurrence.On(start))
		p.emit(recurrence.Time())
		return true
	}

	end, ok := p.parseClock()
	if !ok {
		return false
	}
	p.emit(recurrence.After(start))
	p.emit(recurrence.Time())
	p.emit(recurrence.Before(end))
	p.emit(recurrence.Time())
	return true
}

func (p *parser) parseTimePeriod() bool {
	tok := p.scan(PeriodKinds...)
	if tok == nil {
		return p.fail()
	}
	return p.applyPeriod(tok.Kind)
}

// applyPeriod tags the pending builder state with the field kind stands for.
func (p *parser) applyPeriod(kind TokenKind) bool {
	field, ok := periodField(kind)
	if !ok {
		return p.fail()
	}
	if field == recurrence.FieldTime {
		p.emit(recurrence.Time())
	} else {
		p.emit(recurrence.Tag(field))
	}
	return true
}

func (p *parser) parseNumber(kind TokenKind) (int, bool) {
	tok, ok := p.expect(kind)
	if !ok {
		return 0, false
	}
	n, err := numericValue(tok)
	if err != nil {
		return 0, p.fail()
	}
	return n, true
}

func (p *parser) parseClock() (recurrence.Value, bool) {
	tok, ok := p.expect(KindTime)
	if !ok {
		return recurrence.Value{}, false
	}
	v, err := tokenValue(tok)
	if err != nil {
		return recurrence.Value{}, p.fail()
	}
	return v, true
}

func periodField(kind TokenKind) (recurrence.Field, bool) {
	switch kind {
	case KindSecond:
		return recurrence.FieldSecond, true
	case KindMinute:
		return recurrence.FieldMinute, true
	case KindHour:
		return recurrence.FieldHour, true
	case KindDayOfYear:
		return recurrence.FieldDayOfYear, true
	case KindDayOfWeek, KindDayName, KindEveryday:
		return recurrence.FieldDayOfWeek, true
	case KindDayInstance:
		return recurrence.FieldDayOfWeekCount, true
	case KindDay:
		return recurrence.FieldDayOfMonth, true
	case KindWeekOfMonth:
		return recurrence.FieldWeekOfMonth, true
	case KindWeekOfYear:
		return recurrence.FieldWeekOfYear, true
	case KindMonth, KindMonthName:
		return recurrence.FieldMonth, true
	case KindYear, KindYearIndex:
		return recurrence.FieldYear, true
	case KindTime:
		return recurrence.FieldTime, true
	default:
		return recurrence.FieldUnknown, false
	}
}
