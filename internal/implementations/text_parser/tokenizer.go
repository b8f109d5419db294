package textparser

import (
	"schedtext/internal/core/domain/recurrence"
	"strings"
	"time"
	"unicode"
)

// Token is a classified run of the input. Start and End are byte offsets.
type Token struct {
	Start int
	End   int
	Text  string
	Kind  TokenKind
}

type parser struct {
	input        string
	pos          int
	err          int
	now          time.Time
	calendar     recurrence.Calendar
	instructions []recurrence.Instruction
}

func newParser(input string, now time.Time, calendar recurrence.Calendar) *parser {
	return &parser{
		input:        input,
		err:          recurrence.NoError,
		now:          now,
		calendar:     calendar,
		instructions: make([]recurrence.Instruction, 0),
	}
}

// peek classifies the text at the cursor as the longest match among kinds,
// skipping whitespace. Ties go to the kind listed first. The cursor does not
// move.
func (p *parser) peek(kinds ...TokenKind) *Token {
	start := p.pos
	for {
		rest := p.input[start:]
		var best *Token
		bestLen := -1
		for _, kind := range kinds {
			n := kind.match(rest)
			if n > bestLen {
				bestLen = n
				best = &Token{Start: start, End: start + n, Text: rest[:n], Kind: kind}
			}
		}
		if loc := reWhitespace.FindStringIndex(rest); loc != nil && loc[1] > bestLen {
			start += loc[1]
			continue
		}
		return best
	}
}

func (p *parser) accept(tok *Token) {
	if tok != nil {
		p.pos = tok.End
	}
}

func (p *parser) scan(kinds ...TokenKind) *Token {
	tok := p.peek(kinds...)
	p.accept(tok)
	return tok
}

// expect scans one of kinds and records an error when nothing matches.
func (p *parser) expect(kinds ...TokenKind) (*Token, bool) {
	tok := p.scan(kinds...)
	if tok == nil {
		return nil, p.fail()
	}
	return tok, true
}

// fail records the cursor as the error offset unless an error is already set.
func (p *parser) fail() bool {
	if p.err == recurrence.NoError {
		p.err = p.pos
	}
	return false
}

func (p *parser) emit(ins recurrence.Instruction) {
	p.instructions = append(p.instructions, ins.At(p.pos))
}

// wordAt returns the whitespace delimited word starting at or after offset.
// Its kind is KindNone.
func wordAt(input string, offset int) Token {
	if offset < 0 || offset > len(input) {
		return Token{Start: offset, End: offset}
	}
	start := len(input) - len(strings.TrimLeftFunc(input[offset:], unicode.IsSpace))
	end := start
	if ix := strings.IndexFunc(input[start:], unicode.IsSpace); ix >= 0 {
		end += ix
	} else {
		end = len(input)
	}
	return Token{Start: start, End: end, Text: input[start:end], Kind: KindNone}
}
