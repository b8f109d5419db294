package textparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeek(t *testing.T) {
	cases := []struct {
		input string
		kinds []TokenKind
		kind  TokenKind
		text  string
		start int
	}{
		{input: "2012", kinds: []TokenKind{KindRank, KindYearIndex}, kind: KindRank, text: "2012"},
		{input: "2012", kinds: []TokenKind{KindYearIndex, KindRank}, kind: KindYearIndex, text: "2012"},
		{input: "day of the week", kinds: PeriodKinds, kind: KindDayOfWeek, text: "day of the week"},
		{input: "days of the month", kinds: PeriodKinds, kind: KindDay, text: "days of the month"},
		{input: "day instance", kinds: PeriodKinds, kind: KindDayInstance, text: "day instance"},
		{input: "weeks", kinds: PeriodKinds, kind: KindWeekOfYear, text: "weeks"},
		{input: "between the 10th", kinds: statementKinds, kind: KindBetween, text: "between the"},
		{input: "on the 1st", kinds: statementKinds, kind: KindOnThe, text: "on the"},
		{input: "on mon", kinds: statementKinds, kind: KindOn, text: "on"},
		{input: "everyday", kinds: statementKinds, kind: KindEveryday, text: "everyday"},
		{input: "10:00 am on", kinds: timeKinds, kind: KindTime, text: "10:00 am"},
		{input: "10:00 and", kinds: timeKinds, kind: KindTime, text: "10:00"},
		{input: "   mon", kinds: []TokenKind{KindDayName}, kind: KindDayName, text: "mon", start: 3},
		{input: "  ", kinds: []TokenKind{KindEOF}, kind: KindEOF, text: "", start: 2},
		{input: "wednesdays", kinds: []TokenKind{KindDayName}, kind: KindDayName, text: "wednesdays"},
		{input: "sep", kinds: []TokenKind{KindMonthName}, kind: KindMonthName, text: "sep"},
		{input: "an hour", kinds: []TokenKind{KindRank}, kind: KindRank, text: "an"},
		{input: ", tue", kinds: []TokenKind{KindAnd}, kind: KindAnd, text: ","},
		{input: "-fri", kinds: []TokenKind{KindThrough}, kind: KindThrough, text: "-"},
		{input: "starting on the 5th", kinds: []TokenKind{KindStart}, kind: KindStart, text: "starting on the"},
	}

	for _, testcase := range cases {
		t.Run(testcase.input, func(t *testing.T) {
			p := newParser(testcase.input, time.Time{}, nil)
			tok := p.peek(testcase.kinds...)
			require.NotNil(t, tok)
			require.Equal(t, testcase.kind, tok.Kind)
			require.Equal(t, testcase.text, tok.Text)
			require.Equal(t, testcase.start, tok.Start)
			require.Equal(t, testcase.start+len(testcase.text), tok.End)
			require.Equal(t, 0, p.pos)
		})
	}
}

func TestPeekNoMatch(t *testing.T) {
	cases := []struct {
		input string
		kinds []TokenKind
	}{
		{input: "fortnight", kinds: PeriodKinds},
		{input: "at", kinds: []TokenKind{KindRank}},
		{input: "every", kinds: []TokenKind{KindEveryday}},
		{input: "13pm", kinds: []TokenKind{KindTime}},
		{input: "ma", kinds: []TokenKind{KindMonthName}},
		{input: "   ", kinds: []TokenKind{KindRank}},
	}

	for _, testcase := range cases {
		t.Run(testcase.input, func(t *testing.T) {
			p := newParser(testcase.input, time.Time{}, nil)
			require.Nil(t, p.peek(testcase.kinds...))
		})
	}
}

func TestPeekReturnsLongestMatch(t *testing.T) {
	all := make([]TokenKind, 0, kindCount)
	for k := KindEOF; k < kindCount; k++ {
		all = append(all, k)
	}
	inputs := []string{
		"every 5 minutes", "day of the year", "on the 15-20th day", "10:30 pm",
		"starting at 5", "between the 1st", "weekdays", "saturdays", "2019", "1st",
		"sec", "weeks of the month", "months", "@ 5pm", "thru", "until", "a",
	}

	for _, input := range inputs {
		p := newParser(input, time.Time{}, nil)
		tok := p.peek(all...)
		require.NotNil(t, tok, input)
		rest := input[tok.Start:]
		for _, k := range all {
			require.LessOrEqual(t, k.match(rest), len(tok.Text), "%s: %s", input, k)
		}
	}
}

func TestScanMovesCursorForward(t *testing.T) {
	p := newParser("every 5 minutes", time.Time{}, nil)

	positions := []int{p.pos}
	require.NotNil(t, p.scan(KindEvery))
	positions = append(positions, p.pos)
	require.Nil(t, p.scan(KindMinute))
	positions = append(positions, p.pos)
	require.NotNil(t, p.scan(KindRank))
	positions = append(positions, p.pos)
	require.NotNil(t, p.scan(PeriodKinds...))
	positions = append(positions, p.pos)
	require.NotNil(t, p.scan(KindEOF))
	positions = append(positions, p.pos)

	require.Equal(t, []int{0, 5, 5, 7, 15, 15}, positions)
}

func TestExpectRecordsFirstError(t *testing.T) {
	p := newParser("every x y", time.Time{}, nil)
	p.scan(KindEvery)

	_, ok := p.expect(KindRank)
	require.False(t, ok)
	require.Equal(t, 5, p.err)

	p.pos = 7
	_, ok = p.expect(KindRank)
	require.False(t, ok)
	require.Equal(t, 5, p.err)
}

func TestWordAt(t *testing.T) {
	require.Equal(t, "fortnights", wordAt("every 5 fortnights", 7).Text)
	require.Equal(t, "every", wordAt("every 5 fortnights", 0).Text)
	require.Equal(t, "", wordAt("every", 5).Text)
	require.Equal(t, KindNone, wordAt("every", 0).Kind)
	require.Equal(t, "", wordAt("every", 42).Text)
	require.Equal(t, "fortnights", wordAt("every 5\u00a0fortnights", 7).Text)
}

func TestPeekSkipsUnicodeWhitespace(t *testing.T) {
	inputs := []string{"\u00a05 minutes", "\v5 minutes", "\u30005 minutes", "\ufeff\u20025 minutes"}

	for _, input := range inputs {
		p := newParser(input, time.Time{}, nil)
		tok := p.scan(KindRank)
		require.NotNil(t, tok, "%q", input)
		require.Equal(t, "5", tok.Text)
		require.Equal(t, len(input)-len("5 minutes"), tok.Start)
	}
}

func TestTokenKindString(t *testing.T) {
	require.Equal(t, "day of week", KindDayOfWeek.String())
	require.Equal(t, "end of input", KindEOF.String())
	require.Equal(t, "kind(99)", TokenKind(99).String())
}
