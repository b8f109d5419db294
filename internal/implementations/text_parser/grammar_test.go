package textparser

import (
	"schedtext/internal/core/domain/recurrence"
	"testing"

	"github.com/stretchr/testify/require"
)

func render(instructions []recurrence.Instruction) []string {
	rendered := make([]string, 0, len(instructions))
	for _, ins := range instructions {
		rendered = append(rendered, ins.String())
	}
	return rendered
}

func TestCompile(t *testing.T) {
	cases := []struct {
		query    string
		expected []string
	}{
		{query: "every 5 minutes", expected: []string{"every(5)", "tag(m)"}},
		{query: "every hour", expected: []string{"every(1)", "tag(h)"}},
		{query: "everyday", expected: []string{"every(1)", "tag(d)"}},
		{query: "every weekend", expected: []string{"on(1,7)", "tag(d)"}},
		{query: "weekday", expected: []string{"on(2,3,4,5,6)", "tag(d)"}},
		{query: "every mon", expected: []string{"on(2)", "tag(d)"}},
		{query: "at 10:00 am", expected: []string{"on(10:00)", "time()"}},
		{query: "after 5pm", expected: []string{"after(17:00)", "time()"}},
		{query: "before 3 hours", expected: []string{"before(3)", "tag(h)"}},
		{
			query:    "between 9am and 5pm",
			expected: []string{"after(09:00)", "time()", "before(17:00)", "time()"},
		},
		{query: "from mon and wed", expected: []string{"on(2,4)", "tag(d)"}},
		{query: "on the first day", expected: []string{"first()", "tag(D)"}},
		{query: "on the last week of the year", expected: []string{"last()", "tag(wy)"}},
		{query: "on the 1st and 3rd day instance", expected: []string{"on(1,3)", "tag(dc)"}},
		{
			query:    "every 15 minutes starting at 10",
			expected: []string{"every(15)", "tag(m)", "startingOn(10)"},
		},
		{
			query:    "every 2 days between the 5th and 9th",
			expected: []string{"every(2)", "tag(D)", "between(5, 9)"},
		},
		{
			query:    "every 2 hours between 2012 and 2014",
			expected: []string{"every(2)", "tag(h)", "on(2012,2013,2014)", "tag(Y)"},
		},
		{query: "in 2012 and 2014", expected: []string{"on(2012,2014)", "tag(Y)"}},
		{query: "on mon except on sat", expected: []string{"on(2)", "tag(d)", "except()", "on(7)", "tag(d)"}},
		{query: "of june also of july", expected: []string{"on(6)", "tag(M)", "and()", "on(7)", "tag(M)"}},
		{query: "every 5 minutes and every 2 hours", expected: []string{"every(5)", "tag(m)", "every(2)", "tag(h)"}},
		{query: "on jan and on feb", expected: []string{}},
		{query: "between the 1st and 5th minute", expected: []string{"on(1,5)", "tag(m)"}},
		{query: "between 1st and 5th minute", expected: []string{"on(1,2,3,4,5)", "tag(m)"}},
		{query: "between the 1st-3rd minute", expected: []string{"on(1,2,3)", "tag(m)"}},
	}

	for _, testcase := range cases {
		t.Run(testcase.query, func(t *testing.T) {
			instructions, _ := Compile(testcase.query, testNow, &fakeCalendar{})
			require.Equal(t, testcase.expected, render(instructions))
		})
	}
}

func TestCompileOffsets(t *testing.T) {
	instructions, offset := Compile("every 5 minutes on mon", testNow, &fakeCalendar{})
	require.Equal(t, recurrence.NoError, offset)

	offsets := make([]int, 0, len(instructions))
	for _, ins := range instructions {
		offsets = append(offsets, ins.Offset)
	}
	require.Equal(t, []int{7, 15, 22, 22}, offsets)
}

func TestCompileKeepsInstructionsBeforeError(t *testing.T) {
	instructions, offset := Compile("every 5 minutes on the", testNow, &fakeCalendar{})
	require.Equal(t, 22, offset)
	require.Equal(t, []string{"every(5)", "tag(m)"}, render(instructions))
}

func TestPeriodField(t *testing.T) {
	for _, kind := range PeriodKinds {
		_, ok := periodField(kind)
		require.True(t, ok, kind.String())
	}
	_, ok := periodField(KindRank)
	require.False(t, ok)
}

func TestCompileCapsRuns(t *testing.T) {
	instructions, offset := Compile("on the 1-999999999th day", testNow, &fakeCalendar{})
	require.Equal(t, recurrence.NoError, offset)
	require.Len(t, instructions, 2)
	require.Len(t, instructions[0].Values, recurrence.MaxFieldValue)

	instructions, offset = Compile("on the 999999998-999999999th day", testNow, &fakeCalendar{})
	require.Equal(t, recurrence.NoError, offset)
	require.Equal(t, []string{"on()", "tag(D)"}, render(instructions))
}
