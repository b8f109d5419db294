package schedule

import (
	"schedtext/internal/core/domain/recurrence"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleValidate(t *testing.T) {
	ok := recurrence.Result{
		Schedules:  []recurrence.ConstraintSet{{"h": {5}}},
		Exceptions: []recurrence.ConstraintSet{},
		Error:      recurrence.NoError,
	}
	cases := []struct {
		id       string
		schedule Schedule
		valid    bool
	}{
		{id: "valid", schedule: Schedule{Name: "a", Result: ok}, valid: true},
		{id: "no name", schedule: Schedule{Result: ok}},
		{id: "parse error", schedule: Schedule{Name: "a", Result: recurrence.Result{Schedules: ok.Schedules, Error: 3}}},
		{id: "no constraints", schedule: Schedule{Name: "a", Result: recurrence.Result{Error: recurrence.NoError}}},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			err := testcase.schedule.Validate()
			if testcase.valid {
				require.Nil(t, err)
			} else {
				require.NotNil(t, err)
			}
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	orderBy, err := ParseOrderBy("id_asc")
	require.Nil(t, err)
	require.Equal(t, OrderByIDAsc, orderBy)

	_, err = ParseOrderBy("name")
	require.ErrorIs(t, err, ErrParseOrderBy)
}
