package createschedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	service "schedtext/internal/core/services/create_schedule"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Schedule = schedule.Schedule{
		ID:    7,
		Name:  "morning",
		Query: input.Query,
		Result: recurrence.Result{
			Schedules:  []recurrence.ConstraintSet{{"t": {36000}}},
			Exceptions: []recurrence.ConstraintSet{},
			Error:      recurrence.NoError,
		},
		CreatedAt: time.Date(2022, 11, 5, 10, 30, 0, 0, time.UTC),
	}
	return result, nil
}

func TestCreateScheduleHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		err            error
		expectedStatus int
	}{
		{id: "created", body: `{"name": "Morning", "query": "at 10:00"}`, expectedStatus: http.StatusCreated},
		{id: "invalid json", body: `{`, expectedStatus: http.StatusBadRequest},
		{id: "missing name", body: `{"query": "at 10:00"}`, expectedStatus: http.StatusBadRequest},
		{id: "missing query", body: `{"name": "x"}`, expectedStatus: http.StatusBadRequest},
		{
			id:             "name taken",
			body:           `{"name": "x", "query": "at 10:00"}`,
			err:            schedule.ErrScheduleNameTaken,
			expectedStatus: http.StatusConflict,
		},
		{
			id:             "parse error",
			body:           `{"name": "x", "query": "at noon"}`,
			err:            schedule.ErrTextParsing,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "empty schedule",
			body:           `{"name": "x", "query": " "}`,
			err:            schedule.ErrEmptySchedule,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "unexpected",
			body:           `{"name": "x", "query": "at 10:00"}`,
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/schedules", strings.NewReader(testcase.body))
			require.Nil(t, err)
			rr := httptest.NewRecorder()

			New(&stubService{err: testcase.err}, 128).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
		})
	}
}

func TestCreateScheduleHandlerRendersSchedule(t *testing.T) {
	req, err := http.NewRequest("POST", "/schedules", strings.NewReader(`{"name": "Morning", "query": "at 10:00"}`))
	require.Nil(t, err)
	rr := httptest.NewRecorder()

	New(&stubService{}, 128).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"schedule": {
		"id": 7,
		"name": "morning",
		"query": "at 10:00",
		"result": {"schedules": [{"t": [36000]}], "exceptions": [], "error": -1},
		"created_at": "2022-11-05T10:30:00Z"
	}}`, rr.Body.String())
}
