package parseschedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	c "schedtext/internal/core/domain/common"
	e "schedtext/internal/core/domain/errors"
	ratelimiter "schedtext/internal/core/domain/rate_limiter"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	service "schedtext/internal/core/services/parse_schedule"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var Parsed = recurrence.Result{
	Schedules:  []recurrence.ConstraintSet{{"m": {0, 30}}},
	Exceptions: []recurrence.ConstraintSet{},
	Error:      recurrence.NoError,
}

type stubService struct {
	result service.Result
	err    error
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.input = &input
	return s.result, s.err
}

func serve(t *testing.T, svc *stubService, body string) *httptest.ResponseRecorder {
	req, err := http.NewRequest("POST", "/schedules/parse", strings.NewReader(body))
	require.Nil(t, err)
	req.RemoteAddr = "10.0.0.1:4000"
	rr := httptest.NewRecorder()
	New(svc, 64).ServeHTTP(rr, req)
	return rr
}

func TestParseScheduleHandlerSuccess(t *testing.T) {
	svc := &stubService{result: service.Result{Result: Parsed, Cron: c.NewOptional("* 0,30 * * * *", true)}}

	rr := serve(t, svc, `{"query": "every 30 minutes"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, svc.input)
	assert.Equal(t, service.Input{Query: "every 30 minutes", ClientIP: "10.0.0.1"}, *svc.input)
	assert.JSONEq(
		t,
		`{"result": {"schedules": [{"m": [0, 30]}], "exceptions": [], "error": -1}, "cron": "* 0,30 * * * *", "cached": false}`,
		rr.Body.String(),
	)
}

func TestParseScheduleHandlerParseError(t *testing.T) {
	partial := recurrence.Result{
		Schedules:  []recurrence.ConstraintSet{},
		Exceptions: []recurrence.ConstraintSet{},
		Error:      6,
	}
	svc := &stubService{
		result: service.Result{Result: partial},
		err:    &e.OffsetError{Offset: 6, Word: "fortnight", Err: schedule.ErrTextParsing},
	}

	rr := serve(t, svc, `{"query": "every fortnight"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var body ParseError
	require.Nil(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Offset)
	assert.Equal(t, "fortnight", body.Word)
	assert.Equal(t, schedule.ErrTextParsing.Error(), body.Error)
	assert.Equal(t, 6, body.Result.Error)
}

func TestParseScheduleHandlerRetryAfter(t *testing.T) {
	svc := &stubService{err: &ratelimiter.ExceededError{
		Key:        "parse-schedule::10.0.0.1",
		Limit:      ratelimiter.Limit{Value: 60, Interval: ratelimiter.Minute},
		RetryAfter: 30 * time.Second,
	}}

	rr := serve(t, svc, `{"query": "at 5pm"}`)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "30", rr.Header().Get("Retry-After"))
}

func TestParseScheduleHandlerErrors(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		err            error
		expectedStatus int
	}{
		{id: "invalid json", body: `{"query":`, expectedStatus: http.StatusBadRequest},
		{id: "empty query", body: `{"query": ""}`, expectedStatus: http.StatusBadRequest},
		{id: "too long query", body: `{"query": "` + strings.Repeat("a", 65) + `"}`, expectedStatus: http.StatusBadRequest},
		{
			id:             "rate limit",
			body:           `{"query": "at 5pm"}`,
			err:            ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			id:             "unexpected",
			body:           `{"query": "at 5pm"}`,
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rr := serve(t, &stubService{err: testcase.err}, testcase.body)
			assert.Equal(t, testcase.expectedStatus, rr.Code)
		})
	}
}
