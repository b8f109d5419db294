package getschedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"schedtext/internal/core/domain/schedule"
	service "schedtext/internal/core/services/get_schedule"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	schedules map[schedule.ID]schedule.Schedule
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	found, ok := s.schedules[input.ID]
	if !ok {
		return result, schedule.ErrScheduleDoesNotExist
	}
	result.Schedule = found
	return result, nil
}

func TestGetScheduleHandler(t *testing.T) {
	svc := &stubService{schedules: map[schedule.ID]schedule.Schedule{3: {ID: 3, Name: "weekly"}}}
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/schedules/{scheduleID}", New(svc))

	cases := []struct {
		url            string
		expectedStatus int
	}{
		{url: "/schedules/3", expectedStatus: http.StatusOK},
		{url: "/schedules/4", expectedStatus: http.StatusNotFound},
		{url: "/schedules/abc", expectedStatus: http.StatusBadRequest},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			req, err := http.NewRequest("GET", testcase.url, nil)
			require.Nil(t, err)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
		})
	}
}
