package listschedules

import (
	"context"
	"net/http"
	"net/http/httptest"
	c "schedtext/internal/core/domain/common"
	"schedtext/internal/core/domain/schedule"
	service "schedtext/internal/core/services/list_schedules"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	result.Schedules = []schedule.Schedule{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	result.TotalCount = 2
	return result, nil
}

func TestListSchedulesHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			url:            "/schedules",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{},
		},
		{
			url:            "/schedules?order_by=id_asc",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OrderBy: schedule.OrderByIDAsc},
		},
		{
			url:            "/schedules?order_by=name",
			expectedStatus: http.StatusBadRequest,
		},
		{
			url:            "/schedules?name=%20Daily",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Name: c.NewOptional(c.ScheduleName("daily"), true)},
		},
		{
			url:            "/schedules?limit=100",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: c.NewOptional[uint](100, true)},
		},
		{
			url:            "/schedules?limit=101",
			expectedStatus: http.StatusBadRequest,
		},
		{
			url:            "/schedules?limit=x",
			expectedStatus: http.StatusBadRequest,
		},
		{
			url:            "/schedules?offset=20",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Offset: 20},
		},
		{
			url:            "/schedules?offset=-1",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			req, err := http.NewRequest("GET", testcase.url, nil)
			require.Nil(t, err)
			svc := &stubService{}
			rr := httptest.NewRecorder()

			New(svc).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, svc.input)
		})
	}
}
