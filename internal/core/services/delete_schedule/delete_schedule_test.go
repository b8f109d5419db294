package deleteschedule

import (
	"context"
	"schedtext/internal/core/domain/logging"
	"schedtext/internal/core/domain/schedule"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteSchedule(t *testing.T) {
	log := logging.NewFakeLogger()
	repo := schedule.NewTestScheduleRepository()
	repo.Schedules = []schedule.Schedule{{ID: 1}, {ID: 2}}
	service := New(log, repo)

	_, err := service.Run(context.Background(), Input{ID: 1})
	require.Nil(t, err)
	require.Equal(t, []schedule.Schedule{{ID: 2}}, repo.Schedules)

	_, err = service.Run(context.Background(), Input{ID: 1})
	require.ErrorIs(t, err, schedule.ErrScheduleDoesNotExist)
	require.Equal(t, 0, log.CountLevel(logging.ERROR))
}
