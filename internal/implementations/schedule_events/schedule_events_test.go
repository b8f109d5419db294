package scheduleevents

import (
	"context"
	"net/http/httptest"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/rabbitmq/schema"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/require"
)

func TestSSEPublishSchedule(t *testing.T) {
	server := sse.New()
	defer server.Close()
	publisher := NewSSE(server)
	require.True(t, server.StreamExists(StreamID))

	s := schedule.Schedule{
		ID:    7,
		Name:  "five",
		Query: "every 5 minutes",
		Result: recurrence.Result{
			Schedules:  []recurrence.ConstraintSet{{"m": {0, 5}}},
			Exceptions: []recurrence.ConstraintSet{},
			Error:      recurrence.NoError,
		},
		CreatedAt: time.Date(2022, 11, 5, 10, 30, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishSchedule(context.Background(), s))

	httpServer := httptest.NewServer(server)
	defer httpServer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events := make(chan *sse.Event, 1)
	client := sse.NewClient(httpServer.URL)
	go func() {
		_ = client.SubscribeWithContext(ctx, StreamID, func(event *sse.Event) {
			select {
			case events <- event:
			default:
			}
		})
	}()

	select {
	case event := <-events:
		require.Equal(t, "schedule.created", string(event.Event))
		received := &schema.ScheduleCreated{}
		require.NoError(t, received.Unmarshal(event.Data))
		require.Equal(t, int64(7), received.ID)
		require.Equal(t, "every 5 minutes", received.Query)
	case <-ctx.Done():
		t.Fatal("no event received")
	}
}
