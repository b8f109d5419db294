package scheduleevents

import (
	"context"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/rabbitmq/schema"

	"github.com/r3labs/sse/v2"
)

// StreamID is the SSE stream carrying created schedules.
const StreamID = "schedules"

// SSE publishes schedules as server-sent events.
type SSE struct {
	sseServer *sse.Server
}

func NewSSE(sseServer *sse.Server) *SSE {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if !sseServer.StreamExists(StreamID) {
		sseServer.CreateStream(StreamID)
	}
	return &SSE{sseServer: sseServer}
}

func (p *SSE) PublishSchedule(ctx context.Context, s schedule.Schedule) error {
	message := schema.NewScheduleCreated(s)
	data, err := message.Marshal()
	if err != nil {
		return err
	}
	p.sseServer.Publish(StreamID, &sse.Event{Event: []byte("schedule.created"), Data: data})
	return nil
}
