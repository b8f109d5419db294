package scheduleevents

import (
	"net/http"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/logging"
	events "schedtext/internal/implementations/schedule_events"

	"github.com/r3labs/sse/v2"
)

// Handler streams created schedules to the client as server-sent events.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", events.StreamID)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to schedule events.")
	h.sseServer.ServeHTTP(rw, r)
	h.log.Info(r.Context(), "Unsubscribed from schedule events.")
}
