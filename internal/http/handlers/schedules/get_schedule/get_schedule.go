package getschedule

import (
	"errors"
	"net/http"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
	service "schedtext/internal/core/services/get_schedule"
	"schedtext/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Schedule response.Schedule `json:"schedule"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawScheduleID := chi.URLParam(r, "scheduleID")
	scheduleID, err := strconv.ParseInt(rawScheduleID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid schedule ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{ID: schedule.ID(scheduleID)})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var s response.Schedule
	s.FromDomainSchedule(result.Schedule)
	response.Render(rw, Result{Schedule: s}, http.StatusOK)
}
