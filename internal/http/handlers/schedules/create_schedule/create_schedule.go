package createschedule

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "schedtext/internal/core/domain/errors"
	ratelimiter "schedtext/internal/core/domain/rate_limiter"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
	service "schedtext/internal/core/services/create_schedule"
	"schedtext/internal/http/handlers/request"
	"schedtext/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service        services.Service[service.Input, service.Result]
	maxQueryLength int
}

func New(
	service services.Service[service.Input, service.Result],
	maxQueryLength int,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, maxQueryLength: maxQueryLength}
}

type Input struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate(maxQueryLength int) error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.RuneLength(1, 64)),
		validation.Field(&i.Query, validation.Required, validation.RuneLength(1, maxQueryLength)),
	)
}

type Result struct {
	Schedule response.Schedule `json:"schedule"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(h.maxQueryLength); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Name: input.Name, Query: input.Query, ClientIP: request.ClientIP(r)},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw, err)
		case errors.Is(err, schedule.ErrScheduleNameTaken):
			response.RenderError(rw, err.Error(), http.StatusConflict)
		case errors.Is(err, schedule.ErrTextParsing), errors.Is(err, schedule.ErrEmptySchedule):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	var s response.Schedule
	s.FromDomainSchedule(result.Schedule)
	response.Render(rw, Result{Schedule: s}, http.StatusCreated)
}
