package parseschedule

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "schedtext/internal/core/domain/errors"
	ratelimiter "schedtext/internal/core/domain/rate_limiter"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
	service "schedtext/internal/core/services/parse_schedule"
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
	Query string `json:"query"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate(maxQueryLength int) error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Query, validation.Required, validation.RuneLength(1, maxQueryLength)),
	)
}

type Result struct {
	Result recurrence.Result `json:"result"`
	Cron   *string           `json:"cron"`
	Cached bool              `json:"cached"`
}

type ParseError struct {
	Error  string            `json:"error"`
	Offset int               `json:"offset"`
	Word   string            `json:"word,omitempty"`
	Result recurrence.Result `json:"result"`
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
		service.Input{Query: input.Query, ClientIP: request.ClientIP(r)},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw, err)
		case errors.Is(err, schedule.ErrTextParsing):
			response.Render(rw, newParseError(err, result.Result), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{Result: result.Result, Cached: result.Cached}
	if result.Cron.IsPresent {
		res.Cron = &result.Cron.Value
	}
	response.Render(rw, res, http.StatusOK)
}

func newParseError(err error, partial recurrence.Result) ParseError {
	parseErr := ParseError{
		Error:  schedule.ErrTextParsing.Error(),
		Offset: partial.Error,
		Result: partial,
	}
	var offsetErr *e.OffsetError
	if errors.As(err, &offsetErr) {
		parseErr.Offset = offsetErr.Offset
		parseErr.Word = offsetErr.Word
	}
	return parseErr
}
