package response

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	ratelimiter "schedtext/internal/core/domain/rate_limiter"
	"strconv"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

// RenderRateLimitExceeded renders 429 with a Retry-After header in whole
// seconds when err carries a retry hint.
func RenderRateLimitExceeded(rw http.ResponseWriter, err error) {
	var exceeded *ratelimiter.ExceededError
	if errors.As(err, &exceeded) && exceeded.RetryAfter > 0 {
		seconds := int64(math.Ceil(exceeded.RetryAfter.Seconds()))
		rw.Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
	}
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

// RenderValidationError renders field errors of a request body as a JSON
// object keyed by field name.
func RenderValidationError(rw http.ResponseWriter, err error) {
	Render(rw, err, http.StatusBadRequest)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
