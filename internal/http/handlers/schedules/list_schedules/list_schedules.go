package listschedules

import (
	"fmt"
	"net/http"
	c "schedtext/internal/core/domain/common"
	e "schedtext/internal/core/domain/errors"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/core/services"
	service "schedtext/internal/core/services/list_schedules"
	"schedtext/internal/http/handlers/response"
	"strconv"
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
	Schedules  []response.Schedule `json:"schedules"`
	TotalCount uint                `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	name := parseName(r.URL.Query().Get("name"))

	orderBy, err := parseOrderBy(r.URL.Query().Get("order_by"))
	if err != nil {
		response.RenderError(rw, "invalid order_by query parameter", http.StatusBadRequest)
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}

	offset, err := parseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		response.RenderError(rw, "invalid offset query parameter", http.StatusBadRequest)
		return
	}

	input := service.Input{
		Name:    name,
		OrderBy: orderBy,
		Limit:   limit,
		Offset:  offset,
	}
	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respSchedules := make([]response.Schedule, 0, len(result.Schedules))
	for _, s := range result.Schedules {
		respSchedule := response.Schedule{}
		respSchedule.FromDomainSchedule(s)
		respSchedules = append(respSchedules, respSchedule)
	}
	response.Render(rw, Result{Schedules: respSchedules, TotalCount: result.TotalCount}, http.StatusOK)
}

func parseName(raw string) (name c.Optional[c.ScheduleName]) {
	if raw == "" {
		return name
	}
	return c.NewOptional(c.NewScheduleName(raw), true)
}

func parseOrderBy(raw string) (orderBy schedule.OrderBy, err error) {
	if raw == "" {
		return orderBy, nil
	}
	return schedule.ParseOrderBy(raw)
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l > uint64(service.DEFAULT_LIMIT) {
		return limit, fmt.Errorf("limit must be less than or equal to %v", service.DEFAULT_LIMIT)
	}
	return c.NewOptional(uint(l), true), nil
}

func parseOffset(raw string) (offset uint, err error) {
	if raw == "" {
		return offset, nil
	}
	o, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return offset, err
	}
	return uint(o), nil
}
