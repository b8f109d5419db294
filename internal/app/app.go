package app

import (
	"net/http"
	"schedtext/internal/app/deps"
	"schedtext/internal/app/services"
	createschedule "schedtext/internal/http/handlers/schedules/create_schedule"
	deleteschedule "schedtext/internal/http/handlers/schedules/delete_schedule"
	getschedule "schedtext/internal/http/handlers/schedules/get_schedule"
	listschedules "schedtext/internal/http/handlers/schedules/list_schedules"
	parseschedule "schedtext/internal/http/handlers/schedules/parse_schedule"
	scheduleevents "schedtext/internal/http/handlers/schedules/schedule_events"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(deps, s),
		Addr:    deps.Config.HTTPAddress,
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) chi.Router {
	maxQueryLength := deps.Config.MaxQueryLength

	scheduleRouter := chi.NewRouter()
	scheduleRouter.Method(http.MethodPost, "/parse", parseschedule.New(s.ParseSchedule, maxQueryLength))
	scheduleRouter.Method(http.MethodGet, "/events", scheduleevents.New(deps.Logger, deps.SseServer))
	scheduleRouter.Method(http.MethodPost, "/", createschedule.New(s.CreateSchedule, maxQueryLength))
	scheduleRouter.Method(http.MethodGet, "/", listschedules.New(s.ListSchedules))
	scheduleRouter.Method(http.MethodGet, "/{scheduleID:[0-9]+}", getschedule.New(s.GetSchedule))
	scheduleRouter.Method(http.MethodDelete, "/{scheduleID:[0-9]+}", deleteschedule.New(s.DeleteSchedule))

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/schedules", scheduleRouter)
	return router
}
