package api

import (
	_ "belrates/docs"
	"belrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/rates/supported-currencies", rateHandler.GetSupportedCodes)
	router.Get("/api/v1/rates/{code}", rateHandler.GetByCode)
	return router
}
