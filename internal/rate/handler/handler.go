package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"belrates/internal/domain"
)

type Validator interface {
	ValidateCode(code string) (domain.Currency, error)
	ValidateDate(date string) error
	SupportedCodes() []string
}

type Service interface {
	GetLatest(ctx context.Context, cur domain.Currency) (domain.Rate, error)
	GetOnDate(ctx context.Context, cur domain.Currency, date string) (domain.Rate, error)
}

type Handler struct {
	validator Validator
	service   Service
}

func NewRateHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
