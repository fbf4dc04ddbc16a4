package handler

import (
	"errors"
	"net/http"
	"strings"

	"belrates/internal/domain"
	"belrates/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetByCodeResponse struct {
	ID            uint32  `json:"id" example:"145"`
	Date          string  `json:"date" example:"2018-09-21T00:00:00"`
	Currency      string  `json:"currency" example:"USD"`
	Scale         uint32  `json:"scale" example:"1"`
	Name          string  `json:"name" example:"Доллар США"`
	OfficialRate  float64 `json:"official_rate" example:"2.0884"`
	EffectiveRate float64 `json:"effective_rate" example:"2.0884"`
}

// GetByCode godoc
// @Summary Get official rate
// @Description Official NBRB rate of a currency in BYN, latest or on a given date
// @Tags Rates
// @Produce json
// @Param code path string true "Currency code (ISO 4217, uppercase)"
// @Param onDate query string false "Date in YYYY-MM-DD format"
// @Success 200 {object} GetByCodeResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{code} [get]
func (h *Handler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(chi.URLParam(r, "code"))
	date := strings.TrimSpace(r.URL.Query().Get("onDate"))

	cur, err := h.validator.ValidateCode(code)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.validator.ValidateDate(date); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var rt domain.Rate
	if date == "" {
		rt, err = h.service.GetLatest(r.Context(), cur)
	} else {
		rt, err = h.service.GetOnDate(r.Context(), cur, date)
	}
	if err != nil {
		h.writeLookupError(w, err, cur, date)
		return
	}

	effective, err := rt.EffectiveRate()
	if err != nil {
		h.writeLookupError(w, err, cur, date)
		return
	}

	writeJSON(w, http.StatusOK, GetByCodeResponse{
		ID:            rt.ID(),
		Date:          rt.Date(),
		Currency:      rt.Currency().Code(),
		Scale:         rt.Scale(),
		Name:          rt.Name(),
		OfficialRate:  rt.OfficialRate(),
		EffectiveRate: effective,
	})
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error, cur domain.Currency, date string) {
	status := lookupStatus(err)
	switch status {
	case http.StatusBadRequest:
		writeError(w, status, err.Error())
	case http.StatusNotFound:
		writeError(w, status, "rate not found")
	default:
		msg := "ups, couldn't get rate this time"
		if status == http.StatusBadGateway {
			msg = "provider returned an unusable answer"
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByCode", "currency": cur, "date": date}).Error(msg)
		writeError(w, status, msg)
	}
}

// lookupStatus maps a lookup failure to a status code. Decode failures are checked
// first: a bad currency code inside a provider answer is the provider's fault.
func lookupStatus(err error) int {
	var fieldErr *domain.FieldParseError
	switch {
	case errors.As(err, &fieldErr),
		errors.Is(err, domain.ErrTransport),
		errors.Is(err, domain.ErrMalformedResponse),
		errors.Is(err, domain.ErrInvalidRate):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnsupportedCurrency),
		errors.Is(err, domain.ErrUnknownCurrencyCode),
		errors.Is(err, rate.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
