package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"belrates/internal/domain"
	"belrates/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) GetLatest(ctx context.Context, cur domain.Currency) (domain.Rate, error) {
	args := m.Called(ctx, cur)
	v, _ := args.Get(0).(domain.Rate)
	return v, args.Error(1)
}

func (m *MockService) GetOnDate(ctx context.Context, cur domain.Currency, date string) (domain.Rate, error) {
	args := m.Called(ctx, cur, date)
	v, _ := args.Get(0).(domain.Rate)
	return v, args.Error(1)
}

type errorJSON struct {
	Error string `json:"error"`
}

func newRequest(code, rawQuery string) *http.Request {
	target := "/api/v1/rates/" + code
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func mustRate(t *testing.T, cur domain.Currency, scale uint32, value float64) domain.Rate {
	t.Helper()
	r, err := domain.NewRate(uint32(cur.ProviderID()), "2018-09-21T00:00:00", cur, scale, "name", value)
	require.NoError(t, err)
	return r
}

// --- GetByCode ---

func TestHandler_GetByCode_Latest(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(rate.NewValidator(domain.RequestableCurrencies()), mockService)

	mockService.On("GetLatest", mock.Anything, domain.RUB).Return(mustRate(t, domain.RUB, 100, 3.14), nil).Once()

	rr := httptest.NewRecorder()
	h.GetByCode(rr, newRequest("RUB", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res GetByCodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, uint32(298), res.ID)
	require.Equal(t, "RUB", res.Currency)
	require.Equal(t, uint32(100), res.Scale)
	require.InDelta(t, 3.14, res.OfficialRate, 1e-12)
	require.InDelta(t, 0.0314, res.EffectiveRate, 1e-9)
	mockService.AssertExpectations(t)
}

func TestHandler_GetByCode_OnDate(t *testing.T) {
	mockService := new(MockService)
	h := NewRateHandler(rate.NewValidator(domain.RequestableCurrencies()), mockService)

	mockService.On("GetOnDate", mock.Anything, domain.USD, "2018-04-20").Return(mustRate(t, domain.USD, 1, 2.0), nil).Once()

	rr := httptest.NewRecorder()
	h.GetByCode(rr, newRequest("USD", "onDate=2018-04-20"))

	require.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
	mockService.AssertNotCalled(t, "GetLatest", mock.Anything, mock.Anything)
}

func TestHandler_GetByCode_ValidationErrors(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		rawQuery string
	}{
		{name: "lowercase code", code: "usd"},
		{name: "unknown code", code: "XXX"},
		{name: "domestic currency", code: "BYN"},
		{name: "bad date", code: "USD", rawQuery: "onDate=20.04.2018"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewRateHandler(rate.NewValidator(domain.RequestableCurrencies()), mockService)

			rr := httptest.NewRecorder()
			h.GetByCode(rr, newRequest(tc.code, tc.rawQuery))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.NotEmpty(t, ej.Error)
			mockService.AssertNotCalled(t, "GetLatest", mock.Anything, mock.Anything)
			mockService.AssertNotCalled(t, "GetOnDate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_GetByCode_ServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "transport", err: &domain.TransportError{URL: "u", StatusCode: 503, Err: errors.New("down")}, wantStatus: http.StatusBadGateway},
		{name: "malformed", err: domain.ErrMalformedResponse, wantStatus: http.StatusBadGateway},
		{name: "mismatch", err: domain.ErrCurrencyMismatch, wantStatus: http.StatusBadGateway},
		{name: "invalid rate", err: domain.ErrInvalidRate, wantStatus: http.StatusBadGateway},
		{name: "unknown code in answer", err: &domain.FieldParseError{Field: "Cur_Abbreviation", Err: domain.ErrUnknownCurrencyCode}, wantStatus: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewRateHandler(rate.NewValidator(domain.RequestableCurrencies()), mockService)

			mockService.On("GetLatest", mock.Anything, domain.EUR).Return(domain.Rate{}, tc.err).Once()

			rr := httptest.NewRecorder()
			h.GetByCode(rr, newRequest("EUR", ""))

			require.Equal(t, tc.wantStatus, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.NotEmpty(t, ej.Error)
			mockService.AssertExpectations(t)
		})
	}
}

// --- GetSupportedCodes ---

func TestHandler_GetSupportedCodes(t *testing.T) {
	h := NewRateHandler(rate.NewValidator(domain.RequestableCurrencies()), new(MockService))

	rr := httptest.NewRecorder()
	h.GetSupportedCodes(rr, httptest.NewRequest(http.MethodGet, "/api/v1/rates/supported-currencies", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res GetSupportedCodesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, []string{"CAD", "CHF", "CNY", "EUR", "GBP", "JPY", "KZT", "PLN", "RUB", "UAH", "USD"}, res.Codes)
}
