package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"belrates/internal/adapters/httpclient"
	"belrates/internal/adapters/nbrb"
	"belrates/internal/domain"
	"belrates/internal/rate"
	"belrates/internal/rate/handler"

	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, provider http.Handler) http.Handler {
	t.Helper()
	srv := httptest.NewServer(provider)
	t.Cleanup(srv.Close)

	svc := rate.NewService(nbrb.NewRequestBuilder(srv.URL+"/exrates/rates"), httpclient.NewClient(srv.Client()), nbrb.NewDecoder())
	return NewRouter(handler.NewRateHandler(rate.NewValidator(domain.RequestableCurrencies()), svc))
}

func TestRouter_GetByCode_EndToEnd(t *testing.T) {
	var gotPath, gotDate string
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDate = r.URL.Query().Get("onDate")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"Cur_ID":145,"Date":"2018-04-20T00:00:00","Cur_Abbreviation":"USD","Cur_Scale":1,"Cur_Name":"Доллар США","Cur_OfficialRate":1.9852}`))
	}))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD?onDate=2018-04-20", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "/exrates/rates/145", gotPath)
	require.Equal(t, "2018-04-20", gotDate)

	var res handler.GetByCodeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "Доллар США", res.Name)
	require.InDelta(t, 1.9852, res.EffectiveRate, 1e-12)
}

func TestRouter_GetByCode_ProviderNotFound(t *testing.T) {
	router := newTestRouter(t, http.NotFoundHandler())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/rates/EUR", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_SupportedCurrencies(t *testing.T) {
	router := newTestRouter(t, http.NotFoundHandler())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/rates/supported-currencies", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"USD"`)
	require.NotContains(t, rr.Body.String(), `"BYN"`)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, http.NotFoundHandler())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}
