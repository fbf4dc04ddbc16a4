package handler

import (
	"net/http"
)

type GetSupportedCodesResponse struct {
	Codes []string `json:"codes" example:"CAD,CHF,CNY,EUR,GBP,JPY,KZT,PLN,RUB,UAH,USD"`
}

// GetSupportedCodes godoc
// @Summary List supported currencies
// @Description Currency codes the provider can be asked about
// @Tags Rates
// @Produce json
// @Success 200 {object} GetSupportedCodesResponse
// @Router /rates/supported-currencies [get]
func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetSupportedCodesResponse{
		Codes: h.validator.SupportedCodes(),
	})
}
