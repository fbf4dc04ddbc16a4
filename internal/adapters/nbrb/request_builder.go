package nbrb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"belrates/internal/domain"
)

const DefaultBaseURL = "https://api.nbrb.by/exrates/rates"

type RequestBuilder struct {
	baseURL string
}

func NewRequestBuilder(baseURL string) *RequestBuilder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &RequestBuilder{baseURL: strings.TrimRight(baseURL, "/")}
}

// BuildLatestURL returns <base>/<providerID>.
func (b *RequestBuilder) BuildLatestURL(cur domain.Currency) (string, error) {
	if !cur.Requestable() {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, cur)
	}
	return b.baseURL + "/" + strconv.Itoa(int(cur.ProviderID())), nil
}

// BuildDatedURL returns <base>/<providerID>?onDate=<date>. The date is not validated,
// the provider decides what to do with it.
func (b *RequestBuilder) BuildDatedURL(cur domain.Currency, date string) (string, error) {
	latest, err := b.BuildLatestURL(cur)
	if err != nil {
		return "", err
	}
	return latest + "?onDate=" + url.QueryEscape(date), nil
}
