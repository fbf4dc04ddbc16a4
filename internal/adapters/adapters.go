package adapters

import (
	"context"

	"belrates/internal/domain"
)

// Transport fetches the raw provider body behind url.
type Transport interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// RequestBuilder turns a currency (and date) into a provider URL.
type RequestBuilder interface {
	BuildLatestURL(cur domain.Currency) (string, error)
	BuildDatedURL(cur domain.Currency, date string) (string, error)
}

// RateDecoder parses a provider body into a validated rate.
type RateDecoder interface {
	Decode(body []byte) (domain.Rate, error)
}
