package domain

import "fmt"

// Currency is one of the ISO 4217 codes the NBRB API is queried for.
type Currency string

const (
	USD Currency = "USD" // United States dollar
	EUR Currency = "EUR" // Euro
	RUB Currency = "RUB" // Russian ruble
	BYN Currency = "BYN" // Belarusian ruble, the domestic currency
	GBP Currency = "GBP" // Pound sterling
	UAH Currency = "UAH" // Ukrainian hryvnia
	PLN Currency = "PLN" // Polish zloty
	CNY Currency = "CNY" // Chinese yuan
	JPY Currency = "JPY" // Japanese yen
	KZT Currency = "KZT" // Kazakhstani tenge
	CHF Currency = "CHF" // Swiss franc
	CAD Currency = "CAD" // Canadian dollar
)

// Domestic is the currency every rate is quoted in. The provider has no rate for it.
const Domestic = BYN

// providerIDs holds NBRB internal ids. The domestic currency maps to 0.
var providerIDs = map[Currency]uint16{
	USD: 145,
	EUR: 19,
	RUB: 298,
	BYN: 0,
	GBP: 143,
	UAH: 290,
	PLN: 293,
	CNY: 304,
	JPY: 295,
	KZT: 301,
	CHF: 130,
	CAD: 23,
}

var ordered = []Currency{USD, EUR, RUB, BYN, GBP, UAH, PLN, CNY, JPY, KZT, CHF, CAD}

// ParseCurrency matches code against the registry. Matching is case-sensitive,
// "usd" is not USD.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := providerIDs[c]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownCurrencyCode, code)
	}
	return c, nil
}

// ProviderID returns the NBRB id of c. Zero means c can not be requested.
func (c Currency) ProviderID() uint16 {
	return providerIDs[c]
}

// Requestable reports whether a rate for c can be asked from the provider.
func (c Currency) Requestable() bool {
	return c.ProviderID() != 0
}

func (c Currency) Code() string { return string(c) }

func (c Currency) String() string { return string(c) }

// Currencies returns every registered currency, domestic included.
func Currencies() []Currency {
	out := make([]Currency, len(ordered))
	copy(out, ordered)
	return out
}

// RequestableCurrencies returns every currency except the domestic one.
func RequestableCurrencies() []Currency {
	out := make([]Currency, 0, len(ordered)-1)
	for _, c := range ordered {
		if c.Requestable() {
			out = append(out, c)
		}
	}
	return out
}
