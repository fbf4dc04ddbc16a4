package domain

import (
	"fmt"
	"time"
)

// Rate is one official NBRB exchange rate: OfficialRate BYN for Scale units of Currency.
type Rate struct {
	id           uint32
	date         string
	currency     Currency
	scale        uint32
	name         string
	officialRate float64
}

// NewRate validates the values of a decoded provider record.
func NewRate(id uint32, date string, currency Currency, scale uint32, name string, officialRate float64) (Rate, error) {
	if !currency.Requestable() {
		return Rate{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, currency)
	}
	if scale == 0 {
		return Rate{}, fmt.Errorf("%w: zero scale for %s", ErrInvalidRate, currency)
	}
	if officialRate < 0 {
		return Rate{}, fmt.Errorf("%w: negative official rate %v for %s", ErrInvalidRate, officialRate, currency)
	}
	return Rate{
		id:           id,
		date:         date,
		currency:     currency,
		scale:        scale,
		name:         name,
		officialRate: officialRate,
	}, nil
}

func (r Rate) ID() uint32            { return r.id }
func (r Rate) Date() string          { return r.date }
func (r Rate) Currency() Currency    { return r.currency }
func (r Rate) Scale() uint32         { return r.scale }
func (r Rate) Name() string          { return r.name }
func (r Rate) OfficialRate() float64 { return r.officialRate }

// EffectiveRate is the cost of one unit of the foreign currency in BYN.
func (r Rate) EffectiveRate() (float64, error) {
	if r.scale == 0 {
		return 0, fmt.Errorf("%w: zero scale", ErrInvalidRate)
	}
	return r.officialRate / float64(r.scale), nil
}

var dateLayouts = []string{"2006-01-02T15:04:05", time.DateOnly, time.RFC3339}

// Time parses the server supplied date.
func (r Rate) Time() (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, r.date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized rate date %q", r.date)
}
