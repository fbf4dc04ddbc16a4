package rate

import (
	"context"
	"fmt"

	"belrates/internal/adapters"
	"belrates/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service looks up single official rates: build URL, fetch, decode.
type Service struct {
	builder   adapters.RequestBuilder
	transport adapters.Transport
	decoder   adapters.RateDecoder
}

// GetLatest returns today's rate for cur.
func (s *Service) GetLatest(ctx context.Context, cur domain.Currency) (domain.Rate, error) {
	url, err := s.builder.BuildLatestURL(cur)
	if err != nil {
		return domain.Rate{}, err
	}
	return s.lookup(ctx, cur, "", url)
}

// GetOnDate returns the rate for cur on date (YYYY-MM-DD).
func (s *Service) GetOnDate(ctx context.Context, cur domain.Currency, date string) (domain.Rate, error) {
	url, err := s.builder.BuildDatedURL(cur, date)
	if err != nil {
		return domain.Rate{}, err
	}
	return s.lookup(ctx, cur, date, url)
}

func (s *Service) lookup(ctx context.Context, cur domain.Currency, date string, url string) (domain.Rate, error) {
	log := logrus.WithFields(logrus.Fields{
		"lookup_id": uuid.NewString(),
		"currency":  cur,
		"date":      date,
	})
	log.Debugf("Fetching rate from %s", url)

	body, err := s.transport.Fetch(ctx, url)
	if err != nil {
		log.WithError(err).Warn("Rate fetch failed")
		return domain.Rate{}, fmt.Errorf("failed to fetch rate for %s: %w", cur, err)
	}

	rate, err := s.decoder.Decode(body)
	if err != nil {
		log.WithError(err).Warn("Rate decode failed")
		return domain.Rate{}, fmt.Errorf("failed to decode rate for %s: %w", cur, err)
	}
	if rate.Currency() != cur {
		log.Warnf("Provider answered with %s", rate.Currency())
		return domain.Rate{}, fmt.Errorf("%w: requested %s, got %s", domain.ErrCurrencyMismatch, cur, rate.Currency())
	}

	log.WithField("official_rate", rate.OfficialRate()).Debug("Rate fetched")
	return rate, nil
}

func NewService(builder adapters.RequestBuilder, transport adapters.Transport, decoder adapters.RateDecoder) *Service {
	return &Service{builder: builder, transport: transport, decoder: decoder}
}
