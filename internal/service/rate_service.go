package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hyunjkang/invest-manager/internal/apperrors"
	"github.com/hyunjkang/invest-manager/internal/model"
	"github.com/hyunjkang/invest-manager/internal/rates"
	"github.com/hyunjkang/invest-manager/internal/repository"
)

// trackedCurrencies are the asset types whose KRW rate is kept current from
// the external rates feed. GOLD is not a currency and keeps its seeded or
// manually entered rate.
var trackedCurrencies = []string{"USD", "JPY", "CNY"}

// RateService keeps the exchange_rate table current.
type RateService struct {
	rateRepo    *repository.RateRepository
	ratesClient *rates.Client
}

// NewRateService creates a new RateService with the provided repository and
// rates feed client.
func NewRateService(rateRepo *repository.RateRepository, ratesClient *rates.Client) *RateService {
	return &RateService{
		rateRepo:    rateRepo,
		ratesClient: ratesClient,
	}
}

// GetLatestRates returns the most recent stored rate per currency.
func (s *RateService) GetLatestRates() (map[string]model.ExchangeRate, error) {
	return s.rateRepo.GetLatestRates()
}

// RefreshRates fetches today's rates from the external feed and upserts one
// record per tracked currency. Currencies missing from the feed are skipped.
func (s *RateService) RefreshRates(ctx context.Context) error {
	krwPerUnit, err := s.ratesClient.QueryLatestKRW(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToUpdateRates, err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, currency := range trackedCurrencies {
		rate, ok := krwPerUnit[currency]
		if !ok {
			log.Printf("rates feed has no quote for %s, skipping", currency)
			continue
		}

		err := s.rateRepo.UpsertRate(model.ExchangeRate{
			Currency: currency,
			Rate:     rate,
			Date:     today,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrFailedToUpdateRates, err)
		}
	}

	return nil
}

// StartScheduler runs RefreshRates on the given cron schedule (e.g. "@daily")
// until the returned cron is stopped. Refresh failures are logged, not fatal;
// the valuation falls back to the last stored rates.
func (s *RateService) StartScheduler(schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.RefreshRates(ctx); err != nil {
			log.Printf("scheduled rate refresh failed: %v", err)
			return
		}
		log.Printf("exchange rates refreshed")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule rate refresh: %w", err)
	}

	c.Start()
	return c, nil
}
