package service

import (
	"sort"

	"github.com/hyunjkang/invest-manager/internal/model"
	"github.com/hyunjkang/invest-manager/internal/repository"
)

// PortfolioService computes the KRW valuation of the full asset ledger.
// Holdings are grouped per asset type and valued with the latest known
// exchange rate. Types without a rate keep nil valuation fields so the
// dashboard can show "no data" instead of a misleading zero.
type PortfolioService struct {
	assetRepo *repository.AssetRepository
	rateRepo  *repository.RateRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(
	assetRepo *repository.AssetRepository,
	rateRepo *repository.RateRepository,
) *PortfolioService {
	return &PortfolioService{
		assetRepo: assetRepo,
		rateRepo:  rateRepo,
	}
}

// GetValuation returns one position per asset type plus the KRW grand total.
// Positions are sorted by type for a stable response order.
func (s *PortfolioService) GetValuation() (model.PortfolioValuation, error) {
	assets, err := s.assetRepo.GetAssets()
	if err != nil {
		return model.PortfolioValuation{}, err
	}

	rates, err := s.rateRepo.GetLatestRates()
	if err != nil {
		return model.PortfolioValuation{}, err
	}

	amounts := map[string]float64{}
	types := []string{}
	for _, a := range assets {
		if _, seen := amounts[a.AssetType]; !seen {
			types = append(types, a.AssetType)
		}
		amounts[a.AssetType] += a.Amount
	}
	sort.Strings(types)

	valuation := model.PortfolioValuation{Positions: []model.PortfolioPosition{}}

	var total float64
	var haveTotal bool

	for _, t := range types {
		amount := amounts[t]
		position := model.PortfolioPosition{
			Type:   t,
			Amount: &amount,
		}

		if rate, ok := rates[t]; ok {
			r := rate.Rate
			value := amount * r
			position.ExchangeRate = &r
			position.CurrentValueKRW = &value
			total += value
			haveTotal = true
		}

		valuation.Positions = append(valuation.Positions, position)
	}

	if haveTotal {
		valuation.TotalKRW = &total
	}

	return valuation, nil
}
