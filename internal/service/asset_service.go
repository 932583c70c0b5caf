package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyunjkang/invest-manager/internal/api/request"
	"github.com/hyunjkang/invest-manager/internal/model"
	"github.com/hyunjkang/invest-manager/internal/repository"
	"github.com/hyunjkang/invest-manager/internal/validation"
)

// AssetService handles asset-related business logic operations.
type AssetService struct {
	assetRepo *repository.AssetRepository
}

// NewAssetService creates a new AssetService with the provided repository dependencies.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
	}
}

// GetAllAssets retrieves every asset, newest purchase first.
func (s *AssetService) GetAllAssets() ([]model.Asset, error) {
	return s.assetRepo.GetAssets()
}

// CreateAsset validates the request and stores a new asset.
// An empty buy date defaults to today; the name defaults to the asset type.
func (s *AssetService) CreateAsset(req request.CreateAssetRequest) (model.Asset, error) {
	if err := validation.ValidateCreateAsset(req); err != nil {
		return model.Asset{}, err
	}

	buyDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.BuyDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BuyDate)
		if err != nil {
			return model.Asset{}, err
		}
		buyDate = parsed
	}

	name := req.Name
	if name == "" {
		name = req.AssetType
	}

	asset := model.Asset{
		ID:        uuid.New().String(),
		Name:      name,
		AssetType: req.AssetType,
		Amount:    float64(req.Amount),
		BuyPrice:  req.BuyPrice,
		BuyDate:   buyDate,
	}

	if err := s.assetRepo.CreateAsset(asset); err != nil {
		return model.Asset{}, err
	}

	return asset, nil
}

// DeleteAsset removes an asset by ID after validating the ID format.
func (s *AssetService) DeleteAsset(id string) error {
	if err := validation.ValidateUUID(id); err != nil {
		return err
	}
	return s.assetRepo.DeleteAsset(id)
}
