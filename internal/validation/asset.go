package validation

import (
	"strings"
	"time"

	"github.com/hyunjkang/invest-manager/internal/api/request"
)

func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.AssetType) == "" {
		errors["asset_type"] = "asset_type is required"
	} else if len(req.AssetType) > 10 {
		errors["asset_type"] = "asset_type must be 10 characters or less"
	}

	// Optional but has constraints
	if len(req.Name) > 50 {
		errors["name"] = "name must be 50 characters or less"
	}

	if req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}

	if req.BuyPrice < 0 {
		errors["buy_price"] = "buy_price cannot be negative"
	}

	if req.BuyDate != "" {
		if _, err := time.Parse("2006-01-02", req.BuyDate); err != nil {
			errors["buy_date"] = "buy_date must be in YYYY-MM-DD format"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
