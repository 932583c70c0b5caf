package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hyunjkang/invest-manager/internal/api/request"
	"github.com/hyunjkang/invest-manager/internal/api/response"
	"github.com/hyunjkang/invest-manager/internal/apperrors"
	"github.com/hyunjkang/invest-manager/internal/service"
	"github.com/hyunjkang/invest-manager/internal/validation"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// AssetResponse represents one asset in the list response
type AssetResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AssetType string  `json:"asset_type"`
	Amount    float64 `json:"amount"`
	BuyPrice  float64 `json:"buy_price"`
	BuyDate   string  `json:"buy_date"`
}

// Assets returns every registered asset
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetService.GetAllAssets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to retrieve assets", err.Error())
		return
	}

	resp := make([]AssetResponse, len(assets))
	for i, a := range assets {
		resp[i] = AssetResponse{
			ID:        a.ID,
			Name:      a.Name,
			AssetType: a.AssetType,
			Amount:    a.Amount,
			BuyPrice:  a.BuyPrice,
			BuyDate:   a.BuyDate.Format("2006-01-02"),
		}
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// CreateAsset registers a new asset from a JSON body
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(req)
	if err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			response.RespondError(w, http.StatusBadRequest, "Validation failed", validationErr.Fields)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "Failed to create asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, AssetResponse{
		ID:        asset.ID,
		Name:      asset.Name,
		AssetType: asset.AssetType,
		Amount:    asset.Amount,
		BuyPrice:  asset.BuyPrice,
		BuyDate:   asset.BuyDate.Format("2006-01-02"),
	})
}

// DeleteAsset removes the asset named by the URL
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.assetService.DeleteAsset(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAssetNotFound):
			response.RespondError(w, http.StatusNotFound, "Asset not found", id)
		case errors.Is(err, apperrors.ErrInvalidUUID), errors.Is(err, apperrors.ErrEmptyID):
			response.RespondError(w, http.StatusBadRequest, "Invalid asset ID", id)
		default:
			response.RespondError(w, http.StatusInternalServerError, "Failed to delete asset", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
