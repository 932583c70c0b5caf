package handlers

import (
	"net/http"

	"github.com/hyunjkang/invest-manager/internal/api/response"
	"github.com/hyunjkang/invest-manager/internal/model"
	"github.com/hyunjkang/invest-manager/internal/service"
)

// PortfolioHandler handles portfolio valuation HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// PortfolioResponse represents the portfolio valuation response.
// Nullable fields stay null when no exchange rate is known so the dashboard
// can render them as unavailable rather than zero.
type PortfolioResponse struct {
	Assets   []model.PortfolioPosition `json:"assets"`
	TotalKRW *float64                  `json:"total_krw"`
}

// Portfolio returns the server-computed valuation of all holdings
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	valuation, err := h.portfolioService.GetValuation()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to get portfolio valuation", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, PortfolioResponse{
		Assets:   valuation.Positions,
		TotalKRW: valuation.TotalKRW,
	})
}
