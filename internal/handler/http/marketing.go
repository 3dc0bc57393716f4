package handler

import (
	"context"
	"net/http"

	"github.com/shopnobd/backoffice/internal/models"
)

// MarketingService is the pixel configuration operations the handler exposes.
type MarketingService interface {
	Config(ctx context.Context) (models.MarketingConfig, error)
	Update(ctx context.Context, cfg models.MarketingConfig) error
}

// MarketingHandler represents HTTP handler for marketing configuration
type MarketingHandler struct {
	svc MarketingService
}

// NewMarketingHandler creates new MarketingHandler instance
func NewMarketingHandler(svc MarketingService) *MarketingHandler {
	return &MarketingHandler{svc: svc}
}

type marketingConfigResponse struct {
	envelope
	Config models.MarketingConfig `json:"config"`
}

// GetConfig handles GET /api/marketing-config/public. Access tokens never
// appear in the response.
func (mh *MarketingHandler) GetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := mh.svc.Config(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		cfg.FBAccessToken = ""
		cfg.TikTokAccessToken = ""
		writeJSON(w, http.StatusOK, marketingConfigResponse{
			envelope: envelope{Success: true},
			Config:   cfg,
		})
	}
}

// UpdateConfig handles PUT /api/marketing-config.
func (mh *MarketingHandler) UpdateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg models.MarketingConfig
		if err := decodeBody(r, &cfg); err != nil {
			writeError(w, err)
			return
		}

		if err := mh.svc.Update(r.Context(), cfg); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Marketing configuration updated")
	}
}
