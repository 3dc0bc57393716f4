package service

import (
	"context"

	"github.com/shopnobd/backoffice/internal/models"
)

// MarketingUpstream is the slice of the commerce API the marketing service
// consumes.
type MarketingUpstream interface {
	GetMarketingConfig(ctx context.Context) (models.MarketingConfig, error)
	UpdateMarketingConfig(ctx context.Context, cfg models.MarketingConfig) error
}

// MarketingService reads and writes the marketing-pixel configuration.
type MarketingService struct {
	upstream MarketingUpstream
}

// NewMarketingService creates new MarketingService instance.
func NewMarketingService(upstream MarketingUpstream) *MarketingService {
	return &MarketingService{upstream: upstream}
}

// Config reads the public pixel configuration.
func (s *MarketingService) Config(ctx context.Context) (models.MarketingConfig, error) {
	return s.upstream.GetMarketingConfig(ctx)
}

// Update replaces the pixel configuration.
func (s *MarketingService) Update(ctx context.Context, cfg models.MarketingConfig) error {
	if cfg.EnableFacebook && cfg.FBPixelID == "" {
		return &models.ValidationError{Reason: "Facebook pixel id is required when Facebook is enabled"}
	}
	if cfg.EnableTikTok && cfg.TikTokPixelID == "" {
		return &models.ValidationError{Reason: "TikTok pixel id is required when TikTok is enabled"}
	}
	return s.upstream.UpdateMarketingConfig(ctx, cfg)
}
