package upstream

import (
	"context"
	"net/http"

	"github.com/shopnobd/backoffice/internal/models"
)

type marketingConfigResponse struct {
	Envelope
	Config models.MarketingConfig `json:"config"`
}

// GetMarketingConfig reads the public pixel configuration. Access tokens are
// never returned on this endpoint.
func (c *Client) GetMarketingConfig(ctx context.Context) (models.MarketingConfig, error) {
	var resp marketingConfigResponse
	if err := c.doGet(ctx, nil, &resp, "api", "marketing-config", "public"); err != nil {
		return models.MarketingConfig{}, err
	}
	return resp.Config, nil
}

// UpdateMarketingConfig replaces the pixel configuration.
func (c *Client) UpdateMarketingConfig(ctx context.Context, cfg models.MarketingConfig) error {
	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodPut, cfg, &resp, "api", "marketing-config")
}
