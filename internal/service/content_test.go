package service

import (
	"context"
	"testing"

	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contentUpstreamStub struct {
	gotText     string
	gotActive   bool
	gotPatch    upstream.HeadlinePatch
	gotBanner   upstream.BannerPatch
	returnedErr error
}

func (s *contentUpstreamStub) ListHeadlines(ctx context.Context, q upstream.ListQuery) ([]models.Headline, models.Pagination, error) {
	return nil, models.Pagination{}, s.returnedErr
}

func (s *contentUpstreamStub) CreateHeadline(ctx context.Context, text string, active bool) error {
	s.gotText = text
	s.gotActive = active
	return s.returnedErr
}

func (s *contentUpstreamStub) UpdateHeadline(ctx context.Context, id string, p upstream.HeadlinePatch) error {
	s.gotPatch = p
	return s.returnedErr
}

func (s *contentUpstreamStub) DeleteHeadline(ctx context.Context, id string) error {
	return s.returnedErr
}

func (s *contentUpstreamStub) ListBanners(ctx context.Context, q upstream.ListQuery) ([]models.Banner, models.Pagination, error) {
	return nil, models.Pagination{}, s.returnedErr
}

func (s *contentUpstreamStub) CreateBanner(ctx context.Context, image upstream.FileUpload, active bool) error {
	s.gotActive = active
	return s.returnedErr
}

func (s *contentUpstreamStub) UpdateBanner(ctx context.Context, id string, p upstream.BannerPatch) error {
	s.gotBanner = p
	return s.returnedErr
}

func (s *contentUpstreamStub) DeleteBanner(ctx context.Context, id string) error {
	return s.returnedErr
}

func TestContentServiceCreateHeadline(t *testing.T) {
	stub := &contentUpstreamStub{}
	svc := NewContentService(stub)

	require.NoError(t, svc.CreateHeadline(context.Background(), "  Eid sale is live  ", true))
	assert.Equal(t, "Eid sale is live", stub.gotText)
	assert.True(t, stub.gotActive)

	err := svc.CreateHeadline(context.Background(), "   ", true)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "headline text is required", verr.Reason)
}

func TestContentServiceUpdateHeadline(t *testing.T) {
	stub := &contentUpstreamStub{}
	svc := NewContentService(stub)

	text := "  Free delivery over 2000 BDT  "
	require.NoError(t, svc.UpdateHeadline(context.Background(), "head-1", upstream.HeadlinePatch{Text: &text}))
	require.NotNil(t, stub.gotPatch.Text)
	assert.Equal(t, "Free delivery over 2000 BDT", *stub.gotPatch.Text)

	blank := "  "
	err := svc.UpdateHeadline(context.Background(), "head-1", upstream.HeadlinePatch{Text: &blank})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "headline text is required", verr.Reason)

	assert.Error(t, svc.UpdateHeadline(context.Background(), "", upstream.HeadlinePatch{}))
}

func TestContentServiceCreateBannerRequiresImage(t *testing.T) {
	svc := NewContentService(&contentUpstreamStub{})

	err := svc.CreateBanner(context.Background(), nil, true)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "banner image is required", verr.Reason)
}

func TestContentServiceUpdateBannerRejectsEmptyPatch(t *testing.T) {
	svc := NewContentService(&contentUpstreamStub{})

	err := svc.UpdateBanner(context.Background(), "banner-1", upstream.BannerPatch{})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nothing to update", verr.Reason)
}

func TestMarketingServiceUpdate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.MarketingConfig
		wantErr string
	}{
		{
			name: "valid_config",
			cfg:  models.MarketingConfig{EnableFacebook: true, FBPixelID: "123456"},
		},
		{
			name: "disabled_pixels_need_no_ids",
			cfg:  models.MarketingConfig{},
		},
		{
			name:    "facebook_enabled_without_pixel_id",
			cfg:     models.MarketingConfig{EnableFacebook: true},
			wantErr: "Facebook pixel id is required when Facebook is enabled",
		},
		{
			name:    "tiktok_enabled_without_pixel_id",
			cfg:     models.MarketingConfig{EnableTikTok: true},
			wantErr: "TikTok pixel id is required when TikTok is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMarketingService(&marketingUpstreamStub{})

			err := svc.Update(context.Background(), tt.cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Reason)
		})
	}
}

type marketingUpstreamStub struct {
	cfg models.MarketingConfig
}

func (s *marketingUpstreamStub) GetMarketingConfig(ctx context.Context) (models.MarketingConfig, error) {
	return s.cfg, nil
}

func (s *marketingUpstreamStub) UpdateMarketingConfig(ctx context.Context, cfg models.MarketingConfig) error {
	s.cfg = cfg
	return nil
}
