package service

import (
	"context"
	"strings"

	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/upstream"
)

// ContentUpstream is the slice of the commerce API the content service
// consumes.
type ContentUpstream interface {
	ListHeadlines(ctx context.Context, q upstream.ListQuery) ([]models.Headline, models.Pagination, error)
	CreateHeadline(ctx context.Context, text string, active bool) error
	UpdateHeadline(ctx context.Context, id string, p upstream.HeadlinePatch) error
	DeleteHeadline(ctx context.Context, id string) error
	ListBanners(ctx context.Context, q upstream.ListQuery) ([]models.Banner, models.Pagination, error)
	CreateBanner(ctx context.Context, image upstream.FileUpload, active bool) error
	UpdateBanner(ctx context.Context, id string, p upstream.BannerPatch) error
	DeleteBanner(ctx context.Context, id string) error
}

// ContentService implements homepage headline and banner management.
type ContentService struct {
	upstream ContentUpstream
}

// NewContentService creates new ContentService instance.
func NewContentService(upstream ContentUpstream) *ContentService {
	return &ContentService{upstream: upstream}
}

// Headlines fetches a headline page.
func (s *ContentService) Headlines(ctx context.Context, q upstream.ListQuery) ([]models.Headline, models.Pagination, error) {
	return s.upstream.ListHeadlines(ctx, q)
}

// CreateHeadline creates a headline from trimmed text.
func (s *ContentService) CreateHeadline(ctx context.Context, text string, active bool) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &models.ValidationError{Reason: "headline text is required"}
	}
	return s.upstream.CreateHeadline(ctx, text, active)
}

// UpdateHeadline applies a partial headline update. Text, when present,
// must not be blank.
func (s *ContentService) UpdateHeadline(ctx context.Context, id string, p upstream.HeadlinePatch) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Reason: "headline id is required"}
	}
	if p.Text != nil {
		trimmed := strings.TrimSpace(*p.Text)
		if trimmed == "" {
			return &models.ValidationError{Reason: "headline text is required"}
		}
		p.Text = &trimmed
	}
	return s.upstream.UpdateHeadline(ctx, id, p)
}

// DeleteHeadline deletes a headline.
func (s *ContentService) DeleteHeadline(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Reason: "headline id is required"}
	}
	return s.upstream.DeleteHeadline(ctx, id)
}

// Banners fetches a banner page.
func (s *ContentService) Banners(ctx context.Context, q upstream.ListQuery) ([]models.Banner, models.Pagination, error) {
	return s.upstream.ListBanners(ctx, q)
}

// CreateBanner uploads a new banner image.
func (s *ContentService) CreateBanner(ctx context.Context, image *upstream.FileUpload, active bool) error {
	if image == nil {
		return &models.ValidationError{Reason: "banner image is required"}
	}
	return s.upstream.CreateBanner(ctx, *image, active)
}

// UpdateBanner applies a partial banner update.
func (s *ContentService) UpdateBanner(ctx context.Context, id string, p upstream.BannerPatch) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Reason: "banner id is required"}
	}
	if p.IsActive == nil && p.Image == nil {
		return &models.ValidationError{Reason: "nothing to update"}
	}
	return s.upstream.UpdateBanner(ctx, id, p)
}

// DeleteBanner deletes a banner.
func (s *ContentService) DeleteBanner(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Reason: "banner id is required"}
	}
	return s.upstream.DeleteBanner(ctx, id)
}
