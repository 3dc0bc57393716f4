package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopnobd/backoffice/internal/models"
)

// ListQuery pages the content lists.
type ListQuery struct {
	Page       int
	Limit      int
	ActiveOnly bool
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.ActiveOnly {
		v.Set("activeOnly", "1")
	} else {
		v.Set("activeOnly", "0")
	}
	return v
}

type listHeadlinesResponse struct {
	Envelope
	Headlines  []models.Headline `json:"headlines"`
	Pagination models.Pagination `json:"pagination"`
}

// ListHeadlines fetches a headline page.
func (c *Client) ListHeadlines(ctx context.Context, q ListQuery) ([]models.Headline, models.Pagination, error) {
	var resp listHeadlinesResponse
	if err := c.doGet(ctx, q.values(), &resp, "api", "content", "headlines"); err != nil {
		return nil, models.Pagination{}, err
	}
	return resp.Headlines, resp.Pagination, nil
}

// CreateHeadline creates a headline.
func (c *Client) CreateHeadline(ctx context.Context, text string, active bool) error {
	payload := struct {
		Text     string `json:"text"`
		IsActive bool   `json:"isActive"`
	}{Text: text, IsActive: active}

	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodPost, payload, &resp, "api", "content", "headlines")
}

// HeadlinePatch updates a headline; nil fields are left untouched.
type HeadlinePatch struct {
	Text     *string
	IsActive *bool
}

// UpdateHeadline applies a partial headline update.
func (c *Client) UpdateHeadline(ctx context.Context, id string, p HeadlinePatch) error {
	payload := map[string]any{}
	if p.Text != nil {
		payload["text"] = *p.Text
	}
	if p.IsActive != nil {
		payload["isActive"] = *p.IsActive
	}

	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodPut, payload, &resp, "api", "content", "headlines", id)
}

// DeleteHeadline deletes a headline.
func (c *Client) DeleteHeadline(ctx context.Context, id string) error {
	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodDelete, nil, &resp, "api", "content", "headlines", id)
}

type listBannersResponse struct {
	Envelope
	Banners    []models.Banner   `json:"banners"`
	Pagination models.Pagination `json:"pagination"`
}

// ListBanners fetches a banner page.
func (c *Client) ListBanners(ctx context.Context, q ListQuery) ([]models.Banner, models.Pagination, error) {
	var resp listBannersResponse
	if err := c.doGet(ctx, q.values(), &resp, "api", "content", "banners"); err != nil {
		return nil, models.Pagination{}, err
	}
	return resp.Banners, resp.Pagination, nil
}

// CreateBanner uploads a new banner image.
func (c *Client) CreateBanner(ctx context.Context, image FileUpload, active bool) error {
	form := &Form{}
	form.Set("isActive", strconv.FormatBool(active))
	form.AddFile("image", image)

	var resp struct{ Envelope }
	return c.doForm(ctx, http.MethodPost, form, &resp, "api", "content", "banners")
}

// BannerPatch updates a banner; a non-nil Image replaces the stored one.
type BannerPatch struct {
	IsActive *bool
	Image    *FileUpload
}

// UpdateBanner applies a partial banner update.
func (c *Client) UpdateBanner(ctx context.Context, id string, p BannerPatch) error {
	var resp struct{ Envelope }
	if p.Image == nil {
		payload := map[string]any{}
		if p.IsActive != nil {
			payload["isActive"] = *p.IsActive
		}
		return c.doJSON(ctx, http.MethodPut, payload, &resp, "api", "content", "banners", id)
	}
	form := &Form{}
	if p.IsActive != nil {
		form.Set("isActive", strconv.FormatBool(*p.IsActive))
	}
	form.AddFile("image", *p.Image)
	return c.doForm(ctx, http.MethodPut, form, &resp, "api", "content", "banners", id)
}

// DeleteBanner deletes a banner and its stored image.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodDelete, nil, &resp, "api", "content", "banners", id)
}
