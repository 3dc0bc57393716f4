package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/upstream"
)

// ContentService is the headline and banner operations the handler exposes.
type ContentService interface {
	Headlines(ctx context.Context, q upstream.ListQuery) ([]models.Headline, models.Pagination, error)
	CreateHeadline(ctx context.Context, text string, active bool) error
	UpdateHeadline(ctx context.Context, id string, p upstream.HeadlinePatch) error
	DeleteHeadline(ctx context.Context, id string) error
	Banners(ctx context.Context, q upstream.ListQuery) ([]models.Banner, models.Pagination, error)
	CreateBanner(ctx context.Context, image *upstream.FileUpload, active bool) error
	UpdateBanner(ctx context.Context, id string, p upstream.BannerPatch) error
	DeleteBanner(ctx context.Context, id string) error
}

// ContentHandler represents HTTP handler for homepage content requests
type ContentHandler struct {
	svc ContentService
}

// NewContentHandler creates new ContentHandler instance
func NewContentHandler(svc ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func listQueryFromRequest(r *http.Request) upstream.ListQuery {
	var q upstream.ListQuery
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		q.Limit = limit
	}
	switch r.URL.Query().Get("activeOnly") {
	case "1", "true":
		q.ActiveOnly = true
	}
	return q
}

type listHeadlinesResponse struct {
	envelope
	Headlines  []models.Headline `json:"headlines"`
	Pagination models.Pagination `json:"pagination"`
}

// ListHeadlines handles GET /api/content/headlines.
func (ch *ContentHandler) ListHeadlines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headlines, pagination, err := ch.svc.Headlines(r.Context(), listQueryFromRequest(r))
		if err != nil {
			writeError(w, err)
			return
		}
		if headlines == nil {
			headlines = []models.Headline{}
		}
		writeJSON(w, http.StatusOK, listHeadlinesResponse{
			envelope:   envelope{Success: true},
			Headlines:  headlines,
			Pagination: pagination,
		})
	}
}

// CreateHeadline handles POST /api/content/headlines.
func (ch *ContentHandler) CreateHeadline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text     string `json:"text"`
			IsActive bool   `json:"isActive"`
		}
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		if err := ch.svc.CreateHeadline(r.Context(), req.Text, req.IsActive); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Headline created")
	}
}

// UpdateHeadline handles PUT /api/content/headlines/{id}.
func (ch *ContentHandler) UpdateHeadline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch upstream.HeadlinePatch
		if err := decodeBody(r, &patch); err != nil {
			writeError(w, err)
			return
		}

		if err := ch.svc.UpdateHeadline(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Headline updated")
	}
}

// DeleteHeadline handles DELETE /api/content/headlines/{id}.
func (ch *ContentHandler) DeleteHeadline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ch.svc.DeleteHeadline(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Headline deleted")
	}
}

type listBannersResponse struct {
	envelope
	Banners    []models.Banner   `json:"banners"`
	Pagination models.Pagination `json:"pagination"`
}

// ListBanners handles GET /api/content/banners.
func (ch *ContentHandler) ListBanners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, pagination, err := ch.svc.Banners(r.Context(), listQueryFromRequest(r))
		if err != nil {
			writeError(w, err)
			return
		}
		if banners == nil {
			banners = []models.Banner{}
		}
		writeJSON(w, http.StatusOK, listBannersResponse{
			envelope:   envelope{Success: true},
			Banners:    banners,
			Pagination: pagination,
		})
	}
}

// CreateBanner handles POST /api/content/banners. The banner image rides in
// a multipart form.
func (ch *ContentHandler) CreateBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeMessage(w, http.StatusBadRequest, false, "multipart form expected")
			return
		}
		image, err := categoryImageFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := ch.svc.CreateBanner(r.Context(), image, r.FormValue("isActive") == "true"); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Banner created")
	}
}

// UpdateBanner handles PUT /api/content/banners/{id}. Multipart when the
// image changes, JSON when only the flag does.
func (ch *ContentHandler) UpdateBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch upstream.BannerPatch

		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				writeMessage(w, http.StatusBadRequest, false, "multipart form expected")
				return
			}
			image, err := categoryImageFromRequest(r)
			if err != nil {
				writeError(w, err)
				return
			}
			patch.Image = image
			if active := r.FormValue("isActive"); active != "" {
				b := active == "true"
				patch.IsActive = &b
			}
		} else {
			var req struct {
				IsActive *bool `json:"isActive"`
			}
			if err := decodeBody(r, &req); err != nil {
				writeError(w, err)
				return
			}
			patch.IsActive = req.IsActive
		}

		if err := ch.svc.UpdateBanner(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Banner updated")
	}
}

// DeleteBanner handles DELETE /api/content/banners/{id}.
func (ch *ContentHandler) DeleteBanner() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ch.svc.DeleteBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Banner deleted")
	}
}
