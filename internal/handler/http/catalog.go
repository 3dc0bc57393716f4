package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/upstream"
)

// CatalogService is the product and category operations the handler exposes.
type CatalogService interface {
	AddProduct(ctx context.Context, form upstream.ProductForm) error
	EditProduct(ctx context.Context, form upstream.ProductForm) error
	Product(ctx context.Context, id string) (models.Product, error)
	Products(ctx context.Context) ([]models.Product, error)
	RemoveProduct(ctx context.Context, id string) error
	Categories(ctx context.Context, q upstream.CategoryQuery) ([]models.Category, models.Pagination, error)
	CreateCategory(ctx context.Context, d upstream.CategoryDraft) error
	UpdateCategory(ctx context.Context, id string, p upstream.CategoryPatch) error
	DeleteCategory(ctx context.Context, id string) error
}

// CatalogHandler represents HTTP handler for catalog-related requests
type CatalogHandler struct {
	svc CatalogService
}

// NewCatalogHandler creates new CatalogHandler instance
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// productFormFromRequest reads the multipart product draft. Image files bind
// to the fixed slot table by index.
func productFormFromRequest(r *http.Request) (upstream.ProductForm, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return upstream.ProductForm{}, &models.ValidationError{Reason: "multipart form expected"}
	}

	form := upstream.ProductForm{
		ProductID:       r.FormValue("productId"),
		Name:            r.FormValue("name"),
		Description:     r.FormValue("description"),
		LongDescription: r.FormValue("longDescription"),
		Category:        r.FormValue("category"),
		SubCategory:     r.FormValue("subCategory"),
		Price:           parseNumber(r.FormValue("price")),
		Discount:        parseNumber(r.FormValue("discount")),
		BestSeller:      r.FormValue("bestSeller") == "true",
	}

	if raw := r.FormValue("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.Sizes); err != nil {
			return upstream.ProductForm{}, &models.ValidationError{Reason: "sizes must be a JSON array"}
		}
	}
	if raw := r.FormValue("removedPublicIds"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.RemovedPublicIDs); err != nil {
			return upstream.ProductForm{}, &models.ValidationError{Reason: "removedPublicIds must be a JSON array"}
		}
	}

	for i, field := range upstream.SlotFields {
		file, header, err := r.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			return upstream.ProductForm{}, &models.ValidationError{Reason: "invalid upload in " + field}
		}
		form.Images[i].Upload = &upstream.FileUpload{Filename: header.Filename, Content: file}
	}

	return form, nil
}

// missing or malformed numeric form values count as zero
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// AddProduct handles POST /api/product/add.
func (ch *CatalogHandler) AddProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := productFormFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := ch.svc.AddProduct(r.Context(), form); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Product added")
	}
}

// EditProduct handles POST /api/product/edit.
func (ch *CatalogHandler) EditProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := productFormFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := ch.svc.EditProduct(r.Context(), form); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Product updated")
	}
}

type singleProductResponse struct {
	envelope
	Product models.Product `json:"product"`
}

// GetProduct handles POST /api/product/single.
func (ch *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductID string `json:"productId"`
		}
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		product, err := ch.svc.Product(r.Context(), req.ProductID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, singleProductResponse{
			envelope: envelope{Success: true},
			Product:  product,
		})
	}
}

type listProductsResponse struct {
	envelope
	Products []models.Product `json:"products"`
}

// ListProducts handles GET /api/product/list.
func (ch *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := ch.svc.Products(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		writeJSON(w, http.StatusOK, listProductsResponse{
			envelope: envelope{Success: true},
			Products: products,
		})
	}
}

// RemoveProduct handles POST /api/product/remove.
func (ch *CatalogHandler) RemoveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
		}
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		if err := ch.svc.RemoveProduct(r.Context(), req.ID); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Product removed")
	}
}

type listCategoriesResponse struct {
	envelope
	Categories []models.Category `json:"categories"`
	Pagination models.Pagination `json:"pagination"`
}

// ListCategories handles GET /api/category.
func (ch *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := upstream.CategoryQuery{
			Search: r.URL.Query().Get("search"),
			Sort:   r.URL.Query().Get("sort"),
		}
		if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
			query.Page = page
		}
		if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
			query.Limit = limit
		}
		if active := r.URL.Query().Get("active"); active != "" {
			b := active == "true"
			query.Active = &b
		}

		categories, pagination, err := ch.svc.Categories(r.Context(), query)
		if err != nil {
			writeError(w, err)
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}
		writeJSON(w, http.StatusOK, listCategoriesResponse{
			envelope:   envelope{Success: true},
			Categories: categories,
			Pagination: pagination,
		})
	}
}

func categoryImageFromRequest(r *http.Request) (*upstream.FileUpload, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, &models.ValidationError{Reason: "invalid image upload"}
	}
	return &upstream.FileUpload{Filename: header.Filename, Content: file}, nil
}

func isMultipart(r *http.Request) bool {
	mediaType := r.Header.Get("Content-Type")
	return len(mediaType) >= 19 && mediaType[:19] == "multipart/form-data"
}

// CreateCategory handles POST /api/category. The request is JSON unless an
// image is attached, in which case it is multipart.
func (ch *CatalogHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft upstream.CategoryDraft

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
			draft = upstream.CategoryDraft{
				Name:     r.FormValue("name"),
				IsActive: r.FormValue("isActive") == "true",
				Image:    image,
			}
		} else {
			var req struct {
				Name     string `json:"name"`
				IsActive bool   `json:"isActive"`
			}
			if err := decodeBody(r, &req); err != nil {
				writeError(w, err)
				return
			}
			draft = upstream.CategoryDraft{Name: req.Name, IsActive: req.IsActive}
		}

		if err := ch.svc.CreateCategory(r.Context(), draft); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Category created")
	}
}

// UpdateCategory handles PUT /api/category/{id}.
func (ch *CatalogHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var patch upstream.CategoryPatch

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
			if name := r.FormValue("name"); name != "" {
				patch.Name = &name
			}
			if active := r.FormValue("isActive"); active != "" {
				b := active == "true"
				patch.IsActive = &b
			}
		} else {
			var req struct {
				Name     *string `json:"name"`
				IsActive *bool   `json:"isActive"`
			}
			if err := decodeBody(r, &req); err != nil {
				writeError(w, err)
				return
			}
			patch.Name = req.Name
			patch.IsActive = req.IsActive
		}

		if err := ch.svc.UpdateCategory(r.Context(), id, patch); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Category updated")
	}
}

// DeleteCategory handles DELETE /api/category/{id}.
func (ch *CatalogHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ch.svc.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, true, "Category deleted")
	}
}
