package service

import (
	"context"
	"strings"

	"github.com/shopnobd/backoffice/internal/models"
	"github.com/shopnobd/backoffice/internal/upstream"
)

// CatalogUpstream is the slice of the commerce API the catalog service
// consumes.
type CatalogUpstream interface {
	AddProduct(ctx context.Context, form upstream.ProductForm) error
	EditProduct(ctx context.Context, form upstream.ProductForm) error
	GetProduct(ctx context.Context, id string) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	RemoveProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context, q upstream.CategoryQuery) ([]models.Category, models.Pagination, error)
	CreateCategory(ctx context.Context, d upstream.CategoryDraft) error
	UpdateCategory(ctx context.Context, id string, p upstream.CategoryPatch) error
	DeleteCategory(ctx context.Context, id string) error
}

// CatalogService implements product and category management.
type CatalogService struct {
	upstream CatalogUpstream
}

// NewCatalogService creates new CatalogService instance.
func NewCatalogService(upstream CatalogUpstream) *CatalogService {
	return &CatalogService{upstream: upstream}
}

func validateProduct(form upstream.ProductForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return &models.ValidationError{Reason: "product name is required"}
	}
	if form.Price < 0 {
		return &models.ValidationError{Reason: "price must not be negative"}
	}
	if form.Discount < 0 || form.Discount > 100 {
		return &models.ValidationError{Reason: "discount must be between 0 and 100"}
	}
	return nil
}

// AddProduct creates a product from the draft.
func (s *CatalogService) AddProduct(ctx context.Context, form upstream.ProductForm) error {
	if err := validateProduct(form); err != nil {
		return err
	}
	return s.upstream.AddProduct(ctx, form)
}

// EditProduct updates a product. When the caller supplied the slot table
// with existing images, the public ids of replaced images are derived from
// it instead of requiring an explicit list.
func (s *CatalogService) EditProduct(ctx context.Context, form upstream.ProductForm) error {
	if strings.TrimSpace(form.ProductID) == "" {
		return &models.ValidationError{Reason: "product id is required"}
	}
	if err := validateProduct(form); err != nil {
		return err
	}
	if len(form.RemovedPublicIDs) == 0 {
		form.RemovedPublicIDs = form.Images.ReplacedPublicIDs()
	}
	return s.upstream.EditProduct(ctx, form)
}

// Product fetches one product.
func (s *CatalogService) Product(ctx context.Context, id string) (models.Product, error) {
	if strings.TrimSpace(id) == "" {
		return models.Product{}, &models.ValidationError{Reason: "product id is required"}
	}
	return s.upstream.GetProduct(ctx, id)
}

// Products fetches the full catalog.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.upstream.ListProducts(ctx)
}

// RemoveProduct deletes a product.
func (s *CatalogService) RemoveProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Reason: "product id is required"}
	}
	return s.upstream.RemoveProduct(ctx, id)
}

// Categories fetches a category page.
func (s *CatalogService) Categories(ctx context.Context, q upstream.CategoryQuery) ([]models.Category, models.Pagination, error) {
	return s.upstream.ListCategories(ctx, q)
}

// CreateCategory creates a category.
func (s *CatalogService) CreateCategory(ctx context.Context, d upstream.CategoryDraft) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return &models.ValidationError{Reason: "category name is required"}
	}
	return s.upstream.CreateCategory(ctx, d)
}

// UpdateCategory applies a partial category update. An empty name in the
// patch means "leave the name alone", matching the admin form behavior.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, p upstream.CategoryPatch) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Reason: "category id is required"}
	}
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		if trimmed == "" {
			p.Name = nil
		} else {
			p.Name = &trimmed
		}
	}
	return s.upstream.UpdateCategory(ctx, id, p)
}

// DeleteCategory deletes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &models.ValidationError{Reason: "category id is required"}
	}
	return s.upstream.DeleteCategory(ctx, id)
}
