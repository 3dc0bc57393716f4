package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopnobd/backoffice/internal/models"
)

// SlotCount is the fixed number of product image positions.
const SlotCount = 4

// SlotFields maps each image slot index to its wire field name.
var SlotFields = [SlotCount]string{"image1", "image2", "image3", "image4"}

// ImageSlot is one fixed upload position: an optional new file and an
// optional reference to the image currently occupying the slot.
type ImageSlot struct {
	Upload   *FileUpload
	Existing *models.Image
}

// ImageSlots is the fixed-length slot table, indexed by integer.
type ImageSlots [SlotCount]ImageSlot

// ReplacedPublicIDs lists the stored images orphaned when a slot holding an
// existing image receives a new upload.
func (s ImageSlots) ReplacedPublicIDs() []string {
	var ids []string
	for _, slot := range s {
		if slot.Upload != nil && slot.Existing != nil && slot.Existing.PublicID != "" {
			ids = append(ids, slot.Existing.PublicID)
		}
	}
	return ids
}

// ProductForm is a product create/edit draft submitted as multipart.
type ProductForm struct {
	ProductID        string
	Name             string
	Description      string
	LongDescription  string
	Category         string
	SubCategory      string
	Price            float64
	Discount         float64
	Sizes            []string
	BestSeller       bool
	Images           ImageSlots
	RemovedPublicIDs []string
}

func (p ProductForm) form(edit bool) (*Form, error) {
	form := &Form{}
	if edit {
		form.Set("productId", p.ProductID)
	}
	form.Set("name", p.Name)
	form.Set("description", p.Description)
	form.Set("longDescription", p.LongDescription)
	form.Set("category", p.Category)
	form.Set("subCategory", p.SubCategory)
	form.Set("price", strconv.FormatFloat(p.Price, 'f', -1, 64))
	form.Set("discount", strconv.FormatFloat(p.Discount, 'f', -1, 64))
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	if err := form.SetJSON("sizes", sizes); err != nil {
		return nil, err
	}
	form.Set("bestSeller", strconv.FormatBool(p.BestSeller))
	if edit {
		removed := p.RemovedPublicIDs
		if removed == nil {
			removed = []string{}
		}
		if err := form.SetJSON("removedPublicIds", removed); err != nil {
			return nil, err
		}
	}
	for i, slot := range p.Images {
		if slot.Upload != nil {
			form.AddFile(SlotFields[i], *slot.Upload)
		}
	}
	return form, nil
}

// AddProduct creates a product.
func (c *Client) AddProduct(ctx context.Context, p ProductForm) error {
	form, err := p.form(false)
	if err != nil {
		return err
	}
	var resp struct{ Envelope }
	return c.doForm(ctx, http.MethodPost, form, &resp, "api", "product", "add")
}

// EditProduct updates a product, replacing images slot by slot.
func (c *Client) EditProduct(ctx context.Context, p ProductForm) error {
	form, err := p.form(true)
	if err != nil {
		return err
	}
	var resp struct{ Envelope }
	return c.doForm(ctx, http.MethodPost, form, &resp, "api", "product", "edit")
}

type singleProductResponse struct {
	Envelope
	Product models.Product `json:"product"`
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (models.Product, error) {
	payload := struct {
		ProductID string `json:"productId"`
	}{ProductID: id}

	var resp singleProductResponse
	if err := c.doJSON(ctx, http.MethodPost, payload, &resp, "api", "product", "single"); err != nil {
		return models.Product{}, err
	}
	return resp.Product, nil
}

type listProductsResponse struct {
	Envelope
	Products []models.Product `json:"products"`
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp listProductsResponse
	if err := c.doGet(ctx, nil, &resp, "api", "product", "list"); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// RemoveProduct deletes a product.
func (c *Client) RemoveProduct(ctx context.Context, id string) error {
	payload := struct {
		ID string `json:"id"`
	}{ID: id}

	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodPost, payload, &resp, "api", "product", "remove")
}

// CategoryQuery narrows and pages the category list.
type CategoryQuery struct {
	Search string
	Page   int
	Limit  int
	Sort   string
	Active *bool
}

func (q CategoryQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Active != nil {
		v.Set("active", strconv.FormatBool(*q.Active))
	}
	return v
}

type listCategoriesResponse struct {
	Envelope
	Categories []models.Category `json:"categories"`
	Pagination models.Pagination `json:"pagination"`
}

// ListCategories fetches a category page.
func (c *Client) ListCategories(ctx context.Context, q CategoryQuery) ([]models.Category, models.Pagination, error) {
	var resp listCategoriesResponse
	if err := c.doGet(ctx, q.values(), &resp, "api", "category"); err != nil {
		return nil, models.Pagination{}, err
	}
	return resp.Categories, resp.Pagination, nil
}

// CategoryDraft creates a category; the image is optional and switches the
// request to multipart.
type CategoryDraft struct {
	Name     string
	IsActive bool
	Image    *FileUpload
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, d CategoryDraft) error {
	var resp struct{ Envelope }
	if d.Image == nil {
		payload := struct {
			Name     string `json:"name"`
			IsActive bool   `json:"isActive"`
		}{Name: d.Name, IsActive: d.IsActive}
		return c.doJSON(ctx, http.MethodPost, payload, &resp, "api", "category")
	}
	form := &Form{}
	form.Set("name", d.Name)
	form.Set("isActive", strconv.FormatBool(d.IsActive))
	form.AddFile("image", *d.Image)
	return c.doForm(ctx, http.MethodPost, form, &resp, "api", "category")
}

// CategoryPatch updates a category; nil fields are left untouched.
type CategoryPatch struct {
	Name     *string
	IsActive *bool
	Image    *FileUpload
}

// UpdateCategory applies a partial category update.
func (c *Client) UpdateCategory(ctx context.Context, id string, p CategoryPatch) error {
	var resp struct{ Envelope }
	if p.Image == nil {
		payload := map[string]any{}
		if p.Name != nil {
			payload["name"] = *p.Name
		}
		if p.IsActive != nil {
			payload["isActive"] = *p.IsActive
		}
		return c.doJSON(ctx, http.MethodPut, payload, &resp, "api", "category", id)
	}
	form := &Form{}
	if p.Name != nil {
		form.Set("name", *p.Name)
	}
	if p.IsActive != nil {
		form.Set("isActive", strconv.FormatBool(*p.IsActive))
	}
	form.AddFile("image", *p.Image)
	return c.doForm(ctx, http.MethodPut, form, &resp, "api", "category", id)
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	var resp struct{ Envelope }
	return c.doJSON(ctx, http.MethodDelete, nil, &resp, "api", "category", id)
}
