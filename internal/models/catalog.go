package models

import "encoding/json"

// Image is a stored product or banner image. The upstream historically
// returned either a bare URL string or a structured {url, publicId} object;
// both decode into the same normalized form here.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

func (i *Image) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		i.URL = s
		i.PublicID = ""
		return nil
	}
	type image Image
	var structured image
	if err := json.Unmarshal(b, &structured); err != nil {
		return err
	}
	*i = Image(structured)
	return nil
}

// Product is the upstream's catalog entity.
type Product struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Category        string    `json:"category"`
	SubCategory     string    `json:"subCategory"`
	Price           Amount    `json:"price"`
	Discount        Amount    `json:"discount"`
	Sizes           []string  `json:"sizes"`
	BestSeller      bool      `json:"bestSeller"`
	Images          []Image   `json:"image"`
	Date            Timestamp `json:"date"`
}

// Category groups products; inactive categories stay hidden on the shop side.
type Category struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	Image    *Image `json:"image,omitempty"`
}

// Pagination is the list envelope convention: current page and page size are
// request-supplied, only totals come back.
type Pagination struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
}
