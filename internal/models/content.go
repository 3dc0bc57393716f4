package models

// Headline is a homepage ticker line.
type Headline struct {
	ID       string `json:"_id"`
	Text     string `json:"text"`
	IsActive bool   `json:"isActive"`
}

// Banner is a homepage banner image.
type Banner struct {
	ID       string `json:"_id"`
	Image    Image  `json:"image"`
	IsActive bool   `json:"isActive"`
}
