package models

// MarketingConfig is the marketing-pixel configuration. The public read
// omits the access tokens; they are only ever written.
type MarketingConfig struct {
	EnableFacebook    bool   `json:"enableFacebook"`
	FBPixelID         string `json:"fbPixelId"`
	FBAccessToken     string `json:"fbAccessToken,omitempty"`
	FBTestEventCode   string `json:"fbTestEventCode"`
	EnableTikTok      bool   `json:"enableTikTok"`
	TikTokPixelID     string `json:"tiktokPixelId"`
	TikTokAccessToken string `json:"tiktokAccessToken,omitempty"`
}
