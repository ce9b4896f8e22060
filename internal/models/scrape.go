package models

// ScrapedProduct is a best-effort extraction; nil fields were not found on the page.
type ScrapedProduct struct {
	Name              string   `json:"name"`
	Brand             string   `json:"brand"`
	Price             *float64 `json:"price"`
	Size              *int     `json:"size"`
	AlcoholPercentage *float64 `json:"alcohol_percentage"`
	ImageURL          *string  `json:"image_url"`
	Retailer          string   `json:"retailer"`
	SourceURL         string   `json:"source_url"`
}

type ScrapeRequest struct {
	ProductURL string `json:"product_url" validate:"required,url"`
}

type RefreshPricesRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type RefreshSummary struct {
	UpdatedCount    int      `json:"updated_count"`
	TotalConsidered int      `json:"total_considered"`
	Errors          []string `json:"errors"`
}
