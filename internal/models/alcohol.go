package models

import "time"

type AlcoholItem struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Brand             string    `json:"brand"`
	Type              string    `json:"type"`
	Size              int       `json:"size"`
	AlcoholPercentage float64   `json:"alcohol_percentage"`
	Price             float64   `json:"price"`
	PricePerLiter     float64   `json:"price_per_liter"`
	Shop              string    `json:"shop"`
	ProductURL        *string   `json:"product_url,omitempty"`
	ImageURL          *string   `json:"image_url,omitempty"`
	LastUpdated       time.Time `json:"last_updated"`
}

// HasProductURL reports whether the item can take part in a price refresh.
func (a *AlcoholItem) HasProductURL() bool {
	return a.ProductURL != nil && *a.ProductURL != ""
}

// Size is in millilitres.
type AlcoholItemRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=200"`
	Brand             string  `json:"brand" validate:"max=100"`
	Type              string  `json:"type" validate:"required,max=50"`
	Size              int     `json:"size" validate:"required,gt=0"`
	AlcoholPercentage float64 `json:"alcohol_percentage" validate:"gte=0,lte=100"`
	Price             float64 `json:"price" validate:"gte=0"`
	Shop              string  `json:"shop" validate:"max=100"`
	ProductURL        *string `json:"product_url,omitempty" validate:"omitempty,url"`
	ImageURL          *string `json:"image_url,omitempty" validate:"omitempty,url"`
}
