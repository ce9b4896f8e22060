package models

import "time"

type CocktailIngredient struct {
	IngredientID   string  `json:"ingredient_id" validate:"required"`
	IngredientName string  `json:"ingredient_name" validate:"required"`
	Amount         float64 `json:"amount" validate:"gte=0"`
	Unit           string  `json:"unit" validate:"required"`
	Cost           float64 `json:"cost" validate:"gte=0"`
}

type Cocktail struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	Name           string               `json:"name"`
	Description    *string              `json:"description,omitempty"`
	Ingredients    []CocktailIngredient `json:"ingredients"`
	Instructions   []string             `json:"instructions"`
	TotalCost      float64              `json:"total_cost"`
	ProfitMargin   float64              `json:"profit_margin"`
	SellingPrice   float64              `json:"selling_price"`
	Servings       int                  `json:"servings"`
	CostPerServing float64              `json:"cost_per_serving"`
	Category       string               `json:"category"`
	Tags           []string             `json:"tags"`
	ImageURL       *string              `json:"image_url,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// Servings defaults to 1 when omitted.
type CocktailRequest struct {
	Name         string               `json:"name" validate:"required,min=1,max=200"`
	Description  *string              `json:"description,omitempty"`
	Ingredients  []CocktailIngredient `json:"ingredients" validate:"dive"`
	Instructions []string             `json:"instructions"`
	ProfitMargin float64              `json:"profit_margin"`
	Servings     *int                 `json:"servings,omitempty"`
	Category     string               `json:"category" validate:"max=100"`
	Tags         []string             `json:"tags"`
	ImageURL     *string              `json:"image_url,omitempty" validate:"omitempty,url"`
}
