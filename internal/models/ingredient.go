package models

import "time"

type IngredientType string

const (
	IngredientTypeAlcohol IngredientType = "alcohol"
	IngredientTypeMixer   IngredientType = "mixer"
	IngredientTypeGarnish IngredientType = "garnish"
	IngredientTypeOther   IngredientType = "other"
)

type Ingredient struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Name         string         `json:"name"`
	Type         IngredientType `json:"type"`
	Category     string         `json:"category"`
	Price        float64        `json:"price"`
	Unit         string         `json:"unit"`
	PricePerUnit float64        `json:"price_per_unit"`
	Shop         string         `json:"shop"`
	LastUpdated  time.Time      `json:"last_updated"`
}

// Unit is free-form: ml, g, piece, etc.
type IngredientRequest struct {
	Name     string         `json:"name" validate:"required,min=1,max=200"`
	Type     IngredientType `json:"type" validate:"required,oneof=alcohol mixer garnish other"`
	Category string         `json:"category" validate:"max=100"`
	Price    float64        `json:"price" validate:"gte=0"`
	Unit     string         `json:"unit" validate:"required,max=20"`
	Shop     string         `json:"shop" validate:"max=100"`
}
