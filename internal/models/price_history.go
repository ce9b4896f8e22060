package models

import "time"

type ItemType string

const (
	ItemTypeAlcohol    ItemType = "alcohol"
	ItemTypeIngredient ItemType = "ingredient"
)

// PriceHistory records are append-only.
type PriceHistory struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	ItemType ItemType  `json:"item_type"`
	Price    float64   `json:"price"`
	Shop     string    `json:"shop"`
	Date     time.Time `json:"date"`
}
