// Package pricing holds the derived price calculations for inventory items and cocktails.
// Every function here is pure.
package pricing

import (
	"errors"

	"github.com/bartracker/bar-price-tracker/internal/models"
)

var (
	ErrInvalidSize     = errors.New("size must be greater than zero")
	ErrInvalidServings = errors.New("servings must be at least one")
)

// PricePerLiter returns price / sizeML * 1000.
func PricePerLiter(price float64, sizeML int) (float64, error) {
	if sizeML <= 0 {
		return 0, ErrInvalidSize
	}

	return price / float64(sizeML) * 1000, nil
}

// PricePerUnit assumes the price is already quoted per unit; there is no unit conversion yet.
func PricePerUnit(price float64, _ string) float64 {
	return price
}

type Costs struct {
	TotalCost      float64 `json:"total_cost"`
	CostPerServing float64 `json:"cost_per_serving"`
	SellingPrice   float64 `json:"selling_price"`
}

// CocktailCosts is total over its inputs: servings <= 0 falls back to the total cost per serving
// and a negative margin prices the cocktail below cost.
func CocktailCosts(ingredients []models.CocktailIngredient, marginPercent float64, servings int) Costs {
	var total float64
	for _, ingredient := range ingredients {
		total += ingredient.Cost
	}

	perServing := total
	if servings > 0 {
		perServing = total / float64(servings)
	}

	return Costs{
		TotalCost:      total,
		CostPerServing: perServing,
		SellingPrice:   total * (1 + marginPercent/100),
	}
}

func ValidateServings(servings int) error {
	if servings < 1 {
		return ErrInvalidServings
	}

	return nil
}
