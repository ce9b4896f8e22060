package pricing_test

import (
	"testing"

	"github.com/bartracker/bar-price-tracker/internal/models"
	"github.com/bartracker/bar-price-tracker/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricePerLiter(t *testing.T) {
	t.Run("Success - Matches Formula", func(t *testing.T) {
		cases := []struct {
			price float64
			size  int
		}{
			{30, 700},
			{45, 700},
			{59.99, 1000},
			{12.5, 375},
			{0.01, 1},
		}

		for _, tc := range cases {
			got, err := pricing.PricePerLiter(tc.price, tc.size)

			require.NoError(t, err)
			assert.Equal(t, tc.price/float64(tc.size)*1000, got)
		}
	})

	t.Run("Success - Known Values", func(t *testing.T) {
		got, err := pricing.PricePerLiter(30, 700)
		require.NoError(t, err)
		assert.InDelta(t, 42.857142857, got, 1e-9)

		got, err = pricing.PricePerLiter(45, 700)
		require.NoError(t, err)
		assert.InDelta(t, 64.285714, got, 1e-6)
	})

	t.Run("Failure - Non Positive Size", func(t *testing.T) {
		for _, size := range []int{0, -1, -750} {
			got, err := pricing.PricePerLiter(30, size)

			require.ErrorIs(t, err, pricing.ErrInvalidSize)
			assert.Zero(t, got)
		}
	})
}

func TestPricePerUnit(t *testing.T) {
	assert.Equal(t, 4.5, pricing.PricePerUnit(4.5, "ml"))
	assert.Equal(t, 0.0, pricing.PricePerUnit(0, "piece"))
}

func TestCocktailCosts(t *testing.T) {
	ingredients := []models.CocktailIngredient{
		{IngredientID: "gin", IngredientName: "Gin", Amount: 45, Unit: "ml", Cost: 2.5},
		{IngredientID: "tonic", IngredientName: "Tonic", Amount: 150, Unit: "ml", Cost: 1.25},
		{IngredientID: "lime", IngredientName: "Lime", Amount: 1, Unit: "piece", Cost: 0.25},
	}

	t.Run("Success - Sums Costs And Applies Margin", func(t *testing.T) {
		costs := pricing.CocktailCosts(ingredients, 200, 2)

		assert.InDelta(t, 4.0, costs.TotalCost, 1e-9)
		assert.InDelta(t, 2.0, costs.CostPerServing, 1e-9)
		assert.InDelta(t, 12.0, costs.SellingPrice, 1e-9)
	})

	t.Run("Success - Negative Margin Is Not Clamped", func(t *testing.T) {
		costs := pricing.CocktailCosts(ingredients, -25, 1)

		assert.InDelta(t, 3.0, costs.SellingPrice, 1e-9)
	})

	t.Run("Success - Zero Servings Falls Back To Total", func(t *testing.T) {
		for _, servings := range []int{0, -3} {
			costs := pricing.CocktailCosts(ingredients, 0, servings)

			assert.Equal(t, costs.TotalCost, costs.CostPerServing)
		}
	})

	t.Run("Success - Empty Ingredients", func(t *testing.T) {
		costs := pricing.CocktailCosts(nil, 50, 1)

		assert.Zero(t, costs.TotalCost)
		assert.Zero(t, costs.CostPerServing)
		assert.Zero(t, costs.SellingPrice)
	})
}

func TestValidateServings(t *testing.T) {
	assert.NoError(t, pricing.ValidateServings(1))
	assert.NoError(t, pricing.ValidateServings(8))
	assert.ErrorIs(t, pricing.ValidateServings(0), pricing.ErrInvalidServings)
	assert.ErrorIs(t, pricing.ValidateServings(-1), pricing.ErrInvalidServings)
}
