package repository

import (
	"time"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

const (
	CollectionAlcoholItems  = "alcohol_items"
	CollectionIngredients   = "ingredients"
	CollectionCocktails     = "cocktails"
	CollectionPriceHistory  = "price_history"
	CollectionUsers         = "users"
	CollectionUserPasswords = "user_passwords"
)

var ErrNotFound = docstore.ErrNotFound

// Stored field names. Filters and partial updates must use these, never the API names.
const (
	fieldUserID        = "userId"
	fieldEmail         = "email"
	fieldItemID        = "itemId"
	fieldHasProductURL = "hasProductUrl"
	fieldPrice         = "price"
	fieldPricePerLiter = "pricePerLiter"
	fieldLastUpdated   = "lastUpdated"
)

type alcoholDoc struct {
	UserID            string    `json:"userId" firestore:"userId"`
	Name              string    `json:"name" firestore:"name"`
	Brand             string    `json:"brand" firestore:"brand"`
	Type              string    `json:"type" firestore:"type"`
	Size              int       `json:"size" firestore:"size"`
	AlcoholPercentage float64   `json:"alcoholPercentage" firestore:"alcoholPercentage"`
	Price             float64   `json:"price" firestore:"price"`
	PricePerLiter     float64   `json:"pricePerLiter" firestore:"pricePerLiter"`
	Shop              string    `json:"shop" firestore:"shop"`
	ProductURL        *string   `json:"productUrl" firestore:"productUrl"`
	ImageURL          *string   `json:"imageUrl" firestore:"imageUrl"`
	HasProductURL     bool      `json:"hasProductUrl" firestore:"hasProductUrl"`
	LastUpdated       time.Time `json:"lastUpdated" firestore:"lastUpdated"`
}

func newAlcoholDoc(a *models.AlcoholItem) alcoholDoc {
	return alcoholDoc{
		UserID:            a.UserID,
		Name:              a.Name,
		Brand:             a.Brand,
		Type:              a.Type,
		Size:              a.Size,
		AlcoholPercentage: a.AlcoholPercentage,
		Price:             a.Price,
		PricePerLiter:     a.PricePerLiter,
		Shop:              a.Shop,
		ProductURL:        a.ProductURL,
		ImageURL:          a.ImageURL,
		HasProductURL:     a.HasProductURL(),
		LastUpdated:       a.LastUpdated,
	}
}

func (d alcoholDoc) toModel(id string) *models.AlcoholItem {
	return &models.AlcoholItem{
		ID:                id,
		UserID:            d.UserID,
		Name:              d.Name,
		Brand:             d.Brand,
		Type:              d.Type,
		Size:              d.Size,
		AlcoholPercentage: d.AlcoholPercentage,
		Price:             d.Price,
		PricePerLiter:     d.PricePerLiter,
		Shop:              d.Shop,
		ProductURL:        d.ProductURL,
		ImageURL:          d.ImageURL,
		LastUpdated:       d.LastUpdated,
	}
}

type ingredientDoc struct {
	UserID       string    `json:"userId" firestore:"userId"`
	Name         string    `json:"name" firestore:"name"`
	Type         string    `json:"type" firestore:"type"`
	Category     string    `json:"category" firestore:"category"`
	Price        float64   `json:"price" firestore:"price"`
	Unit         string    `json:"unit" firestore:"unit"`
	PricePerUnit float64   `json:"pricePerUnit" firestore:"pricePerUnit"`
	Shop         string    `json:"shop" firestore:"shop"`
	LastUpdated  time.Time `json:"lastUpdated" firestore:"lastUpdated"`
}

func newIngredientDoc(i *models.Ingredient) ingredientDoc {
	return ingredientDoc{
		UserID:       i.UserID,
		Name:         i.Name,
		Type:         string(i.Type),
		Category:     i.Category,
		Price:        i.Price,
		Unit:         i.Unit,
		PricePerUnit: i.PricePerUnit,
		Shop:         i.Shop,
		LastUpdated:  i.LastUpdated,
	}
}

func (d ingredientDoc) toModel(id string) *models.Ingredient {
	return &models.Ingredient{
		ID:           id,
		UserID:       d.UserID,
		Name:         d.Name,
		Type:         models.IngredientType(d.Type),
		Category:     d.Category,
		Price:        d.Price,
		Unit:         d.Unit,
		PricePerUnit: d.PricePerUnit,
		Shop:         d.Shop,
		LastUpdated:  d.LastUpdated,
	}
}

type cocktailIngredientDoc struct {
	IngredientID   string  `json:"ingredientId" firestore:"ingredientId"`
	IngredientName string  `json:"ingredientName" firestore:"ingredientName"`
	Amount         float64 `json:"amount" firestore:"amount"`
	Unit           string  `json:"unit" firestore:"unit"`
	Cost           float64 `json:"cost" firestore:"cost"`
}

type cocktailDoc struct {
	UserID         string                  `json:"userId" firestore:"userId"`
	Name           string                  `json:"name" firestore:"name"`
	Description    *string                 `json:"description" firestore:"description"`
	Ingredients    []cocktailIngredientDoc `json:"ingredients" firestore:"ingredients"`
	Instructions   []string                `json:"instructions" firestore:"instructions"`
	TotalCost      float64                 `json:"totalCost" firestore:"totalCost"`
	ProfitMargin   float64                 `json:"profitMargin" firestore:"profitMargin"`
	SellingPrice   float64                 `json:"sellingPrice" firestore:"sellingPrice"`
	Servings       int                     `json:"servings" firestore:"servings"`
	CostPerServing float64                 `json:"costPerServing" firestore:"costPerServing"`
	Category       string                  `json:"category" firestore:"category"`
	Tags           []string                `json:"tags" firestore:"tags"`
	ImageURL       *string                 `json:"imageUrl" firestore:"imageUrl"`
	CreatedAt      time.Time               `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt" firestore:"updatedAt"`
}

func newCocktailDoc(c *models.Cocktail) cocktailDoc {
	ingredients := make([]cocktailIngredientDoc, 0, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		ingredients = append(ingredients, cocktailIngredientDoc(ing))
	}

	return cocktailDoc{
		UserID:         c.UserID,
		Name:           c.Name,
		Description:    c.Description,
		Ingredients:    ingredients,
		Instructions:   c.Instructions,
		TotalCost:      c.TotalCost,
		ProfitMargin:   c.ProfitMargin,
		SellingPrice:   c.SellingPrice,
		Servings:       c.Servings,
		CostPerServing: c.CostPerServing,
		Category:       c.Category,
		Tags:           c.Tags,
		ImageURL:       c.ImageURL,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (d cocktailDoc) toModel(id string) *models.Cocktail {
	ingredients := make([]models.CocktailIngredient, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		ingredients = append(ingredients, models.CocktailIngredient(ing))
	}

	return &models.Cocktail{
		ID:             id,
		UserID:         d.UserID,
		Name:           d.Name,
		Description:    d.Description,
		Ingredients:    ingredients,
		Instructions:   d.Instructions,
		TotalCost:      d.TotalCost,
		ProfitMargin:   d.ProfitMargin,
		SellingPrice:   d.SellingPrice,
		Servings:       d.Servings,
		CostPerServing: d.CostPerServing,
		Category:       d.Category,
		Tags:           d.Tags,
		ImageURL:       d.ImageURL,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type priceHistoryDoc struct {
	ItemID   string    `json:"itemId" firestore:"itemId"`
	ItemType string    `json:"itemType" firestore:"itemType"`
	Price    float64   `json:"price" firestore:"price"`
	Shop     string    `json:"shop" firestore:"shop"`
	Date     time.Time `json:"date" firestore:"date"`
}

type userDoc struct {
	Email     string    `json:"email" firestore:"email"`
	FirstName string    `json:"firstName" firestore:"firstName"`
	LastName  string    `json:"lastName" firestore:"lastName"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

type passwordDoc struct {
	UserID       string `json:"userId" firestore:"userId"`
	PasswordHash string `json:"passwordHash" firestore:"passwordHash"`
}
