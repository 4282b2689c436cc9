package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Backups and persisted collections carry money as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category is one of the fixed catalog categories.
type Category string

const (
	CategoryLegging  Category = "Legging"
	CategoryTop      Category = "Top"
	CategoryConjunto Category = "Conjunto"
	CategoryCamiseta Category = "Camiseta"
	CategoryShorts   Category = "Shorts"
)

// AllCategories is the catalog filter wildcard.
const AllCategories = "Todos"

var Categories = []Category{CategoryLegging, CategoryTop, CategoryConjunto, CategoryCamiseta, CategoryShorts}

var Sizes = []string{"P", "M", "G", "GG"}

var Colors = []string{"Preto", "Azul Marinho", "Cinza", "Rosa", "Verde Militar", "Vinho"}

const (
	PlaceholderImage   = "https://via.placeholder.com/400x600?text=Sem+Imagem"
	DefaultDescription = "Produto fitness Connect Fit."
)

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Product defines a catalog item. PurchasePrice is admin-private.
type Product struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       Category         `json:"category"`
	Price          decimal.Decimal  `json:"price"`
	PurchasePrice  decimal.Decimal  `json:"purchasePrice"`
	PromotionPrice *decimal.Decimal `json:"promotionPrice,omitempty"`
	IsOnPromotion  bool             `json:"isOnPromotion"`
	Sizes          []string         `json:"sizes"`
	Colors         []string         `json:"colors"`
	Stock          int              `json:"stock"`
	Images         []string         `json:"images"`
	Description    string           `json:"description"`
}

// HasActivePromotion is true when the promotion flag is on and a non-zero
// promotion price is set.
func (p Product) HasActivePromotion() bool {
	return p.IsOnPromotion && p.PromotionPrice != nil && !p.PromotionPrice.IsZero()
}

// EffectivePrice is the unit price a sale is charged at right now.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.HasActivePromotion() {
		return *p.PromotionPrice
	}
	return p.Price
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (p Product) Clone() Product {
	out := p
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Colors = append([]string(nil), p.Colors...)
	out.Images = append([]string(nil), p.Images...)
	if p.PromotionPrice != nil {
		promo := *p.PromotionPrice
		out.PromotionPrice = &promo
	}
	return out
}

// CatalogItem is the client-facing projection of a Product.
type CatalogItem struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       Category         `json:"category"`
	Price          decimal.Decimal  `json:"price"`
	PromotionPrice *decimal.Decimal `json:"promotionPrice,omitempty"`
	IsOnPromotion  bool             `json:"isOnPromotion"`
	EffectivePrice decimal.Decimal  `json:"effectivePrice"`
	Sizes          []string         `json:"sizes"`
	Colors         []string         `json:"colors"`
	Stock          int              `json:"stock"`
	Images         []string         `json:"images"`
	Description    string           `json:"description"`
}

func (p Product) CatalogItem() CatalogItem {
	c := p.Clone()
	return CatalogItem{
		ID:             c.ID,
		Name:           c.Name,
		Category:       c.Category,
		Price:          c.Price,
		PromotionPrice: c.PromotionPrice,
		IsOnPromotion:  c.IsOnPromotion,
		EffectivePrice: c.EffectivePrice(),
		Sizes:          c.Sizes,
		Colors:         c.Colors,
		Stock:          c.Stock,
		Images:         c.Images,
		Description:    c.Description,
	}
}
