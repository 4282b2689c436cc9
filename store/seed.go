package store

import (
	"github.com/shopspring/decimal"

	"connectfit-backend/models"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

// SeedProducts is installed when no products were persisted yet.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:             "1",
			Name:           "Legging High Compression",
			Category:       models.CategoryLegging,
			Price:          money("129.90"),
			PurchasePrice:  money("45.00"),
			PromotionPrice: moneyPtr("99.90"),
			IsOnPromotion:  true,
			Sizes:          []string{"P", "M", "G"},
			Colors:         []string{"Preto", "Azul Marinho"},
			Stock:          15,
			Description:    "Legging de alta compressão com cintura alta.",
			Images:         []string{"https://picsum.photos/id/101/400/600", "https://picsum.photos/id/102/400/600"},
		},
		{
			ID:            "2",
			Name:          "Top Power Fit",
			Category:      models.CategoryTop,
			Price:         money("79.90"),
			PurchasePrice: money("25.00"),
			Sizes:         []string{"P", "M"},
			Colors:        []string{"Rosa", "Preto"},
			Stock:         22,
			Description:   "Top de suporte médio para atividades físicas intensas.",
			Images:        []string{"https://picsum.photos/id/103/400/600"},
		},
		{
			ID:             "4",
			Name:           "Camiseta Dry-Fit Pro",
			Category:       models.CategoryCamiseta,
			Price:          money("64.90"),
			PurchasePrice:  money("18.50"),
			PromotionPrice: moneyPtr("49.90"),
			Sizes:          []string{"P", "M", "G", "GG"},
			Colors:         []string{"Preto", "Vinho"},
			Stock:          30,
			Description:    "Tecido leve e respirável para treinos diários.",
			Images:         []string{"https://picsum.photos/id/104/400/600"},
		},
	}
}

func SeedSales() []models.Sale {
	return []models.Sale{
		{ID: "s1", ProductID: "1", ProductName: "Legging High Compression", Quantity: 2, Amount: money("259.80"), Date: "2023-10-01"},
	}
}

func SeedExpenses() []models.Expense {
	return []models.Expense{
		{ID: "e1", Description: "Reposição Estoque", Amount: money("1200.00"), Date: "2023-09-25", Category: "Estoque"},
	}
}
