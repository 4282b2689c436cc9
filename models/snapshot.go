package models

import "github.com/shopspring/decimal"

// Snapshot is the backup document.
type Snapshot struct {
	Products   []Product `json:"products"`
	Sales      []Sale    `json:"sales"`
	Expenses   []Expense `json:"expenses"`
	ExportDate string    `json:"exportDate"`
}

// Totals are the dashboard headline figures.
type Totals struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Profit        decimal.Decimal `json:"profit"`
}

// SeriesPoint is one bar group of the financial chart.
type SeriesPoint struct {
	Date     string          `json:"date"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
}

const (
	MovementSale    = "sale"
	MovementExpense = "expense"
)

// Movement is a row of the finance history, either a sale or an expense.
type Movement struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// Stats mirrors the admin dashboard cards.
type Stats struct {
	Totals
	TotalProducts  int             `json:"totalProducts"`
	SalesCount     int             `json:"salesCount"`
	ExpensesCount  int             `json:"expensesCount"`
	UnitsInStock   int             `json:"unitsInStock"`
	StockCostValue decimal.Decimal `json:"stockCostValue"`
	StockSaleValue decimal.Decimal `json:"stockSaleValue"`
	OnPromotion    int             `json:"onPromotion"`
}
