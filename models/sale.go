package models

import "github.com/shopspring/decimal"

// DateLayout is the calendar-day format used by sales and expenses.
const DateLayout = "2006-01-02"

// Sale is immutable once recorded. ProductName is a snapshot taken at sale
// time and does not follow later renames.
type Sale struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// Expense is immutable once recorded.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
}
