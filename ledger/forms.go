package ledger

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ProductForm carries the raw product form. Numeric fields accept either
// strings (HTML forms) or JSON numbers.
type ProductForm struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Price          interface{} `json:"price"`
	PurchasePrice  interface{} `json:"purchasePrice"`
	PromotionPrice interface{} `json:"promotionPrice"`
	IsOnPromotion  interface{} `json:"isOnPromotion"`
	Stock          interface{} `json:"stock"`
	Sizes          []string    `json:"sizes"`
	Colors         []string    `json:"colors"`
	Images         []string    `json:"images"`
	Description    string      `json:"description"`
}

// ExpenseForm carries the raw expense form.
type ExpenseForm struct {
	Description string      `json:"description"`
	Amount      interface{} `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

// SaleForm carries the raw sale form.
type SaleForm struct {
	ProductID string      `json:"productId"`
	Quantity  interface{} `json:"quantity"`
}

func rawString(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// parseMoney reads a required non-negative amount. A comma decimal separator
// is accepted.
func parseMoney(field string, v interface{}) (decimal.Decimal, error) {
	s, err := rawString(v)
	if err != nil {
		return decimal.Zero, invalid(field, "must be a number")
	}
	if s == "" {
		return decimal.Zero, invalid(field, "is required")
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, invalid(field, "must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, invalid(field, "cannot be negative")
	}
	return d, nil
}

// parseOptionalMoney returns nil when the field is blank.
func parseOptionalMoney(field string, v interface{}) (*decimal.Decimal, error) {
	s, err := rawString(v)
	if err != nil {
		return nil, invalid(field, "must be a number")
	}
	if s == "" {
		return nil, nil
	}
	d, err := parseMoney(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// maxCount bounds stock and quantity so IntPart cannot wrap.
var maxCount = decimal.NewFromInt(math.MaxInt32)

// parseCount reads a whole number; fractional input is truncated.
func parseCount(field string, v interface{}) (int, error) {
	s, err := rawString(v)
	if err != nil {
		return 0, invalid(field, "must be a whole number")
	}
	if s == "" {
		return 0, invalid(field, "is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, invalid(field, "must be a whole number")
	}
	if d.Abs().GreaterThan(maxCount) {
		return 0, invalid(field, "is too large")
	}
	return int(d.IntPart()), nil
}

// parseCheckbox follows HTML checkbox semantics: "on" means checked.
func parseCheckbox(v interface{}) bool {
	if s, ok := v.(string); ok && strings.EqualFold(strings.TrimSpace(s), "on") {
		return true
	}
	b, err := cast.ToBoolE(v)
	return err == nil && b
}
