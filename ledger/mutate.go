package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"connectfit-backend/models"
)

// IDFunc generates unique record ids.
type IDFunc func() string

func cloneProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func indexOf(products []models.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// BuildProduct validates the form and returns the product it describes.
// The id is left empty when the form has none.
func BuildProduct(form ProductForm) (models.Product, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return models.Product{}, invalid("name", "is required")
	}
	category, ok := models.ParseCategory(strings.TrimSpace(form.Category))
	if !ok {
		return models.Product{}, invalid("category", "unknown category %q", form.Category)
	}
	price, err := parseMoney("price", form.Price)
	if err != nil {
		return models.Product{}, err
	}
	purchase, err := parseMoney("purchasePrice", form.PurchasePrice)
	if err != nil {
		return models.Product{}, err
	}
	promo, err := parseOptionalMoney("promotionPrice", form.PromotionPrice)
	if err != nil {
		return models.Product{}, err
	}
	stock, err := parseCount("stock", form.Stock)
	if err != nil {
		return models.Product{}, err
	}
	if stock < 0 {
		return models.Product{}, invalid("stock", "cannot be negative")
	}

	p := models.Product{
		ID:             strings.TrimSpace(form.ID),
		Name:           name,
		Category:       category,
		Price:          price,
		PurchasePrice:  purchase,
		PromotionPrice: promo,
		IsOnPromotion:  parseCheckbox(form.IsOnPromotion),
		Sizes:          nonEmpty(form.Sizes, models.Sizes),
		Colors:         nonEmpty(form.Colors, models.Colors),
		Stock:          stock,
		Images:         nonEmpty(form.Images, []string{models.PlaceholderImage}),
		Description:    strings.TrimSpace(form.Description),
	}
	if p.Description == "" {
		p.Description = models.DefaultDescription
	}
	return p, nil
}

func nonEmpty(values, fallback []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}

// UpsertProduct replaces the product with the form's id in place, or appends
// a new product under a fresh id. The input slice is not modified.
func UpsertProduct(products []models.Product, form ProductForm, newID IDFunc) (models.Product, []models.Product, error) {
	p, err := BuildProduct(form)
	if err != nil {
		return models.Product{}, nil, err
	}
	next := cloneProducts(products)
	if p.ID != "" {
		i := indexOf(next, p.ID)
		if i < 0 {
			return models.Product{}, nil, ErrProductNotFound
		}
		next[i] = p
		return p.Clone(), next, nil
	}
	p.ID = newID()
	next = append(next, p)
	return p.Clone(), next, nil
}

// DeleteProduct removes the product by id. Sales referencing it keep their
// own snapshot and are not touched.
func DeleteProduct(products []models.Product, id string) ([]models.Product, error) {
	i := indexOf(products, id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	next := make([]models.Product, 0, len(products)-1)
	for j, p := range products {
		if j != i {
			next = append(next, p.Clone())
		}
	}
	return next, nil
}

// RecordSale charges quantity units of the product at its current effective
// price and returns the product collection with the stock decremented. The
// amount is frozen on the sale.
func RecordSale(products []models.Product, productID string, quantity int, today time.Time, newID IDFunc) (models.Sale, []models.Product, error) {
	if quantity < 1 {
		return models.Sale{}, nil, invalid("quantity", "must be at least 1")
	}
	i := indexOf(products, productID)
	if i < 0 {
		return models.Sale{}, nil, ErrProductNotFound
	}
	product := products[i]
	if quantity > product.Stock {
		return models.Sale{}, nil, ErrInsufficientStock
	}

	sale := models.Sale{
		ID:          newID(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Amount:      product.EffectivePrice().Mul(decimal.NewFromInt(int64(quantity))),
		Date:        today.Format(models.DateLayout),
	}
	next := cloneProducts(products)
	next[i].Stock -= quantity
	return sale, next, nil
}

// ParseSaleForm validates the raw sale form.
func ParseSaleForm(form SaleForm) (string, int, error) {
	id := strings.TrimSpace(form.ProductID)
	if id == "" {
		return "", 0, invalid("productId", "is required")
	}
	qty, err := parseCount("quantity", form.Quantity)
	if err != nil {
		return "", 0, err
	}
	return id, qty, nil
}

// RecordExpense captures the expense form. A blank date means today.
func RecordExpense(form ExpenseForm, today time.Time, newID IDFunc) (models.Expense, error) {
	desc := strings.TrimSpace(form.Description)
	if desc == "" {
		return models.Expense{}, invalid("description", "is required")
	}
	amount, err := parseMoney("amount", form.Amount)
	if err != nil {
		return models.Expense{}, err
	}
	date := strings.TrimSpace(form.Date)
	if date == "" {
		date = today.Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return models.Expense{}, invalid("date", "must be YYYY-MM-DD")
	}
	return models.Expense{
		ID:          newID(),
		Description: desc,
		Amount:      amount,
		Category:    strings.TrimSpace(form.Category),
		Date:        date,
	}, nil
}
