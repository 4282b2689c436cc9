package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connectfit-backend/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

var day = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func fixtureProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Legging High Compression", Category: models.CategoryLegging, Price: dec("129.90"), PromotionPrice: decPtr("99.90"), IsOnPromotion: true, Stock: 15},
		{ID: "2", Name: "Top Power Fit", Category: models.CategoryTop, Price: dec("79.90"), Stock: 22},
		{ID: "3", Name: "Shorts Legging Cut", Category: models.CategoryShorts, Price: dec("59.90"), Stock: 5},
		{ID: "4", Name: "Camiseta Dry-Fit Pro", Category: models.CategoryCamiseta, Price: dec("64.90"), PromotionPrice: decPtr("49.90"), Stock: 30},
	}
}

func TestTotals_ProfitIsSalesMinusExpenses(t *testing.T) {
	sales := []models.Sale{{Amount: dec("259.80")}, {Amount: dec("0.10")}, {Amount: dec("0.20")}}
	expenses := []models.Expense{{Amount: dec("1200")}, {Amount: dec("0.3")}}

	got := Totals(sales, expenses)
	assert.True(t, got.TotalSales.Equal(dec("260.10")))
	assert.True(t, got.TotalExpenses.Equal(dec("1200.3")))
	assert.True(t, got.Profit.Equal(got.TotalSales.Sub(got.TotalExpenses)))
	assert.True(t, got.Profit.Equal(dec("-940.2")))
}

func TestTotals_Empty(t *testing.T) {
	got := Totals(nil, nil)
	assert.True(t, got.TotalSales.IsZero())
	assert.True(t, got.TotalExpenses.IsZero())
	assert.True(t, got.Profit.IsZero())
}

func TestTimeSeries_GroupsAndOrdersByDate(t *testing.T) {
	sales := []models.Sale{
		{Amount: dec("10"), Date: "2023-10-02"},
		{Amount: dec("5"), Date: "2023-09-30"},
		{Amount: dec("7"), Date: "2023-10-02"},
	}
	expenses := []models.Expense{
		{Amount: dec("3"), Date: "2023-10-02"},
		{Amount: dec("100"), Date: "2023-09-25"},
	}

	got := TimeSeries(sales, expenses)
	require.Len(t, got, 3)
	assert.Equal(t, "2023-09-25", got[0].Date)
	assert.True(t, got[0].Sales.IsZero())
	assert.True(t, got[0].Expenses.Equal(dec("100")))
	assert.Equal(t, "2023-09-30", got[1].Date)
	assert.Equal(t, "2023-10-02", got[2].Date)
	assert.True(t, got[2].Sales.Equal(dec("17")))
	assert.True(t, got[2].Expenses.Equal(dec("3")))
}

func TestTimeSeries_ChronologicalNotLexical(t *testing.T) {
	sales := []models.Sale{
		{Amount: dec("1"), Date: "2023-10-10"},
		{Amount: dec("1"), Date: "2023-9-5"},
	}
	got := TimeSeries(sales, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "2023-9-5", got[0].Date)
	assert.Equal(t, "2023-10-10", got[1].Date)
}

func TestTimeSeries_UnparseableDatesSortLast(t *testing.T) {
	sales := []models.Sale{
		{Amount: dec("1"), Date: "not-a-date"},
		{Amount: dec("1"), Date: "2023-01-01"},
	}
	got := TimeSeries(sales, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "2023-01-01", got[0].Date)
	assert.Equal(t, "not-a-date", got[1].Date)
}

func TestFilterCatalog(t *testing.T) {
	products := fixtureProducts()

	tests := []struct {
		name     string
		search   string
		category string
		wantIDs  []string
	}{
		{name: "search ignores case and category wildcard", search: "LEGGING", category: models.AllCategories, wantIDs: []string{"1", "3"}},
		{name: "search and category must both hold", search: "legging", category: "Shorts", wantIDs: []string{"3"}},
		{name: "empty search with wildcard returns all", search: "", category: models.AllCategories, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "category only", search: "", category: "Top", wantIDs: []string{"2"}},
		{name: "no match", search: "jaqueta", category: models.AllCategories, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCatalog(products, tt.search, tt.category)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRecentMovements(t *testing.T) {
	sales := []models.Sale{
		{ID: "s1", ProductName: "Top", Quantity: 1, Amount: dec("10"), Date: "2023-10-01"},
		{ID: "s2", ProductName: "Legging", Quantity: 2, Amount: dec("20"), Date: "2023-10-03"},
	}
	expenses := []models.Expense{{ID: "e1", Description: "Reposição Estoque", Amount: dec("1200"), Date: "2023-10-02"}}

	got := RecentMovements(sales, expenses, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "s2", got[0].ID)
	assert.Equal(t, models.MovementSale, got[0].Kind)
	assert.Equal(t, "e1", got[1].ID)
	assert.Equal(t, models.MovementExpense, got[1].Kind)

	assert.Len(t, RecentMovements(sales, expenses, 0), 3)
}

func TestStats(t *testing.T) {
	products := []models.Product{
		{ID: "1", Price: dec("100"), PurchasePrice: dec("40"), PromotionPrice: decPtr("80"), IsOnPromotion: true, Stock: 2},
		{ID: "2", Price: dec("50"), PurchasePrice: dec("20"), Stock: 3},
	}
	st := Stats(products, []models.Sale{{Amount: dec("10")}}, nil)
	assert.Equal(t, 2, st.TotalProducts)
	assert.Equal(t, 5, st.UnitsInStock)
	assert.Equal(t, 1, st.OnPromotion)
	assert.Equal(t, 1, st.SalesCount)
	assert.True(t, st.StockCostValue.Equal(dec("140")))
	assert.True(t, st.StockSaleValue.Equal(dec("310")))
	assert.True(t, st.Profit.Equal(dec("10")))
}

func TestRecordSale_SeedScenario(t *testing.T) {
	products := fixtureProducts()

	sale, next, err := RecordSale(products, "2", 3, day, sequentialIDs("s"))
	require.NoError(t, err)
	assert.True(t, sale.Amount.Equal(dec("239.70")), "amount %s", sale.Amount)
	assert.Equal(t, "Top Power Fit", sale.ProductName)
	assert.Equal(t, "2", sale.ProductID)
	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, "2024-03-15", sale.Date)
	assert.Equal(t, 19, next[1].Stock)
	assert.Equal(t, 22, products[1].Stock, "input collection must not change")
}

func TestRecordSale_RejectsInsufficientStock(t *testing.T) {
	products := fixtureProducts()

	_, next, err := RecordSale(products, "3", 6, day, sequentialIDs("s"))
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, next)
	assert.Equal(t, 5, products[2].Stock)

	sale, next, err := RecordSale(products, "3", 5, day, sequentialIDs("s"))
	require.NoError(t, err)
	assert.Equal(t, 0, next[2].Stock)
	assert.True(t, sale.Amount.Equal(dec("299.50")))
}

func TestRecordSale_Errors(t *testing.T) {
	products := fixtureProducts()

	_, _, err := RecordSale(products, "missing", 1, day, sequentialIDs("s"))
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, _, err = RecordSale(products, "2", 0, day, sequentialIDs("s"))
	assert.True(t, IsValidation(err))
}

func TestRecordSale_CapturesPromotionPrice(t *testing.T) {
	products := []models.Product{{ID: "p", Name: "Promo", Price: dec("100"), PromotionPrice: decPtr("80"), IsOnPromotion: true, Stock: 10}}

	sale, next, err := RecordSale(products, "p", 2, day, sequentialIDs("s"))
	require.NoError(t, err)

	next[0].IsOnPromotion = false
	assert.True(t, sale.Amount.Equal(dec("160")))
	assert.True(t, next[0].EffectivePrice().Equal(dec("100")))
}

func TestUpsertProduct_Create(t *testing.T) {
	products := fixtureProducts()
	form := ProductForm{
		Name:          "Conjunto Flow",
		Category:      "Conjunto",
		Price:         "149,90",
		PurchasePrice: 60.0,
		Stock:         "12",
		IsOnPromotion: "on",
	}

	p, next, err := UpsertProduct(products, form, sequentialIDs("new"))
	require.NoError(t, err)
	assert.Equal(t, "new1", p.ID)
	assert.Len(t, next, len(products)+1)
	assert.Equal(t, p.ID, next[len(next)-1].ID)
	assert.True(t, p.Price.Equal(dec("149.90")))
	assert.True(t, p.PurchasePrice.Equal(dec("60")))
	assert.Nil(t, p.PromotionPrice)
	assert.True(t, p.IsOnPromotion)
	assert.False(t, p.HasActivePromotion())
	assert.Equal(t, models.Sizes, p.Sizes)
	assert.Equal(t, models.Colors, p.Colors)
	assert.Equal(t, []string{models.PlaceholderImage}, p.Images)
	assert.Equal(t, models.DefaultDescription, p.Description)
	assert.Len(t, products, 4)
}

func TestUpsertProduct_EditReplacesInPlace(t *testing.T) {
	products := fixtureProducts()
	form := ProductForm{
		ID:             "2",
		Name:           "Top Power Fit II",
		Category:       "Top",
		Price:          "89.90",
		PurchasePrice:  "30",
		PromotionPrice: "69.90",
		IsOnPromotion:  true,
		Stock:          7,
		Images:         []string{"https://cdn/img.png"},
		Description:    "Novo modelo",
	}

	p, next, err := UpsertProduct(products, form, sequentialIDs("new"))
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)
	require.Len(t, next, 4)
	assert.Equal(t, "Top Power Fit II", next[1].Name)
	assert.Equal(t, 7, next[1].Stock)
	assert.True(t, next[1].EffectivePrice().Equal(dec("69.90")))
	assert.Equal(t, "Top Power Fit", products[1].Name)
}

func TestUpsertProduct_Validation(t *testing.T) {
	valid := func() ProductForm {
		return ProductForm{Name: "X", Category: "Top", Price: "10", PurchasePrice: "5", Stock: "1"}
	}

	tests := []struct {
		name   string
		modify func(*ProductForm)
		field  string
	}{
		{name: "missing price", modify: func(f *ProductForm) { f.Price = nil }, field: "price"},
		{name: "non numeric price", modify: func(f *ProductForm) { f.Price = "abc" }, field: "price"},
		{name: "missing purchase price", modify: func(f *ProductForm) { f.PurchasePrice = "" }, field: "purchasePrice"},
		{name: "non numeric stock", modify: func(f *ProductForm) { f.Stock = "muitos" }, field: "stock"},
		{name: "negative stock", modify: func(f *ProductForm) { f.Stock = "-1" }, field: "stock"},
		{name: "stock beyond int64", modify: func(f *ProductForm) { f.Stock = "18446744073709551621" }, field: "stock"},
		{name: "stock beyond int32", modify: func(f *ProductForm) { f.Stock = "3000000000" }, field: "stock"},
		{name: "negative price", modify: func(f *ProductForm) { f.Price = -3.5 }, field: "price"},
		{name: "bad promotion price", modify: func(f *ProductForm) { f.PromotionPrice = "x" }, field: "promotionPrice"},
		{name: "unknown category", modify: func(f *ProductForm) { f.Category = "Jaqueta" }, field: "category"},
		{name: "missing name", modify: func(f *ProductForm) { f.Name = "  " }, field: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid()
			tt.modify(&form)
			_, next, err := UpsertProduct(fixtureProducts(), form, sequentialIDs("n"))
			require.Error(t, err)
			assert.Nil(t, next)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestUpsertProduct_UnknownID(t *testing.T) {
	form := ProductForm{ID: "nope", Name: "X", Category: "Top", Price: "10", PurchasePrice: "5", Stock: "1"}
	_, _, err := UpsertProduct(fixtureProducts(), form, sequentialIDs("n"))
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	products := fixtureProducts()
	next, err := DeleteProduct(products, "2")
	require.NoError(t, err)
	assert.Len(t, next, 3)
	for _, p := range next {
		assert.NotEqual(t, "2", p.ID)
	}
	assert.Len(t, products, 4)

	_, err = DeleteProduct(products, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRecordExpense(t *testing.T) {
	e, err := RecordExpense(ExpenseForm{Description: "Embalagens", Amount: "35.5", Category: "Operacional", Date: "2024-03-01"}, day, sequentialIDs("e"))
	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
	assert.True(t, e.Amount.Equal(dec("35.5")))
	assert.Equal(t, "2024-03-01", e.Date)

	e, err = RecordExpense(ExpenseForm{Description: "Frete", Amount: 12}, day, sequentialIDs("e"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", e.Date)

	_, err = RecordExpense(ExpenseForm{Description: "Frete", Amount: "doze"}, day, sequentialIDs("e"))
	assert.True(t, IsValidation(err))

	_, err = RecordExpense(ExpenseForm{Description: "Frete", Amount: "1", Date: "15/03/2024"}, day, sequentialIDs("e"))
	assert.True(t, IsValidation(err))
}

func TestParseSaleForm(t *testing.T) {
	id, qty, err := ParseSaleForm(SaleForm{ProductID: " 2 ", Quantity: "3"})
	require.NoError(t, err)
	assert.Equal(t, "2", id)
	assert.Equal(t, 3, qty)

	_, _, err = ParseSaleForm(SaleForm{ProductID: "2", Quantity: "três"})
	assert.True(t, IsValidation(err))

	_, _, err = ParseSaleForm(SaleForm{Quantity: 1})
	assert.True(t, IsValidation(err))

	for _, huge := range []interface{}{"18446744073709551617", "-18446744073709551615", 1e20} {
		_, qty, err := ParseSaleForm(SaleForm{ProductID: "2", Quantity: huge})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "%v", huge)
		assert.Equal(t, "quantity", verr.Field)
		assert.Zero(t, qty)
	}
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t,
		"https://wa.me/?text=Ol%C3%A1%21%20Tenho%20interesse%20no%20produto%3A%20Top%20Power%20Fit",
		WhatsAppURL("Top Power Fit"))
	assert.Contains(t, WhatsAppURL("Shorts 2+1"), "Shorts%202%2B1")
}
