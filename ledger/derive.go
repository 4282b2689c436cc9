// Package ledger holds the pure derivation and mutation rules over the
// product, sale and expense collections.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"connectfit-backend/models"
)

// Totals sums sale and expense amounts. Profit is always sales minus expenses.
func Totals(sales []models.Sale, expenses []models.Expense) models.Totals {
	totalSales := decimal.Zero
	for _, s := range sales {
		totalSales = totalSales.Add(s.Amount)
	}
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}
	return models.Totals{
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		Profit:        totalSales.Sub(totalExpenses),
	}
}

// TimeSeries buckets both collections by date, one row per distinct date,
// in chronological order.
func TimeSeries(sales []models.Sale, expenses []models.Expense) []models.SeriesPoint {
	buckets := make(map[string]*models.SeriesPoint)
	bucket := func(date string) *models.SeriesPoint {
		p, ok := buckets[date]
		if !ok {
			p = &models.SeriesPoint{Date: date, Sales: decimal.Zero, Expenses: decimal.Zero}
			buckets[date] = p
		}
		return p
	}
	for _, s := range sales {
		p := bucket(s.Date)
		p.Sales = p.Sales.Add(s.Amount)
	}
	for _, e := range expenses {
		p := bucket(e.Date)
		p.Expenses = p.Expenses.Add(e.Amount)
	}

	points := make([]models.SeriesPoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return dateLess(points[i].Date, points[j].Date)
	})
	return points
}

// dateLess orders parsed dates chronologically. Unparseable dates sort after
// parseable ones and fall back to string order among themselves.
func dateLess(a, b string) bool {
	ta, errA := parseDate(a)
	tb, errB := parseDate(b)
	switch {
	case errA == nil && errB == nil:
		if !ta.Equal(tb) {
			return ta.Before(tb)
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return t, nil
	}
	return dateparse.ParseIn(s, time.UTC)
}

// FilterCatalog keeps products whose name contains search (case-insensitive)
// and whose category matches, with models.AllCategories as wildcard.
func FilterCatalog(products []models.Product, search, category string) []models.Product {
	needle := strings.ToLower(search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		matchSearch := strings.Contains(strings.ToLower(p.Name), needle)
		matchCategory := category == models.AllCategories || string(p.Category) == category
		if matchSearch && matchCategory {
			out = append(out, p.Clone())
		}
	}
	return out
}

// RecentMovements merges sales and expenses newest first and keeps at most
// limit rows. limit <= 0 keeps everything.
func RecentMovements(sales []models.Sale, expenses []models.Expense, limit int) []models.Movement {
	rows := make([]models.Movement, 0, len(sales)+len(expenses))
	for _, s := range sales {
		rows = append(rows, models.Movement{
			ID:          s.ID,
			Kind:        models.MovementSale,
			Description: s.ProductName,
			Quantity:    s.Quantity,
			Amount:      s.Amount,
			Date:        s.Date,
		})
	}
	for _, e := range expenses {
		rows = append(rows, models.Movement{
			ID:          e.ID,
			Kind:        models.MovementExpense,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.Date,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return dateLess(rows[j].Date, rows[i].Date)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// Stats builds the dashboard figures, including stock valued at cost and at
// effective sale price.
func Stats(products []models.Product, sales []models.Sale, expenses []models.Expense) models.Stats {
	st := models.Stats{
		Totals:         Totals(sales, expenses),
		TotalProducts:  len(products),
		SalesCount:     len(sales),
		ExpensesCount:  len(expenses),
		StockCostValue: decimal.Zero,
		StockSaleValue: decimal.Zero,
	}
	for _, p := range products {
		units := decimal.NewFromInt(int64(p.Stock))
		st.UnitsInStock += p.Stock
		st.StockCostValue = st.StockCostValue.Add(p.PurchasePrice.Mul(units))
		st.StockSaleValue = st.StockSaleValue.Add(p.EffectivePrice().Mul(units))
		if p.HasActivePromotion() {
			st.OnPromotion++
		}
	}
	return st
}
