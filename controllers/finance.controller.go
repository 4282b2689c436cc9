package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"

	"connectfit-backend/ledger"
)

const defaultMovementsLimit = 10

// GetSeries returns per-day sales and expense totals in date order.
func (ctrl *Controller) GetSeries(c *gin.Context) {
	sales, expenses := ctrl.Store.Sales(), ctrl.Store.Expenses()
	c.JSON(http.StatusOK, gin.H{
		"totals": ledger.Totals(sales, expenses),
		"series": ledger.TimeSeries(sales, expenses),
	})
}

// GetMovements returns the newest ledger rows; ?limit=0 returns all of them.
func (ctrl *Controller) GetMovements(c *gin.Context) {
	limit := defaultMovementsLimit
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := cast.ToIntE(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	rows := ledger.RecentMovements(ctrl.Store.Sales(), ctrl.Store.Expenses(), limit)
	c.JSON(http.StatusOK, gin.H{"movements": rows})
}

type movementRow struct {
	Date        string `csv:"data"`
	Kind        string `csv:"tipo"`
	Description string `csv:"descricao"`
	Quantity    int    `csv:"quantidade"`
	Amount      string `csv:"valor"`
}

// ExportMovementsCSV downloads the whole ledger as CSV, newest first.
func (ctrl *Controller) ExportMovementsCSV(c *gin.Context) {
	movements := ledger.RecentMovements(ctrl.Store.Sales(), ctrl.Store.Expenses(), 0)
	rows := make([]movementRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, movementRow{
			Date:        m.Date,
			Kind:        m.Kind,
			Description: m.Description,
			Quantity:    m.Quantity,
			Amount:      m.Amount.StringFixed(2),
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="connectfit_movimentacoes.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
