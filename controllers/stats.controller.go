package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"connectfit-backend/ledger"
)

// GetStats returns the dashboard figures.
func (ctrl *Controller) GetStats(c *gin.Context) {
	stats := ledger.Stats(ctrl.Store.Products(), ctrl.Store.Sales(), ctrl.Store.Expenses())
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
