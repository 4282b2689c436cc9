package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"connectfit-backend/insight"
)

// GetInsight returns the last generated insight and whether one is running.
func (ctrl *Controller) GetInsight(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"insight": ctrl.Insights.State()})
}

// RequestInsight generates a fresh insight over the current ledger. A newer
// request cancels this one.
func (ctrl *Controller) RequestInsight(c *gin.Context) {
	state, err := ctrl.Insights.Request(c.Request.Context(), ctrl.Store.Sales(), ctrl.Store.Expenses())
	if errors.Is(err, insight.ErrSuperseded) {
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer request", "insight": state})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insight": state})
}
