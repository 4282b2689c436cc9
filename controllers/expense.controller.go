package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"connectfit-backend/ledger"
)

func (ctrl *Controller) GetExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"expenses": ctrl.Store.Expenses()})
}

func (ctrl *Controller) CreateExpense(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var form ledger.ExpenseForm
	if isJSON(c) {
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		form = ledger.ExpenseForm{
			Description: c.PostForm("description"),
			Amount:      c.PostForm("amount"),
			Category:    c.PostForm("category"),
			Date:        c.PostForm("date"),
		}
	}

	expense, err := ctrl.Store.RecordExpense(ctx, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}
