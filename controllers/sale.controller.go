package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"connectfit-backend/ledger"
)

func (ctrl *Controller) GetSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sales": ctrl.Store.Sales()})
}

// CreateSale records a sale at the product's current effective price and
// decrements its stock.
func (ctrl *Controller) CreateSale(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var form ledger.SaleForm
	if isJSON(c) {
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		form = ledger.SaleForm{ProductID: c.PostForm("productId"), Quantity: c.PostForm("quantity")}
	}

	productID, quantity, err := ledger.ParseSaleForm(form)
	if err != nil {
		respondError(c, err)
		return
	}
	sale, err := ctrl.Store.RecordSale(ctx, productID, quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sale": sale})
}
