package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"connectfit-backend/ledger"
	"connectfit-backend/models"
)

// GetCatalog lists products for shoppers, filtered by ?q= and ?category=.
func (ctrl *Controller) GetCatalog(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		category = models.AllCategories
	}
	filtered := ledger.FilterCatalog(ctrl.Store.Products(), c.Query("q"), category)

	items := make([]models.CatalogItem, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, p.CatalogItem())
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

// GetProduct returns the shopper view of a single product.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	p, ok := ctrl.Store.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p.CatalogItem()})
}

// WhatsAppLink returns the wa.me hand-off URL for a product.
func (ctrl *Controller) WhatsAppLink(c *gin.Context) {
	p, ok := ctrl.Store.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": ledger.WhatsAppURL(p.Name)})
}
