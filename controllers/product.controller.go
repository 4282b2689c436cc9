// File: controllers/product.controller.go
package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"connectfit-backend/ledger"
	"connectfit-backend/media"
)

// bindProductForm accepts either a JSON body or an HTML form post.
func bindProductForm(c *gin.Context) (ledger.ProductForm, error) {
	var form ledger.ProductForm
	if isJSON(c) {
		err := c.ShouldBindJSON(&form)
		return form, err
	}
	form = ledger.ProductForm{
		ID:            c.PostForm("id"),
		Name:          c.PostForm("name"),
		Category:      c.PostForm("category"),
		Price:         c.PostForm("price"),
		PurchasePrice: c.PostForm("purchasePrice"),
		Stock:         c.PostForm("stock"),
		Sizes:         c.PostFormArray("sizes"),
		Colors:        c.PostFormArray("colors"),
		Images:        splitImages(c.PostFormArray("images")),
		Description:   c.PostForm("description"),
	}
	if v, ok := c.GetPostForm("promotionPrice"); ok {
		form.PromotionPrice = v
	}
	if v, ok := c.GetPostForm("isOnPromotion"); ok {
		form.IsOnPromotion = v
	}
	return form, nil
}

// splitImages accepts repeated fields as well as one comma-separated field.
func splitImages(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// GetProducts lists the full inventory, purchase prices included.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": ctrl.Store.Products()})
}

// CreateProduct adds a product to the inventory.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	form, err := bindProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	form.ID = ""
	ctrl.saveProduct(c, form, http.StatusCreated)
}

// UpdateProduct replaces the product identified by :id.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	form, err := bindProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	form.ID = c.Param("id")
	ctrl.saveProduct(c, form, http.StatusOK)
}

func (ctrl *Controller) saveProduct(c *gin.Context, form ledger.ProductForm, status int) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	images, err := media.ResolveImages(ctx, ctrl.Uploader, form.Images)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload image"})
		return
	}
	form.Images = images

	product, err := ctrl.Store.SaveProduct(ctx, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, gin.H{"product": product})
}

// DeleteProduct removes a product. Its past sales stay in the ledger.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.Store.DeleteProduct(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type describeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// DescribeProduct asks the writer for marketing copy.
func (ctrl *Controller) DescribeProduct(c *gin.Context) {
	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": ctrl.Writer.DescribeProduct(c.Request.Context(), req.Name, req.Category)})
}
