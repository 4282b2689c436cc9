// File: controllers/controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"connectfit-backend/auth"
	"connectfit-backend/insight"
	"connectfit-backend/ledger"
	"connectfit-backend/media"
	"connectfit-backend/store"
)

// Controller holds the dependencies shared by every handler.
type Controller struct {
	Store    *store.Store
	Gate     *auth.Gate
	Insights *insight.Coordinator
	Writer   *insight.Service
	Uploader media.Uploader
	Driver   string
}

// respondError maps domain errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *ledger.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, ledger.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
	case errors.Is(err, ledger.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Estoque insuficiente!"})
	case errors.Is(err, store.ErrInvalidBackup):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo de backup inválido"})
	default:
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isJSON(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEJSON
}
