package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"connectfit-backend/models"
)

const MaxBackupSize = 10 * 1024 * 1024 // 10MB

var errBackupTooLarge = fmt.Errorf("backup file exceeds %d bytes", MaxBackupSize)

// ExportBackup downloads every collection as one JSON document.
func (ctrl *Controller) ExportBackup(c *gin.Context) {
	snap := ctrl.Store.ExportSnapshot()
	day := time.Now().UTC().Format(models.DateLayout)
	if t, err := time.Parse(time.RFC3339, snap.ExportDate); err == nil {
		day = t.Format(models.DateLayout)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="connectfit_backup_%s.json"`, day))
	c.JSON(http.StatusOK, snap)
}

// ImportBackup restores a backup sent as a raw JSON body or as a multipart
// "file" field. Collections absent from the document are left alone.
func (ctrl *Controller) ImportBackup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	payload, err := readBackup(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := ctrl.Store.ImportSnapshot(ctx, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	zap.L().Info("backup imported",
		zap.Bool("products", res.Products),
		zap.Bool("sales", res.Sales),
		zap.Bool("expenses", res.Expenses))
	c.JSON(http.StatusOK, gin.H{"message": "Dados importados com sucesso!", "imported": res})
}

func readBackup(c *gin.Context) ([]byte, error) {
	if strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		if fh.Size > MaxBackupSize {
			return nil, errBackupTooLarge
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBackupSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxBackupSize {
		return nil, errBackupTooLarge
	}
	return data, nil
}
