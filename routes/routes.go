package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"connectfit-backend/config"
	"connectfit-backend/controllers"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CorsOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		// Public routes
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/catalog", ctrl.GetCatalog)
		api.GET("/products/:id", ctrl.GetProduct)
		api.GET("/products/:id/whatsapp", ctrl.WhatsAppLink)

		// Session
		api.GET("/session", ctrl.GetSession)
		api.GET("/session/views/:view", ctrl.Navigate)
		api.POST("/session/login", ctrl.Login)
		api.POST("/session/logout", ctrl.Logout)
	}

	admin := api.Group("", ctrl.RequireAdmin)
	{
		// Inventory
		admin.GET("/products", ctrl.GetProducts)
		admin.POST("/products", ctrl.CreateProduct)
		admin.POST("/products/describe", ctrl.DescribeProduct)
		admin.PUT("/products/:id", ctrl.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.DeleteProduct)

		// Sales and expenses
		admin.GET("/sales", ctrl.GetSales)
		admin.POST("/sales", ctrl.CreateSale)
		admin.GET("/expenses", ctrl.GetExpenses)
		admin.POST("/expenses", ctrl.CreateExpense)

		// Dashboard and finance
		admin.GET("/stats", ctrl.GetStats)
		admin.GET("/finance/series", ctrl.GetSeries)
		admin.GET("/finance/movements", ctrl.GetMovements)
		admin.GET("/finance/movements.csv", ctrl.ExportMovementsCSV)
		admin.GET("/insights", ctrl.GetInsight)
		admin.POST("/insights", ctrl.RequestInsight)

		// Backup
		admin.GET("/backup", ctrl.ExportBackup)
		admin.POST("/backup", ctrl.ImportBackup)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
