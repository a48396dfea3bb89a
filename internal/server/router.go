package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"personalfinance/internal/handlers"
	"personalfinance/internal/middleware"
	"personalfinance/internal/services"
)

// NewRouter builds the gin engine with every /api/v1 route registered.
// Monthly dashboard views are computed in loc.
func NewRouter(ledgerService services.LedgerServicer, auditService services.AuditServicer, loc *time.Location) *gin.Engine {
	walletHandler := handlers.NewWalletHandler(ledgerService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	goalHandler := handlers.NewGoalHandler(ledgerService)
	dashboardHandler := handlers.NewDashboardHandler(ledgerService, loc)
	auditHandler := handlers.NewAuditHandler(auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	wallets := v1.Group("/wallets")
	wallets.GET("", walletHandler.GetWallets)
	wallets.GET("/:id", walletHandler.GetWalletByID)

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	v1.POST("/transfers", transactionHandler.CreateTransfer)

	goals := v1.Group("/goals")
	goals.GET("", goalHandler.GetGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("/:id", goalHandler.GetGoalByID)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/contributions", goalHandler.Contribute)

	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/presets", dashboardHandler.GetPresets)
	v1.GET("/activity", auditHandler.GetActivity)

	return router
}
