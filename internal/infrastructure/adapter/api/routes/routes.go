package routes

import (
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Auth   *handler.AuthHandler
	Ledger *handler.LedgerHandler
	Health *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API.
// Ledger routes require a session token verified by authMiddleware.
func SetupRoutes(router *gin.Engine, handlers Handlers, authMiddleware gin.HandlerFunc) {
	router.GET("/health", handlers.Health.Health)

	api := router.Group("/api")
	{
		api.POST("/register", handlers.Auth.Register)
		api.POST("/login", handlers.Auth.Login)
	}

	ledger := api.Group("", authMiddleware)
	{
		ledger.POST("/transactions", handlers.Ledger.CreateTransaction)
		ledger.GET("/transactions", handlers.Ledger.ListTransactions)
		ledger.POST("/income", handlers.Ledger.RecordIncome)
		ledger.POST("/expense", handlers.Ledger.RecordExpense)
		ledger.GET("/dashboard", handlers.Ledger.GetReport)
		ledger.GET("/report", handlers.Ledger.GetReport)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins...))
}

// NewRouter builds a gin engine with the global middlewares and every route mounted
func NewRouter(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
	handlers Handlers,
	authMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	SetupMiddlewares(router, logger, timeProvider, allowedOrigins)
	SetupRoutes(router, handlers, authMiddleware)
	return router
}
