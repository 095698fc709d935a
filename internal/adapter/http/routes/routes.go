package routes

import (
	"log"
	"strconv"

	_ "taller_ledger/docs"
	"taller_ledger/internal/adapter/http/handlers"
	"taller_ledger/internal/infrastructure/metrics"
	"taller_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires every handler on top of the work order use case.
func NewRouter(workOrders usecase.IWorkOrderUseCase) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(metrics.Handler()))

	orderHandler := handlers.NewOrderHandler(workOrders)
	chargeLineHandler := handlers.NewChargeLineHandler(workOrders)
	sessionHandler := handlers.NewSessionHandler(workOrders)
	inventoryHandler := handlers.NewInventoryHandler(workOrders)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, sessionHandler)
	addChargeLineRoutes(v1, chargeLineHandler)
	addInventoryRoutes(v1, inventoryHandler)

	return router
}

// Run will start the server
func Run(router *gin.Engine, port int) {
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
