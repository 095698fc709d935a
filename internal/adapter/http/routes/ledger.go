package routes

import (
	"taller_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathInventory = "/inventory"
	PathCatalog   = "/catalog"
	PathMetrics   = "/metrics"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, sessionHandler *handlers.SessionHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.GET("/:order_id/document", orderHandler.GetOrderDocument)
		orders.POST("/:order_id/recompute", orderHandler.Recompute)
		orders.POST("/:order_id/tax/toggle", orderHandler.ToggleTax)
		orders.PATCH("/:order_id/payment", orderHandler.SetPaymentStatus)

		orders.PATCH("/:order_id/status", sessionHandler.TransitionStatus)
		orders.GET("/:order_id/session", sessionHandler.GetSession)
		orders.POST("/:order_id/session/start", sessionHandler.StartSession)
		orders.POST("/:order_id/session/pause", sessionHandler.PauseSession)
	}
}

func addChargeLineRoutes(rg *gin.RouterGroup, chargeLineHandler *handlers.ChargeLineHandler) {
	lines := rg.Group(PathOrders + "/:order_id/lines")
	{
		lines.GET("", chargeLineHandler.ListChargeLines)
		lines.POST("", chargeLineHandler.AddChargeLine)
		lines.PATCH("/:line_id", chargeLineHandler.UpdateChargeLine)
		lines.DELETE("/:line_id", chargeLineHandler.RemoveChargeLine)
		lines.POST("/:line_id/parts", chargeLineHandler.AttachNestedPart)
		lines.DELETE("/:line_id/parts/:part_id", chargeLineHandler.DetachNestedPart)
	}
}

func addInventoryRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventory := rg.Group(PathInventory)
	{
		inventory.GET("", inventoryHandler.ListInventory)
		inventory.GET("/shortfalls", inventoryHandler.ListShortfalls)
	}
	rg.GET(PathCatalog, inventoryHandler.ListCatalog)
}
