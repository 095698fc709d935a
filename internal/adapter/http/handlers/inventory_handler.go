package handlers

import (
	"net/http"

	response "taller_ledger/internal/adapter/http/dto/response"
	"taller_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InventoryHandler exposes read-only stock and catalog views. Their CRUD
// screens own the records.
type InventoryHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewInventoryHandler(uc usecase.IWorkOrderUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// ListInventory godoc
// @Summary List inventory items by SKU
// @Tags inventory
// @Produce json
// @Success 200 {array} response.InventoryItemResponse
// @Router /inventory [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items, err := h.usecase.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

// ListShortfalls godoc
// @Summary Items at or below their reorder threshold, most negative first
// @Tags inventory
// @Produce json
// @Success 200 {array} response.InventoryItemResponse
// @Router /inventory/shortfalls [get]
func (h *InventoryHandler) ListShortfalls(c *gin.Context) {
	items, err := h.usecase.ListShortfalls(c.Request.Context())
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

// ListCatalog godoc
// @Summary List catalog services
// @Tags catalog
// @Produce json
// @Success 200 {array} response.CatalogServiceResponse
// @Router /catalog [get]
func (h *InventoryHandler) ListCatalog(c *gin.Context) {
	services, err := h.usecase.ListCatalog(c.Request.Context())
	if err != nil {
		respondError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogServices(services))
}
