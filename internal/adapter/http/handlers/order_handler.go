package handlers

import (
	"log"
	"net/http"

	request "taller_ledger/internal/adapter/http/dto/request"
	response "taller_ledger/internal/adapter/http/dto/response"
	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the order board, the order aggregate and its payment flag.
type OrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewOrderHandler(uc usecase.IWorkOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary Create a work order
// @Tags orders
// @Accept json
// @Produce json
// @Param body body request.CreateOrderRequest true "Order"
// @Success 201 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, "order", err)
		return
	}
	log.Printf("[order][handler] create success order_id=%s folio=%d", order.ID, order.Folio)
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders godoc
// @Summary List work orders by folio
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} response.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context(), entities.OrderStatus(c.Query("status")))
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary Get a work order
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetOrderDocument godoc
// @Summary Order snapshot for document rendering
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} response.OrderDocumentResponse
// @Router /orders/{order_id}/document [get]
func (h *OrderHandler) GetOrderDocument(c *gin.Context) {
	doc, err := h.usecase.GetOrderDocument(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderDocument(doc))
}

// SetPaymentStatus godoc
// @Summary Set the payment flag
// @Tags orders
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param body body request.SetPaymentStatusRequest true "Payment"
// @Success 200 {object} response.LedgerResultResponse
// @Router /orders/{order_id}/payment [patch]
func (h *OrderHandler) SetPaymentStatus(c *gin.Context) {
	var payload request.SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.SetPaymentStatus(c.Request.Context(), payload.ToCommand(c.Param("order_id"), writeOptions(c, payload.ExpectedVersion)))
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

// Recompute godoc
// @Summary Re-derive the order total from its lines
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} response.LedgerResultResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /orders/{order_id}/recompute [post]
func (h *OrderHandler) Recompute(c *gin.Context) {
	res, err := h.usecase.Recompute(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, "order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

// ToggleTax godoc
// @Summary Toggle tax on the order total
// @Tags orders
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param body body request.VersionedRequest false "Expected version"
// @Success 200 {object} response.LedgerResultResponse
// @Router /orders/{order_id}/tax/toggle [post]
func (h *OrderHandler) ToggleTax(c *gin.Context) {
	var payload request.VersionedRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.ToggleTax(c.Request.Context(), usecase.ToggleTaxCommand{
		OrderID:      c.Param("order_id"),
		WriteOptions: writeOptions(c, payload.ExpectedVersion),
	})
	if err != nil {
		respondError(c, "order", err)
		return
	}
	log.Printf("[order][handler] toggle-tax success order_id=%s tax_included=%t total=%d", res.Order.ID, res.Order.TaxIncluded, res.Order.Total)
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}
