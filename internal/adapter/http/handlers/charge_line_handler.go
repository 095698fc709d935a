package handlers

import (
	"log"
	"net/http"

	request "taller_ledger/internal/adapter/http/dto/request"
	response "taller_ledger/internal/adapter/http/dto/response"
	"taller_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ChargeLineHandler serves the line item ledger of an order.
type ChargeLineHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewChargeLineHandler(uc usecase.IWorkOrderUseCase) *ChargeLineHandler {
	return &ChargeLineHandler{usecase: uc}
}

// ListChargeLines godoc
// @Summary List the charge lines of an order
// @Tags lines
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {array} response.ChargeLineResponse
// @Router /orders/{order_id}/lines [get]
func (h *ChargeLineHandler) ListChargeLines(c *gin.Context) {
	lines, err := h.usecase.ListChargeLines(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, "ledger", err)
		return
	}
	c.JSON(http.StatusOK, response.FromChargeLines(lines))
}

// AddChargeLine godoc
// @Summary Add a charge line
// @Tags lines
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param body body request.AddChargeLineRequest true "Line"
// @Success 201 {object} response.LedgerResultResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /orders/{order_id}/lines [post]
func (h *ChargeLineHandler) AddChargeLine(c *gin.Context) {
	var payload request.AddChargeLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.AddChargeLine(c.Request.Context(), payload.ToCommand(c.Param("order_id"), writeOptions(c, payload.ExpectedVersion)))
	if err != nil {
		respondError(c, "ledger", err)
		return
	}
	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	log.Printf("[ledger][handler] add-line order_id=%s line_id=%s replayed=%t", res.Order.ID, lineID(res), res.Replayed)
	c.JSON(status, response.FromLedgerResult(res))
}

// UpdateChargeLine godoc
// @Summary Edit label or unit price of a line
// @Tags lines
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param line_id path string true "Line ID"
// @Param body body request.UpdateChargeLineRequest true "Changes"
// @Success 200 {object} response.LedgerResultResponse
// @Router /orders/{order_id}/lines/{line_id} [patch]
func (h *ChargeLineHandler) UpdateChargeLine(c *gin.Context) {
	var payload request.UpdateChargeLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	cmd := payload.ToCommand(c.Param("order_id"), c.Param("line_id"), writeOptions(c, payload.ExpectedVersion))
	res, err := h.usecase.UpdateChargeLine(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, "ledger", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

// RemoveChargeLine godoc
// @Summary Remove a line and return its parts to stock
// @Tags lines
// @Produce json
// @Param order_id path string true "Order ID"
// @Param line_id path string true "Line ID"
// @Param expected_version query int false "Line version"
// @Success 200 {object} response.LedgerResultResponse
// @Router /orders/{order_id}/lines/{line_id} [delete]
func (h *ChargeLineHandler) RemoveChargeLine(c *gin.Context) {
	version, ok := queryVersion(c)
	if !ok {
		respondAppError(c, errInvalidVersion)
		return
	}

	res, err := h.usecase.RemoveChargeLine(c.Request.Context(), usecase.RemoveChargeLineCommand{
		OrderID:      c.Param("order_id"),
		LineID:       c.Param("line_id"),
		WriteOptions: writeOptions(c, version),
	})
	if err != nil {
		respondError(c, "ledger", err)
		return
	}
	log.Printf("[ledger][handler] remove-line order_id=%s line_id=%s total=%d", res.Order.ID, c.Param("line_id"), res.Order.Total)
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

// AttachNestedPart godoc
// @Summary Attach a part to a line
// @Tags lines
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param line_id path string true "Line ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Param body body request.AttachNestedPartRequest true "Part"
// @Success 201 {object} response.LedgerResultResponse
// @Router /orders/{order_id}/lines/{line_id}/parts [post]
func (h *ChargeLineHandler) AttachNestedPart(c *gin.Context) {
	var payload request.AttachNestedPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	cmd := payload.ToCommand(c.Param("order_id"), c.Param("line_id"), writeOptions(c, payload.ExpectedVersion))
	res, err := h.usecase.AttachNestedPart(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, "ledger", err)
		return
	}
	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	if len(res.StockSignals) > 0 {
		log.Printf("[ledger][handler] attach-part left negative stock order_id=%s items=%d", res.Order.ID, len(res.StockSignals))
	}
	c.JSON(status, response.FromLedgerResult(res))
}

// DetachNestedPart godoc
// @Summary Detach a part from a line
// @Tags lines
// @Produce json
// @Param order_id path string true "Order ID"
// @Param line_id path string true "Line ID"
// @Param part_id path string true "Part ID"
// @Param expected_version query int false "Line version"
// @Success 200 {object} response.LedgerResultResponse
// @Router /orders/{order_id}/lines/{line_id}/parts/{part_id} [delete]
func (h *ChargeLineHandler) DetachNestedPart(c *gin.Context) {
	version, ok := queryVersion(c)
	if !ok {
		respondAppError(c, errInvalidVersion)
		return
	}

	res, err := h.usecase.DetachNestedPart(c.Request.Context(), usecase.DetachNestedPartCommand{
		OrderID:      c.Param("order_id"),
		LineID:       c.Param("line_id"),
		PartID:       c.Param("part_id"),
		WriteOptions: writeOptions(c, version),
	})
	if err != nil {
		respondError(c, "ledger", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

func lineID(res usecase.LedgerResult) string {
	if res.Line == nil {
		return ""
	}
	return res.Line.ID
}
