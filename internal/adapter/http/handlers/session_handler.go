package handlers

import (
	"context"
	"log"
	"net/http"

	request "taller_ledger/internal/adapter/http/dto/request"
	response "taller_ledger/internal/adapter/http/dto/response"
	"taller_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves the workflow status and the labor timer.
type SessionHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewSessionHandler(uc usecase.IWorkOrderUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// GetSession godoc
// @Summary Labor timer state and elapsed minutes
// @Tags session
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} response.SessionResponse
// @Router /orders/{order_id}/session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	state, err := h.usecase.GetSession(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, "session", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(state.Order, state.ElapsedMinutes))
}

// StartSession godoc
// @Summary Start the labor timer
// @Tags session
// @Produce json
// @Param order_id path string true "Order ID"
// @Param body body request.VersionedRequest false "Expected version"
// @Success 200 {object} response.LedgerResultResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /orders/{order_id}/session/start [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	h.toggleSession(c, "start", h.usecase.StartSession)
}

// PauseSession godoc
// @Summary Pause the labor timer
// @Tags session
// @Produce json
// @Param order_id path string true "Order ID"
// @Param body body request.VersionedRequest false "Expected version"
// @Success 200 {object} response.LedgerResultResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /orders/{order_id}/session/pause [post]
func (h *SessionHandler) PauseSession(c *gin.Context) {
	h.toggleSession(c, "pause", h.usecase.PauseSession)
}

func (h *SessionHandler) toggleSession(
	c *gin.Context,
	action string,
	apply func(ctx context.Context, cmd usecase.SessionCommand) (usecase.LedgerResult, error),
) {
	var payload request.VersionedRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	res, err := apply(c.Request.Context(), usecase.SessionCommand{
		OrderID:      c.Param("order_id"),
		WriteOptions: writeOptions(c, payload.ExpectedVersion),
	})
	if err != nil {
		respondError(c, "session", err)
		return
	}
	log.Printf("[session][handler] %s success order_id=%s accumulated=%d", action, res.Order.ID, res.Order.LaborMinutesAccumulated)
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}

// TransitionStatus godoc
// @Summary Move the order to another workflow status
// @Tags session
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param body body request.TransitionStatusRequest true "Status"
// @Success 200 {object} response.LedgerResultResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /orders/{order_id}/status [patch]
func (h *SessionHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.TransitionStatus(c.Request.Context(), payload.ToCommand(c.Param("order_id"), writeOptions(c, payload.ExpectedVersion)))
	if err != nil {
		respondError(c, "session", err)
		return
	}
	log.Printf("[session][handler] transition success order_id=%s status=%s", res.Order.ID, res.Order.Status)
	c.JSON(http.StatusOK, response.FromLedgerResult(res))
}
