package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"taller_ledger/internal/usecase"
	"taller_ledger/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	QueryExpectedVersion = "expected_version"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidVersion = pkg.NewDomainErrorSimple("INVALID_REQUEST", "expected_version must be a non-negative integer", http.StatusBadRequest)
)

// mapWorkOrderError turns use case errors into the HTTP envelope. The message
// of client errors carries the reason so the UI can show it as-is.
func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Charge line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Nested part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConsistency):
		return pkg.NewDomainError("CONSISTENCY_ERROR", "Stored ledger data is inconsistent; the change was not applied", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, area string, err error) {
	appErr := mapWorkOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] %s %s failed err=%v", area, c.Request.Method, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeOptions(c *gin.Context, expectedVersion int64) usecase.WriteOptions {
	return usecase.WriteOptions{
		ExpectedVersion: expectedVersion,
		IdempotencyKey:  strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey)),
	}
}

// queryVersion reads expected_version from the query string, used by DELETE
// routes that carry no body.
func queryVersion(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Query(QueryExpectedVersion))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// bindOptionalJSON binds the body when there is one. Session and tax toggles
// may be posted without a body.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
