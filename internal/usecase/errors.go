package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by WorkOrderUseCase either is or wraps one
// of these, except ErrOrderNotFound and storage failures.
var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidState = errors.New("invalid state")
	ErrConsistency  = errors.New("consistency error")
	ErrConflict     = errors.New("conflict")
)

var ErrOrderNotFound = errors.New("order not found")

var (
	ErrInvalidOrderID         = fmt.Errorf("%w: order_id is required", ErrValidation)
	ErrInvalidLineID          = fmt.Errorf("%w: line_id is required", ErrValidation)
	ErrInvalidPartID          = fmt.Errorf("%w: part_id is required", ErrValidation)
	ErrInvalidVehicleID       = fmt.Errorf("%w: vehicle_id is required", ErrValidation)
	ErrVehicleNotInOrder      = fmt.Errorf("%w: vehicle does not belong to the order", ErrValidation)
	ErrInvalidLineKind        = fmt.Errorf("%w: unknown charge line kind", ErrValidation)
	ErrNegativePrice          = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrMissingLabel           = fmt.Errorf("%w: label is required", ErrValidation)
	ErrMissingUnitPrice       = fmt.Errorf("%w: unit_price is required", ErrValidation)
	ErrCatalogServiceNotFound = fmt.Errorf("%w: catalog service not found", ErrValidation)
	ErrCatalogServiceInactive = fmt.Errorf("%w: catalog service is inactive", ErrValidation)
	ErrInvalidPartSource      = fmt.Errorf("%w: unknown part source", ErrValidation)
	ErrMissingPartName        = fmt.Errorf("%w: part name is required", ErrValidation)
	ErrMissingPartPrice       = fmt.Errorf("%w: part price is required", ErrValidation)
	ErrInventoryItemNotFound  = fmt.Errorf("%w: inventory item not found", ErrValidation)
	ErrInvalidStatus          = fmt.Errorf("%w: unknown order status", ErrValidation)
	ErrInvalidPaymentStatus   = fmt.Errorf("%w: unknown payment status", ErrValidation)
	ErrMissingPaymentMethod   = fmt.Errorf("%w: payment_method is required when paid", ErrValidation)
	ErrNothingToUpdate        = fmt.Errorf("%w: nothing to update", ErrValidation)
	ErrIdempotencyKeyMismatch = fmt.Errorf("%w: idempotency key was used for another order or operation", ErrValidation)
)

var (
	ErrLineNotFound              = fmt.Errorf("%w: charge line not found", ErrInvalidState)
	ErrPartNotFound              = fmt.Errorf("%w: nested part not found", ErrInvalidState)
	ErrOrderDelivered            = fmt.Errorf("%w: order already delivered", ErrInvalidState)
	ErrSessionAlreadyRunning     = fmt.Errorf("%w: labor session already running", ErrInvalidState)
	ErrSessionNotRunning         = fmt.Errorf("%w: labor session not running", ErrInvalidState)
	ErrSessionRequiresInProgress = fmt.Errorf("%w: labor session needs status in_progress", ErrInvalidState)
)

var (
	ErrVersionMismatch   = fmt.Errorf("%w: version mismatch, re-fetch and retry", ErrConflict)
	ErrConcurrentUpdate  = fmt.Errorf("%w: record changed concurrently, re-fetch and retry", ErrConflict)
	ErrLineTotalMismatch = fmt.Errorf("%w: line_total does not match unit_price plus parts", ErrConsistency)
)
