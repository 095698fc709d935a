package request

import (
	"strings"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase"
)

// VersionedRequest is embedded by every mutating payload. expected_version
// pins the version the client last saw; omit it to apply to the current one.
type VersionedRequest struct {
	ExpectedVersion int64 `json:"expected_version" binding:"gte=0"`
}

type CreateOrderRequest struct {
	ClientID   string   `json:"client_id"`
	VehicleIDs []string `json:"vehicle_ids"`
	Scheduled  bool     `json:"scheduled"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		ClientID:   strings.TrimSpace(r.ClientID),
		VehicleIDs: r.VehicleIDs,
		Scheduled:  r.Scheduled,
	}
}

type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required"`
	VersionedRequest
}

func (r TransitionStatusRequest) ToCommand(orderID string, opts usecase.WriteOptions) usecase.TransitionStatusCommand {
	return usecase.TransitionStatusCommand{
		OrderID:      orderID,
		Status:       entities.OrderStatus(strings.TrimSpace(r.Status)),
		WriteOptions: opts,
	}
}

type SetPaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Method string `json:"method"`
	VersionedRequest
}

func (r SetPaymentStatusRequest) ToCommand(orderID string, opts usecase.WriteOptions) usecase.SetPaymentStatusCommand {
	return usecase.SetPaymentStatusCommand{
		OrderID:      orderID,
		Status:       entities.PaymentStatus(strings.TrimSpace(r.Status)),
		Method:       r.Method,
		WriteOptions: opts,
	}
}
