package entities

import "time"

// OrderStatus represents the workflow state of a work order (orden de trabajo).
//
// Domain notes:
//   - Transitions are user driven (kanban drag-and-drop) and not strictly sequential.
//   - Delivered is terminal: the order stays for reporting but accepts no further edits.

type OrderStatus string

const (
	OrderStatusScheduled  OrderStatus = "scheduled"
	OrderStatusReceived   OrderStatus = "received"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Valid reports whether s is one of the known workflow states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusScheduled, OrderStatusReceived, OrderStatusInProgress, OrderStatusDone, OrderStatusDelivered:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}

// Order is the root aggregate of the ledger: one repair job, possibly covering
// several vehicles.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Money is in whole currency units. Total is derived by the aggregator and
//     never edited directly.
//
// Labor time:
//   - LaborMinutesAccumulated holds closed sessions only.
//   - LaborSessionStartedAt is non-nil while the timer runs.
type Order struct {
	ID                      string        `json:"id"`
	Folio                   int64         `json:"folio"`
	ClientID                string        `json:"client_id,omitempty"`
	VehicleIDs              []string      `json:"vehicle_ids,omitempty"`
	Status                  OrderStatus   `json:"status"`
	PaymentStatus           PaymentStatus `json:"payment_status"`
	PaymentMethod           string        `json:"payment_method,omitempty"`
	TaxIncluded             bool          `json:"tax_included"`
	Total                   int64         `json:"total"`
	LaborMinutesAccumulated int64         `json:"labor_minutes_accumulated"`
	LaborSessionStartedAt   *time.Time    `json:"labor_session_started_at,omitempty"`
	Version                 int64         `json:"version"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}

func (o Order) SessionRunning() bool {
	return o.LaborSessionStartedAt != nil
}

// RunningMinutes is the whole minutes of the open session at now, zero when
// no session runs. A start time in the future counts as zero.
func (o Order) RunningMinutes(now time.Time) int64 {
	if o.LaborSessionStartedAt == nil {
		return 0
	}
	d := now.Sub(*o.LaborSessionStartedAt)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Minute)
}

// ElapsedMinutes is the read-time labor total: closed sessions plus the open one.
func (o Order) ElapsedMinutes(now time.Time) int64 {
	return o.LaborMinutesAccumulated + o.RunningMinutes(now)
}

// HasVehicle reports whether vehicleID is covered by the order. Orders that do
// not list vehicles accept any vehicle.
func (o Order) HasVehicle(vehicleID string) bool {
	if len(o.VehicleIDs) == 0 {
		return true
	}
	for _, v := range o.VehicleIDs {
		if v == vehicleID {
			return true
		}
	}
	return false
}
