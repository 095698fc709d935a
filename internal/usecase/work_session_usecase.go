package usecase

import (
	"context"
	"log"
	"time"

	"taller_ledger/internal/domain/entities"
)

type SessionCommand struct {
	OrderID string
	WriteOptions
}

type TransitionStatusCommand struct {
	OrderID string
	Status  entities.OrderStatus
	WriteOptions
}

// StartSession starts the labor timer of an in-progress order.
func (u *WorkOrderUseCase) StartSession(ctx context.Context, cmd SessionCommand) (LedgerResult, error) {
	return u.run(ctx, mutation{
		op:              "start_session",
		orderID:         cmd.OrderID,
		opts:            cmd.WriteOptions,
		pinsOrder:       true,
		rejectDelivered: true,
		build: func(s ledgerState) (ledgerChange, error) {
			if s.order.SessionRunning() {
				return ledgerChange{}, ErrSessionAlreadyRunning
			}
			if s.order.Status != entities.OrderStatusInProgress {
				return ledgerChange{}, ErrSessionRequiresInProgress
			}
			order := s.order
			now := u.now()
			order.LaborSessionStartedAt = &now
			return ledgerChange{order: order}, nil
		},
	})
}

// PauseSession folds the running session into labor_minutes_accumulated.
func (u *WorkOrderUseCase) PauseSession(ctx context.Context, cmd SessionCommand) (LedgerResult, error) {
	return u.run(ctx, mutation{
		op:        "pause_session",
		orderID:   cmd.OrderID,
		opts:      cmd.WriteOptions,
		pinsOrder: true,
		build: func(s ledgerState) (ledgerChange, error) {
			if !s.order.SessionRunning() {
				return ledgerChange{}, ErrSessionNotRunning
			}
			return ledgerChange{order: closeSession(s.order, u.now())}, nil
		},
	})
}

// TransitionStatus moves the order to any workflow state except out of
// Delivered. Leaving in_progress with the timer running pauses it in the same
// commit; entering in_progress never starts it.
func (u *WorkOrderUseCase) TransitionStatus(ctx context.Context, cmd TransitionStatusCommand) (LedgerResult, error) {
	if !cmd.Status.Valid() {
		return LedgerResult{}, ErrInvalidStatus
	}

	return u.run(ctx, mutation{
		op:        "transition_status",
		orderID:   cmd.OrderID,
		opts:      cmd.WriteOptions,
		pinsOrder: true,
		build: func(s ledgerState) (ledgerChange, error) {
			if s.order.Status == cmd.Status {
				return ledgerChange{noop: true}, nil
			}
			if s.order.Status == entities.OrderStatusDelivered {
				return ledgerChange{}, ErrOrderDelivered
			}
			order := s.order
			if order.SessionRunning() && cmd.Status != entities.OrderStatusInProgress {
				order = closeSession(order, u.now())
				log.Printf("[session][usecase] implicit pause on transition order_id=%s from=%s to=%s accumulated=%d",
					order.ID, s.order.Status, cmd.Status, order.LaborMinutesAccumulated)
			}
			order.Status = cmd.Status
			return ledgerChange{order: order}, nil
		},
	})
}

// ElapsedMinutes is a read-time value and is never persisted.
func (u *WorkOrderUseCase) ElapsedMinutes(ctx context.Context, orderID string) (int64, error) {
	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return order.ElapsedMinutes(u.now()), nil
}

// SessionState is the labor timer of one order read at a single version.
type SessionState struct {
	Order          entities.Order
	ElapsedMinutes int64
}

func (u *WorkOrderUseCase) GetSession(ctx context.Context, orderID string) (SessionState, error) {
	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return SessionState{}, err
	}
	return SessionState{Order: order, ElapsedMinutes: order.ElapsedMinutes(u.now())}, nil
}

func closeSession(o entities.Order, now time.Time) entities.Order {
	o.LaborMinutesAccumulated += o.RunningMinutes(now)
	o.LaborSessionStartedAt = nil
	return o
}
