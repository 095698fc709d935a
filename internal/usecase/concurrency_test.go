package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase/interfaces"
	mock_interfaces "taller_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkOrderUseCase_VersionPinning(t *testing.T) {
	t.Run("stale order version", func(t *testing.T) {
		f := newFixture(t)
		f.addLine(t, "Tune-up", 10000)

		_, err := f.uc.AddChargeLine(context.Background(), AddChargeLineCommand{
			OrderID: f.order.ID, VehicleID: "veh-1", Kind: entities.ChargeLineKindFreeText, Label: "Wash", UnitPrice: price(500),
			WriteOptions: WriteOptions{ExpectedVersion: 1},
		})
		if !errors.Is(err, ErrVersionMismatch) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrVersionMismatch, got %v", err)
		}
		if o := f.currentOrder(t); o.Total != 10000 {
			t.Fatalf("rejected write changed the order: %+v", o)
		}
	})

	t.Run("stale line version", func(t *testing.T) {
		f := newFixture(t)
		line := f.addLine(t, "Diagnosis", 5000)
		f.attachFree(t, line.ID, "Fuse", 100)

		_, err := f.uc.UpdateChargeLine(context.Background(), UpdateChargeLineCommand{
			OrderID: f.order.ID, LineID: line.ID, UnitPrice: price(1),
			WriteOptions: WriteOptions{ExpectedVersion: line.Version},
		})
		if !errors.Is(err, ErrVersionMismatch) {
			t.Fatalf("expected ErrVersionMismatch, got %v", err)
		}
	})

	t.Run("current version succeeds", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.uc.ToggleTax(context.Background(), ToggleTaxCommand{OrderID: f.order.ID, WriteOptions: WriteOptions{ExpectedVersion: 1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Version != 2 {
			t.Fatalf("expected version 2, got %d", res.Order.Version)
		}
	})
}

func TestWorkOrderUseCase_IdempotentReplay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	add := AddChargeLineCommand{
		OrderID: f.order.ID, VehicleID: "veh-1", Kind: entities.ChargeLineKindFreeText, Label: "Battery swap", UnitPrice: price(2000),
		WriteOptions: WriteOptions{ExpectedVersion: 1, IdempotencyKey: "req-add-1"},
	}
	first, err := f.uc.AddChargeLine(ctx, add)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.uc.AddChargeLine(ctx, add)
	if err != nil {
		t.Fatalf("replay must not fail, got %v", err)
	}
	if !second.Replayed || second.Line == nil || second.Line.ID != first.Line.ID {
		t.Fatalf("expected replay of line %s, got %+v", first.Line.ID, second)
	}
	if second.Order.Version != first.Order.Version || second.Order.Total != 2000 {
		t.Fatalf("replay must not write, got %+v", second.Order)
	}

	attach := AttachNestedPartCommand{
		OrderID: f.order.ID, LineID: first.Line.ID,
		Source:       entities.PartSource{Kind: entities.PartSourceInventory, InventoryItemID: "inv-oil"},
		WriteOptions: WriteOptions{IdempotencyKey: "req-attach-1"},
	}
	for i := 0; i < 3; i++ {
		if _, err := f.uc.AttachNestedPart(ctx, attach); err != nil {
			t.Fatalf("attach attempt %d: %v", i, err)
		}
	}
	if got := f.stock(t, "inv-oil"); got != 4 {
		t.Fatalf("retried attach must decrement once, stock %d", got)
	}
	lines, err := f.uc.ListChargeLines(ctx, f.order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || len(lines[0].NestedParts) != 1 || lines[0].LineTotal != 5000 {
		t.Fatalf("unexpected lines after replays: %+v", lines)
	}
}

func TestWorkOrderUseCase_IdempotencyKeyReuse(t *testing.T) {
	t.Run("same key on another order", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		other, err := f.uc.CreateOrder(ctx, CreateOrderCommand{ClientID: "cli-2", VehicleIDs: []string{"veh-9"}})
		if err != nil {
			t.Fatalf("create order: %v", err)
		}

		_, err = f.uc.AddChargeLine(ctx, AddChargeLineCommand{
			OrderID: f.order.ID, VehicleID: "veh-1", Kind: entities.ChargeLineKindFreeText, Label: "Brake bleed", UnitPrice: price(3000),
			WriteOptions: WriteOptions{IdempotencyKey: "k-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := f.uc.AddChargeLine(ctx, AddChargeLineCommand{
			OrderID: other.ID, VehicleID: "veh-9", Kind: entities.ChargeLineKindFreeText, Label: "Brake bleed", UnitPrice: price(3000),
			WriteOptions: WriteOptions{IdempotencyKey: "k-1"},
		})
		if !errors.Is(err, ErrIdempotencyKeyMismatch) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrIdempotencyKeyMismatch, got err=%v replayed=%t", err, res.Replayed)
		}
		lines, err := f.uc.ListChargeLines(ctx, other.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("rejected request wrote lines: %+v", lines)
		}
	})

	t.Run("same key for another operation", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		_, err := f.uc.AddChargeLine(ctx, AddChargeLineCommand{
			OrderID: f.order.ID, VehicleID: "veh-1", Kind: entities.ChargeLineKindFreeText, Label: "Brake bleed", UnitPrice: price(3000),
			WriteOptions: WriteOptions{IdempotencyKey: "k-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = f.uc.ToggleTax(ctx, ToggleTaxCommand{OrderID: f.order.ID, WriteOptions: WriteOptions{IdempotencyKey: "k-1"}})
		if !errors.Is(err, ErrIdempotencyKeyMismatch) {
			t.Fatalf("expected ErrIdempotencyKeyMismatch, got %v", err)
		}
		if o := f.currentOrder(t); o.TaxIncluded || o.Total != 3000 {
			t.Fatalf("rejected toggle changed the order: %+v", o)
		}
	})
}

func TestWorkOrderUseCase_ConflictRetry(t *testing.T) {
	order := entities.Order{ID: "ord-1", Status: entities.OrderStatusReceived, PaymentStatus: entities.PaymentStatusPending, Version: 4}
	paid := SetPaymentStatusCommand{OrderID: "ord-1", Status: entities.PaymentStatusPaid, Method: "card"}

	t.Run("lost race is retried from fresh reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store)

		store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil).Times(2)
		gomock.InOrder(
			store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed),
			store.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m interfaces.LedgerMutation) error {
				if m.OrderExpectedVersion != 4 || m.Order.Version != 5 || m.Order.PaymentMethod != "card" {
					t.Fatalf("unexpected mutation: %+v", m)
				}
				return nil
			}),
		)

		res, err := uc.SetPaymentStatus(context.Background(), paid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
	})

	t.Run("pinned version is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store)

		store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil)
		store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		cmd := paid
		cmd.ExpectedVersion = 4
		if _, err := uc.SetPaymentStatus(context.Background(), cmd); !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store, WithConflictRetries(1))

		store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil).Times(2)
		store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed).Times(2)

		if _, err := uc.SetPaymentStatus(context.Background(), paid); !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("key committed by a concurrent request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store)

		current := order
		current.Version = 5
		current.PaymentStatus = entities.PaymentStatusPaid
		current.PaymentMethod = "card"

		cmd := paid
		cmd.IdempotencyKey = "pay-1"
		gomock.InOrder(
			store.EXPECT().GetIdempotencyRecord(gomock.Any(), "pay-1").Return(interfaces.IdempotencyRecord{}, nil),
			store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil),
			store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrIdempotencyKeyUsed),
			store.EXPECT().GetIdempotencyRecord(gomock.Any(), "pay-1").Return(interfaces.IdempotencyRecord{Key: "pay-1", OrderID: "ord-1", Operation: "set_payment"}, nil),
			store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(current, nil),
		)

		res, err := uc.SetPaymentStatus(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Replayed || res.Order.Version != 5 {
			t.Fatalf("expected replayed current state, got %+v", res)
		}
	})

	t.Run("key committed concurrently for another order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store)

		cmd := paid
		cmd.IdempotencyKey = "pay-1"
		gomock.InOrder(
			store.EXPECT().GetIdempotencyRecord(gomock.Any(), "pay-1").Return(interfaces.IdempotencyRecord{}, nil),
			store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(order, nil),
			store.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m interfaces.LedgerMutation) error {
				if m.IdempotencyKey != "pay-1" || m.Operation != "set_payment" {
					t.Fatalf("mutation must carry key and operation, got key=%q op=%q", m.IdempotencyKey, m.Operation)
				}
				return interfaces.ErrIdempotencyKeyUsed
			}),
			store.EXPECT().GetIdempotencyRecord(gomock.Any(), "pay-1").Return(interfaces.IdempotencyRecord{Key: "pay-1", OrderID: "ord-2", Operation: "set_payment"}, nil),
		)

		_, err := uc.SetPaymentStatus(context.Background(), cmd)
		if !errors.Is(err, ErrIdempotencyKeyMismatch) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrIdempotencyKeyMismatch, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_StoreErrors(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store)

		store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.PauseSession(context.Background(), SessionCommand{OrderID: "ord-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("commit failure is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store)

		store.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Version: 1}, nil)
		store.EXPECT().ListChargeLines(gomock.Any(), "ord-1").Return(nil, nil)
		store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

		_, err := uc.ToggleTax(context.Background(), ToggleTaxCommand{OrderID: "ord-1"})
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})

	t.Run("blank order id never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewWorkOrderUseCase(store)

		if _, err := uc.Recompute(context.Background(), "  "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}

func TestResultLabel(t *testing.T) {
	cases := map[string]error{
		"success":       nil,
		"validation":    ErrNegativePrice,
		"invalid_state": ErrSessionNotRunning,
		"conflict":      ErrVersionMismatch,
		"consistency":   ErrLineTotalMismatch,
		"not_found":     ErrOrderNotFound,
		"error":         errors.New("boom"),
	}
	for want, err := range cases {
		if got := resultLabel(err); got != want {
			t.Fatalf("resultLabel(%v) = %s, want %s", err, got, want)
		}
	}
}
