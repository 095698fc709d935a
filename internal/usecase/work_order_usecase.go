package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/infrastructure/metrics"
	"taller_ledger/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IWorkOrderUseCase is the application-facing API of the work order ledger.
//
// It composes:
//   - the line item ledger (charge lines and nested parts, with stock effects)
//   - the order aggregator (Recompute / ToggleTax)
//   - the work session state machine (status and labor time)
//   - read projections used by the UI and the document renderer
//
// Every mutation returns the canonical post-mutation state.
type IWorkOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	GetOrderDocument(ctx context.Context, orderID string) (OrderDocument, error)
	SetPaymentStatus(ctx context.Context, cmd SetPaymentStatusCommand) (LedgerResult, error)

	AddChargeLine(ctx context.Context, cmd AddChargeLineCommand) (LedgerResult, error)
	UpdateChargeLine(ctx context.Context, cmd UpdateChargeLineCommand) (LedgerResult, error)
	RemoveChargeLine(ctx context.Context, cmd RemoveChargeLineCommand) (LedgerResult, error)
	AttachNestedPart(ctx context.Context, cmd AttachNestedPartCommand) (LedgerResult, error)
	DetachNestedPart(ctx context.Context, cmd DetachNestedPartCommand) (LedgerResult, error)
	ListChargeLines(ctx context.Context, orderID string) ([]entities.ChargeLine, error)

	Recompute(ctx context.Context, orderID string) (LedgerResult, error)
	ToggleTax(ctx context.Context, cmd ToggleTaxCommand) (LedgerResult, error)

	StartSession(ctx context.Context, cmd SessionCommand) (LedgerResult, error)
	PauseSession(ctx context.Context, cmd SessionCommand) (LedgerResult, error)
	TransitionStatus(ctx context.Context, cmd TransitionStatusCommand) (LedgerResult, error)
	ElapsedMinutes(ctx context.Context, orderID string) (int64, error)
	GetSession(ctx context.Context, orderID string) (SessionState, error)

	ListInventory(ctx context.Context) ([]entities.InventoryItem, error)
	ListShortfalls(ctx context.Context) ([]entities.InventoryItem, error)
	ListCatalog(ctx context.Context) ([]entities.CatalogService, error)
}

// WriteOptions carries the optional concurrency controls of a mutation.
//
// ExpectedVersion pins the version of the record the caller last saw (the
// order for order-level operations, the line for line-level ones); zero means
// "whatever is current". IdempotencyKey makes a retried request a no-op.
type WriteOptions struct {
	ExpectedVersion int64
	IdempotencyKey  string
}

// LedgerResult is the canonical state after a mutation.
type LedgerResult struct {
	Order entities.Order
	Line  *entities.ChargeLine
	// StockSignals lists inventory items left with negative stock by this mutation.
	StockSignals []entities.InventoryItem
	// Replayed is true when the idempotency key was already committed and the
	// current state is returned without writing.
	Replayed bool
}

const (
	defaultTaxRate         = "0.19"
	defaultConflictRetries = 3
)

type WorkOrderUseCase struct {
	repo            interfaces.ILedgerStore
	now             func() time.Time
	newID           func() string
	taxRate         decimal.Decimal
	conflictRetries int
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

type Option func(*WorkOrderUseCase)

// WithClock replaces time.Now, used by tests that need deterministic labor time.
func WithClock(now func() time.Time) Option {
	return func(u *WorkOrderUseCase) { u.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(u *WorkOrderUseCase) { u.newID = newID }
}

func WithTaxRate(rate decimal.Decimal) Option {
	return func(u *WorkOrderUseCase) { u.taxRate = rate }
}

// WithConflictRetries sets how many times an unpinned mutation is re-read and
// re-committed after losing a race.
func WithConflictRetries(n int) Option {
	return func(u *WorkOrderUseCase) {
		if n >= 0 {
			u.conflictRetries = n
		}
	}
}

func NewWorkOrderUseCase(repo interfaces.ILedgerStore, opts ...Option) *WorkOrderUseCase {
	u := &WorkOrderUseCase{
		repo:            repo,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           newUUID,
		taxRate:         decimal.RequireFromString(defaultTaxRate),
		conflictRetries: defaultConflictRetries,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ledgerState is the snapshot a mutation is built from.
type ledgerState struct {
	order entities.Order
	lines []entities.ChargeLine
}

func (s ledgerState) line(id string) (entities.ChargeLine, bool) {
	for _, l := range s.lines {
		if l.ID == id {
			return l, true
		}
	}
	return entities.ChargeLine{}, false
}

// ledgerChange is what a mutation wants to write. order is the full new order
// state; its total is derived by the runner, never by the builder.
type ledgerChange struct {
	order       entities.Order
	putLines    []entities.ChargeLine
	deleteLines []entities.ChargeLine
	stockDeltas []interfaces.StockDelta
	// target is the line returned in the result, if any.
	target string
	// noop skips the commit and returns the current state.
	noop bool
}

type mutation struct {
	op              string
	orderID         string
	opts            WriteOptions
	pinsOrder       bool
	loadLines       bool
	rejectDelivered bool
	// replayTarget is the line returned when the request is a replay.
	replayTarget    string
	build           func(s ledgerState) (ledgerChange, error)
}

// run loads the order (and its lines when needed), builds the change and
// commits it as one LedgerMutation. When the caller did not pin a version a
// lost race is retried from fresh reads; a failed commit wrote nothing so the
// retry cannot double-apply.
func (u *WorkOrderUseCase) run(ctx context.Context, m mutation) (LedgerResult, error) {
	start := time.Now()
	res, err := u.runAttempts(ctx, m)
	metrics.ObserveLedgerOp(m.op, resultLabel(err), time.Since(start))
	return res, err
}

func (u *WorkOrderUseCase) runAttempts(ctx context.Context, m mutation) (LedgerResult, error) {
	m.orderID = strings.TrimSpace(m.orderID)
	if m.orderID == "" {
		return LedgerResult{}, ErrInvalidOrderID
	}
	attempts := 1
	if m.opts.ExpectedVersion == 0 {
		attempts += u.conflictRetries
	}

	if key := m.opts.IdempotencyKey; key != "" {
		rec, err := u.repo.GetIdempotencyRecord(ctx, key)
		if err != nil {
			return LedgerResult{}, err
		}
		if rec.Key != "" {
			return u.replayResult(ctx, m, rec)
		}
	}

	for attempt := 1; ; attempt++ {
		state, err := u.loadState(ctx, m)
		if err != nil {
			return LedgerResult{}, err
		}
		change, err := m.build(state)
		if err != nil {
			log.Printf("[ledger][usecase] %s rejected order_id=%s err=%v", m.op, m.orderID, err)
			return LedgerResult{}, err
		}
		if change.noop {
			return u.currentResult(ctx, state.order, change.target, false)
		}

		mut := u.toMutation(state, change, m)
		err = u.repo.Commit(ctx, mut)
		switch {
		case err == nil:
			log.Printf("[ledger][usecase] %s success order_id=%s version=%d total=%d", m.op, m.orderID, mut.Order.Version, mut.Order.Total)
			return u.committedResult(ctx, mut, change.target)
		case errors.Is(err, interfaces.ErrIdempotencyKeyUsed):
			rec, err := u.repo.GetIdempotencyRecord(ctx, m.opts.IdempotencyKey)
			if err != nil {
				return LedgerResult{}, err
			}
			return u.replayResult(ctx, m, rec)
		case errors.Is(err, interfaces.ErrConditionFailed):
			metrics.IncCommitConflict(m.op)
			if attempt < attempts {
				log.Printf("[ledger][usecase] %s lost race, retrying order_id=%s attempt=%d", m.op, m.orderID, attempt)
				continue
			}
			log.Printf("[ledger][usecase] %s conflict order_id=%s attempts=%d", m.op, m.orderID, attempt)
			return LedgerResult{}, ErrConcurrentUpdate
		default:
			log.Printf("[ledger][usecase] %s commit failed order_id=%s err=%v", m.op, m.orderID, err)
			return LedgerResult{}, err
		}
	}
}

// replayResult answers a request whose idempotency key was already
// committed with the current state. Line ids are derived from the key, so the
// line the first request created is found again. A key spent on another order
// or operation is rejected; replaying it would report a change never made.
func (u *WorkOrderUseCase) replayResult(ctx context.Context, m mutation, rec interfaces.IdempotencyRecord) (LedgerResult, error) {
	if rec.OrderID != m.orderID || rec.Operation != m.op {
		log.Printf("[ledger][usecase] %s idempotency key reused order_id=%s idempotency_key=%s recorded_order_id=%s recorded_op=%s",
			m.op, m.orderID, m.opts.IdempotencyKey, rec.OrderID, rec.Operation)
		return LedgerResult{}, ErrIdempotencyKeyMismatch
	}
	log.Printf("[ledger][usecase] %s replay order_id=%s idempotency_key=%s", m.op, m.orderID, m.opts.IdempotencyKey)
	current, err := u.repo.GetOrder(ctx, m.orderID)
	if err != nil {
		return LedgerResult{}, err
	}
	if current.ID == "" {
		return LedgerResult{}, ErrOrderNotFound
	}
	return u.currentResult(ctx, current, m.replayTarget, true)
}

func (u *WorkOrderUseCase) loadState(ctx context.Context, m mutation) (ledgerState, error) {
	order, err := u.repo.GetOrder(ctx, m.orderID)
	if err != nil {
		return ledgerState{}, err
	}
	if order.ID == "" {
		return ledgerState{}, ErrOrderNotFound
	}
	if m.pinsOrder && m.opts.ExpectedVersion != 0 && m.opts.ExpectedVersion != order.Version {
		return ledgerState{}, ErrVersionMismatch
	}
	if m.rejectDelivered && order.Status == entities.OrderStatusDelivered {
		return ledgerState{}, ErrOrderDelivered
	}

	state := ledgerState{order: order}
	if m.loadLines {
		state.lines, err = u.repo.ListChargeLines(ctx, order.ID)
		if err != nil {
			return ledgerState{}, err
		}
	}
	return state, nil
}

// toMutation stamps versions and timestamps. When the lines were loaded the
// order total is derived from the lines as they will be after the commit.
func (u *WorkOrderUseCase) toMutation(state ledgerState, change ledgerChange, m mutation) interfaces.LedgerMutation {
	now := u.now()

	order := change.order
	order.Version = state.order.Version + 1
	order.UpdatedAt = now

	mut := interfaces.LedgerMutation{
		IdempotencyKey:       m.opts.IdempotencyKey,
		Operation:            m.op,
		OrderExpectedVersion: state.order.Version,
		StockDeltas:          interfaces.NetStockDeltas(change.stockDeltas),
	}

	for _, l := range change.putLines {
		expected := l.Version
		l.Version = expected + 1
		l.UpdatedAt = now
		if expected == 0 {
			l.CreatedAt = now
		}
		mut.PutLines = append(mut.PutLines, interfaces.LineWrite{Line: l, ExpectedVersion: expected})
	}
	for _, l := range change.deleteLines {
		mut.DeleteLines = append(mut.DeleteLines, interfaces.LineDelete{OrderID: l.OrderID, LineID: l.ID, ExpectedVersion: l.Version})
	}

	if m.loadLines {
		order.Total = u.orderTotal(applyLineChanges(state.lines, mut), order.TaxIncluded)
	}
	mut.Order = order
	return mut
}

func applyLineChanges(lines []entities.ChargeLine, mut interfaces.LedgerMutation) []entities.ChargeLine {
	deleted := make(map[string]bool, len(mut.DeleteLines))
	for _, d := range mut.DeleteLines {
		deleted[d.LineID] = true
	}
	replaced := make(map[string]entities.ChargeLine, len(mut.PutLines))
	for _, w := range mut.PutLines {
		replaced[w.Line.ID] = w.Line
	}

	out := make([]entities.ChargeLine, 0, len(lines)+len(mut.PutLines))
	for _, l := range lines {
		if deleted[l.ID] {
			continue
		}
		if r, ok := replaced[l.ID]; ok {
			out = append(out, r)
			delete(replaced, l.ID)
			continue
		}
		out = append(out, l)
	}
	for _, w := range mut.PutLines {
		if r, ok := replaced[w.Line.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (u *WorkOrderUseCase) committedResult(ctx context.Context, mut interfaces.LedgerMutation, target string) (LedgerResult, error) {
	res := LedgerResult{Order: mut.Order}
	for _, w := range mut.PutLines {
		if w.Line.ID == target {
			l := w.Line
			res.Line = &l
		}
	}
	res.StockSignals = u.stockSignals(ctx, mut.StockDeltas)
	return res, nil
}

func (u *WorkOrderUseCase) currentResult(ctx context.Context, order entities.Order, target string, replayed bool) (LedgerResult, error) {
	res := LedgerResult{Order: order, Replayed: replayed}
	if target == "" {
		return res, nil
	}
	line, err := u.repo.GetChargeLine(ctx, order.ID, target)
	if err != nil {
		return LedgerResult{}, err
	}
	if line.ID != "" {
		res.Line = &line
	}
	return res, nil
}

// stockSignals re-reads every item decremented by the mutation and reports
// the ones left below zero. Negative stock is allowed; it is surfaced, not blocked.
func (u *WorkOrderUseCase) stockSignals(ctx context.Context, deltas []interfaces.StockDelta) []entities.InventoryItem {
	var signals []entities.InventoryItem
	for _, d := range deltas {
		if d.Delta >= 0 {
			continue
		}
		item, err := u.repo.GetInventoryItem(ctx, d.InventoryItemID)
		if err != nil {
			log.Printf("[inventory][signal] re-read failed item_id=%s err=%v", d.InventoryItemID, err)
			continue
		}
		if item.ID != "" && item.Overconsumed() {
			log.Printf("[inventory][signal] negative stock item_id=%s sku=%s quantity_on_hand=%d", item.ID, item.SKU, item.QuantityOnHand)
			metrics.IncNegativeStock()
			signals = append(signals, item)
		}
	}
	return signals
}

// checkLine refuses to build on a line whose stored total already disagrees
// with its parts. It is never corrected silently.
func checkLine(l entities.ChargeLine) error {
	if l.Consistent() {
		return nil
	}
	log.Printf("[ledger][usecase] CONSISTENCY line_total mismatch order_id=%s line_id=%s line_total=%d expected=%d",
		l.OrderID, l.ID, l.LineTotal, l.ExpectedTotal())
	metrics.IncConsistencyViolation()
	return fmt.Errorf("%w (line_id=%s)", ErrLineTotalMismatch, l.ID)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrConsistency):
		return "consistency"
	case errors.Is(err, ErrOrderNotFound):
		return "not_found"
	default:
		return "error"
	}
}
