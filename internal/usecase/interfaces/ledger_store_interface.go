package interfaces

import (
	"context"
	"errors"
	"time"

	"taller_ledger/internal/domain/entities"
)

var (
	// ErrConditionFailed is returned by Commit when a version or existence
	// precondition did not hold. Nothing was written.
	ErrConditionFailed = errors.New("storage condition failed")
	// ErrIdempotencyKeyUsed is returned by Commit when the mutation's
	// idempotency key was already committed. Nothing was written.
	ErrIdempotencyKeyUsed = errors.New("idempotency key already used")
)

// ILedgerStore abstracts the record store behind the work order ledger.
//
// Reads return the zero entity (ID == "") when the record does not exist.
// Every write goes through Commit, which must apply the whole LedgerMutation
// atomically or nothing at all.
type ILedgerStore interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)

	GetChargeLine(ctx context.Context, orderID, lineID string) (entities.ChargeLine, error)
	ListChargeLines(ctx context.Context, orderID string) ([]entities.ChargeLine, error)

	GetInventoryItem(ctx context.Context, id string) (entities.InventoryItem, error)
	ListInventory(ctx context.Context) ([]entities.InventoryItem, error)

	GetCatalogService(ctx context.Context, id string) (entities.CatalogService, error)
	ListCatalog(ctx context.Context) ([]entities.CatalogService, error)

	// GetIdempotencyRecord returns the record written by the commit that used
	// key, or the zero record (Key == "") when the key is unused.
	GetIdempotencyRecord(ctx context.Context, key string) (IdempotencyRecord, error)
	Commit(ctx context.Context, mutation LedgerMutation) error
}

// LedgerMutation is the unit of atomicity of every ledger and work session
// operation.
type LedgerMutation struct {
	// IdempotencyKey is optional. When set, a second commit with the same key
	// fails with ErrIdempotencyKeyUsed. Operation is recorded with the key.
	IdempotencyKey string
	Operation      string

	// Order is written with a condition on OrderExpectedVersion.
	Order                entities.Order
	OrderExpectedVersion int64

	PutLines    []LineWrite
	DeleteLines []LineDelete
	StockDeltas []StockDelta
}

// IdempotencyRecord ties a used key to the order and operation it was spent on.
type IdempotencyRecord struct {
	Key       string
	OrderID   string
	Operation string
	CreatedAt time.Time
}

// LineWrite upserts a line. ExpectedVersion 0 means the line must not exist yet.
type LineWrite struct {
	Line            entities.ChargeLine
	ExpectedVersion int64
}

type LineDelete struct {
	OrderID         string
	LineID          string
	ExpectedVersion int64
}

// StockDelta adds Delta to an inventory item's quantity on hand. The item must exist.
type StockDelta struct {
	InventoryItemID string
	Delta           int64
}

// NetStockDeltas sums deltas per item, dropping items whose net change is zero.
// Order of first appearance is kept.
func NetStockDeltas(deltas []StockDelta) []StockDelta {
	sums := make(map[string]int64, len(deltas))
	order := make([]string, 0, len(deltas))
	for _, d := range deltas {
		if _, seen := sums[d.InventoryItemID]; !seen {
			order = append(order, d.InventoryItemID)
		}
		sums[d.InventoryItemID] += d.Delta
	}
	out := make([]StockDelta, 0, len(order))
	for _, id := range order {
		if sums[id] == 0 {
			continue
		}
		out = append(out, StockDelta{InventoryItemID: id, Delta: sums[id]})
	}
	return out
}
