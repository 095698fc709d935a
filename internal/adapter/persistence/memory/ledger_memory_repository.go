package memory

import (
	"context"
	"sort"
	"sync"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase/interfaces"
)

// LedgerMemoryRepository is an in-process ILedgerStore. Commit checks every
// condition before applying anything, under one lock, so it honors the same
// all-or-nothing contract as the DynamoDB repository.
type LedgerMemoryRepository struct {
	mu          sync.Mutex
	folio       int64
	orders      map[string]entities.Order
	lines       map[string]map[string]entities.ChargeLine
	inventory   map[string]entities.InventoryItem
	catalog     map[string]entities.CatalogService
	idempotency map[string]interfaces.IdempotencyRecord
}

var _ interfaces.ILedgerStore = (*LedgerMemoryRepository)(nil)

func NewLedgerMemoryRepository() *LedgerMemoryRepository {
	return &LedgerMemoryRepository{
		orders:      map[string]entities.Order{},
		lines:       map[string]map[string]entities.ChargeLine{},
		inventory:   map[string]entities.InventoryItem{},
		catalog:     map[string]entities.CatalogService{},
		idempotency: map[string]interfaces.IdempotencyRecord{},
	}
}

// PutInventoryItem and PutCatalogService stand in for the inventory and
// catalog CRUD screens, which own those records.
func (r *LedgerMemoryRepository) PutInventoryItem(it entities.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inventory[it.ID] = it
}

func (r *LedgerMemoryRepository) PutCatalogService(svc entities.CatalogService) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog[svc.ID] = svc
}

// PutChargeLine writes a line as-is, bypassing Commit.
func (r *LedgerMemoryRepository) PutChargeLine(l entities.ChargeLine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.putLine(l)
}

func (r *LedgerMemoryRepository) CreateOrder(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[o.ID]; exists {
		return entities.Order{}, interfaces.ErrConditionFailed
	}
	r.folio++
	o.Folio = r.folio
	o = cloneOrder(o)
	r.orders[o.ID] = o
	return cloneOrder(o), nil
}

func (r *LedgerMemoryRepository) GetOrder(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *LedgerMemoryRepository) ListOrders(_ context.Context) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Folio < out[j].Folio })
	return out, nil
}

func (r *LedgerMemoryRepository) GetChargeLine(_ context.Context, orderID, lineID string) (entities.ChargeLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lines[orderID][lineID]
	if !ok {
		return entities.ChargeLine{}, nil
	}
	return cloneLine(l), nil
}

func (r *LedgerMemoryRepository) ListChargeLines(_ context.Context, orderID string) ([]entities.ChargeLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.ChargeLine, 0, len(r.lines[orderID]))
	for _, l := range r.lines[orderID] {
		out = append(out, cloneLine(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *LedgerMemoryRepository) GetInventoryItem(_ context.Context, id string) (entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inventory[id], nil
}

func (r *LedgerMemoryRepository) ListInventory(_ context.Context) ([]entities.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.InventoryItem, 0, len(r.inventory))
	for _, it := range r.inventory {
		out = append(out, it)
	}
	return out, nil
}

func (r *LedgerMemoryRepository) GetCatalogService(_ context.Context, id string) (entities.CatalogService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog[id], nil
}

func (r *LedgerMemoryRepository) ListCatalog(_ context.Context) ([]entities.CatalogService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.CatalogService, 0, len(r.catalog))
	for _, svc := range r.catalog {
		out = append(out, svc)
	}
	return out, nil
}

func (r *LedgerMemoryRepository) GetIdempotencyRecord(_ context.Context, key string) (interfaces.IdempotencyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idempotency[key], nil
}

func (r *LedgerMemoryRepository) Commit(_ context.Context, m interfaces.LedgerMutation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, used := r.idempotency[m.IdempotencyKey]; m.IdempotencyKey != "" && used {
		return interfaces.ErrIdempotencyKeyUsed
	}
	if err := r.checkConditions(m); err != nil {
		return err
	}

	r.orders[m.Order.ID] = cloneOrder(m.Order)
	for _, w := range m.PutLines {
		r.putLine(w.Line)
	}
	for _, d := range m.DeleteLines {
		delete(r.lines[d.OrderID], d.LineID)
	}
	for _, d := range interfaces.NetStockDeltas(m.StockDeltas) {
		it := r.inventory[d.InventoryItemID]
		it.QuantityOnHand += d.Delta
		r.inventory[d.InventoryItemID] = it
	}
	if m.IdempotencyKey != "" {
		r.idempotency[m.IdempotencyKey] = interfaces.IdempotencyRecord{
			Key:       m.IdempotencyKey,
			OrderID:   m.Order.ID,
			Operation: m.Operation,
			CreatedAt: m.Order.UpdatedAt,
		}
	}
	return nil
}

func (r *LedgerMemoryRepository) checkConditions(m interfaces.LedgerMutation) error {
	current, ok := r.orders[m.Order.ID]
	if !ok || current.Version != m.OrderExpectedVersion {
		return interfaces.ErrConditionFailed
	}
	for _, w := range m.PutLines {
		existing, exists := r.lines[w.Line.OrderID][w.Line.ID]
		if w.ExpectedVersion == 0 {
			if exists {
				return interfaces.ErrConditionFailed
			}
			continue
		}
		if !exists || existing.Version != w.ExpectedVersion {
			return interfaces.ErrConditionFailed
		}
	}
	for _, d := range m.DeleteLines {
		existing, exists := r.lines[d.OrderID][d.LineID]
		if !exists || existing.Version != d.ExpectedVersion {
			return interfaces.ErrConditionFailed
		}
	}
	for _, d := range m.StockDeltas {
		if _, exists := r.inventory[d.InventoryItemID]; !exists {
			return interfaces.ErrConditionFailed
		}
	}
	return nil
}

func (r *LedgerMemoryRepository) putLine(l entities.ChargeLine) {
	byOrder, ok := r.lines[l.OrderID]
	if !ok {
		byOrder = map[string]entities.ChargeLine{}
		r.lines[l.OrderID] = byOrder
	}
	byOrder[l.ID] = cloneLine(l)
}

func cloneOrder(o entities.Order) entities.Order {
	if o.VehicleIDs != nil {
		o.VehicleIDs = append([]string(nil), o.VehicleIDs...)
	}
	if o.LaborSessionStartedAt != nil {
		t := *o.LaborSessionStartedAt
		o.LaborSessionStartedAt = &t
	}
	return o
}

func cloneLine(l entities.ChargeLine) entities.ChargeLine {
	l.NestedParts = append([]entities.NestedPart{}, l.NestedParts...)
	return l
}
