package usecase

import (
	"context"
	"testing"
	"time"

	"taller_ledger/internal/adapter/persistence/memory"
	"taller_ledger/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	uc    *WorkOrderUseCase
	repo  *memory.LedgerMemoryRepository
	clock *testClock
	order entities.Order
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := memory.NewLedgerMemoryRepository()
	repo.PutInventoryItem(entities.InventoryItem{ID: "inv-pads", SKU: "BRK-001", Name: "Brake pads", Category: "brakes", Price: 4500, QuantityOnHand: 10, ReorderThreshold: 2})
	repo.PutInventoryItem(entities.InventoryItem{ID: "inv-oil", SKU: "OIL-5W30", Name: "Oil 5W30", Category: "fluids", Price: 3000, QuantityOnHand: 5, ReorderThreshold: 1})
	repo.PutInventoryItem(entities.InventoryItem{ID: "inv-bulb", SKU: "ELC-H4", Name: "H4 bulb", Price: 900, QuantityOnHand: 0})
	repo.PutCatalogService(entities.CatalogService{ID: "svc-align", Name: "Wheel alignment", Category: "suspension", LaborPrice: 8000, PartsPrice: 2000, Active: true})
	repo.PutCatalogService(entities.CatalogService{ID: "svc-carb", Name: "Carburetor tune", LaborPrice: 5000, Active: false})

	clock := &testClock{now: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)}
	uc := NewWorkOrderUseCase(repo, WithClock(clock.Now))

	order, err := uc.CreateOrder(context.Background(), CreateOrderCommand{ClientID: "cli-1", VehicleIDs: []string{"veh-1", "veh-2"}})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return &fixture{uc: uc, repo: repo, clock: clock, order: order}
}

func price(v int64) *int64 { return &v }

func (f *fixture) addLine(t *testing.T, label string, unitPrice int64) entities.ChargeLine {
	t.Helper()
	res, err := f.uc.AddChargeLine(context.Background(), AddChargeLineCommand{
		OrderID:   f.order.ID,
		VehicleID: "veh-1",
		Kind:      entities.ChargeLineKindFreeText,
		Label:     label,
		UnitPrice: price(unitPrice),
	})
	if err != nil {
		t.Fatalf("add line %q: %v", label, err)
	}
	return *res.Line
}

func (f *fixture) attachInventory(t *testing.T, lineID, itemID string) LedgerResult {
	t.Helper()
	res, err := f.uc.AttachNestedPart(context.Background(), AttachNestedPartCommand{
		OrderID: f.order.ID,
		LineID:  lineID,
		Source:  entities.PartSource{Kind: entities.PartSourceInventory, InventoryItemID: itemID},
	})
	if err != nil {
		t.Fatalf("attach %s: %v", itemID, err)
	}
	return res
}

func (f *fixture) attachFree(t *testing.T, lineID, name string, p int64) LedgerResult {
	t.Helper()
	res, err := f.uc.AttachNestedPart(context.Background(), AttachNestedPartCommand{
		OrderID: f.order.ID,
		LineID:  lineID,
		Source:  entities.PartSource{Kind: entities.PartSourceFreeEntry, Name: name, Price: price(p)},
	})
	if err != nil {
		t.Fatalf("attach %s: %v", name, err)
	}
	return res
}

func (f *fixture) stock(t *testing.T, itemID string) int64 {
	t.Helper()
	it, err := f.repo.GetInventoryItem(context.Background(), itemID)
	if err != nil || it.ID == "" {
		t.Fatalf("inventory item %s: %v", itemID, err)
	}
	return it.QuantityOnHand
}

func (f *fixture) currentOrder(t *testing.T) entities.Order {
	t.Helper()
	o, err := f.uc.GetOrder(context.Background(), f.order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	return o
}

func (f *fixture) moveTo(t *testing.T, status entities.OrderStatus) {
	t.Helper()
	if _, err := f.uc.TransitionStatus(context.Background(), TransitionStatusCommand{OrderID: f.order.ID, Status: status}); err != nil {
		t.Fatalf("transition to %s: %v", status, err)
	}
}

// counterValue sums a counter family from the default registry.
func counterValue(t *testing.T, name string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}
