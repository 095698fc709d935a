package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"taller_ledger/internal/domain/entities"

	"github.com/google/uuid"
)

type CreateOrderCommand struct {
	ClientID   string
	VehicleIDs []string
	// Scheduled creates a future appointment instead of a received vehicle.
	Scheduled bool
}

type SetPaymentStatusCommand struct {
	OrderID string
	Status  entities.PaymentStatus
	Method  string
	WriteOptions
}

// OrderDocument is the read-only snapshot handed to the document renderer.
type OrderDocument struct {
	Order          entities.Order        `json:"order"`
	Lines          []entities.ChargeLine `json:"lines"`
	ElapsedMinutes int64                 `json:"elapsed_minutes"`
	GeneratedAt    time.Time             `json:"generated_at"`
}

func (u *WorkOrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	vehicles := make([]string, 0, len(cmd.VehicleIDs))
	seen := make(map[string]bool, len(cmd.VehicleIDs))
	for _, v := range cmd.VehicleIDs {
		v = strings.TrimSpace(v)
		if v == "" {
			return entities.Order{}, ErrInvalidVehicleID
		}
		if !seen[v] {
			seen[v] = true
			vehicles = append(vehicles, v)
		}
	}

	status := entities.OrderStatusReceived
	if cmd.Scheduled {
		status = entities.OrderStatusScheduled
	}
	now := u.now()
	o := entities.Order{
		ID:            u.newID(),
		ClientID:      strings.TrimSpace(cmd.ClientID),
		VehicleIDs:    vehicles,
		Status:        status,
		PaymentStatus: entities.PaymentStatusPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.CreateOrder(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s folio=%d status=%s", created.ID, created.Folio, created.Status)
	return created, nil
}

func (u *WorkOrderUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ListOrders returns the board, optionally filtered by status, by folio.
func (u *WorkOrderUseCase) ListOrders(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	orders, err := u.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := orders[:0]
	for _, o := range orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Folio < out[j].Folio })
	return out, nil
}

// SetPaymentStatus sets the payment flag. It is allowed on delivered orders.
func (u *WorkOrderUseCase) SetPaymentStatus(ctx context.Context, cmd SetPaymentStatusCommand) (LedgerResult, error) {
	if !cmd.Status.Valid() {
		return LedgerResult{}, ErrInvalidPaymentStatus
	}
	method := strings.TrimSpace(cmd.Method)
	if cmd.Status == entities.PaymentStatusPaid && method == "" {
		return LedgerResult{}, ErrMissingPaymentMethod
	}
	if cmd.Status == entities.PaymentStatusPending {
		method = ""
	}

	return u.run(ctx, mutation{
		op:        "set_payment",
		orderID:   cmd.OrderID,
		opts:      cmd.WriteOptions,
		pinsOrder: true,
		build: func(s ledgerState) (ledgerChange, error) {
			if s.order.PaymentStatus == cmd.Status && s.order.PaymentMethod == method {
				return ledgerChange{noop: true}, nil
			}
			order := s.order
			order.PaymentStatus = cmd.Status
			order.PaymentMethod = method
			return ledgerChange{order: order}, nil
		},
	})
}

func (u *WorkOrderUseCase) GetOrderDocument(ctx context.Context, orderID string) (OrderDocument, error) {
	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return OrderDocument{}, err
	}
	lines, err := u.repo.ListChargeLines(ctx, order.ID)
	if err != nil {
		return OrderDocument{}, err
	}
	sortLines(lines)
	now := u.now()
	return OrderDocument{
		Order:          order,
		Lines:          lines,
		ElapsedMinutes: order.ElapsedMinutes(now),
		GeneratedAt:    now,
	}, nil
}

func (u *WorkOrderUseCase) ListInventory(ctx context.Context) ([]entities.InventoryItem, error) {
	items, err := u.repo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SKU < items[j].SKU })
	return items, nil
}

// ListShortfalls is the "faltantes" list: items at or below their reorder
// threshold, most negative first.
func (u *WorkOrderUseCase) ListShortfalls(ctx context.Context) ([]entities.InventoryItem, error) {
	items, err := u.repo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.InventoryItem, 0)
	for _, it := range items {
		if it.NeedsReorder() {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].QuantityOnHand != out[j].QuantityOnHand {
			return out[i].QuantityOnHand < out[j].QuantityOnHand
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

func (u *WorkOrderUseCase) ListCatalog(ctx context.Context) ([]entities.CatalogService, error) {
	services, err := u.repo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

func newUUID() string {
	return uuid.NewString()
}

// idFor derives a stable id from the idempotency key so a replayed request
// resolves to the record the first attempt created.
func (u *WorkOrderUseCase) idFor(idempotencyKey, kind string) string {
	if idempotencyKey == "" {
		return u.newID()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+idempotencyKey)).String()
}
