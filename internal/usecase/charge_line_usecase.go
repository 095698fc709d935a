package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/infrastructure/metrics"
	"taller_ledger/internal/usecase/interfaces"
)

type AddChargeLineCommand struct {
	OrderID          string
	VehicleID        string
	Kind             entities.ChargeLineKind
	CatalogServiceID string
	Label            string
	// UnitPrice is required for free text lines. For catalog lines it
	// overrides the catalog price when set.
	UnitPrice *int64
	WriteOptions
}

type UpdateChargeLineCommand struct {
	OrderID   string
	LineID    string
	Label     *string
	UnitPrice *int64
	WriteOptions
}

type RemoveChargeLineCommand struct {
	OrderID string
	LineID  string
	WriteOptions
}

type AttachNestedPartCommand struct {
	OrderID string
	LineID  string
	Source  entities.PartSource
	WriteOptions
}

type DetachNestedPartCommand struct {
	OrderID string
	LineID  string
	PartID  string
	WriteOptions
}

// AddChargeLine creates a line with no parts and line_total = unit_price.
// Catalog label and price are copied, not referenced.
func (u *WorkOrderUseCase) AddChargeLine(ctx context.Context, cmd AddChargeLineCommand) (LedgerResult, error) {
	vehicleID := strings.TrimSpace(cmd.VehicleID)
	if vehicleID == "" {
		return LedgerResult{}, ErrInvalidVehicleID
	}
	if cmd.UnitPrice != nil && *cmd.UnitPrice < 0 {
		return LedgerResult{}, ErrNegativePrice
	}
	label := strings.TrimSpace(cmd.Label)
	catalogID := strings.TrimSpace(cmd.CatalogServiceID)

	switch cmd.Kind {
	case entities.ChargeLineKindCatalogService:
		if catalogID == "" {
			return LedgerResult{}, ErrCatalogServiceNotFound
		}
	case entities.ChargeLineKindFreeText:
		if label == "" {
			return LedgerResult{}, ErrMissingLabel
		}
		if cmd.UnitPrice == nil {
			return LedgerResult{}, ErrMissingUnitPrice
		}
		catalogID = ""
	default:
		return LedgerResult{}, ErrInvalidLineKind
	}

	lineID := u.idFor(cmd.IdempotencyKey, "line")
	return u.run(ctx, mutation{
		op:              "add_line",
		orderID:         cmd.OrderID,
		replayTarget:    lineID,
		opts:            cmd.WriteOptions,
		pinsOrder:       true,
		loadLines:       true,
		rejectDelivered: true,
		build: func(s ledgerState) (ledgerChange, error) {
			if !s.order.HasVehicle(vehicleID) {
				return ledgerChange{}, ErrVehicleNotInOrder
			}
			line := entities.ChargeLine{
				ID:               lineID,
				OrderID:          s.order.ID,
				VehicleID:        vehicleID,
				Kind:             cmd.Kind,
				CatalogServiceID: catalogID,
				Label:            label,
				NestedParts:      []entities.NestedPart{},
			}
			if cmd.UnitPrice != nil {
				line.UnitPrice = *cmd.UnitPrice
			}
			// Catalog entries are read here, after a replay has been answered,
			// so a retried request is not rejected by a later catalog edit.
			if cmd.Kind == entities.ChargeLineKindCatalogService {
				svc, err := u.catalogEntry(ctx, catalogID)
				if err != nil {
					return ledgerChange{}, err
				}
				if line.Label == "" {
					line.Label = svc.Name
				}
				if cmd.UnitPrice == nil {
					line.UnitPrice = svc.UnitPrice()
				}
				if line.UnitPrice < 0 {
					return ledgerChange{}, ErrNegativePrice
				}
			}
			line.LineTotal = line.UnitPrice
			return ledgerChange{order: s.order, putLines: []entities.ChargeLine{line}, target: lineID}, nil
		},
	})
}

func (u *WorkOrderUseCase) catalogEntry(ctx context.Context, id string) (entities.CatalogService, error) {
	svc, err := u.repo.GetCatalogService(ctx, id)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if svc.ID == "" {
		log.Printf("[ledger][usecase] add-line catalog not found catalog_service_id=%s", id)
		return entities.CatalogService{}, ErrCatalogServiceNotFound
	}
	if !svc.Active {
		return entities.CatalogService{}, ErrCatalogServiceInactive
	}
	return svc, nil
}

// UpdateChargeLine edits label and/or unit price. line_total is re-derived.
func (u *WorkOrderUseCase) UpdateChargeLine(ctx context.Context, cmd UpdateChargeLineCommand) (LedgerResult, error) {
	lineID := strings.TrimSpace(cmd.LineID)
	if lineID == "" {
		return LedgerResult{}, ErrInvalidLineID
	}
	if cmd.Label == nil && cmd.UnitPrice == nil {
		return LedgerResult{}, ErrNothingToUpdate
	}
	if cmd.UnitPrice != nil && *cmd.UnitPrice < 0 {
		return LedgerResult{}, ErrNegativePrice
	}
	var label string
	if cmd.Label != nil {
		label = strings.TrimSpace(*cmd.Label)
		if label == "" {
			return LedgerResult{}, ErrMissingLabel
		}
	}

	return u.run(ctx, mutation{
		op:              "update_line",
		orderID:         cmd.OrderID,
		replayTarget:    lineID,
		opts:            cmd.WriteOptions,
		loadLines:       true,
		rejectDelivered: true,
		build: func(s ledgerState) (ledgerChange, error) {
			line, err := u.lineForEdit(s, lineID, cmd.ExpectedVersion)
			if err != nil {
				return ledgerChange{}, err
			}
			if cmd.Label != nil {
				line.Label = label
			}
			if cmd.UnitPrice != nil {
				line.UnitPrice = *cmd.UnitPrice
			}
			line.LineTotal = line.ExpectedTotal()
			return ledgerChange{order: s.order, putLines: []entities.ChargeLine{line}, target: line.ID}, nil
		},
	})
}

// RemoveChargeLine returns every stock-tracked part of the line to inventory
// and deletes the line in the same commit.
func (u *WorkOrderUseCase) RemoveChargeLine(ctx context.Context, cmd RemoveChargeLineCommand) (LedgerResult, error) {
	lineID := strings.TrimSpace(cmd.LineID)
	if lineID == "" {
		return LedgerResult{}, ErrInvalidLineID
	}

	return u.run(ctx, mutation{
		op:              "remove_line",
		orderID:         cmd.OrderID,
		opts:            cmd.WriteOptions,
		loadLines:       true,
		rejectDelivered: true,
		build: func(s ledgerState) (ledgerChange, error) {
			line, ok := s.line(lineID)
			if !ok {
				return ledgerChange{}, ErrLineNotFound
			}
			if cmd.ExpectedVersion != 0 && cmd.ExpectedVersion != line.Version {
				return ledgerChange{}, ErrVersionMismatch
			}
			if !line.Consistent() {
				// Removing the line drops the bad total; stock reversal does not depend on it.
				log.Printf("[ledger][usecase] CONSISTENCY removing inconsistent line order_id=%s line_id=%s line_total=%d expected=%d",
					line.OrderID, line.ID, line.LineTotal, line.ExpectedTotal())
				metrics.IncConsistencyViolation()
			}

			var deltas []interfaces.StockDelta
			for _, p := range line.NestedParts {
				if p.TracksStock() {
					deltas = append(deltas, interfaces.StockDelta{InventoryItemID: p.InventoryItemID, Delta: 1})
				}
			}
			return ledgerChange{order: s.order, deleteLines: []entities.ChargeLine{line}, stockDeltas: deltas}, nil
		},
	})
}

// AttachNestedPart snapshots a part onto a line. Inventory-backed parts
// capture the item's current price and take one unit out of stock, even if
// that leaves the count negative.
func (u *WorkOrderUseCase) AttachNestedPart(ctx context.Context, cmd AttachNestedPartCommand) (LedgerResult, error) {
	lineID := strings.TrimSpace(cmd.LineID)
	if lineID == "" {
		return LedgerResult{}, ErrInvalidLineID
	}
	src := cmd.Source
	switch src.Kind {
	case entities.PartSourceInventory:
		src.InventoryItemID = strings.TrimSpace(src.InventoryItemID)
		if src.InventoryItemID == "" {
			return LedgerResult{}, ErrInventoryItemNotFound
		}
	case entities.PartSourceFreeEntry:
		src.Name = strings.TrimSpace(src.Name)
		if src.Name == "" {
			return LedgerResult{}, ErrMissingPartName
		}
		if src.Price == nil {
			return LedgerResult{}, ErrMissingPartPrice
		}
		if *src.Price < 0 {
			return LedgerResult{}, ErrNegativePrice
		}
	default:
		return LedgerResult{}, ErrInvalidPartSource
	}

	partID := u.idFor(cmd.IdempotencyKey, "part")
	return u.run(ctx, mutation{
		op:              "attach_part",
		orderID:         cmd.OrderID,
		replayTarget:    lineID,
		opts:            cmd.WriteOptions,
		loadLines:       true,
		rejectDelivered: true,
		build: func(s ledgerState) (ledgerChange, error) {
			line, err := u.lineForEdit(s, lineID, cmd.ExpectedVersion)
			if err != nil {
				return ledgerChange{}, err
			}

			part := entities.NestedPart{ID: partID, Source: src.Kind, AttachedAt: u.now()}
			var deltas []interfaces.StockDelta
			switch src.Kind {
			case entities.PartSourceInventory:
				item, err := u.repo.GetInventoryItem(ctx, src.InventoryItemID)
				if err != nil {
					return ledgerChange{}, err
				}
				if item.ID == "" {
					return ledgerChange{}, ErrInventoryItemNotFound
				}
				part.InventoryItemID = item.ID
				part.Name = item.Name
				part.Category = item.Category
				part.Price = item.Price
				deltas = append(deltas, interfaces.StockDelta{InventoryItemID: item.ID, Delta: -1})
			case entities.PartSourceFreeEntry:
				part.Name = src.Name
				part.Category = strings.TrimSpace(src.Category)
				part.Price = *src.Price
			}

			parts := make([]entities.NestedPart, 0, len(line.NestedParts)+1)
			parts = append(parts, line.NestedParts...)
			line.NestedParts = append(parts, part)
			line.LineTotal += part.Price
			return ledgerChange{order: s.order, putLines: []entities.ChargeLine{line}, stockDeltas: deltas, target: line.ID}, nil
		},
	})
}

// DetachNestedPart removes a part from its line and, for inventory-backed
// parts, puts the unit back in stock in the same commit.
func (u *WorkOrderUseCase) DetachNestedPart(ctx context.Context, cmd DetachNestedPartCommand) (LedgerResult, error) {
	lineID := strings.TrimSpace(cmd.LineID)
	if lineID == "" {
		return LedgerResult{}, ErrInvalidLineID
	}
	partID := strings.TrimSpace(cmd.PartID)
	if partID == "" {
		return LedgerResult{}, ErrInvalidPartID
	}

	return u.run(ctx, mutation{
		op:              "detach_part",
		orderID:         cmd.OrderID,
		replayTarget:    lineID,
		opts:            cmd.WriteOptions,
		loadLines:       true,
		rejectDelivered: true,
		build: func(s ledgerState) (ledgerChange, error) {
			line, err := u.lineForEdit(s, lineID, cmd.ExpectedVersion)
			if err != nil {
				return ledgerChange{}, err
			}
			idx := line.FindPart(partID)
			if idx < 0 {
				return ledgerChange{}, ErrPartNotFound
			}
			part := line.NestedParts[idx]

			parts := make([]entities.NestedPart, 0, len(line.NestedParts)-1)
			parts = append(parts, line.NestedParts[:idx]...)
			line.NestedParts = append(parts, line.NestedParts[idx+1:]...)
			line.LineTotal -= part.Price

			var deltas []interfaces.StockDelta
			if part.TracksStock() {
				deltas = append(deltas, interfaces.StockDelta{InventoryItemID: part.InventoryItemID, Delta: 1})
			}
			return ledgerChange{order: s.order, putLines: []entities.ChargeLine{line}, stockDeltas: deltas, target: line.ID}, nil
		},
	})
}

func (u *WorkOrderUseCase) ListChargeLines(ctx context.Context, orderID string) ([]entities.ChargeLine, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	if _, err := u.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	lines, err := u.repo.ListChargeLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	sortLines(lines)
	return lines, nil
}

func (u *WorkOrderUseCase) lineForEdit(s ledgerState, lineID string, expectedVersion int64) (entities.ChargeLine, error) {
	line, ok := s.line(lineID)
	if !ok {
		return entities.ChargeLine{}, ErrLineNotFound
	}
	if expectedVersion != 0 && expectedVersion != line.Version {
		return entities.ChargeLine{}, ErrVersionMismatch
	}
	if err := checkLine(line); err != nil {
		return entities.ChargeLine{}, err
	}
	return line, nil
}

func sortLines(lines []entities.ChargeLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if !lines[i].CreatedAt.Equal(lines[j].CreatedAt) {
			return lines[i].CreatedAt.Before(lines[j].CreatedAt)
		}
		return lines[i].ID < lines[j].ID
	})
}
