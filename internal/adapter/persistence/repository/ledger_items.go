package repository

import (
	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase/interfaces"
)

type orderItem struct {
	ID                      string   `dynamodbav:"id"`
	Folio                   int64    `dynamodbav:"folio"`
	ClientID                string   `dynamodbav:"client_id,omitempty"`
	VehicleIDs              []string `dynamodbav:"vehicle_ids,omitempty"`
	Status                  string   `dynamodbav:"status"`
	PaymentStatus           string   `dynamodbav:"payment_status"`
	PaymentMethod           string   `dynamodbav:"payment_method,omitempty"`
	TaxIncluded             bool     `dynamodbav:"tax_included"`
	Total                   int64    `dynamodbav:"total"`
	LaborMinutesAccumulated int64    `dynamodbav:"labor_minutes_accumulated"`
	LaborSessionStartedAt   string   `dynamodbav:"labor_session_started_at,omitempty"`
	Version                 int64    `dynamodbav:"version"`
	CreatedAt               string   `dynamodbav:"created_at"`
	UpdatedAt               string   `dynamodbav:"updated_at"`
}

type partItem struct {
	ID              string `dynamodbav:"id"`
	Source          string `dynamodbav:"source"`
	InventoryItemID string `dynamodbav:"inventory_item_id,omitempty"`
	Name            string `dynamodbav:"name"`
	Category        string `dynamodbav:"category,omitempty"`
	Price           int64  `dynamodbav:"price"`
	AttachedAt      string `dynamodbav:"attached_at"`
}

// chargeLineItem keeps nested parts inline so a line and its parts are
// written by a single transaction item.
type chargeLineItem struct {
	OrderID          string     `dynamodbav:"order_id"`
	ID               string     `dynamodbav:"id"`
	VehicleID        string     `dynamodbav:"vehicle_id"`
	Kind             string     `dynamodbav:"kind"`
	CatalogServiceID string     `dynamodbav:"catalog_service_id,omitempty"`
	Label            string     `dynamodbav:"label"`
	UnitPrice        int64      `dynamodbav:"unit_price"`
	LineTotal        int64      `dynamodbav:"line_total"`
	NestedParts      []partItem `dynamodbav:"nested_parts"`
	Version          int64      `dynamodbav:"version"`
	CreatedAt        string     `dynamodbav:"created_at"`
	UpdatedAt        string     `dynamodbav:"updated_at"`
}

type inventoryItem struct {
	ID               string `dynamodbav:"id"`
	SKU              string `dynamodbav:"sku"`
	Name             string `dynamodbav:"name"`
	Category         string `dynamodbav:"category,omitempty"`
	Price            int64  `dynamodbav:"price"`
	QuantityOnHand   int64  `dynamodbav:"quantity_on_hand"`
	ReorderThreshold int64  `dynamodbav:"reorder_threshold"`
	UpdatedAt        string `dynamodbav:"updated_at,omitempty"`
}

type catalogItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Category   string `dynamodbav:"category,omitempty"`
	LaborPrice int64  `dynamodbav:"labor_price"`
	PartsPrice int64  `dynamodbav:"parts_price"`
	Active     bool   `dynamodbav:"active"`
}

type idempotencyItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	Operation string `dynamodbav:"operation"`
	CreatedAt string `dynamodbav:"created_at"`
}

func fromIdempotencyItem(it idempotencyItem) interfaces.IdempotencyRecord {
	return interfaces.IdempotencyRecord{
		Key:       it.ID,
		OrderID:   it.OrderID,
		Operation: it.Operation,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                      o.ID,
		Folio:                   o.Folio,
		ClientID:                o.ClientID,
		VehicleIDs:              o.VehicleIDs,
		Status:                  string(o.Status),
		PaymentStatus:           string(o.PaymentStatus),
		PaymentMethod:           o.PaymentMethod,
		TaxIncluded:             o.TaxIncluded,
		Total:                   o.Total,
		LaborMinutesAccumulated: o.LaborMinutesAccumulated,
		Version:                 o.Version,
		CreatedAt:               formatTime(o.CreatedAt),
		UpdatedAt:               formatTime(o.UpdatedAt),
	}
	if o.LaborSessionStartedAt != nil {
		it.LaborSessionStartedAt = formatTime(*o.LaborSessionStartedAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                      it.ID,
		Folio:                   it.Folio,
		ClientID:                it.ClientID,
		VehicleIDs:              it.VehicleIDs,
		Status:                  entities.OrderStatus(it.Status),
		PaymentStatus:           entities.PaymentStatus(it.PaymentStatus),
		PaymentMethod:           it.PaymentMethod,
		TaxIncluded:             it.TaxIncluded,
		Total:                   it.Total,
		LaborMinutesAccumulated: it.LaborMinutesAccumulated,
		Version:                 it.Version,
		CreatedAt:               parseTime(it.CreatedAt),
		UpdatedAt:               parseTime(it.UpdatedAt),
	}
	if it.LaborSessionStartedAt != "" {
		started := parseTime(it.LaborSessionStartedAt)
		o.LaborSessionStartedAt = &started
	}
	return o
}

func toChargeLineItem(l entities.ChargeLine) chargeLineItem {
	parts := make([]partItem, 0, len(l.NestedParts))
	for _, p := range l.NestedParts {
		parts = append(parts, partItem{
			ID:              p.ID,
			Source:          string(p.Source),
			InventoryItemID: p.InventoryItemID,
			Name:            p.Name,
			Category:        p.Category,
			Price:           p.Price,
			AttachedAt:      formatTime(p.AttachedAt),
		})
	}
	return chargeLineItem{
		OrderID:          l.OrderID,
		ID:               l.ID,
		VehicleID:        l.VehicleID,
		Kind:             string(l.Kind),
		CatalogServiceID: l.CatalogServiceID,
		Label:            l.Label,
		UnitPrice:        l.UnitPrice,
		LineTotal:        l.LineTotal,
		NestedParts:      parts,
		Version:          l.Version,
		CreatedAt:        formatTime(l.CreatedAt),
		UpdatedAt:        formatTime(l.UpdatedAt),
	}
}

func fromChargeLineItem(it chargeLineItem) entities.ChargeLine {
	parts := make([]entities.NestedPart, 0, len(it.NestedParts))
	for _, p := range it.NestedParts {
		parts = append(parts, entities.NestedPart{
			ID:              p.ID,
			Source:          entities.PartSourceKind(p.Source),
			InventoryItemID: p.InventoryItemID,
			Name:            p.Name,
			Category:        p.Category,
			Price:           p.Price,
			AttachedAt:      parseTime(p.AttachedAt),
		})
	}
	return entities.ChargeLine{
		ID:               it.ID,
		OrderID:          it.OrderID,
		VehicleID:        it.VehicleID,
		Kind:             entities.ChargeLineKind(it.Kind),
		CatalogServiceID: it.CatalogServiceID,
		Label:            it.Label,
		UnitPrice:        it.UnitPrice,
		LineTotal:        it.LineTotal,
		NestedParts:      parts,
		Version:          it.Version,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromInventoryItem(it inventoryItem) entities.InventoryItem {
	return entities.InventoryItem{
		ID:               it.ID,
		SKU:              it.SKU,
		Name:             it.Name,
		Category:         it.Category,
		Price:            it.Price,
		QuantityOnHand:   it.QuantityOnHand,
		ReorderThreshold: it.ReorderThreshold,
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogService {
	return entities.CatalogService{
		ID:         it.ID,
		Name:       it.Name,
		Category:   it.Category,
		LaborPrice: it.LaborPrice,
		PartsPrice: it.PartsPrice,
		Active:     it.Active,
	}
}
