package entities

import "time"

// ChargeLineKind tells where a line's label and price came from.

type ChargeLineKind string

const (
	ChargeLineKindCatalogService ChargeLineKind = "catalog_service"
	ChargeLineKindFreeText       ChargeLineKind = "free_text"
)

func (k ChargeLineKind) Valid() bool {
	switch k {
	case ChargeLineKindCatalogService, ChargeLineKindFreeText:
		return true
	}
	return false
}

// PartSourceKind tells whether a nested part is stock-tracked.

type PartSourceKind string

const (
	PartSourceInventory PartSourceKind = "inventory"
	PartSourceFreeEntry PartSourceKind = "free_entry"
)

func (k PartSourceKind) Valid() bool {
	switch k {
	case PartSourceInventory, PartSourceFreeEntry:
		return true
	}
	return false
}

// PartSource describes what to attach to a line. For PartSourceInventory only
// InventoryItemID is read; name, category and price are captured from the item.
// For PartSourceFreeEntry the caller supplies name and price.
type PartSource struct {
	Kind            PartSourceKind `json:"kind"`
	InventoryItemID string         `json:"inventory_item_id,omitempty"`
	Name            string         `json:"name,omitempty"`
	Category        string         `json:"category,omitempty"`
	Price           *int64         `json:"price,omitempty"`
}

// NestedPart is a part consumed while performing a line's work. Price is a
// snapshot taken at attach time, not a reference to the current item price.
type NestedPart struct {
	ID              string         `json:"id"`
	Source          PartSourceKind `json:"source"`
	InventoryItemID string         `json:"inventory_item_id,omitempty"`
	Name            string         `json:"name"`
	Category        string         `json:"category,omitempty"`
	Price           int64          `json:"price"`
	AttachedAt      time.Time      `json:"attached_at"`
}

// TracksStock reports whether attaching/detaching the part moves inventory.
func (p NestedPart) TracksStock() bool {
	return p.Source == PartSourceInventory && p.InventoryItemID != ""
}

// ChargeLine is one billable line of an order, scoped to one vehicle.
//
// Storage model (DynamoDB):
//   - PK: order_id, SK: id
//   - nested parts are stored inline so a line and its parts are one record
//
// Invariant: LineTotal == UnitPrice + sum(NestedParts[i].Price).
type ChargeLine struct {
	ID               string         `json:"id"`
	OrderID          string         `json:"order_id"`
	VehicleID        string         `json:"vehicle_id"`
	Kind             ChargeLineKind `json:"kind"`
	CatalogServiceID string         `json:"catalog_service_id,omitempty"`
	Label            string         `json:"label"`
	UnitPrice        int64          `json:"unit_price"`
	LineTotal        int64          `json:"line_total"`
	NestedParts      []NestedPart   `json:"nested_parts"`
	Version          int64          `json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ExpectedTotal derives the line total from its price and parts.
func (l ChargeLine) ExpectedTotal() int64 {
	total := l.UnitPrice
	for _, p := range l.NestedParts {
		total += p.Price
	}
	return total
}

func (l ChargeLine) Consistent() bool {
	return l.LineTotal == l.ExpectedTotal()
}

// FindPart returns the index of the part with id, or -1.
func (l ChargeLine) FindPart(id string) int {
	for i, p := range l.NestedParts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
