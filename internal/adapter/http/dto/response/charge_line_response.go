package response

import (
	"time"

	"taller_ledger/internal/domain/entities"
)

type NestedPartResponse struct {
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	InventoryItemID string    `json:"inventory_item_id,omitempty"`
	Name            string    `json:"name"`
	Category        string    `json:"category,omitempty"`
	Price           int64     `json:"price"`
	AttachedAt      time.Time `json:"attached_at"`
}

type ChargeLineResponse struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"order_id"`
	VehicleID        string               `json:"vehicle_id"`
	Kind             string               `json:"kind"`
	CatalogServiceID string               `json:"catalog_service_id,omitempty"`
	Label            string               `json:"label"`
	UnitPrice        int64                `json:"unit_price"`
	LineTotal        int64                `json:"line_total"`
	NestedParts      []NestedPartResponse `json:"nested_parts"`
	Version          int64                `json:"version"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func FromChargeLine(l entities.ChargeLine) ChargeLineResponse {
	parts := make([]NestedPartResponse, 0, len(l.NestedParts))
	for _, p := range l.NestedParts {
		parts = append(parts, NestedPartResponse{
			ID:              p.ID,
			Source:          string(p.Source),
			InventoryItemID: p.InventoryItemID,
			Name:            p.Name,
			Category:        p.Category,
			Price:           p.Price,
			AttachedAt:      p.AttachedAt,
		})
	}
	return ChargeLineResponse{
		ID:               l.ID,
		OrderID:          l.OrderID,
		VehicleID:        l.VehicleID,
		Kind:             string(l.Kind),
		CatalogServiceID: l.CatalogServiceID,
		Label:            l.Label,
		UnitPrice:        l.UnitPrice,
		LineTotal:        l.LineTotal,
		NestedParts:      parts,
		Version:          l.Version,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func FromChargeLines(lines []entities.ChargeLine) []ChargeLineResponse {
	out := make([]ChargeLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, FromChargeLine(l))
	}
	return out
}
