package response

import (
	"time"

	"taller_ledger/internal/domain/entities"
)

type InventoryItemResponse struct {
	ID               string    `json:"id"`
	SKU              string    `json:"sku"`
	Name             string    `json:"name"`
	Category         string    `json:"category,omitempty"`
	Price            int64     `json:"price"`
	QuantityOnHand   int64     `json:"quantity_on_hand"`
	ReorderThreshold int64     `json:"reorder_threshold"`
	Overconsumed     bool      `json:"overconsumed"`
	NeedsReorder     bool      `json:"needs_reorder"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromInventoryItem(it entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:               it.ID,
		SKU:              it.SKU,
		Name:             it.Name,
		Category:         it.Category,
		Price:            it.Price,
		QuantityOnHand:   it.QuantityOnHand,
		ReorderThreshold: it.ReorderThreshold,
		Overconsumed:     it.Overconsumed(),
		NeedsReorder:     it.NeedsReorder(),
		UpdatedAt:        it.UpdatedAt,
	}
}

func FromInventoryItems(items []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromInventoryItem(it))
	}
	return out
}

type CatalogServiceResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	LaborPrice int64  `json:"labor_price"`
	PartsPrice int64  `json:"parts_price"`
	UnitPrice  int64  `json:"unit_price"`
	Active     bool   `json:"active"`
}

func FromCatalogServices(services []entities.CatalogService) []CatalogServiceResponse {
	out := make([]CatalogServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, CatalogServiceResponse{
			ID:         svc.ID,
			Name:       svc.Name,
			Category:   svc.Category,
			LaborPrice: svc.LaborPrice,
			PartsPrice: svc.PartsPrice,
			UnitPrice:  svc.UnitPrice(),
			Active:     svc.Active,
		})
	}
	return out
}
