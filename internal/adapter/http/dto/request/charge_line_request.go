package request

import (
	"strings"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase"
)

// AddChargeLineRequest: catalog_service_id is read for kind catalog_service,
// unit_price is required for free_text and optional (override) otherwise.
type AddChargeLineRequest struct {
	VehicleID        string `json:"vehicle_id" binding:"required"`
	Kind             string `json:"kind" binding:"required,oneof=catalog_service free_text"`
	CatalogServiceID string `json:"catalog_service_id"`
	Label            string `json:"label"`
	UnitPrice        *int64 `json:"unit_price"`
	VersionedRequest
}

func (r AddChargeLineRequest) ToCommand(orderID string, opts usecase.WriteOptions) usecase.AddChargeLineCommand {
	return usecase.AddChargeLineCommand{
		OrderID:          orderID,
		VehicleID:        r.VehicleID,
		Kind:             entities.ChargeLineKind(r.Kind),
		CatalogServiceID: r.CatalogServiceID,
		Label:            r.Label,
		UnitPrice:        r.UnitPrice,
		WriteOptions:     opts,
	}
}

type UpdateChargeLineRequest struct {
	Label     *string `json:"label"`
	UnitPrice *int64  `json:"unit_price"`
	VersionedRequest
}

func (r UpdateChargeLineRequest) ToCommand(orderID, lineID string, opts usecase.WriteOptions) usecase.UpdateChargeLineCommand {
	return usecase.UpdateChargeLineCommand{
		OrderID:      orderID,
		LineID:       lineID,
		Label:        r.Label,
		UnitPrice:    r.UnitPrice,
		WriteOptions: opts,
	}
}

// AttachNestedPartRequest: inventory parts only need inventory_item_id; name,
// category and price are captured from the item.
type AttachNestedPartRequest struct {
	Source          string `json:"source" binding:"required,oneof=inventory free_entry"`
	InventoryItemID string `json:"inventory_item_id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           *int64 `json:"price"`
	VersionedRequest
}

func (r AttachNestedPartRequest) ToCommand(orderID, lineID string, opts usecase.WriteOptions) usecase.AttachNestedPartCommand {
	return usecase.AttachNestedPartCommand{
		OrderID: orderID,
		LineID:  lineID,
		Source: entities.PartSource{
			Kind:            entities.PartSourceKind(r.Source),
			InventoryItemID: strings.TrimSpace(r.InventoryItemID),
			Name:            r.Name,
			Category:        r.Category,
			Price:           r.Price,
		},
		WriteOptions: opts,
	}
}
