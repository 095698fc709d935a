package entities

import "time"

// InventoryItem is a stock-tracked part record.
//
// QuantityOnHand may go negative when more parts are consumed than counted;
// the ledger never blocks on stock, it only tracks it.
type InventoryItem struct {
	ID               string    `json:"id"`
	SKU              string    `json:"sku"`
	Name             string    `json:"name"`
	Category         string    `json:"category,omitempty"`
	Price            int64     `json:"price"`
	QuantityOnHand   int64     `json:"quantity_on_hand"`
	ReorderThreshold int64     `json:"reorder_threshold"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Overconsumed reports negative stock.
func (i InventoryItem) Overconsumed() bool {
	return i.QuantityOnHand < 0
}

// NeedsReorder reports an item that belongs on the shortfall list.
func (i InventoryItem) NeedsReorder() bool {
	return i.QuantityOnHand <= i.ReorderThreshold
}
