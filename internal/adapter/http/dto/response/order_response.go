package response

import (
	"time"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase"
)

type OrderResponse struct {
	ID                      string     `json:"id"`
	Folio                   int64      `json:"folio"`
	ClientID                string     `json:"client_id,omitempty"`
	VehicleIDs              []string   `json:"vehicle_ids"`
	Status                  string     `json:"status"`
	PaymentStatus           string     `json:"payment_status"`
	PaymentMethod           string     `json:"payment_method,omitempty"`
	TaxIncluded             bool       `json:"tax_included"`
	Total                   int64      `json:"total"`
	LaborMinutesAccumulated int64      `json:"labor_minutes_accumulated"`
	LaborSessionStartedAt   *time.Time `json:"labor_session_started_at"`
	Version                 int64      `json:"version"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	vehicles := o.VehicleIDs
	if vehicles == nil {
		vehicles = []string{}
	}
	return OrderResponse{
		ID:                      o.ID,
		Folio:                   o.Folio,
		ClientID:                o.ClientID,
		VehicleIDs:              vehicles,
		Status:                  string(o.Status),
		PaymentStatus:           string(o.PaymentStatus),
		PaymentMethod:           o.PaymentMethod,
		TaxIncluded:             o.TaxIncluded,
		Total:                   o.Total,
		LaborMinutesAccumulated: o.LaborMinutesAccumulated,
		LaborSessionStartedAt:   o.LaborSessionStartedAt,
		Version:                 o.Version,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// LedgerResultResponse is the canonical post-mutation state. Clients should
// render from it instead of their optimistic guess.
type LedgerResultResponse struct {
	Order        OrderResponse           `json:"order"`
	Line         *ChargeLineResponse     `json:"line,omitempty"`
	StockSignals []InventoryItemResponse `json:"stock_signals"`
	Replayed     bool                    `json:"replayed"`
}

func FromLedgerResult(res usecase.LedgerResult) LedgerResultResponse {
	out := LedgerResultResponse{
		Order:        FromOrder(res.Order),
		StockSignals: FromInventoryItems(res.StockSignals),
		Replayed:     res.Replayed,
	}
	if res.Line != nil {
		line := FromChargeLine(*res.Line)
		out.Line = &line
	}
	return out
}

type SessionResponse struct {
	OrderID            string     `json:"order_id"`
	Status             string     `json:"status"`
	Running            bool       `json:"running"`
	StartedAt          *time.Time `json:"started_at"`
	AccumulatedMinutes int64      `json:"accumulated_minutes"`
	ElapsedMinutes     int64      `json:"elapsed_minutes"`
}

func FromSession(o entities.Order, elapsed int64) SessionResponse {
	return SessionResponse{
		OrderID:            o.ID,
		Status:             string(o.Status),
		Running:            o.SessionRunning(),
		StartedAt:          o.LaborSessionStartedAt,
		AccumulatedMinutes: o.LaborMinutesAccumulated,
		ElapsedMinutes:     elapsed,
	}
}

type OrderDocumentResponse struct {
	Order          OrderResponse        `json:"order"`
	Lines          []ChargeLineResponse `json:"lines"`
	ElapsedMinutes int64                `json:"elapsed_minutes"`
	GeneratedAt    time.Time            `json:"generated_at"`
}

func FromOrderDocument(doc usecase.OrderDocument) OrderDocumentResponse {
	return OrderDocumentResponse{
		Order:          FromOrder(doc.Order),
		Lines:          FromChargeLines(doc.Lines),
		ElapsedMinutes: doc.ElapsedMinutes,
		GeneratedAt:    doc.GeneratedAt,
	}
}
