package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taller_ledger/internal/adapter/http/handlers/mocks"
	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newChargeLineRouter(h *ChargeLineHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders/:order_id/lines", h.ListChargeLines)
	r.POST("/v1/orders/:order_id/lines", h.AddChargeLine)
	r.PATCH("/v1/orders/:order_id/lines/:line_id", h.UpdateChargeLine)
	r.DELETE("/v1/orders/:order_id/lines/:line_id", h.RemoveChargeLine)
	r.POST("/v1/orders/:order_id/lines/:line_id/parts", h.AttachNestedPart)
	r.DELETE("/v1/orders/:order_id/lines/:line_id/parts/:part_id", h.DetachNestedPart)
	return r
}

func TestChargeLineHandler_AddChargeLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/lines", bytes.NewBufferString(`{"vehicle_id":"veh-1","kind":"bundle"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative expected version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/lines", bytes.NewBufferString(`{"vehicle_id":"veh-1","kind":"free_text","label":"x","unit_price":1,"expected_version":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		line := entities.ChargeLine{ID: "l-1", OrderID: "ord-1", VehicleID: "veh-1", Kind: entities.ChargeLineKindFreeText, Label: "Diagnosis", UnitPrice: 15000, LineTotal: 15000, Version: 1}
		uc.EXPECT().AddChargeLine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.AddChargeLineCommand) (usecase.LedgerResult, error) {
				if cmd.OrderID != "ord-1" || cmd.VehicleID != "veh-1" || cmd.Kind != entities.ChargeLineKindFreeText {
					t.Fatalf("unexpected command %+v", cmd)
				}
				if cmd.UnitPrice == nil || *cmd.UnitPrice != 15000 {
					t.Fatalf("unit price not forwarded: %+v", cmd.UnitPrice)
				}
				if cmd.IdempotencyKey != "add-1" {
					t.Fatalf("idempotency key not forwarded: %q", cmd.IdempotencyKey)
				}
				return usecase.LedgerResult{Order: entities.Order{ID: "ord-1", Total: 15000}, Line: &line}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/lines", bytes.NewBufferString(`{"vehicle_id":"veh-1","kind":"free_text","label":"Diagnosis","unit_price":15000}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderIdempotencyKey, "add-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Line struct {
				ID        string `json:"id"`
				LineTotal int64  `json:"line_total"`
			} `json:"line"`
			Replayed bool `json:"replayed"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Line.ID != "l-1" || body.Line.LineTotal != 15000 || body.Replayed {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("replayed returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		line := entities.ChargeLine{ID: "l-1", OrderID: "ord-1"}
		uc.EXPECT().AddChargeLine(gomock.Any(), gomock.Any()).Return(usecase.LedgerResult{Order: entities.Order{ID: "ord-1"}, Line: &line, Replayed: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/lines", bytes.NewBufferString(`{"vehicle_id":"veh-1","kind":"free_text","label":"Diagnosis","unit_price":15000}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderIdempotencyKey, "add-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delivered order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		uc.EXPECT().AddChargeLine(gomock.Any(), gomock.Any()).Return(usecase.LedgerResult{}, usecase.ErrOrderDelivered)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/lines", bytes.NewBufferString(`{"vehicle_id":"veh-1","kind":"catalog_service","catalog_service_id":"svc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestChargeLineHandler_UpdateChargeLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := newChargeLineRouter(NewChargeLineHandler(uc))

	uc.EXPECT().UpdateChargeLine(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd usecase.UpdateChargeLineCommand) (usecase.LedgerResult, error) {
			if cmd.LineID != "l-1" || cmd.ExpectedVersion != 2 {
				t.Fatalf("unexpected command %+v", cmd)
			}
			if cmd.Label != nil || cmd.UnitPrice == nil || *cmd.UnitPrice != 12000 {
				t.Fatalf("unexpected fields label=%v price=%v", cmd.Label, cmd.UnitPrice)
			}
			return usecase.LedgerResult{}, usecase.ErrLineNotFound
		})

	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/lines/l-1", bytes.NewBufferString(`{"unit_price":12000,"expected_version":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestChargeLineHandler_RemoveChargeLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1/lines/l-1?expected_version=x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		uc.EXPECT().RemoveChargeLine(gomock.Any(), usecase.RemoveChargeLineCommand{
			OrderID:      "ord-1",
			LineID:       "l-1",
			WriteOptions: usecase.WriteOptions{ExpectedVersion: 4},
		}).Return(usecase.LedgerResult{Order: entities.Order{ID: "ord-1", Total: 0}}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1/lines/l-1?expected_version=4", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestChargeLineHandler_AttachNestedPart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/lines/l-1/parts", bytes.NewBufferString(`{"inventory_item_id":"inv-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative stock is reported but accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newChargeLineRouter(NewChargeLineHandler(uc))

		uc.EXPECT().AttachNestedPart(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.AttachNestedPartCommand) (usecase.LedgerResult, error) {
				if cmd.Source.Kind != entities.PartSourceInventory || cmd.Source.InventoryItemID != "inv-bulb" {
					t.Fatalf("unexpected source %+v", cmd.Source)
				}
				return usecase.LedgerResult{
					Order:        entities.Order{ID: "ord-1"},
					StockSignals: []entities.InventoryItem{{ID: "inv-bulb", SKU: "ELC-H4", QuantityOnHand: -1}},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/lines/l-1/parts", bytes.NewBufferString(`{"source":"inventory","inventory_item_id":"inv-bulb"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			StockSignals []struct {
				ID             string `json:"id"`
				QuantityOnHand int64  `json:"quantity_on_hand"`
			} `json:"stock_signals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(body.StockSignals) != 1 || body.StockSignals[0].QuantityOnHand != -1 {
			t.Fatalf("unexpected stock signals %+v", body.StockSignals)
		}
	})
}

func TestChargeLineHandler_DetachNestedPart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := newChargeLineRouter(NewChargeLineHandler(uc))

	uc.EXPECT().DetachNestedPart(gomock.Any(), usecase.DetachNestedPartCommand{
		OrderID: "ord-1",
		LineID:  "l-1",
		PartID:  "p-9",
	}).Return(usecase.LedgerResult{}, usecase.ErrPartNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/v1/orders/ord-1/lines/l-1/parts/p-9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestChargeLineHandler_ListChargeLines(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	r := newChargeLineRouter(NewChargeLineHandler(uc))

	uc.EXPECT().ListChargeLines(gomock.Any(), "ord-1").Return([]entities.ChargeLine{
		{ID: "l-1", OrderID: "ord-1", UnitPrice: 10000, LineTotal: 14500, NestedParts: []entities.NestedPart{{ID: "p-1", Source: entities.PartSourceInventory, InventoryItemID: "inv-pads", Price: 4500}}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1/lines", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(body) != 1 || body[0]["line_total"] != float64(14500) {
		t.Fatalf("unexpected body %v", body)
	}
}
