package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/infrastructure/config"
	"taller_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var testTables = config.DynamoDB{
	OrdersTable:      "orders",
	ChargeLinesTable: "charge_lines",
	InventoryTable:   "inventory",
	CatalogTable:     "catalog",
	CountersTable:    "counters",
	IdempotencyTable: "idempotency_keys",
}

func TestBuildTransactItems(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	m := interfaces.LedgerMutation{
		IdempotencyKey:       "req-1",
		Operation:            "add_line",
		Order:                entities.Order{ID: "ord-1", Version: 4},
		OrderExpectedVersion: 3,
		PutLines: []interfaces.LineWrite{
			{Line: entities.ChargeLine{ID: "new", OrderID: "ord-1", Version: 1}},
			{Line: entities.ChargeLine{ID: "old", OrderID: "ord-1", Version: 3}, ExpectedVersion: 2},
		},
		DeleteLines: []interfaces.LineDelete{{OrderID: "ord-1", LineID: "gone", ExpectedVersion: 5}},
		StockDeltas: []interfaces.StockDelta{
			{InventoryItemID: "inv-1", Delta: -1},
			{InventoryItemID: "inv-2", Delta: 1},
			{InventoryItemID: "inv-1", Delta: 1},
		},
	}

	items, err := buildTransactItems(testTables, m, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// idempotency + order + 2 lines + 1 delete + 1 net stock delta
	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}

	if items[0].Put == nil || aws.ToString(items[0].Put.TableName) != "idempotency_keys" {
		t.Fatalf("idempotency record must come first, got %+v", items[0])
	}
	var rec idempotencyItem
	if err := attributevalue.UnmarshalMap(items[0].Put.Item, &rec); err != nil {
		t.Fatalf("unmarshal idempotency record: %v", err)
	}
	if rec.OrderID != "ord-1" || rec.Operation != "add_line" {
		t.Fatalf("idempotency record must carry order and operation, got %+v", rec)
	}

	orderPut := items[1].Put
	if aws.ToString(orderPut.ConditionExpression) != "#version = :expected" {
		t.Fatalf("unexpected order condition %q", aws.ToString(orderPut.ConditionExpression))
	}
	if v := orderPut.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "3" {
		t.Fatalf("expected order condition on version 3, got %s", v)
	}

	if c := aws.ToString(items[2].Put.ConditionExpression); c != "attribute_not_exists(#id)" {
		t.Fatalf("new line must not exist yet, got %q", c)
	}
	if v := items[3].Put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "2" {
		t.Fatalf("expected line condition on version 2, got %s", v)
	}
	if items[4].Delete == nil {
		t.Fatalf("expected delete item, got %+v", items[4])
	}

	upd := items[5].Update
	if upd == nil || upd.Key["id"].(*types.AttributeValueMemberS).Value != "inv-2" {
		t.Fatalf("expected a single update for inv-2, got %+v", items[5])
	}
	if d := upd.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN).Value; d != "1" {
		t.Fatalf("expected delta 1, got %s", d)
	}
}

func TestBuildTransactItems_WithoutIdempotencyKey(t *testing.T) {
	items, err := buildTransactItems(testTables, interfaces.LedgerMutation{
		Order:                entities.Order{ID: "ord-1", Version: 2},
		OrderExpectedVersion: 1,
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || aws.ToString(items[0].Put.TableName) != "orders" {
		t.Fatalf("expected only the order put, got %+v", items)
	}
}

func TestBuildTransactItems_TooManyWrites(t *testing.T) {
	m := interfaces.LedgerMutation{Order: entities.Order{ID: "ord-1"}}
	for i := 0; i < maxTransactItems; i++ {
		m.StockDeltas = append(m.StockDeltas, interfaces.StockDelta{InventoryItemID: "inv-" + strings.Repeat("x", i+1), Delta: -1})
	}
	if _, err := buildTransactItems(testTables, m, time.Now()); err == nil {
		t.Fatalf("expected error for oversized transaction")
	}
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestMapCommitError(t *testing.T) {
	other := errors.New("throttled")

	cases := []struct {
		name   string
		err    error
		hasKey bool
		want   error
	}{
		{"idempotency record exists", cancelled("ConditionalCheckFailed", "None"), true, interfaces.ErrIdempotencyKeyUsed},
		{"order version moved", cancelled("None", "ConditionalCheckFailed"), true, interfaces.ErrConditionFailed},
		{"first item without key", cancelled("ConditionalCheckFailed"), false, interfaces.ErrConditionFailed},
		{"concurrent transaction", cancelled("TransactionConflict", "None"), false, interfaces.ErrConditionFailed},
		{"unrelated error", other, true, other},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapCommitError(tc.err, tc.hasKey); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestChargeLineItem_KeepsNestedParts(t *testing.T) {
	attached := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	line := entities.ChargeLine{
		ID: "line-1", OrderID: "ord-1", Kind: entities.ChargeLineKindFreeText, Label: "Brake job",
		UnitPrice: 15000, LineTotal: 22500, Version: 2,
		NestedParts: []entities.NestedPart{
			{ID: "p1", Source: entities.PartSourceInventory, InventoryItemID: "inv-1", Name: "Pads", Price: 4500, AttachedAt: attached},
			{ID: "p2", Source: entities.PartSourceFreeEntry, Name: "Fluid", Price: 3000, AttachedAt: attached},
		},
	}

	got := fromChargeLineItem(toChargeLineItem(line))
	if len(got.NestedParts) != 2 || !got.NestedParts[0].TracksStock() || got.NestedParts[1].TracksStock() {
		t.Fatalf("unexpected parts: %+v", got.NestedParts)
	}
	if !got.NestedParts[0].AttachedAt.Equal(attached) || !got.Consistent() {
		t.Fatalf("unexpected line: %+v", got)
	}
}

func TestOrderItem_SessionStart(t *testing.T) {
	started := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	o := fromOrderItem(toOrderItem(entities.Order{ID: "ord-1", LaborSessionStartedAt: &started}))
	if o.LaborSessionStartedAt == nil || !o.LaborSessionStartedAt.Equal(started) {
		t.Fatalf("expected session start to survive, got %v", o.LaborSessionStartedAt)
	}

	idle := fromOrderItem(toOrderItem(entities.Order{ID: "ord-2"}))
	if idle.LaborSessionStartedAt != nil {
		t.Fatalf("expected no running session")
	}
}
