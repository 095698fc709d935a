package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"taller_ledger/internal/infrastructure/config"
	"taller_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the TransactWriteItems limit.
const maxTransactItems = 100

// Commit writes the mutation as a single TransactWriteItems call. When an
// idempotency key is present its record is always the first item, so a
// cancellation reason at index 0 identifies a replay.
func (r *LedgerDynamoRepository) Commit(ctx context.Context, m interfaces.LedgerMutation) error {
	items, err := buildTransactItems(r.tables, m, time.Now().UTC())
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		mapped := mapCommitError(err, m.IdempotencyKey != "")
		if !errors.Is(mapped, interfaces.ErrConditionFailed) && !errors.Is(mapped, interfaces.ErrIdempotencyKeyUsed) {
			log.Printf("[ledger][repository] commit failed order_id=%s items=%d err=%v", m.Order.ID, len(items), err)
		}
		return mapped
	}
	return nil
}

func buildTransactItems(tables config.DynamoDB, m interfaces.LedgerMutation, now time.Time) ([]types.TransactWriteItem, error) {
	var items []types.TransactWriteItem

	if m.IdempotencyKey != "" {
		av, err := attributevalue.MarshalMap(idempotencyItem{
			ID:        m.IdempotencyKey,
			OrderID:   m.Order.ID,
			Operation: m.Operation,
			CreatedAt: formatTime(now),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(tables.IdempotencyTable),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}

	orderAV, err := attributevalue.MarshalMap(toOrderItem(m.Order))
	if err != nil {
		return nil, err
	}
	items = append(items, types.TransactWriteItem{Put: &types.Put{
		TableName:                 aws.String(tables.OrdersTable),
		Item:                      orderAV,
		ConditionExpression:       aws.String("#version = :expected"),
		ExpressionAttributeNames:  map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":expected": number(m.OrderExpectedVersion)},
	}})

	for _, w := range m.PutLines {
		av, err := attributevalue.MarshalMap(toChargeLineItem(w.Line))
		if err != nil {
			return nil, err
		}
		put := &types.Put{
			TableName: aws.String(tables.ChargeLinesTable),
			Item:      av,
		}
		if w.ExpectedVersion == 0 {
			put.ConditionExpression = aws.String("attribute_not_exists(#id)")
			put.ExpressionAttributeNames = map[string]string{"#id": "id"}
		} else {
			put.ConditionExpression = aws.String("#version = :expected")
			put.ExpressionAttributeNames = map[string]string{"#version": "version"}
			put.ExpressionAttributeValues = map[string]types.AttributeValue{":expected": number(w.ExpectedVersion)}
		}
		items = append(items, types.TransactWriteItem{Put: put})
	}

	for _, d := range m.DeleteLines {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName:                 aws.String(tables.ChargeLinesTable),
			Key:                       lineKey(d.OrderID, d.LineID),
			ConditionExpression:       aws.String("#version = :expected"),
			ExpressionAttributeNames:  map[string]string{"#version": "version"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":expected": number(d.ExpectedVersion)},
		}})
	}

	for _, d := range interfaces.NetStockDeltas(m.StockDeltas) {
		items = append(items, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(tables.InventoryTable),
			Key:                 stringKey("id", d.InventoryItemID),
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #updated_at = :now ADD #qty :delta"),
			ExpressionAttributeNames: mergeNames(
				map[string]string{"#qty": "quantity_on_hand", "#updated_at": "updated_at"},
				map[string]string{"#id": "id"},
			),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":delta": number(d.Delta),
				":now":   &types.AttributeValueMemberS{Value: formatTime(now)},
			},
		}})
	}

	if len(items) > maxTransactItems {
		return nil, fmt.Errorf("ledger mutation needs %d writes, limit is %d", len(items), maxTransactItems)
	}
	return items, nil
}

// mapCommitError translates a cancelled transaction into the store's
// sentinel errors. Anything else is returned untouched.
func mapCommitError(err error, hasIdempotencyKey bool) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	conditionFailed := false
	for i, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed":
			if i == 0 && hasIdempotencyKey {
				return interfaces.ErrIdempotencyKeyUsed
			}
			conditionFailed = true
		case "TransactionConflict":
			conditionFailed = true
		}
	}
	if conditionFailed {
		return interfaces.ErrConditionFailed
	}
	return err
}

func number(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}
