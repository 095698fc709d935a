package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"taller_ledger/internal/domain/entities"
	"taller_ledger/internal/infrastructure/config"
	"taller_ledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const folioCounterName = "orders_folio"

// LedgerDynamoRepository persists the work order ledger in DynamoDB.
//
// Table requirements:
//   - orders: PK id
//   - charge_lines: PK order_id, SK id (nested parts inline)
//   - inventory, catalog, idempotency_keys: PK id
//   - counters: PK name
//
// Charge lines are keyed under their order so listing an order's lines is a
// strongly consistent Query instead of a GSI read.
type LedgerDynamoRepository struct {
	ddb    *dynamodb.Client
	tables config.DynamoDB
}

var _ interfaces.ILedgerStore = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client, tables config.DynamoDB) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{ddb: ddb, tables: tables}
}

func (r *LedgerDynamoRepository) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	folio, err := r.nextFolio(ctx)
	if err != nil {
		return entities.Order{}, fmt.Errorf("allocate folio: %w", err)
	}
	o.Folio = folio

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.OrdersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrConditionFailed
		}
		return entities.Order{}, err
	}
	return o, nil
}

// nextFolio bumps the folio counter. Gaps are possible when the order put
// that follows fails; duplicates are not.
func (r *LedgerDynamoRepository) nextFolio(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tables.CountersTable),
		Key:              stringKey("name", folioCounterName),
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("folio counter returned no value")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *LedgerDynamoRepository) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := r.getItem(ctx, r.tables.OrdersTable, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *LedgerDynamoRepository) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var items []orderItem
	if err := r.scanAll(ctx, r.tables.OrdersTable, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func (r *LedgerDynamoRepository) GetChargeLine(ctx context.Context, orderID, lineID string) (entities.ChargeLine, error) {
	var it chargeLineItem
	found, err := r.getItem(ctx, r.tables.ChargeLinesTable, lineKey(orderID, lineID), &it)
	if err != nil || !found {
		return entities.ChargeLine{}, err
	}
	return fromChargeLineItem(it), nil
}

func (r *LedgerDynamoRepository) ListChargeLines(ctx context.Context, orderID string) ([]entities.ChargeLine, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.ChargeLinesTable),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})

	lines := make([]entities.ChargeLine, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []chargeLineItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			lines = append(lines, fromChargeLineItem(it))
		}
	}
	return lines, nil
}

func (r *LedgerDynamoRepository) GetInventoryItem(ctx context.Context, id string) (entities.InventoryItem, error) {
	var it inventoryItem
	found, err := r.getItem(ctx, r.tables.InventoryTable, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItem(it), nil
}

func (r *LedgerDynamoRepository) ListInventory(ctx context.Context) ([]entities.InventoryItem, error) {
	var items []inventoryItem
	if err := r.scanAll(ctx, r.tables.InventoryTable, &items); err != nil {
		return nil, err
	}
	out := make([]entities.InventoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, fromInventoryItem(it))
	}
	return out, nil
}

func (r *LedgerDynamoRepository) GetCatalogService(ctx context.Context, id string) (entities.CatalogService, error) {
	var it catalogItem
	found, err := r.getItem(ctx, r.tables.CatalogTable, stringKey("id", id), &it)
	if err != nil || !found {
		return entities.CatalogService{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *LedgerDynamoRepository) ListCatalog(ctx context.Context) ([]entities.CatalogService, error) {
	var items []catalogItem
	if err := r.scanAll(ctx, r.tables.CatalogTable, &items); err != nil {
		return nil, err
	}
	out := make([]entities.CatalogService, 0, len(items))
	for _, it := range items {
		out = append(out, fromCatalogItem(it))
	}
	return out, nil
}

func (r *LedgerDynamoRepository) GetIdempotencyRecord(ctx context.Context, key string) (interfaces.IdempotencyRecord, error) {
	var it idempotencyItem
	found, err := r.getItem(ctx, r.tables.IdempotencyTable, stringKey("id", key), &it)
	if err != nil || !found {
		return interfaces.IdempotencyRecord{}, err
	}
	return fromIdempotencyItem(it), nil
}

func (r *LedgerDynamoRepository) getItem(ctx context.Context, table string, key map[string]types.AttributeValue, dst any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, err
	}
	return true, nil
}

// scanAll reads a whole table into dst, which must point to a slice of items.
func (r *LedgerDynamoRepository) scanAll(ctx context.Context, table string, dst any) error {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		raw = append(raw, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(raw, dst)
}
