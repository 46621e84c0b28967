package repository

import (
	"context"
	"encoding/json"
	"sort"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultChargesTableName = "payment_charges"
	chargesReceivableIndex  = "receivable_id-index"
)

type paymentChargeItem struct {
	ID                 string                 `dynamodbav:"id"`
	ReceivableID       string                 `dynamodbav:"receivable_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderStatus     string                 `dynamodbav:"provider_status,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentChargeDynamoRepository keeps the online charge ledger.
//
// Table requirements:
//   - PK: id (provider payment id)
//   - GSI: receivable_id-index (PK: receivable_id)
type PaymentChargeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentChargeRepository = (*PaymentChargeDynamoRepository)(nil)

func NewPaymentChargeDynamoRepository(ddb DynamoAPI, tableName string) *PaymentChargeDynamoRepository {
	return &PaymentChargeDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultChargesTableName),
	}
}

func (r *PaymentChargeDynamoRepository) Create(ctx context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error) {
	av, err := attributevalue.MarshalMap(toPaymentChargeItem(c))
	if err != nil {
		return entities.PaymentCharge{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentCharge{}, err
	}
	return c, nil
}

// Update replaces a charge that must already exist.
func (r *PaymentChargeDynamoRepository) Update(ctx context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error) {
	av, err := attributevalue.MarshalMap(toPaymentChargeItem(c))
	if err != nil {
		return entities.PaymentCharge{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentCharge{}, err
	}
	return c, nil
}

func (r *PaymentChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentCharge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentCharge{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentCharge{}, nil
	}

	var it paymentChargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentCharge{}, err
	}
	return fromPaymentChargeItem(it), nil
}

// ListByReceivableID returns the receivable's charges, newest first.
func (r *PaymentChargeDynamoRepository) ListByReceivableID(ctx context.Context, receivableID string) ([]entities.PaymentCharge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesReceivableIndex),
		KeyConditionExpression: aws.String("receivable_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: receivableID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentCharge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentChargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentChargeItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func toPaymentChargeItem(c entities.PaymentCharge) paymentChargeItem {
	return paymentChargeItem{
		ID:                 c.ID,
		ReceivableID:       c.ReceivableID,
		Amount:             c.Amount.String(),
		Date:               formatTimestamp(c.Date),
		Status:             string(c.Status),
		ProviderStatus:     c.ProviderStatus,
		ProviderPayload:    c.ProviderPayload,
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
	}
}

func fromPaymentChargeItem(it paymentChargeItem) entities.PaymentCharge {
	amount, _ := decimal.NewFromString(it.Amount)
	var raw json.RawMessage
	if it.ProviderPayloadRaw != "" {
		raw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return entities.PaymentCharge{
		ID:                 it.ID,
		ReceivableID:       it.ReceivableID,
		Amount:             amount,
		Date:               parseTimestamp(it.Date),
		Status:             entities.ChargeStatus(it.Status),
		ProviderStatus:     it.ProviderStatus,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: raw,
	}
}
