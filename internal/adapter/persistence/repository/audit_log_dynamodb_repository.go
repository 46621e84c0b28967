package repository

import (
	"context"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuditLogTableName = "audit_logs"
	auditLogUserIndex        = "user_id-created_at-index"
)

// System entries carry no user_id attribute and stay out of the user index.
type auditLogItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id,omitempty"`
	Action    string `dynamodbav:"action"`
	Details   string `dynamodbav:"details,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository is the append-only audit table.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-created_at-index (PK: user_id, SK: created_at)
type AuditLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb DynamoAPI, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAuditLogTableName),
	}
}

// Append never overwrites: a repeated id fails the condition.
func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditLogEntry) error {
	av, err := attributevalue.MarshalMap(auditLogItem{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    e.Action,
		Details:   string(e.Details),
		CreatedAt: formatTimestamp(e.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// ListByUser returns the user's most recent entries first.
func (r *AuditLogDynamoRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entities.AuditLogEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditLogUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditLogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		e := entities.AuditLogEntry{
			ID:        it.ID,
			UserID:    it.UserID,
			Action:    it.Action,
			CreatedAt: parseTimestamp(it.CreatedAt),
		}
		if it.Details != "" {
			e.Details = []byte(it.Details)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
