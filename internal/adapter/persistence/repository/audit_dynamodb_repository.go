package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"furniture_warehouse/internal/domain/entities"
	"furniture_warehouse/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditTableName = "audit_events"

// dynamoAuditAPI is the subset of *dynamodb.Client the audit repository uses.
type dynamoAuditAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type auditItem struct {
	ID        string `dynamodbav:"id"`
	Entity    string `dynamodbav:"entity"`
	EntityID  string `dynamodbav:"entity_id"`
	Action    string `dynamodbav:"action"`
	Detail    string `dynamodbav:"detail,omitempty"`
	Actor     string `dynamodbav:"actor"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditDynamoRepository persists audit events in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Events are append-only, so the table is only ever written with PutItem and
// read back with a Scan sorted in memory.
type AuditDynamoRepository struct {
	ddb       dynamoAuditAPI
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb dynamoAuditAPI, tableName string) *AuditDynamoRepository {
	if tableName == "" {
		tableName = defaultAuditTableName
	}
	return &AuditDynamoRepository{ddb: ddb, tableName: tableName}
}

// EnsureTable creates the table with on-demand billing when it does not exist.
func (r *AuditDynamoRepository) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return err
	}

	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	return err
}

func (r *AuditDynamoRepository) Record(ctx context.Context, e entities.AuditEvent) error {
	av, err := attributevalue.MarshalMap(toAuditItem(e))
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
	if err != nil {
		return fmt.Errorf("put audit event id=%s: %w", e.ID, err)
	}
	return nil
}

func (r *AuditDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.AuditEvent, error) {
	var events []entities.AuditEvent
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan audit events: %w", err)
		}

		var items []auditItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			events = append(events, fromAuditItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].ID > events[j].ID
		}
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	if events == nil {
		events = []entities.AuditEvent{}
	}
	return events, nil
}

func toAuditItem(e entities.AuditEvent) auditItem {
	return auditItem{
		ID:        e.ID,
		Entity:    e.Entity,
		EntityID:  strconv.FormatUint(uint64(e.EntityID), 10),
		Action:    string(e.Action),
		Detail:    e.Detail,
		Actor:     e.Actor,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditItem(it auditItem) entities.AuditEvent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	entityID, _ := strconv.ParseUint(it.EntityID, 10, 64)
	return entities.AuditEvent{
		ID:        it.ID,
		Entity:    it.Entity,
		EntityID:  uint(entityID),
		Action:    entities.AuditAction(it.Action),
		Detail:    it.Detail,
		Actor:     it.Actor,
		CreatedAt: createdAt,
	}
}
