package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"furniture_warehouse/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func auditEvent(id string, at time.Time) entities.AuditEvent {
	return entities.AuditEvent{
		ID:        id,
		Entity:    "order",
		EntityID:  7,
		Action:    entities.AuditActionStatusChange,
		Detail:    "status=completed",
		Actor:     "ana",
		CreatedAt: at,
	}
}

func TestAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditLogRepository(newTestDB(t))
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, auditEvent(fmt.Sprintf("evt-%d", i), base.Add(time.Duration(i)*time.Minute))))
	}

	events, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "evt-4", events[0].ID)
	require.Equal(t, "evt-2", events[2].ID)
	require.Equal(t, entities.AuditActionStatusChange, events[0].Action)
	require.EqualValues(t, 7, events[0].EntityID)

	require.Error(t, repo.Record(ctx, auditEvent("evt-0", base)), "ids are unique")
}

// fakeDynamo keeps items in memory and pages Scan results two at a time.
type fakeDynamo struct {
	mu      sync.Mutex
	items   map[string]map[string]types.AttributeValue
	order   []string
	tables  map[string]bool
	created int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, tables: map[string]bool{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	if _, ok := f.items[id]; ok && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = in.Item
	f.order = append(f.order, id)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	start := 0
	if in.ExclusiveStartKey != nil {
		last := in.ExclusiveStartKey["id"].(*types.AttributeValueMemberS).Value
		for i, id := range f.order {
			if id == last {
				start = i + 1
			}
		}
	}
	end := start + 2
	if end > len(f.order) {
		end = len(f.order)
	}
	out := &dynamodb.ScanOutput{}
	for _, id := range f.order[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	if end < len(f.order) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: f.order[end-1]}}
	}
	return out, nil
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if !f.tables[aws.ToString(in.TableName)] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("missing")}
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.tables[aws.ToString(in.TableName)] = true
	f.created++
	return &dynamodb.CreateTableOutput{}, nil
}

func TestAuditDynamoRepository_RecordAndList(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewAuditDynamoRepository(ddb, "")
	require.Equal(t, defaultAuditTableName, repo.tableName)

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	// Written out of chronological order; listing sorts newest first.
	for _, i := range []int{2, 0, 4, 1, 3} {
		require.NoError(t, repo.Record(ctx, auditEvent(fmt.Sprintf("evt-%d", i), base.Add(time.Duration(i)*time.Second))))
	}

	events, err := repo.ListRecent(ctx, 4)
	require.NoError(t, err)
	require.Len(t, events, 4)
	require.Equal(t, []string{"evt-4", "evt-3", "evt-2", "evt-1"}, []string{events[0].ID, events[1].ID, events[2].ID, events[3].ID})
	require.EqualValues(t, 7, events[0].EntityID)
	require.True(t, events[0].CreatedAt.Equal(base.Add(4*time.Second)))

	err = repo.Record(ctx, auditEvent("evt-0", base))
	var cfe *types.ConditionalCheckFailedException
	require.True(t, errors.As(err, &cfe))
}

func TestAuditDynamoRepository_EmptyTable(t *testing.T) {
	events, err := NewAuditDynamoRepository(newFakeDynamo(), "audit").ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
}

func TestAuditDynamoRepository_EnsureTable(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewAuditDynamoRepository(ddb, "audit")

	require.NoError(t, repo.EnsureTable(ctx))
	require.NoError(t, repo.EnsureTable(ctx))
	require.Equal(t, 1, ddb.created)
}
