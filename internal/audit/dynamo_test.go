package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trunov/resizehub/internal/entities"
)

type fakePutItem struct {
	input *dynamodb.PutItemInput
	err   error
}

func (f *fakePutItem) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoStore_Put(t *testing.T) {
	fake := &fakePutItem{}
	store := &DynamoStore{client: fake, table: "hala-db"}

	rec := entities.AuditRecord{
		ResourceID:          "9f2c1d34-6a7b-4c32-9e51-08f1f3b64a10",
		EventTime:           "2026-08-23T10:15:00.000Z",
		EventType:           "ObjectCreated:Put",
		OriginalBucket:      "uploads",
		OriginalObjectKey:   "photos/cat.png",
		OriginalSize:        -1,
		OriginalWidth:       2000,
		OriginalHeight:      1000,
		OriginalFormat:      "PNG",
		OriginalMode:        "RGB",
		OriginalFileSize:    500000,
		ResizedBucket:       "dest-bucket-image-out",
		ResizedObjectKey:    "resized-cat.png",
		ResizedWidth:        1000,
		ResizedHeight:       500,
		ResizedFormat:       "PNG",
		ResizedMode:         "RGB",
		ResizedFileSize:     140000,
		ProcessingTime:      "2026-08-23T10:15:01Z",
		ReductionPercentage: 72,
		DimensionReduction:  "2000x1000 → 1000x500",
		EventSource:         "aws:s3",
		AWSRegion:           "us-east-1",
		EventVersion:        "2.1",
	}

	require.NoError(t, store.Put(context.Background(), rec))
	require.NotNil(t, fake.input)
	assert.Equal(t, "hala-db", *fake.input.TableName)

	item := fake.input.Item
	id, ok := item["resource-id"].(*types.AttributeValueMemberS)
	require.True(t, ok, "partition key should be the renamed resource-id string")
	assert.Equal(t, rec.ResourceID, id.Value)

	width, ok := item["OriginalWidth"].(*types.AttributeValueMemberN)
	require.True(t, ok, "dimensions should marshal as numbers")
	assert.Equal(t, "2000", width.Value)

	hint, ok := item["OriginalSize"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "-1", hint.Value)

	dim, ok := item["DimensionReduction"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "2000x1000 → 1000x500", dim.Value)
}

func TestDynamoStore_PutError(t *testing.T) {
	fake := &fakePutItem{err: errors.New("throttled")}
	store := &DynamoStore{client: fake, table: "hala-db"}

	err := store.Put(context.Background(), entities.AuditRecord{ResourceID: "r1"})
	assert.ErrorContains(t, err, "failed to put audit record")
}
