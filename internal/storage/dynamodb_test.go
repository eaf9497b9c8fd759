package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventgram/photoshare/internal/model"
)

type fakeDynamoDB struct {
	getIn     *dynamodb.GetItemInput
	getOut    *dynamodb.GetItemOutput
	putIn     *dynamodb.PutItemInput
	updateIn  *dynamodb.UpdateItemInput
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	deleteIn  *dynamodb.DeleteItemInput
	scanIns   []*dynamodb.ScanInput
	scanOuts  []*dynamodb.ScanOutput
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.getOut != nil {
		return f.getOut, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut != nil {
		return f.updateOut, nil
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamoDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = in
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoDB) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIns = append(f.scanIns, in)
	out := f.scanOuts[0]
	f.scanOuts = f.scanOuts[1:]
	return out, nil
}

func keyS(av map[string]types.AttributeValue, name string) string {
	s, _ := av[name].(*types.AttributeValueMemberS)
	if s == nil {
		return ""
	}
	return s.Value
}

func TestDynamoDBStoreGetPhotoKey(t *testing.T) {
	fake := &fakeDynamoDB{}
	s := NewDynamoDBStore(fake, "event-photos")

	_, err := s.GetPhoto(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NotNil(t, fake.getIn)
	assert.Equal(t, "event-photos", *fake.getIn.TableName)
	assert.Equal(t, "PHOTO#p1", keyS(fake.getIn.Key, "PK"))
	assert.Equal(t, "METADATA", keyS(fake.getIn.Key, "SK"))
}

func TestDynamoDBStoreUpdatePhotoPartialExpression(t *testing.T) {
	merged, err := attributevalue.MarshalMap(model.PhotoRecord{
		PhotoID: "p1", UploaderName: "Mia", Comment: "edited",
	})
	require.NoError(t, err)

	fake := &fakeDynamoDB{updateOut: &dynamodb.UpdateItemOutput{Attributes: merged}}
	s := NewDynamoDBStore(fake, "event-photos")

	rec, err := s.UpdatePhoto(context.Background(), "p1", PhotoUpdate{Comment: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", rec.Comment)

	require.NotNil(t, fake.updateIn)
	assert.Equal(t, "SET #comment = :comment", *fake.updateIn.UpdateExpression)
	assert.NotContains(t, *fake.updateIn.UpdateExpression, "uploaderName")
	assert.Equal(t, "attribute_exists(PK)", *fake.updateIn.ConditionExpression)
}

func TestDynamoDBStoreUpdatePhotoMissingRecord(t *testing.T) {
	fake := &fakeDynamoDB{updateErr: &types.ConditionalCheckFailedException{}}
	s := NewDynamoDBStore(fake, "event-photos")

	_, err := s.UpdatePhoto(context.Background(), "gone", PhotoUpdate{Comment: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDynamoDBStoreListPhotosPagination(t *testing.T) {
	first, err := attributevalue.MarshalMap(model.PhotoRecord{PhotoID: "a"})
	require.NoError(t, err)
	second, err := attributevalue.MarshalMap(model.PhotoRecord{PhotoID: "b"})
	require.NoError(t, err)

	fake := &fakeDynamoDB{
		scanOuts: []*dynamodb.ScanOutput{
			{
				Items:            []map[string]types.AttributeValue{first},
				LastEvaluatedKey: map[string]types.AttributeValue{"PK": &types.AttributeValueMemberS{Value: "PHOTO#a"}},
			},
			{Items: []map[string]types.AttributeValue{second}},
		},
	}
	s := NewDynamoDBStore(fake, "event-photos")

	records, err := s.ListPhotos(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].PhotoID)
	assert.Equal(t, "b", records[1].PhotoID)

	require.Len(t, fake.scanIns, 2)
	assert.Nil(t, fake.scanIns[0].ExclusiveStartKey)
	assert.NotNil(t, fake.scanIns[1].ExclusiveStartKey)
	assert.Contains(t, *fake.scanIns[0].FilterExpression, "begins_with(PK, :prefix)")
}

func TestDynamoDBStorePutChecklistKeys(t *testing.T) {
	fake := &fakeDynamoDB{}
	s := NewDynamoDBStore(fake, "event-photos")

	err := s.PutChecklist(context.Background(), &model.ChecklistConfig{
		Items: []model.ChecklistItem{{ID: "consent", Required: true}},
	})
	require.NoError(t, err)

	require.NotNil(t, fake.putIn)
	assert.Equal(t, "CONFIG", keyS(fake.putIn.Item, "PK"))
	assert.Equal(t, "UPLOAD_CHECKLIST", keyS(fake.putIn.Item, "SK"))
}
