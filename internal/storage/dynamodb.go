package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/eventgram/photoshare/internal/model"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoDBStore implements MetadataStore on a single DynamoDB table.
type DynamoDBStore struct {
	client DynamoDBAPI
	table  string
}

func NewDynamoDBStore(client DynamoDBAPI, table string) *DynamoDBStore {
	return &DynamoDBStore{client: client, table: table}
}

func photoKey(photoID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: model.PhotoPK(photoID)},
		"SK": &types.AttributeValueMemberS{Value: model.MetadataSortKey},
	}
}

func checklistKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: model.ConfigPK},
		"SK": &types.AttributeValueMemberS{Value: model.ChecklistSK},
	}
}

func (s *DynamoDBStore) GetPhoto(ctx context.Context, photoID string) (*model.PhotoRecord, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       photoKey(photoID),
	})
	if err != nil {
		return nil, fmt.Errorf("get photo %s: %w", photoID, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}
	var rec model.PhotoRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal photo %s: %w", photoID, err)
	}
	return &rec, nil
}

func (s *DynamoDBStore) PutPhoto(ctx context.Context, rec *model.PhotoRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal photo %s: %w", rec.PhotoID, err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put photo %s: %w", rec.PhotoID, err)
	}
	return nil
}

func (s *DynamoDBStore) UpdatePhoto(ctx context.Context, photoID string, upd PhotoUpdate) (*model.PhotoRecord, error) {
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var sets []string

	if upd.UploaderName != nil {
		names["#uploaderName"] = "uploaderName"
		values[":uploaderName"] = &types.AttributeValueMemberS{Value: *upd.UploaderName}
		sets = append(sets, "#uploaderName = :uploaderName")
	}
	if upd.Comment != nil {
		names["#comment"] = "comment"
		values[":comment"] = &types.AttributeValueMemberS{Value: *upd.Comment}
		sets = append(sets, "#comment = :comment")
	}
	if len(sets) == 0 {
		return s.GetPhoto(ctx, photoID)
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       photoKey(photoID),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(PK)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update photo %s: %w", photoID, err)
	}

	var rec model.PhotoRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal updated photo %s: %w", photoID, err)
	}
	return &rec, nil
}

func (s *DynamoDBStore) DeletePhoto(ctx context.Context, photoID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       photoKey(photoID),
	})
	if err != nil {
		return fmt.Errorf("delete photo %s: %w", photoID, err)
	}
	return nil
}

func (s *DynamoDBStore) ListPhotos(ctx context.Context) ([]model.PhotoRecord, error) {
	var records []model.PhotoRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(s.table),
			FilterExpression: aws.String("begins_with(PK, :prefix) AND SK = :sk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: model.PhotoKeyPrefix},
				":sk":     &types.AttributeValueMemberS{Value: model.MetadataSortKey},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan photos: %w", err)
		}

		var page []model.PhotoRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal photos page: %w", err)
		}
		records = append(records, page...)

		if out.LastEvaluatedKey == nil {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (s *DynamoDBStore) GetChecklist(ctx context.Context) (*model.ChecklistConfig, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       checklistKey(),
	})
	if err != nil {
		return nil, fmt.Errorf("get checklist config: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}
	var cfg model.ChecklistConfig
	if err := attributevalue.UnmarshalMap(out.Item, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal checklist config: %w", err)
	}
	return &cfg, nil
}

func (s *DynamoDBStore) PutChecklist(ctx context.Context, cfg *model.ChecklistConfig) error {
	cfg.PK = model.ConfigPK
	cfg.SK = model.ChecklistSK
	item, err := attributevalue.MarshalMap(cfg)
	if err != nil {
		return fmt.Errorf("marshal checklist config: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put checklist config: %w", err)
	}
	return nil
}
