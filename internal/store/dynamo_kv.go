package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoKV.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoConfig holds the settings for a DynamoDB-backed store.
type DynamoConfig struct {
	Region    string
	TableName string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// dynamoItem is one row of the table: partition key "key", string "value".
type dynamoItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// DynamoKV stores each value as an item of a DynamoDB table.
type DynamoKV struct {
	client    DynamoAPI
	tableName string
}

// NewDynamoKV wraps an existing client.
func NewDynamoKV(client DynamoAPI, tableName string) *DynamoKV {
	return &DynamoKV{client: client, tableName: tableName}
}

// OpenDynamoKV loads the default AWS configuration and creates a client.
func OpenDynamoKV(ctx context.Context, cfg DynamoConfig) (*DynamoKV, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewDynamoKV(client, cfg.TableName), nil
}

func (k *DynamoKV) Get(ctx context.Context, key string) (string, bool, error) {
	pk, err := attributevalue.MarshalMap(struct {
		Key string `dynamodbav:"key"`
	}{Key: key})
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal key: %w", err)
	}

	result, err := k.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(k.tableName),
		Key:            pk,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("GetItem operation failed: %w", err)
	}
	if len(result.Item) == 0 {
		return "", false, nil
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return item.Value, true, nil
}

func (k *DynamoKV) Set(ctx context.Context, key, value string) error {
	item, err := attributevalue.MarshalMap(dynamoItem{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = k.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(k.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem operation failed: %w", err)
	}
	return nil
}
