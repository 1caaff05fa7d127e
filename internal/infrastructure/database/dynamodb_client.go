package database

import (
	"context"
	"fmt"

	"ticket_checkout/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the store configuration.
//
// Relevant settings (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, store config.StoreConfig) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}

	var opts []func(*dynamodb.Options)
	if store.DynamoDBEndpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(store.DynamoDBEndpoint)
		})
	}
	return dynamodb.NewFromConfig(cfg, opts...), nil
}

func NewDynamoDBConfig(ctx context.Context, store config.StoreConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(store.AWSAccessKeyID, store.AWSSecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(store.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	)
}
