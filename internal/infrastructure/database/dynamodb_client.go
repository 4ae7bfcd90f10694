package database

import (
	"context"

	"gashub/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	log "github.com/sirupsen/logrus"
)

// ConnectDynamoDB creates a DynamoDB client. When DynamoDBEndpoint is set
// (e.g. http://dynamodb:8000) requests go to that endpoint instead of AWS.
func ConnectDynamoDB(ctx context.Context, cfg config.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
			log.WithField("endpoint", cfg.DynamoDBEndpoint).Info("[database][dynamodb] using custom endpoint")
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
