package repository

import (
	"context"
	"time"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultGatewayTokensTableName = "gateway_tokens"

type gatewayTokenItem struct {
	Origin      string `dynamodbav:"origin"`
	Token       string `dynamodbav:"token"`
	RefreshedAt string `dynamodbav:"refreshed_at"`
}

// GatewayTokenDynamoRepository persists the cached gateway credential.
//
// Table requirements:
//   - PK: origin (string)
//
// Put is an unconditional overwrite: the newest successful refresh
// always wins, and readers tolerate staleness by re-authenticating.

type GatewayTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewayTokenRepository = (*GatewayTokenDynamoRepository)(nil)

func NewGatewayTokenDynamoRepository(ddb *dynamodb.Client) *GatewayTokenDynamoRepository {
	return &GatewayTokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAY_TOKENS_TABLE", defaultGatewayTokensTableName),
	}
}

func (r *GatewayTokenDynamoRepository) Get(ctx context.Context, origin entities.GatewayOrigin) (entities.GatewayToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"origin": &types.AttributeValueMemberS{Value: string(origin)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewayToken{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayToken{}, nil
	}

	var it gatewayTokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayToken{}, err
	}

	refreshedAt, _ := time.Parse(time.RFC3339Nano, it.RefreshedAt)
	return entities.GatewayToken{
		Origin:      entities.GatewayOrigin(it.Origin),
		Token:       it.Token,
		RefreshedAt: refreshedAt,
	}, nil
}

func (r *GatewayTokenDynamoRepository) Put(ctx context.Context, t entities.GatewayToken) error {
	av, err := attributevalue.MarshalMap(gatewayTokenItem{
		Origin:      string(t.Origin),
		Token:       t.Token,
		RefreshedAt: t.RefreshedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
