package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"qpay_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultInvoiceEventsTableName = "invoice_events"

type invoiceEventItem struct {
	AggregateID string `dynamodbav:"aggregate_id"`
	Version     int64  `dynamodbav:"version"`
	EventID     string `dynamodbav:"event_id"`
	Subject     string `dynamodbav:"subject"`
	Payload     string `dynamodbav:"payload"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// EventOutboxDynamoRepository is the version-gated event publisher.
//
// Table requirements:
//   - PK: aggregate_id (string), SK: version (number)
//
// The conditional put on (aggregate_id, version) is what makes the
// per-aggregate stream gap-free and at-most-once per version: a
// retried publish for an already-accepted version fails closed with
// ErrEventVersionConflict instead of appending a duplicate, and the
// downstream consumer population drains the table in version order.

type EventOutboxDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventPublisher = (*EventOutboxDynamoRepository)(nil)

func NewEventOutboxDynamoRepository(ddb *dynamodb.Client) *EventOutboxDynamoRepository {
	return &EventOutboxDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICE_EVENTS_TABLE", defaultInvoiceEventsTableName),
	}
}

func (r *EventOutboxDynamoRepository) Publish(ctx context.Context, subject string, aggregateID string, expectedVersion int64, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(invoiceEventItem{
		AggregateID: aggregateID,
		Version:     expectedVersion,
		EventID:     uuid.NewString(),
		Subject:     subject,
		Payload:     string(body),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#v)"),
		ExpressionAttributeNames: map[string]string{
			"#v": "version",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			log.Printf("[events][outbox] duplicate publish rejected subject=%s aggregate_id=%s version=%s", subject, aggregateID, strconv.FormatInt(expectedVersion, 10))
			return interfaces.ErrEventVersionConflict
		}
		return err
	}

	log.Printf("[events][outbox] published subject=%s aggregate_id=%s version=%d", subject, aggregateID, expectedVersion)
	return nil
}
