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

const (
	defaultInvoiceRequestsTableName = "invoice_requests"
	invoiceRequestsOrderIDIndex     = "order_id-index"
)

type invoiceRequestItem struct {
	ID                  string `dynamodbav:"id"`
	OrderID             string `dynamodbav:"order_id"`
	PaymentMethod       string `dynamodbav:"payment_method"`
	InvoiceAmount       int64  `dynamodbav:"invoice_amount"`
	InvoiceCode         string `dynamodbav:"invoice_code"`
	SenderInvoiceNo     string `dynamodbav:"sender_invoice_no"`
	InvoiceReceiverCode string `dynamodbav:"invoice_receiver_code"`
	InvoiceDescription  string `dynamodbav:"invoice_description"`
	CallbackURL         string `dynamodbav:"callback_url"`
	InvoiceID           string `dynamodbav:"invoice_id,omitempty"`
	ThirdPartyInvoiceID string `dynamodbav:"third_party_invoice_id,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// InvoiceRequestDynamoRepository persists the audit ledger in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// The correlation-id update on gateway success is not done here: it
// rides inside InvoiceDynamoRepository.CreateLinked so that it shares
// the invoice put's transaction.

type InvoiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRequestRepository = (*InvoiceRequestDynamoRepository)(nil)

func NewInvoiceRequestDynamoRepository(ddb *dynamodb.Client) *InvoiceRequestDynamoRepository {
	return &InvoiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICE_REQUESTS_TABLE", defaultInvoiceRequestsTableName),
	}
}

func (r *InvoiceRequestDynamoRepository) Create(ctx context.Context, req entities.InvoiceRequest) (entities.InvoiceRequest, error) {
	it := toInvoiceRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.InvoiceRequest{}, err
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
		return entities.InvoiceRequest{}, err
	}
	return req, nil
}

func (r *InvoiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvoiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InvoiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.InvoiceRequest{}, nil
	}

	var it invoiceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InvoiceRequest{}, err
	}
	return fromInvoiceRequestItem(it), nil
}

func (r *InvoiceRequestDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.InvoiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoiceRequestsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.InvoiceRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceRequestItem(it))
	}
	return items, nil
}

func toInvoiceRequestItem(req entities.InvoiceRequest) invoiceRequestItem {
	return invoiceRequestItem{
		ID:                  req.ID,
		OrderID:             req.OrderID,
		PaymentMethod:       string(req.PaymentMethod),
		InvoiceAmount:       req.InvoiceAmount,
		InvoiceCode:         req.InvoiceCode,
		SenderInvoiceNo:     req.SenderInvoiceNo,
		InvoiceReceiverCode: req.InvoiceReceiverCode,
		InvoiceDescription:  req.InvoiceDescription,
		CallbackURL:         req.CallbackURL,
		InvoiceID:           req.InvoiceID,
		ThirdPartyInvoiceID: req.ThirdPartyInvoiceID,
		CreatedAt:           req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           req.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceRequestItem(it invoiceRequestItem) entities.InvoiceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.InvoiceRequest{
		ID:                  it.ID,
		OrderID:             it.OrderID,
		PaymentMethod:       entities.PaymentMethod(it.PaymentMethod),
		InvoiceAmount:       it.InvoiceAmount,
		InvoiceCode:         it.InvoiceCode,
		SenderInvoiceNo:     it.SenderInvoiceNo,
		InvoiceReceiverCode: it.InvoiceReceiverCode,
		InvoiceDescription:  it.InvoiceDescription,
		CallbackURL:         it.CallbackURL,
		InvoiceID:           it.InvoiceID,
		ThirdPartyInvoiceID: it.ThirdPartyInvoiceID,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
