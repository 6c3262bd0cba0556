package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"qpay_billing/internal/domain/entities"
	"qpay_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	OrderID             string `dynamodbav:"order_id"`
	ID                  string `dynamodbav:"id"`
	SupplierID          string `dynamodbav:"supplier_id"`
	MerchantID          string `dynamodbav:"merchant_id"`
	Status              string `dynamodbav:"status"`
	InvoiceAmount       int64  `dynamodbav:"invoice_amount"`
	PaidAmount          *int64 `dynamodbav:"paid_amount,omitempty"`
	PaymentMethod       string `dynamodbav:"payment_method"`
	ThirdPartyInvoiceID string `dynamodbav:"third_party_invoice_id"`
	InvoiceToken        string `dynamodbav:"invoice_token"`
	ThirdPartyData      string `dynamodbav:"third_party_data,omitempty"`
	Version             int64  `dynamodbav:"version"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists the canonical Invoice in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//
// We purposely use the order id as PK to guarantee 1 invoice per
// order: the conditional put on the partition key IS the uniqueness
// invariant, and status lookups by order id stay single GetItem
// calls. Settlement is a conditional update on the version attribute.

type InvoiceDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	requestsTableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		requestsTableName: getenvDefault("INVOICE_REQUESTS_TABLE", defaultInvoiceRequestsTableName),
	}
}

// CreateLinked is the creation saga's atomic unit: the invoice put
// and the audit-row correlation update commit or roll back together.
func (r *InvoiceDynamoRepository) CreateLinked(ctx context.Context, inv entities.Invoice, requestID string) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#oid)"),
					ExpressionAttributeNames: map[string]string{
						"#oid": "order_id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.requestsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: requestID},
					},
					UpdateExpression:    aws.String("SET invoice_id = :iid, third_party_invoice_id = :tpid, updated_at = :ua"),
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":iid":  &types.AttributeValueMemberS{Value: inv.ID},
						":tpid": &types.AttributeValueMemberS{Value: inv.ThirdPartyInvoiceID},
						":ua":   &types.AttributeValueMemberS{Value: inv.UpdatedAt.UTC().Format(time.RFC3339Nano)},
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactConditionFailure(err) {
			return entities.Invoice{}, interfaces.ErrInvoiceOrderTaken
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Settle(ctx context.Context, orderID string, paidAmount int64, thirdPartyData json.RawMessage, expectedVersion int64) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:    aws.String("SET #status = :paid, paid_amount = :pa, third_party_data = :tpd, version = :newv, updated_at = :ua"),
		ConditionExpression: aws.String("version = :expected AND #status = :awaiting"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":     &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
			":awaiting": &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusAwaiting)},
			":pa":       &types.AttributeValueMemberN{Value: strconv.FormatInt(paidAmount, 10)},
			":tpd":      &types.AttributeValueMemberS{Value: string(thirdPartyData)},
			":newv":     &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":ua":       &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Invoice{}, interfaces.ErrVersionConflict
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func isTransactConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		OrderID:             inv.OrderID,
		ID:                  inv.ID,
		SupplierID:          inv.SupplierID,
		MerchantID:          inv.MerchantID,
		Status:              string(inv.Status),
		InvoiceAmount:       inv.InvoiceAmount,
		PaidAmount:          inv.PaidAmount,
		PaymentMethod:       string(inv.PaymentMethod),
		ThirdPartyInvoiceID: inv.ThirdPartyInvoiceID,
		InvoiceToken:        inv.InvoiceToken,
		ThirdPartyData:      string(inv.ThirdPartyData),
		Version:             inv.Version,
		CreatedAt:           inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Invoice{
		OrderID:             it.OrderID,
		ID:                  it.ID,
		SupplierID:          it.SupplierID,
		MerchantID:          it.MerchantID,
		Status:              entities.InvoiceStatus(it.Status),
		InvoiceAmount:       it.InvoiceAmount,
		PaidAmount:          it.PaidAmount,
		PaymentMethod:       entities.PaymentMethod(it.PaymentMethod),
		ThirdPartyInvoiceID: it.ThirdPartyInvoiceID,
		InvoiceToken:        it.InvoiceToken,
		ThirdPartyData:      json.RawMessage(it.ThirdPartyData),
		Version:             it.Version,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
