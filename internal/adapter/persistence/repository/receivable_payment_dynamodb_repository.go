package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "pagamentos"
	paymentsOrderIDIndex     = "orderId-index"
)

type receivablePaymentItem struct {
	ID                string `dynamodbav:"id"`
	OrderID           string `dynamodbav:"orderId"`
	ProviderPaymentID string `dynamodbav:"providerPaymentId"`
	ProviderStatus    string `dynamodbav:"providerStatus"`
	Amount            string `dynamodbav:"amount"`
	CreatedAt         string `dynamodbav:"createdAt"`
	UpdatedAt         string `dynamodbav:"updatedAt"`
	ProviderResponse  string `dynamodbav:"providerResponse,omitempty"`
}

// ReceivablePaymentDynamoRepository persists provider charges in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: orderId-index (PK: orderId)
type ReceivablePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivablePaymentRepository = (*ReceivablePaymentDynamoRepository)(nil)

func NewReceivablePaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *ReceivablePaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &ReceivablePaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReceivablePaymentDynamoRepository) Create(ctx context.Context, p entities.ReceivablePayment) (entities.ReceivablePayment, error) {
	av, err := attributevalue.MarshalMap(toReceivablePaymentItem(p))
	if err != nil {
		return entities.ReceivablePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": fieldID,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ReceivablePayment{}, interfaces.ErrReceivablePaymentAlreadyExists
		}
		return entities.ReceivablePayment{}, err
	}
	return p, nil
}

func (r *ReceivablePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ReceivablePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReceivablePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ReceivablePayment{}, nil
	}
	return decodeReceivablePaymentItem(out.Item)
}

// ListByOrderID queries the orderId index. The index carries no sort key, so
// the result is ordered by createdAt here.
func (r *ReceivablePaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ReceivablePayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderIDIndex),
		KeyConditionExpression: aws.String("#oid = :oid"),
		ExpressionAttributeNames: map[string]string{
			"#oid": fieldPaymentOrderID,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})

	payments := make([]entities.ReceivablePayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			decoded, err := decodeReceivablePaymentItem(item)
			if err != nil {
				return nil, err
			}
			payments = append(payments, decoded)
		}
	}
	sortPaymentsByCreation(payments)
	return payments, nil
}

func (r *ReceivablePaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status string, providerResponse json.RawMessage, at time.Time) (entities.ReceivablePayment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 orderKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #st = :st, #pr = :pr, #ua = :ua"),
		ExpressionAttributeNames: map[string]string{
			"#id": fieldID,
			"#st": fieldPaymentProviderStatus,
			"#pr": fieldPaymentProviderResponse,
			"#ua": fieldPaymentUpdatedAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":st": &types.AttributeValueMemberS{Value: status},
			":pr": &types.AttributeValueMemberS{Value: string(providerResponse)},
			":ua": &types.AttributeValueMemberS{Value: formatItemTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ReceivablePayment{}, nil
		}
		return entities.ReceivablePayment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ReceivablePayment{}, nil
	}
	return decodeReceivablePaymentItem(out.Attributes)
}

func toReceivablePaymentItem(p entities.ReceivablePayment) receivablePaymentItem {
	return receivablePaymentItem{
		ID:                p.ID,
		OrderID:           p.OrderID,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		Amount:            p.Amount.String(),
		CreatedAt:         formatItemTime(p.CreatedAt),
		UpdatedAt:         formatItemTime(p.UpdatedAt),
		ProviderResponse:  string(p.ProviderResponse),
	}
}

func decodeReceivablePaymentItem(item map[string]types.AttributeValue) (entities.ReceivablePayment, error) {
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return entities.ReceivablePayment{}, err
	}
	return paymentFromDocument(coerceString(doc[fieldID]), doc), nil
}

func sortPaymentsByCreation(payments []entities.ReceivablePayment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
}
