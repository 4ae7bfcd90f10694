package repository

import (
	"context"
	"errors"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "pedidos"
	paymentMethodIndexName = "paymentMethod-index"
)

type orderItem struct {
	ID            string             `dynamodbav:"id"`
	CustomerName  string             `dynamodbav:"customerName"`
	Address       string             `dynamodbav:"address"`
	Products      []orderProductItem `dynamodbav:"products"`
	PaymentMethod string             `dynamodbav:"paymentMethod"`
	TotalValue    string             `dynamodbav:"totalValue"`
	PendingValue  string             `dynamodbav:"pendingValue"`
	PaymentStatus string             `dynamodbav:"paymentStatus"`
	Status        string             `dynamodbav:"status"`
	DueDate       string             `dynamodbav:"dueDate,omitempty"`
	PaymentDate   string             `dynamodbav:"paymentDate,omitempty"`
	Timestamp     string             `dynamodbav:"timestamp"`
	UserID        string             `dynamodbav:"userId"`
}

type orderProductItem struct {
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
	Price    string `dynamodbav:"price"`
}

// OrderDynamoRepository persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI "paymentMethod-index" with paymentMethod (string) as hash key
//
// Items are read back as loose attribute maps so that rows written by other
// clients with numeric amounts still decode.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
			return entities.Order{}, interfaces.ErrOrderAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrderItem(out.Item)
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var orders []entities.Order
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeOrderItems(page.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, decoded...)
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentMethodIndexName),
		KeyConditionExpression: aws.String("#pm = :pm"),
		ExpressionAttributeNames: map[string]string{
			"#pm": fieldPaymentMethod,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pm": &types.AttributeValueMemberS{Value: string(method)},
		},
	})

	var orders []entities.Order
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeOrderItems(page.Items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, decoded...)
	}
	return orders, nil
}

func (r *OrderDynamoRepository) MarkAsPaid(ctx context.Context, id string, paidAt time.Time) (entities.Order, error) {
	return r.update(ctx, id, "#pm = :fiado", func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #pm = :pago, #pv = :zero, #ps = :paid, #pd = :paid_at REMOVE #dd"
		vals := map[string]types.AttributeValue{
			":fiado":   &types.AttributeValueMemberS{Value: string(entities.PaymentMethodFiado)},
			":pago":    &types.AttributeValueMemberS{Value: string(entities.PaymentMethodPago)},
			":zero":    &types.AttributeValueMemberS{Value: "0"},
			":paid":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":paid_at": &types.AttributeValueMemberS{Value: formatItemTime(paidAt)},
		}
		names := map[string]string{
			"#pm": fieldPaymentMethod,
			"#pv": fieldPendingValue,
			"#ps": fieldPaymentStatus,
			"#pd": fieldPaymentDate,
			"#dd": fieldDueDate,
		}
		return expr, vals, names
	})
}

// update applies the expression from build to an existing item that also
// satisfies cond. A failed condition yields a zero Order.
func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	cond string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build()

	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       orderKey(id),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": fieldID}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return decodeOrderItem(out.Attributes)
}

func orderKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		fieldID: &types.AttributeValueMemberS{Value: id},
	}
}

func toOrderItem(o entities.Order) orderItem {
	products := make([]orderProductItem, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, orderProductItem{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price.String(),
		})
	}

	it := orderItem{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Address:       o.Address,
		Products:      products,
		PaymentMethod: string(o.PaymentMethod),
		TotalValue:    o.TotalValue.String(),
		PendingValue:  o.PendingValue.String(),
		PaymentStatus: string(o.PaymentStatus),
		Status:        string(o.Status),
		Timestamp:     formatItemTime(o.Timestamp),
		UserID:        o.UserID,
	}
	if o.DueDate != nil {
		it.DueDate = formatItemTime(*o.DueDate)
	}
	if o.PaymentDate != nil {
		it.PaymentDate = formatItemTime(*o.PaymentDate)
	}
	return it
}

func formatItemTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeOrderItem(item map[string]types.AttributeValue) (entities.Order, error) {
	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return entities.Order{}, err
	}
	return orderFromDocument(coerceString(doc[fieldID]), doc), nil
}

func decodeOrderItems(items []map[string]types.AttributeValue) ([]entities.Order, error) {
	orders := make([]entities.Order, 0, len(items))
	for _, item := range items {
		o, err := decodeOrderItem(item)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
