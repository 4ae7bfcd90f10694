package repository

import (
	"testing"
	"time"

	"gashub/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestOrderItem_Decode(t *testing.T) {
	ts := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	paid := ts.Add(time.Hour)
	o := entities.Order{
		ID:            "o-7",
		CustomerName:  "Carlos",
		Address:       "Av. Brasil, 100",
		Products:      []entities.Product{{Name: "Água 20L", Quantity: 3, Price: decimal.RequireFromString("12.5")}},
		PaymentMethod: entities.PaymentMethodPago,
		TotalValue:    decimal.RequireFromString("37.5"),
		PendingValue:  decimal.Zero,
		PaymentStatus: entities.PaymentStatusPaid,
		Status:        entities.OrderStatusPendente,
		PaymentDate:   &paid,
		Timestamp:     ts,
		UserID:        "u-9",
	}

	item, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := item["dueDate"]; ok {
		t.Fatalf("empty due date should be omitted")
	}

	got, err := decodeOrderItem(item)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "o-7" || got.PaymentMethod != entities.PaymentMethodPago || got.UserID != "u-9" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got.TotalValue.Equal(o.TotalValue) || !got.PendingValue.IsZero() {
		t.Fatalf("unexpected amounts: %s %s", got.TotalValue, got.PendingValue)
	}
	if len(got.Products) != 1 || got.Products[0].Quantity != 3 {
		t.Fatalf("unexpected products: %+v", got.Products)
	}
	if got.DueDate != nil || got.PaymentDate == nil || !got.PaymentDate.Equal(paid) || !got.Timestamp.Equal(ts) {
		t.Fatalf("unexpected dates: %+v", got)
	}
}

func TestOrderItem_DecodeNumericAmounts(t *testing.T) {
	item := map[string]types.AttributeValue{
		"id":            &types.AttributeValueMemberS{Value: "legacy"},
		"customerName":  &types.AttributeValueMemberS{Value: "Rita"},
		"paymentMethod": &types.AttributeValueMemberS{Value: "Fiado"},
		"totalValue":    &types.AttributeValueMemberN{Value: "45.9"},
		"pendingValue":  &types.AttributeValueMemberN{Value: "45.9"},
		"products": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"name":     &types.AttributeValueMemberS{Value: "Gás P13"},
				"quantity": &types.AttributeValueMemberN{Value: "1"},
				"price":    &types.AttributeValueMemberN{Value: "45.9"},
			}},
		}},
	}

	got, err := decodeOrderItem(item)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "legacy" || !got.IsReceivable() {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got.PendingValue.Equal(decimal.RequireFromString("45.9")) {
		t.Fatalf("unexpected pending value %s", got.PendingValue)
	}
	if len(got.Products) != 1 || got.Products[0].Quantity != 1 {
		t.Fatalf("unexpected products: %+v", got.Products)
	}
}
