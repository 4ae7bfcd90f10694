package repository

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gashub/internal/domain/entities"
	"gashub/pkg/format"

	"github.com/shopspring/decimal"
)

// Field names of an order document. The mobile app writes the same collection,
// so they stay camelCase across every backend.
const (
	fieldID            = "id"
	fieldCustomerName  = "customerName"
	fieldAddress       = "address"
	fieldProducts      = "products"
	fieldPaymentMethod = "paymentMethod"
	fieldTotalValue    = "totalValue"
	fieldPendingValue  = "pendingValue"
	fieldPaymentStatus = "paymentStatus"
	fieldStatus        = "status"
	fieldDueDate       = "dueDate"
	fieldPaymentDate   = "paymentDate"
	fieldTimestamp     = "timestamp"
	fieldUserID        = "userId"

	fieldProductName     = "name"
	fieldProductQuantity = "quantity"
	fieldProductPrice    = "price"
)

// orderToDocument builds the stored form of o without its id. Amounts are
// decimal strings; times are kept as time.Time for stores with a native type.
func orderToDocument(o entities.Order) map[string]any {
	products := make([]any, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, map[string]any{
			fieldProductName:     p.Name,
			fieldProductQuantity: int64(p.Quantity),
			fieldProductPrice:    p.Price.String(),
		})
	}

	doc := map[string]any{
		fieldCustomerName:  o.CustomerName,
		fieldAddress:       o.Address,
		fieldProducts:      products,
		fieldPaymentMethod: string(o.PaymentMethod),
		fieldTotalValue:    o.TotalValue.String(),
		fieldPendingValue:  o.PendingValue.String(),
		fieldPaymentStatus: string(o.PaymentStatus),
		fieldStatus:        string(o.Status),
		fieldTimestamp:     o.Timestamp.UTC(),
		fieldUserID:        o.UserID,
	}
	if o.DueDate != nil {
		doc[fieldDueDate] = o.DueDate.UTC()
	}
	if o.PaymentDate != nil {
		doc[fieldPaymentDate] = o.PaymentDate.UTC()
	}
	return doc
}

// orderFromDocument decodes a stored order. Documents written by older clients
// may hold amounts as numbers or "R$" strings and dates as strings or epoch
// milliseconds; anything unreadable becomes zero instead of failing the read.
func orderFromDocument(id string, doc map[string]any) entities.Order {
	return entities.Order{
		ID:            id,
		CustomerName:  coerceString(doc[fieldCustomerName]),
		Address:       coerceString(doc[fieldAddress]),
		Products:      coerceProducts(doc[fieldProducts]),
		PaymentMethod: entities.PaymentMethod(coerceString(doc[fieldPaymentMethod])),
		TotalValue:    coerceAmount(doc[fieldTotalValue]),
		PendingValue:  coerceAmount(doc[fieldPendingValue]),
		PaymentStatus: entities.PaymentStatus(coerceString(doc[fieldPaymentStatus])),
		Status:        entities.OrderStatus(coerceString(doc[fieldStatus])),
		DueDate:       coerceTimePtr(doc[fieldDueDate]),
		PaymentDate:   coerceTimePtr(doc[fieldPaymentDate]),
		Timestamp:     coerceTime(doc[fieldTimestamp]),
		UserID:        coerceString(doc[fieldUserID]),
	}
}

func coerceProducts(v any) []entities.Product {
	items, ok := asSlice(v)
	if !ok {
		return nil
	}
	products := make([]entities.Product, 0, len(items))
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			continue
		}
		products = append(products, entities.Product{
			Name:     coerceString(m[fieldProductName]),
			Quantity: coerceInt(m[fieldProductQuantity]),
			Price:    coerceAmount(m[fieldProductPrice]),
		})
	}
	return products
}

func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func coerceInt(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return int(x)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func coerceAmount(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case string:
		d, err := format.ParseAmount(x)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		return coerceAmount(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case fmt.Stringer:
		return coerceAmount(x.String())
	}
	return decimal.Zero
}

// timeLayouts are tried in order when a date is stored as a string.
var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func coerceTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case *time.Time:
		if x == nil {
			return time.Time{}
		}
		return *x
	case interface{ Time() time.Time }:
		return x.Time()
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(x)); err == nil {
				return t
			}
		}
	case int64:
		return time.UnixMilli(x).UTC()
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return time.Time{}
		}
		return time.UnixMilli(int64(x)).UTC()
	}
	return time.Time{}
}

func coerceTimePtr(v any) *time.Time {
	t := coerceTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

// asSlice and asMap accept the named slice and map types the drivers decode
// into (bson.A, bson.M) as well as the plain ones.
func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
