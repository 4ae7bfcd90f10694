package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase"
	"gashub/pkg/format"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var ErrInvalidFilterDate = errors.New("invalid filter date")

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	}
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return entities.PaymentMethod(fl.Field().String()).IsSelectable()
}

// Amount accepts a JSON number or a pt-BR formatted string such as "R$ 10,50".
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := format.ParseAmount(s)
		if err != nil {
			return err
		}
		a.Decimal = d
		return nil
	}

	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return format.ErrInvalidAmount
	}
	a.Decimal = d
	return nil
}

type ProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Price    Amount `json:"price"`
}

// OrderCreateRequest is the body of POST /orders. due_date is required when
// payment_method is Fiado.
type OrderCreateRequest struct {
	CustomerName  string           `json:"customer_name" binding:"required"`
	Address       string           `json:"address" binding:"required"`
	Products      []ProductRequest `json:"products" binding:"required,min=1,dive"`
	PaymentMethod string           `json:"payment_method" binding:"required,payment_method"`
	DueDate       *time.Time       `json:"due_date"`
}

func (r OrderCreateRequest) ToNewOrder(userID string) usecase.NewOrder {
	products := make([]entities.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, entities.Product{
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price.Decimal,
		})
	}
	return usecase.NewOrder{
		CustomerName:  r.CustomerName,
		Address:       r.Address,
		Products:      products,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		DueDate:       r.DueDate,
		UserID:        userID,
	}
}

// OrderFilterRequest is the query string of the order list and stream endpoints.
type OrderFilterRequest struct {
	DateRange string `form:"date_range"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Status    string `form:"status"`
	Customer  string `form:"customer"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// ToFilterSpec converts the query. Dates are RFC 3339 or YYYY-MM-DD; a bare
// date covers the whole day in loc.
func (r OrderFilterRequest) ToFilterSpec(loc *time.Location) (entities.FilterSpec, error) {
	start, err := parseFilterDate(r.StartDate, loc, false)
	if err != nil {
		return entities.FilterSpec{}, err
	}
	end, err := parseFilterDate(r.EndDate, loc, true)
	if err != nil {
		return entities.FilterSpec{}, err
	}

	return entities.FilterSpec{
		DateRange:    entities.DateRange(strings.TrimSpace(r.DateRange)),
		StartDate:    start,
		EndDate:      end,
		Status:       entities.StatusFilter(strings.TrimSpace(r.Status)),
		CustomerName: strings.TrimSpace(r.Customer),
		SortBy:       entities.SortBy(strings.TrimSpace(r.SortBy)),
		SortOrder:    entities.SortOrder(strings.TrimSpace(r.SortOrder)),
	}, nil
}

func parseFilterDate(s string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil, ErrInvalidFilterDate
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
