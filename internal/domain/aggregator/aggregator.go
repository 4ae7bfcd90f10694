// Package aggregator turns a raw order snapshot and a filter into the
// filtered, sorted list and the summary metrics shown by the order views.
//
// Every function is pure: inputs are never mutated and nothing is retained
// between calls, so it is safe to call once per feed snapshot from any goroutine.
package aggregator

import (
	"sort"
	"strings"
	"time"

	"gashub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Metrics summarises a filtered order list. Every field is defined for an empty list.
type Metrics struct {
	TotalOrders       int
	TotalValue        decimal.Decimal
	AverageOrderValue decimal.Decimal
	CreditCount       int
	PaidCount         int
	ConversionRate    decimal.Decimal
}

// View is the result of one aggregation pass.
type View struct {
	Orders  []entities.Order
	Metrics Metrics
}

// Aggregate filters and sorts orders with spec, then computes the metrics over the result.
func Aggregate(orders []entities.Order, spec entities.FilterSpec, now time.Time) View {
	filtered := FilterOrders(orders, spec, now)
	return View{Orders: filtered, Metrics: ComputeMetrics(filtered)}
}

// FilterOrders applies, in order, the date, status and customer name filters
// and then a stable sort. It returns a new slice.
//
// "today" compares calendar days in now's location.
func FilterOrders(orders []entities.Order, spec entities.FilterSpec, now time.Time) []entities.Order {
	keepDate := dateFilter(spec, now)
	query := strings.ToLower(spec.CustomerName)

	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if !keepDate(o) {
			continue
		}
		if !matchesStatus(o, spec.Status) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(o.CustomerName), query) {
			continue
		}
		out = append(out, o)
	}

	sortOrders(out, spec.SortBy, spec.SortOrder)
	return out
}

func dateFilter(spec entities.FilterSpec, now time.Time) func(entities.Order) bool {
	switch spec.DateRange {
	case entities.DateRangeToday:
		y, m, d := now.Date()
		return func(o entities.Order) bool {
			oy, om, od := o.Timestamp.In(now.Location()).Date()
			return oy == y && om == m && od == d
		}
	case entities.DateRangeThisWeek:
		since := now.AddDate(0, 0, -7)
		return func(o entities.Order) bool { return !o.Timestamp.Before(since) }
	case entities.DateRangeThisMonth:
		since := now.AddDate(0, -1, 0)
		return func(o entities.Order) bool { return !o.Timestamp.Before(since) }
	case entities.DateRangeCustom:
		if spec.StartDate == nil || spec.EndDate == nil {
			return keepAll
		}
		start, end := *spec.StartDate, *spec.EndDate
		return func(o entities.Order) bool {
			return !o.Timestamp.Before(start) && !o.Timestamp.After(end)
		}
	}
	return keepAll
}

func keepAll(entities.Order) bool { return true }

func matchesStatus(o entities.Order, status entities.StatusFilter) bool {
	switch status {
	case entities.StatusFilterPaid:
		return o.PaymentStatus == entities.PaymentStatusPaid
	case entities.StatusFilterCredit:
		return o.PaymentMethod == entities.PaymentMethodFiado
	case entities.StatusFilterPending:
		return o.PaymentStatus == entities.PaymentStatusPending
	}
	return true
}

func sortOrders(orders []entities.Order, by entities.SortBy, order entities.SortOrder) {
	cmp := compareByDate
	switch by {
	case entities.SortByValue:
		cmp = compareByValue
	case entities.SortByCustomerName:
		cmp = compareByCustomerName
	}

	desc := order != entities.SortOrderAsc
	sort.SliceStable(orders, func(i, j int) bool {
		c := cmp(orders[i], orders[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareByDate(a, b entities.Order) int {
	ta, tb := epochMillis(a.Timestamp), epochMillis(b.Timestamp)
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}
	return 0
}

func compareByValue(a, b entities.Order) int {
	return a.TotalValue.Cmp(b.TotalValue)
}

func compareByCustomerName(a, b entities.Order) int {
	return strings.Compare(a.CustomerName, b.CustomerName)
}

// epochMillis treats a missing timestamp as the epoch.
func epochMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// ComputeMetrics summarises orders. TotalValue adds each order's pending value
// when it has one and its total value otherwise.
func ComputeMetrics(orders []entities.Order) Metrics {
	m := Metrics{
		TotalOrders:       len(orders),
		TotalValue:        decimal.Zero,
		AverageOrderValue: decimal.Zero,
		ConversionRate:    decimal.Zero,
	}
	for _, o := range orders {
		m.TotalValue = m.TotalValue.Add(o.RelevantValue())
		if o.PaymentMethod == entities.PaymentMethodFiado {
			m.CreditCount++
		}
		if o.PaymentStatus == entities.PaymentStatusPaid {
			m.PaidCount++
		}
	}
	if m.TotalOrders > 0 {
		n := decimal.NewFromInt(int64(m.TotalOrders))
		m.AverageOrderValue = m.TotalValue.Div(n)
		m.ConversionRate = decimal.NewFromInt(int64(m.PaidCount)).Div(n).Mul(hundred)
	}
	return m
}

// ComputeReceivablesTotal sums the pending value of every unpaid fiado order.
func ComputeReceivablesTotal(orders []entities.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.IsReceivable() {
			total = total.Add(o.PendingValue)
		}
	}
	return total
}
