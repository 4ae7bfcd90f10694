package usecase

import (
	"context"
	"errors"
	"time"

	"gashub/internal/domain/aggregator"
	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=order_view_usecase.go -destination=../adapter/http/handlers/mocks/order_view_usecase_mock.go -package=mocks

var (
	ErrInvalidFilter     = errors.New("invalid order filter")
	ErrFeedNotConfigured = errors.New("order feed not configured")
)

// OrdersView is one rendering of the dashboard: the filtered list and its metrics.
type OrdersView struct {
	aggregator.View
	GeneratedAt time.Time
}

// ReceivablesView lists unpaid fiado orders and the amount still owed.
type ReceivablesView struct {
	Orders      []entities.Order
	Total       decimal.Decimal
	GeneratedAt time.Time
}

// IOrderViewUseCase builds the read-side views, either once or as a stream
// that re-renders on every feed snapshot.
type IOrderViewUseCase interface {
	ListOrders(ctx context.Context, spec entities.FilterSpec) (OrdersView, error)
	WatchOrders(ctx context.Context, spec entities.FilterSpec) (<-chan OrdersView, error)
	ListReceivables(ctx context.Context, customerQuery string) (ReceivablesView, error)
	WatchReceivables(ctx context.Context, customerQuery string) (<-chan ReceivablesView, error)
}

type OrderViewUseCase struct {
	repo     interfaces.IOrderRepository
	feed     interfaces.IOrderFeed
	location *time.Location
	now      func() time.Time
}

var _ IOrderViewUseCase = (*OrderViewUseCase)(nil)

// NewOrderViewUseCase evaluates relative date ranges in loc (time.Local when nil).
func NewOrderViewUseCase(repo interfaces.IOrderRepository, feed interfaces.IOrderFeed, loc *time.Location) *OrderViewUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &OrderViewUseCase{repo: repo, feed: feed, location: loc, now: time.Now}
}

// NormalizeFilterSpec fills unset fields with the dashboard defaults and
// rejects unknown values.
func NormalizeFilterSpec(spec entities.FilterSpec) (entities.FilterSpec, error) {
	def := entities.DefaultFilterSpec()
	if spec.DateRange == "" {
		spec.DateRange = def.DateRange
	}
	if spec.Status == "" {
		spec.Status = def.Status
	}
	if spec.SortBy == "" {
		spec.SortBy = def.SortBy
	}
	if spec.SortOrder == "" {
		spec.SortOrder = def.SortOrder
	}
	if !spec.DateRange.IsValid() || !spec.Status.IsValid() || !spec.SortBy.IsValid() || !spec.SortOrder.IsValid() {
		return entities.FilterSpec{}, ErrInvalidFilter
	}
	return spec, nil
}

func (u *OrderViewUseCase) ListOrders(ctx context.Context, spec entities.FilterSpec) (OrdersView, error) {
	spec, err := NormalizeFilterSpec(spec)
	if err != nil {
		return OrdersView{}, err
	}
	orders, err := u.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("[order][view] failed to list orders")
		return OrdersView{}, err
	}
	return u.ordersView(orders, spec), nil
}

func (u *OrderViewUseCase) WatchOrders(ctx context.Context, spec entities.FilterSpec) (<-chan OrdersView, error) {
	spec, err := NormalizeFilterSpec(spec)
	if err != nil {
		return nil, err
	}
	return watch(ctx, u.feed, nil, func(orders []entities.Order) OrdersView {
		return u.ordersView(orders, spec)
	})
}

func (u *OrderViewUseCase) ListReceivables(ctx context.Context, customerQuery string) (ReceivablesView, error) {
	orders, err := u.repo.ListByPaymentMethod(ctx, entities.PaymentMethodFiado)
	if err != nil {
		log.WithError(err).Error("[order][view] failed to list receivables")
		return ReceivablesView{}, err
	}
	return u.receivablesView(orders, customerQuery), nil
}

func (u *OrderViewUseCase) WatchReceivables(ctx context.Context, customerQuery string) (<-chan ReceivablesView, error) {
	return watch(ctx, u.feed, entities.Order.IsReceivable, func(orders []entities.Order) ReceivablesView {
		return u.receivablesView(orders, customerQuery)
	})
}

func (u *OrderViewUseCase) ordersView(orders []entities.Order, spec entities.FilterSpec) OrdersView {
	now := u.now().In(u.location)
	return OrdersView{View: aggregator.Aggregate(orders, spec, now), GeneratedAt: now}
}

func (u *OrderViewUseCase) receivablesView(orders []entities.Order, customerQuery string) ReceivablesView {
	receivables := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsReceivable() {
			receivables = append(receivables, o)
		}
	}

	spec := entities.FilterSpec{
		DateRange:    entities.DateRangeAll,
		Status:       entities.StatusFilterAll,
		CustomerName: customerQuery,
		SortBy:       entities.SortByDate,
		SortOrder:    entities.SortOrderDesc,
	}
	now := u.now().In(u.location)
	filtered := aggregator.FilterOrders(receivables, spec, now)
	return ReceivablesView{
		Orders:      filtered,
		Total:       aggregator.ComputeReceivablesTotal(filtered),
		GeneratedAt: now,
	}
}

// watch renders every snapshot of a feed subscription into out. Rendering
// happens on the subscription goroutine; a slow reader only gets the latest view.
func watch[T any](ctx context.Context, feed interfaces.IOrderFeed, predicate interfaces.OrderPredicate, render func([]entities.Order) T) (<-chan T, error) {
	if feed == nil {
		return nil, ErrFeedNotConfigured
	}
	sub, err := feed.Subscribe(ctx, predicate)
	if err != nil {
		return nil, err
	}

	out := make(chan T, 1)
	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case snapshot, ok := <-sub.Snapshots():
				if !ok {
					return
				}
				offerLatest(out, render(snapshot))
			}
		}
	}()
	return out, nil
}

// offerLatest replaces an unread value in ch. ch must have a single sender.
func offerLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
