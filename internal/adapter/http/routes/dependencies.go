package routes

import (
	"context"
	"time"

	"gashub/internal/adapter/feed"
	"gashub/internal/adapter/http/handlers"
	"gashub/internal/adapter/persistence/repository"
	"gashub/internal/config"
	"gashub/internal/infrastructure/database"
	"gashub/internal/infrastructure/identity"
	"gashub/internal/infrastructure/messaging"
	"gashub/internal/infrastructure/payments"
	"gashub/internal/usecase"
	"gashub/internal/usecase/interfaces"

	firebase "firebase.google.com/go/v4"
	log "github.com/sirupsen/logrus"
)

type dependencies struct {
	orderHandler       *handlers.OrderHandler
	receivablesHandler *handlers.ReceivablesHandler
	verifier           interfaces.IIdentityVerifier

	closers []func()
}

// Close releases connections in reverse order of creation.
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}

	loc, err := cfg.Location()
	if err != nil {
		log.WithError(err).WithField("timezone", cfg.BusinessTimezone).Warn("[setup] unknown timezone, using local time")
		loc = time.Local
	}

	var app *firebase.App
	if cfg.Firebase.ProjectID != "" {
		app, err = database.NewFirebaseApp(ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}
		verifier, err := identity.NewFirebaseVerifier(ctx, app)
		if err != nil {
			return nil, err
		}
		deps.verifier = verifier
	} else {
		log.Warn("[setup] FIREBASE_PROJECT_ID not set, every request is anonymous")
	}

	st, err := buildStores(ctx, cfg, app, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}
	repo, nativeFeed := st.orders, st.feed

	var (
		orderFeed interfaces.IOrderFeed
		notifier  interfaces.IChangeNotifier
	)
	if nativeFeed != nil {
		orderFeed = nativeFeed
	} else {
		broker := feed.NewBroker(repo, cfg.Feed.RefreshInterval)
		go broker.Run(ctx)
		orderFeed = broker
		notifier = broker

		if cfg.NATS.URL != "" {
			natsNotifier, err := connectNotifier(ctx, cfg.NATS, broker)
			if err != nil {
				deps.Close()
				return nil, err
			}
			deps.closers = append(deps.closers, natsNotifier.Close)
			notifier = natsNotifier
		}
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.WithError(err).Warn("[setup] Mercado Pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(repo, st.payments, notifier, gateway)
	viewUseCase := usecase.NewOrderViewUseCase(repo, orderFeed, loc)

	deps.orderHandler = handlers.NewOrderHandler(orderUseCase, viewUseCase, loc)
	deps.receivablesHandler = handlers.NewReceivablesHandler(orderUseCase, viewUseCase, loc)
	return deps, nil
}

// stores groups what buildStores opens for the selected backend. feed is set
// only when the backend pushes its own snapshots.
type stores struct {
	orders   interfaces.IOrderRepository
	payments interfaces.IReceivablePaymentRepository
	feed     interfaces.IOrderFeed
}

// buildStores opens the order and payment stores selected by ORDER_STORE.
// Provider charges live next to the orders, in PAYMENTS_COLLECTION.
func buildStores(ctx context.Context, cfg *config.Config, app *firebase.App, deps *dependencies) (stores, error) {
	switch cfg.OrderStore {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return stores{}, err
		}
		return stores{
			orders:   repository.NewOrderDynamoRepository(ddb, cfg.OrdersCollection),
			payments: repository.NewReceivablePaymentDynamoRepository(ddb, cfg.PaymentsCollection),
		}, nil

	case config.StoreMongoDB:
		client, db, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return stores{}, err
		}
		deps.closers = append(deps.closers, func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("[setup] mongodb disconnect failed")
			}
		})
		orders := repository.NewOrderMongoRepository(db, cfg.OrdersCollection)
		if err := orders.EnsureIndexes(ctx); err != nil {
			return stores{}, err
		}
		payments := repository.NewReceivablePaymentMongoRepository(db, cfg.PaymentsCollection)
		if err := payments.EnsureIndexes(ctx); err != nil {
			return stores{}, err
		}
		return stores{orders: orders, payments: payments}, nil

	case config.StoreFirestore:
		client, err := app.Firestore(ctx)
		if err != nil {
			return stores{}, err
		}
		deps.closers = append(deps.closers, func() { _ = client.Close() })
		if cfg.NATS.URL != "" {
			log.Info("[setup] firestore delivers its own snapshots, NATS_URL is ignored")
		}
		orders := repository.NewOrderFirestoreRepository(client, cfg.OrdersCollection)
		return stores{
			orders:   orders,
			payments: repository.NewReceivablePaymentFirestoreRepository(client, cfg.PaymentsCollection),
			feed:     orders,
		}, nil
	}

	log.Warn("[setup] using the in-memory order store, data is lost on restart")
	return stores{
		orders:   repository.NewOrderMemoryRepository(),
		payments: repository.NewReceivablePaymentMemoryRepository(),
	}, nil
}

// connectNotifier fans order changes out over NATS so every replica's broker
// reloads, including this one.
func connectNotifier(ctx context.Context, cfg config.NATSConfig, broker *feed.Broker) (*messaging.NatsNotifier, error) {
	nc, err := messaging.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}
	notifier := messaging.NewNatsNotifier(nc, cfg.Subject)

	_, err = notifier.Listen(func(ev messaging.ChangeEvent) {
		log.WithField("order_id", ev.OrderID).Debug("[setup] order change received")
		if err := broker.Refresh(context.WithoutCancel(ctx)); err != nil {
			log.WithError(err).Warn("[setup] reload after change event failed")
		}
	})
	if err != nil {
		notifier.Close()
		return nil, err
	}
	return notifier, nil
}
