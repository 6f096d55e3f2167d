package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/cammarket/storefront/config"
	"github.com/cammarket/storefront/internal/adapter/catalog"
	"github.com/cammarket/storefront/internal/adapter/httphandler"
	"github.com/cammarket/storefront/internal/adapter/kafka"
	"github.com/cammarket/storefront/internal/adapter/storage"
	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/internal/core/service"
	"github.com/cammarket/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	orderPlaced schema.Serde
	clientEvent schema.Serde
	orderStatus schema.Serde
}

type producers struct {
	orderEvents  kafka.OrderEventsProducer
	clientEvents kafka.ClientEventsProducer
}

type services struct {
	catalog  service.CatalogService
	cart     service.CartService
	checkout service.CheckoutService
	wishlist service.WishlistService
	delivery service.DeliveryService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	producers  producers
	sqldb      storage.SQLDB
	hasSQL     bool
	orders     port.OrderRepository
	services   services
	processor  *kafka.OrderStatusProcessor
	view       *kafka.OrderStatusView
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initProcessing()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initStorage picks the order repository: Postgres when a DSN is
// configured, otherwise in-memory (history resets on restart, like the
// storefront's reload).
func (app *App) initStorage() {
	const op = "App.initStorage"

	if app.cfg.SQLDB == "" {
		app.orders = storage.NewMemoryOrderRepository()
		return
	}

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb
	app.hasSQL = true
	app.orders = storage.NewSQLOrderRepository(sqldb)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	orderPlacedSS := app.cfg.Broker.Topics.OrderEvents + "-value"
	orderPlacedSerde, err := schema.NewSerdeOrderPlacedV1(
		ctx,
		schema.SubjectOpt(orderPlacedSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	clientEventSS := app.cfg.Broker.Topics.ClientEvents + "-value"
	clientEventSerde, err := schema.NewSerdeClientEventV1(
		ctx,
		schema.SubjectOpt(clientEventSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	orderStatusSS := app.cfg.Broker.Topics.OrderStatusStream + "-value"
	orderStatusSerde, err := schema.NewSerdeOrderStatusV1(
		ctx,
		schema.SubjectOpt(orderStatusSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.orderPlaced = orderPlacedSerde
	app.serdes.clientEvent = clientEventSerde
	app.serdes.orderStatus = orderStatusSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	orderEventsTopic := app.cfg.Broker.Topics.OrderEvents
	clientEventsTopic := app.cfg.Broker.Topics.ClientEvents

	orderEvents, err := kafka.NewOrderEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, orderEventsTopic),
		kafka.ProducerEncoderOpt(app.serdes.orderPlaced),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	clientEvents, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, clientEventsTopic),
		kafka.ProducerEncoderOpt(app.serdes.clientEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producers.orderEvents = orderEvents
	app.producers.clientEvents = clientEvents
}

func (app *App) initCoreServices() {
	source := catalog.NewSeedCatalog()
	carts := storage.NewMemoryCartStore()
	wishlists := storage.NewMemoryWishlistStore()

	app.services.catalog = service.NewCatalogService(source)
	app.services.cart = service.NewCartService(
		source, carts, app.producers.clientEvents,
	)
	app.services.checkout = service.NewCheckoutService(
		source, carts, app.orders,
		app.producers.orderEvents, app.producers.clientEvents,
	)
	app.services.wishlist = service.NewWishlistService(
		source, wishlists, app.producers.clientEvents,
	)
	app.services.delivery = service.NewDeliveryService()
}

func (app *App) initProcessing() {
	const op = "App.initProcessing"

	seedBrokers := app.cfg.Broker.SeedBrokers
	stream := app.cfg.Broker.Topics.OrderStatusStream
	group := app.cfg.Broker.Consumers.OrderStatusGroup

	processor, err := kafka.NewOrderStatusProcessor(
		seedBrokers, stream, group,
		app.serdes.orderStatus, app.services.checkout,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	view, err := kafka.NewOrderStatusView(
		seedBrokers, group, app.serdes.orderStatus,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.processor = processor
	app.view = view
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.services.catalog)
	httphandler.RegisterCart(mux, app.services.cart)
	httphandler.RegisterOrders(mux, app.services.checkout, app.view)
	httphandler.RegisterWishlist(mux, app.services.wishlist)
	httphandler.RegisterDelivery(mux, app.services.delivery)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(httphandler.ServerConfig{
		Addr:              app.cfg.HTTPServer.Addr,
		HandleTimeout:     app.cfg.HTTPServer.HandleTimeout,
		ReadHeaderTimeout: app.cfg.HTTPServer.ReadHeaderTimeout,
		IdleTimeout:       app.cfg.HTTPServer.IdleTimeout,
	}, handler)
}

// Run starts the components and blocks until the status processor
// reports ready.
func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)
	go app.view.Run(app.ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go app.processor.Run(app.ctx, stopFn, &wg)
	wg.Wait()

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.processor.Close()
	app.producers.orderEvents.Close()
	app.producers.clientEvents.Close()
	if app.hasSQL {
		app.sqldb.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
