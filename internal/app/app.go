package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/aqline/storefront/config"
	"github.com/aqline/storefront/internal/adapter/httphandler"
	"github.com/aqline/storefront/internal/adapter/kafka"
	"github.com/aqline/storefront/internal/adapter/redisstore"
	"github.com/aqline/storefront/internal/adapter/storage"
	"github.com/aqline/storefront/internal/core/service"
	"github.com/aqline/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type adapters struct {
	sqldb          storage.SQLDB
	redis          redisstore.Client
	ordersProducer kafka.OrdersProducer
}

type services struct {
	catalog  *service.CatalogService
	cart     service.CartService
	venue    service.VenueService
	sessions service.SessionService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	orderSerde schema.Serde
	adapters   adapters
	services   services
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.Topics.OrdersSubmitted + "-value"
	orderSerde, err := schema.NewSerdeOrderV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.orderSerde = orderSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.sqldb = sqldb

	redisClient, err := redisstore.NewClient(
		app.ctx, app.cfg.Session.RedisURL,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.redis = redisClient

	ordersProducer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.Topics.OrdersSubmitted,
		),
		kafka.ProducerEncoderOpt(app.orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.ordersProducer = ordersProducer
}

func (app *App) initCoreServices() {
	sessionTTL := app.cfg.Session.TTL

	productsRepo := storage.NewProductsRepository(app.adapters.sqldb)
	venuesRepo := storage.NewVenuesRepository(app.adapters.sqldb)
	ordersRepo := storage.NewOrdersRepository(app.adapters.sqldb)
	cartsRepo := redisstore.NewCartsRepository(app.adapters.redis, sessionTTL)
	sessionsRepo := redisstore.NewSessionsRepository(
		app.adapters.redis, sessionTTL,
	)

	app.services.catalog = service.NewCatalogService(productsRepo)
	app.services.venue = service.NewVenueService(venuesRepo)
	app.services.sessions = service.NewSessionService(sessionsRepo)
	app.services.cart = service.NewCartService(
		cartsRepo, ordersRepo, app.adapters.ordersProducer,
	)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()

	sessions := app.services.sessions
	httphandler.RegisterCatalog(mux, app.services.catalog, app.services.catalog)
	httphandler.RegisterVenues(mux, app.services.venue, sessions)
	httphandler.RegisterCart(mux, app.services.cart, sessions)
	httphandler.RegisterSession(mux, sessions, sessions)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, handler,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.adapters.ordersProducer.Close()
	app.adapters.redis.Close()
	app.adapters.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
