package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/jubilant/config"
	"github.com/niksmo/jubilant/internal/adapter"
	"github.com/niksmo/jubilant/internal/adapter/catalog"
	"github.com/niksmo/jubilant/internal/adapter/httphandler"
	"github.com/niksmo/jubilant/internal/adapter/kafka"
	"github.com/niksmo/jubilant/internal/adapter/mailer"
	"github.com/niksmo/jubilant/internal/adapter/shortlist"
	"github.com/niksmo/jubilant/internal/adapter/storage"
	"github.com/niksmo/jubilant/internal/core/port"
	"github.com/niksmo/jubilant/internal/core/service"
	"github.com/niksmo/jubilant/pkg/schema"
	"github.com/rs/cors"
	"github.com/twmb/franz-go/pkg/sr"
)

type outbound struct {
	catalog        port.CatalogStore
	shortlist      port.ShortlistStore
	eventsProducer port.ShortlistEventsProducer
	leadsStorage   port.LeadsStorage
	notifier       port.Notifier
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	outbound   outbound
	closers    []func()
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initShortlist()
	app.initEventsProducer()
	app.initLeads()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	store, err := catalog.Load(app.cfg.Catalog.File)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.catalog = store
}

func (app *App) initShortlist() {
	const op = "App.initShortlist"
	cfg := app.cfg.Shortlist

	if cfg.Backend != config.ShortlistRedis {
		app.outbound.shortlist = shortlist.NewMemoryStore(cfg.Seed)
		return
	}

	store, err := shortlist.NewRedisStore(app.ctx, cfg.RedisURL)
	if err != nil {
		app.fallDown(op, err)
	}
	if err := store.Seed(app.ctx, cfg.Seed); err != nil {
		app.fallDown(op, err)
	}
	app.outbound.shortlist = store
	app.closers = append(app.closers, store.Close)
}

// initEventsProducer is a no-op when no broker is configured.
func (app *App) initEventsProducer() {
	const op = "App.initEventsProducer"
	cfg := app.cfg.Broker

	if !cfg.Enabled() {
		slog.Info("broker is not configured, shortlist events are off")
		return
	}

	srClient, err := sr.NewClient(sr.URLs(cfg.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	topic := cfg.Topics.ShortlistEvents
	serde, err := schema.NewSerdeShortlistEventV1(
		app.ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	var tlsCfg *tls.Config
	if cfg.TLS.Enabled() {
		tlsCfg, err = adapter.MakeTLSConfig(cfg.TLS.CA, cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	producer, err := kafka.NewShortlistEventsProducer(
		kafka.ProducerClientOpt(app.ctx, cfg.SeedBrokers, topic, tlsCfg),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.eventsProducer = producer
	app.closers = append(app.closers, producer.Close)
}

func (app *App) initLeads() {
	const op = "App.initLeads"

	sqlDB, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.leadsStorage = storage.NewLeadsRepository(sqlDB)
	app.closers = append(app.closers, sqlDB.Close)

	m, err := mailer.New(mailer.Config{
		Host: app.cfg.SMTP.Host,
		Port: app.cfg.SMTP.Port,
		User: app.cfg.SMTP.User,
		Pass: app.cfg.SMTP.Pass,
		To:   app.cfg.SMTP.To,
	})
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.notifier = m
}

func (app *App) initCoreService() {
	app.service = service.New(
		app.outbound.catalog,
		app.outbound.shortlist,
		app.outbound.eventsProducer,
		app.outbound.leadsStorage,
		app.outbound.notifier,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	userID := app.cfg.Shortlist.UserID

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.service, userID)
	httphandler.RegisterShortlist(mux, app.service, app.service, userID)
	httphandler.RegisterLeads(mux, app.service)
	httphandler.RegisterPages(mux, app.cfg.FrontendDir)

	c := cors.New(cors.Options{
		AllowedOrigins: app.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := httphandler.LogRequests(c.Handler(mux))

	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
