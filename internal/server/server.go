package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campuslinkhub/config"
	"campuslinkhub/handlers"
	"campuslinkhub/internal/feed"
	healthhandlers "campuslinkhub/internal/handlers"
	"campuslinkhub/internal/notify"
	"campuslinkhub/internal/session"
	"campuslinkhub/middleware"
	"campuslinkhub/models"
	redispkg "campuslinkhub/pkg/redis"
	"campuslinkhub/routes"
	"campuslinkhub/views"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
)

const serviceName = "campus-linkhub"

// package-level constructor hooks to make the server testable. Tests may
// replace these with fakes.
var (
	// newRedis connects to Redis from a raw URL. A nil client means Redis is
	// unavailable and the app runs without it.
	newRedis = func(raw string, logger *slog.Logger) *redispkg.Client {
		if raw == "" {
			return nil
		}
		c := redispkg.NewAdapter(redispkg.NewClient(raw))
		if err := c.Ping(context.Background()); err != nil {
			logger.Warn("Redis connection failed, continuing without it", slog.String("error", err.Error()))
			_ = c.Close()
			return nil
		}
		logger.Info("Redis connected successfully")
		return c
	}
)

// Deps are the collaborators New wires into the app.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    *feed.Store
	Redis    *redispkg.Client
	Registry *prometheus.Registry
}

// New builds the Fiber app with all middleware and routes.
func New(d Deps) (*fiber.App, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      d.Config.AppName,
		Immutable:    true,
		ErrorHandler: handlers.ErrorHandler(d.Logger),
	})

	prom := fiberprometheus.NewWithRegistry(d.Registry, serviceName, "linkhub", "http", nil)
	prom.RegisterAt(app, "/metrics")

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(prom.Middleware)

	health := &healthhandlers.Handlers{Feed: d.Store, Service: serviceName, Logger: d.Logger}
	if d.Redis != nil {
		health.Redis = d.Redis
	}
	// Liveness routes sit ahead of the session middleware and never see the cookie.
	routes.SetupLiveness(app, health)

	codec := session.NewCodec(d.Config.SessionSecret, d.Config.SessionTTL)
	app.Use(middleware.Sessions(codec, d.Logger))
	app.Use(middleware.StructuredLogger(d.Logger))

	h := &handlers.Handler{
		Store:      d.Store,
		Codec:      codec,
		SessionTTL: d.Config.SessionTTL,
		Views:      renderer,
		AppName:    d.Config.AppName,
		Logger:     d.Logger,
	}
	routes.Setup(app, h)

	return app, nil
}

// NewStore creates the feed, seeded when configured, with the metrics and log
// observers attached.
func NewStore(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) *feed.Store {
	var initial models.Posts
	if cfg.SeedFeed {
		initial = feed.DemoPosts()
	}
	store := feed.NewStore(initial)
	store.Subscribe(notify.NewMetrics(reg))
	store.Subscribe(notify.LogObserver(logger))
	return store
}

// Run starts the HTTP server and blocks until a termination signal is received.
func Run(cfg *config.Config) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return RunWithQuit(cfg, quit)
}

// RunWithQuit behaves like Run but uses the provided quit channel instead of
// listening to OS signals. This makes it easier to drive shutdown in tests.
func RunWithQuit(cfg *config.Config, quit <-chan os.Signal) error {
	logger := middleware.NewLogger(os.Stdout, cfg.LogLevel)
	registry := prometheus.NewRegistry()
	store := NewStore(cfg, logger, registry)

	rc := newRedis(cfg.RedisURL, logger)
	var publisher *notify.Publisher
	if rc != nil {
		publisher = notify.NewPublisher(rc, cfg.FeedChannel, 256, logger)
		store.Subscribe(publisher)
	}

	app, err := New(Deps{Config: cfg, Logger: logger, Store: store, Redis: rc, Registry: registry})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	if publisher != nil {
		publisher.Close()
	}
	if rc != nil {
		_ = rc.Close()
	}
	return nil
}
