package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"moneyapi/docs"
	"moneyapi/internal/auth"
	"moneyapi/internal/config"
	"moneyapi/internal/database"
	"moneyapi/internal/database/migration"
	"moneyapi/internal/event"
	handlers "moneyapi/internal/http/handler"
	"moneyapi/internal/http/middleware"
	"moneyapi/internal/logging"
	"moneyapi/internal/otel"
	"moneyapi/internal/report"
	"moneyapi/internal/repository/postgres"
	"moneyapi/internal/service"
	"moneyapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Money API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Location())

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.AppConfig, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.WithError(err).Warn("tracer shutdown")
		}
	}()

	db, err := database.NewPostgres(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Up(ctx, db, logger, cfg.Database.Host); err != nil {
			return err
		}
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		return err
	}
	anexos := storage.NewAttachments(objStore, cfg.MinIO.PresignExpiry(), logger)

	categoriaRepo := postgres.NewCategoriaPostgres(db)
	pessoaRepo := postgres.NewPessoaPostgres(db)
	lancamentoRepo := postgres.NewLancamentoPostgres(db)
	lancamentoSvc := service.NewLancamentoService(lancamentoRepo, pessoaRepo, anexos, report.NewPDF())

	events := event.NewPublisher()
	events.Subscribe(event.SetLocation)
	events.Subscribe(event.LogCreated(logger))

	guard := auth.NewGuard(cfg.Security.JWTSecret)
	if !guard.Enabled() {
		logger.WithField("component", "auth").Warn("SECURITY_JWT_SECRET is empty, authorization is disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg, handlers.MetricsPath)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == handlers.MetricsPath
	})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.BasePath = "/" + strings.TrimPrefix(cfg.ContextPath, "/")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:          db,
		Categorias:  categoriaRepo,
		Lancamentos: lancamentoRepo,
		Service:     lancamentoSvc,
		Events:      events,
		Guard:       guard,
		Security:    cfg.Security,
		ContextPath: cfg.ContextPath,
		Gatherer:    reg,
		Clock: func() time.Time {
			return time.Now().In(cfg.Location())
		},
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.WithFields(log.Fields{"component": "http", "addr": addr}).Info("server listening")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.WithField("component", "http").Info("shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}
