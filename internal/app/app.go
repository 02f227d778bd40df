package app

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nhoxwy/pos-availability/config"
	http_controller "github.com/nhoxwy/pos-availability/internal/controller/http"
	"github.com/nhoxwy/pos-availability/internal/controller/http/handlers"
	"github.com/nhoxwy/pos-availability/internal/domain/catalog"
	"github.com/nhoxwy/pos-availability/internal/domain/pos"
	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	"github.com/nhoxwy/pos-availability/internal/external/kafka"
	"github.com/nhoxwy/pos-availability/internal/external/opensearch"
	posconfig_repo "github.com/nhoxwy/pos-availability/internal/repo/posconfig"
	product_repo "github.com/nhoxwy/pos-availability/internal/repo/product"
	stock_repo "github.com/nhoxwy/pos-availability/internal/repo/stock"
	"github.com/nhoxwy/pos-availability/internal/webhook"
	"github.com/nhoxwy/pos-availability/pkg/health"
	"github.com/nhoxwy/pos-availability/pkg/logger"
	"github.com/nhoxwy/pos-availability/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	stockRepo := stock_repo.NewPgStockRepo(pool)
	productRepo := product_repo.NewPgProductRepo(pool)
	configRepo := posconfig_repo.NewPgPosConfigRepo(pool)

	// Availability snapshot sink is optional; without OpenSearch the data
	// load simply skips snapshot publishing.
	var snapshotSink pos.SnapshotSink
	if len(cfg.OpensearchUrls) > 0 {
		sink, err := opensearch.NewSnapshotSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexAvailability)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewSnapshotSink: %w", err))
		}
		snapshotSink = sink
	}

	// Services
	stockService := stock.NewStockService(stockRepo)
	productService := catalog.NewProductService(productRepo)
	posDataService := pos.NewPosDataService(configRepo, productRepo, stockRepo, snapshotSink, l)

	// Stock move intake: applied in-request or published to Kafka.
	var moveProcessor webhook.Processor
	if cfg.WebhookMode == "kafka" {
		l.Info("Webhook mode: kafka - moves go through the broker")
		movePublisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaStockMovesTopic)
		moveProcessor = webhook.NewAsyncProcessor(movePublisher)
		StartWorkers(ctx, l, cfg, stockService)
	} else {
		l.Info("Webhook mode: sync - moves applied in-request")
		moveProcessor = webhook.NewSyncProcessor(stockService)
	}

	healthCheckers := []health.Checker{health.NewPostgresChecker(pool.Pool)}
	if cfg.WebhookMode == "kafka" {
		healthCheckers = append(healthCheckers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	healthRegistry := health.NewRegistry(healthCheckers...)

	// Handlers
	posDataHandler := handlers.NewPosDataHandler(posDataService)
	productHandler := handlers.NewProductHandler(productService)
	stockHandler := handlers.NewStockHandler(stockService)
	webhookHandler := handlers.NewWebhookHandler(moveProcessor)

	router := http_controller.NewRouter(posDataHandler, productHandler, stockHandler, webhookHandler, healthRegistry)
	router.SetUp(engine)

	// Apply migrations
	err = ApplyMigrations(cfg.PgURL, MIGRATION_FS)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	// Start HTTP server in a goroutine
	go func() {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	l.Info("Shutting down gracefully...")
}
