package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/labelpress/pkg/app"
	"github.com/ghuser/labelpress/pkg/cache"
	"github.com/ghuser/labelpress/pkg/config"
	"github.com/ghuser/labelpress/pkg/database"
	"github.com/ghuser/labelpress/pkg/events"
	"github.com/ghuser/labelpress/pkg/logger"
	"github.com/ghuser/labelpress/pkg/telemetry"
	pkgworkflows "github.com/ghuser/labelpress/pkg/workflows"
	labelsvcs "github.com/ghuser/labelpress/services/label/application/services"
	labelworkflows "github.com/ghuser/labelpress/services/label/application/workflows"
	labelEvents "github.com/ghuser/labelpress/services/label/domain/events"
	productEvents "github.com/ghuser/labelpress/services/product/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if cfg.TemporalEnabled {
		temporalClient, err := pkgworkflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient

		stopTemporal, err := startTemporalWorker(appConfig)
		if err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer stopTemporal()
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// startTemporalWorker registers the label batch workflow on its task queue
// and runs the Temporal worker in the background.
func startTemporalWorker(a *app.Application) (stop func(), err error) {
	labelContainer := labelsvcs.New(a)

	w := worker.New(a.TemporalClient.Client, labelworkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(labelworkflows.RenderBatchWorkflow)
	w.RegisterActivity(&labelworkflows.Activities{Label: labelContainer.Label})

	if err := w.Start(); err != nil {
		return nil, err
	}
	a.Logger.Info("temporal worker started", "task_queue", labelworkflows.TaskQueue)
	return w.Stop, nil
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{productEvents.TopicProductCreated, labelEvents.TopicBatchRendered}

	if err := subscribe(ctx, a, productEvents.TopicProductCreated, handleProductCreated(a)); err != nil {
		return err
	}
	if err := subscribe(ctx, a, labelEvents.TopicBatchRendered, handleBatchRendered(a)); err != nil {
		return err
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// subscribe registers one handler and drains its error channel in the
// background so it never blocks.
func subscribe(ctx context.Context, a *app.Application, topic string, handler func(context.Context, *message.Message) error) error {
	errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
	if err != nil {
		return err
	}
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		}
	}()
	return nil
}

// handleProductCreated returns a handler for product.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so label batch assembly and product reads
// can skip Postgres.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt productEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := productCache.Set(ctx, &cache.CachedProduct{
			ID:        evt.ProductID,
			OrgID:     evt.OrgID,
			Barcode:   evt.Barcode,
			Name:      evt.Name,
			Price:     evt.Price,
			CreatedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"product_id", evt.ProductID, "org_id", evt.OrgID)
		}

		return nil
	}
}

// handleBatchRendered returns a handler for label.batch_rendered events.
// Today this is an audit log plus a TTL refresh on the cached document so
// a batch stays downloadable for a full window after its last render.
func handleBatchRendered(a *app.Application) func(context.Context, *message.Message) error {
	docCache := cache.NewDocumentCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt labelEvents.BatchRenderedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "label batch rendered",
			"batch_id", evt.BatchID,
			"label_count", evt.LabelCount,
			"size", evt.Size,
			"occurred_at", evt.OccurredAt.Format(time.RFC3339),
		)

		if doc, err := docCache.Get(ctx, evt.BatchID); err == nil {
			_ = docCache.Set(ctx, evt.BatchID, doc)
		}
		return nil
	}
}
