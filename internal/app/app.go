package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/project/bookshelf/config"
	"github.com/project/bookshelf/db"
	"github.com/project/bookshelf/internal/catalog"
	"github.com/project/bookshelf/internal/controller"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/outbox"
	"github.com/project/bookshelf/internal/usecase/repository"
	"github.com/project/bookshelf/internal/usecase/shelf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const (
	shutDownSeconds        = 3
	readHeaderTimeoutSecs  = 5
	outboxClientTimeoutSec = 30
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.SetupPostgres(ctx, logger, cfg.PG.URL)
	if err != nil {
		logger.Error("can not setup postgres", zap.Error(err))
		return
	}
	defer dbPool.Close()

	tracerProvider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tracerProvider)
	defer func() {
		_ = tracerProvider.Shutdown(ctx)
	}()

	var logRepo *zap.Logger
	if cfg.Log.LogDBRepo {
		logRepo = logger
	}
	repo := repository.New(logRepo, dbPool)
	outboxRepository := repository.NewOutbox(dbPool, cfg.Outbox.AttemptsRetry)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	}
	transactor := repository.NewTransactor(logTransactor, dbPool)
	runOutbox(ctx, cfg, logger, outboxRepository, transactor)

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	}
	useCases := shelf.New(logUseCase, repo, repo, repo, outboxRepository, transactor)

	catalogClient := catalog.New(logger, cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.Catalog.Timeout)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	}
	ctrl := controller.New(logController, useCases, catalogClient)

	go runMetrics(cfg, logger)

	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           withTracing(ctrl.Routes()),
		ReadHeaderTimeout: readHeaderTimeoutSecs * time.Second,
	}

	go func() {
		logger.Info("http server listening at port", zap.String("port", cfg.HTTP.Port))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server listen error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}
}

// withTracing opens a span per request so use cases and the controller can
// pick it up with trace.SpanFromContext.
func withTracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("bookshelf")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func runMetrics(cfg *config.Config, logger *zap.Logger) {
	if cfg.HTTP.MetricsPort == "" {
		return
	}

	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("metrics listening at port", zap.String("port", cfg.HTTP.MetricsPort))

	if err := http.ListenAndServe(":"+cfg.HTTP.MetricsPort, mux); err != nil {
		logger.Error("metrics listen error", zap.Error(err))
	}
}

func runOutbox(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	outboxRepository outbox.Repository,
	transactor repository.Transactor,
) {
	if !cfg.Outbox.Enabled {
		return
	}

	client := &http.Client{Timeout: outboxClientTimeoutSec * time.Second}

	globalHandler := globalOutboxHandler(client, cfg.Outbox.BookSavedURL, cfg.Outbox.BookRemovedURL)

	var logOutbox *zap.Logger
	if cfg.Log.LogOutboxWorker {
		logOutbox = logger
	}
	outboxService := outbox.New(logOutbox, outboxRepository, globalHandler, cfg, transactor)

	outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
}

const contentType = "application/json"

var errFailRequest = errors.New("Not 2xx response")

const statusOk = 2

func globalOutboxHandler(
	client *http.Client,
	savedURL,
	removedURL string,
) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindBookSaved:
			return bookOutboxHandler(client, savedURL), nil
		case repository.OutboxKindBookRemoved:
			return bookOutboxHandler(client, removedURL), nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

func bookOutboxHandler(client *http.Client, url string) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		book := entity.Book{}
		err := json.Unmarshal(data, &book)

		if err != nil {
			return fmt.Errorf("can not deserialize data in book outbox handler: %w", err)
		}

		response, err := client.Post(url, contentType, strings.NewReader(book.ID))
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return errFailRequest
		}

		return nil
	}
}
