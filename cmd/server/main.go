package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-categories/internal/catalog"
	"product-categories/internal/category"
	"product-categories/internal/config"
	"product-categories/internal/dataset"
	"product-categories/internal/db"
	"product-categories/internal/logger"
	"product-categories/internal/metrics"
	"product-categories/internal/middleware"
	"product-categories/internal/product"
	"product-categories/internal/user"
	"product-categories/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const shutdownTimeout = 10 * time.Second

// Replaced in tests.
var (
	loadDatasetFunc = loadDataset
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	locale, err := language.Parse(cfg.SortLocale)
	if err != nil {
		return fmt.Errorf("invalid SORT_LOCALE %q: %w", cfg.SortLocale, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := loadDatasetFunc(ctx, cfg)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := catalog.NewService(ds,
		catalog.WithLocale(locale),
		catalog.WithMetrics(metrics.NewPipeline(reg)),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Cleanup(ctx)

	handler := newServer(cfg, svc, reg, limiter)

	logger.L().Info("catalog server starting",
		zap.String("port", cfg.AppPort),
		zap.String("dataset_source", cfg.DatasetSource),
		zap.String("sort_locale", locale.String()),
	)

	return startServerFunc(ctx, ":"+cfg.AppPort, handler)
}

// loadDataset builds the dataset from the configured source.
func loadDataset(ctx context.Context, cfg *config.Config) (*dataset.Dataset, error) {
	switch cfg.DatasetSource {
	case config.SourceFile:
		return dataset.LoadFile(cfg.DatasetPath)
	case config.SourcePostgres:
		database, err := db.NewDatabase(cfg)
		if err != nil {
			return nil, err
		}
		// The dataset is immutable once loaded, so the pool is not needed afterwards.
		defer database.Close()

		return dataset.Load(ctx,
			user.NewRepository(database),
			category.NewRepository(database),
			product.NewRepository(database),
		)
	default:
		return dataset.Embedded()
	}
}

func newServer(cfg *config.Config, svc catalog.Service, gatherer prometheus.Gatherer, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(limiter.Middleware)

	setupRouter(r, web.NewHandler(svc), promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

func setupRouter(r chi.Router, catalogHandler *web.Handler, metricsHandler http.Handler) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	catalogHandler.RegisterRoutes(r)
}

// startServer serves until ctx is cancelled, then drains in-flight requests.
func startServer(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.L().Info("server stopped")
	return nil
}
