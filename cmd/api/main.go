package main

import (
	"context"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/riskops/riskboard/internal/api"
	"github.com/riskops/riskboard/internal/api/validator"
	v1 "github.com/riskops/riskboard/internal/api/v1"
	"github.com/riskops/riskboard/internal/charts"
	"github.com/riskops/riskboard/internal/config"
	"github.com/riskops/riskboard/internal/dataset"
	"github.com/riskops/riskboard/internal/errors"
	"github.com/riskops/riskboard/internal/export"
	"github.com/riskops/riskboard/internal/metrics"
	"github.com/riskops/riskboard/internal/service"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,
			govalidator.New,
			validator.NewXValidator,
			newFiber,
			newStore,
			newRenderer,
			export.NewExporter,
			service.NewDashboardService,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiber() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "riskboard",
		ErrorHandler: errors.ErrorHandler(),
	})
}

// newStore loads the dataset exactly once at startup. A missing or
// malformed file fails the fx graph and the process never starts serving.
func newStore(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (*dataset.Store, error) {
	delimiter, err := cfg.Dataset.DelimiterRune()
	if err != nil {
		return nil, err
	}

	store, err := dataset.Load(dataset.LoaderConfig{
		Path:           cfg.Dataset.Path,
		Delimiter:      delimiter,
		SpendThreshold: cfg.Dataset.SpendThreshold,
	})
	if err != nil {
		logger.Error("Failed to load risk dataset", zap.String("path", cfg.Dataset.Path), zap.Error(err))
		return nil, err
	}

	m.DatasetRowsLoaded.Set(float64(store.Len()))

	logger.Info("Risk dataset loaded",
		zap.String("path", cfg.Dataset.Path),
		zap.Int("rows", store.Len()),
		zap.Strings("buckets", store.Buckets()),
		zap.Bool("derivedTxnCount", store.DerivedTxnCount()))

	return store, nil
}

func newRenderer(cfg *config.Config) *charts.Renderer {
	return charts.NewRenderer(charts.Config{
		Width:  cfg.Charts.Width,
		Height: cfg.Charts.Height,
	})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config,
	m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting dashboard server", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
