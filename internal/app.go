package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "github.com/Dearie-de-cybek/PropTech/internal/adapters/logger"
	"github.com/Dearie-de-cybek/PropTech/internal/adapters/memory"
	postgres_adapter "github.com/Dearie-de-cybek/PropTech/internal/adapters/postgres"
	rabbitmq_adapter "github.com/Dearie-de-cybek/PropTech/internal/adapters/rabbitmq"
	"github.com/Dearie-de-cybek/PropTech/internal/adapters/recommendation_api_client"
	"github.com/Dearie-de-cybek/PropTech/internal/adapters/web"
	"github.com/Dearie-de-cybek/PropTech/internal/configs"
	"github.com/Dearie-de-cybek/PropTech/internal/constants"
	"github.com/Dearie-de-cybek/PropTech/internal/contracts"
	"github.com/Dearie-de-cybek/PropTech/internal/core/port"
	"github.com/Dearie-de-cybek/PropTech/internal/core/usecase"
	fluentlogger "github.com/Dearie-de-cybek/PropTech/pkg/fluent_logger"
	"github.com/Dearie-de-cybek/PropTech/pkg/postgres"
	"github.com/Dearie-de-cybek/PropTech/pkg/rabbitmq/rabbitmq_common"
	"github.com/Dearie-de-cybek/PropTech/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 10 * time.Second

// App holds every long-lived component of the process.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	server       *web.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	connManager          *rabbitmq_common.ConnectionManager
	viewEventsProducer   *rabbitmq_producer.Publisher
	recommendationClient *recommendation_api_client.Client
}

// NewApp is the composition root: it loads the configuration and wires
// adapters, use cases and the HTTP server together.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- loggers ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- catalog ---
	catalog, err := application.initCatalog()
	if err != nil {
		application.closeResources()
		return nil, err
	}

	// --- view events ---
	var viewEvents port.ViewEventsPort
	if appConfig.RabbitMQ.URL != "" {
		publisher, err := application.initViewEvents(baseLogger)
		if err != nil {
			application.closeResources()
			return nil, err
		}
		viewEvents = publisher
	} else {
		appLogger.Info("RABBITMQ_URL is not set, property view events are disabled.", nil)
	}

	// --- recommendation service ---
	var recommendationService port.RecommendationServicePort
	if appConfig.Recommendation.URL != "" {
		client, err := recommendation_api_client.NewClient(recommendation_api_client.Config{
			BaseURL:  appConfig.Recommendation.URL,
			Timeout:  appConfig.Recommendation.Timeout,
			CacheTTL: appConfig.Recommendation.CacheTTL,
			Logger:   baseLogger,
		})
		if err != nil {
			appLogger.Error("Failed to create recommendation api client", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to create recommendation api client: %w", err)
		}
		application.recommendationClient = client
		recommendationService = client
		appLogger.Info("Recommendation API client initialized.", port.Fields{"base_url": appConfig.Recommendation.URL})
	} else {
		appLogger.Info("RECOMMENDATION_API_URL is not set, recommendation endpoints answer 503.", nil)
	}

	validator, err := contracts.NewValidator()
	if err != nil {
		appLogger.Error("Failed to compile payload schemas", err, nil)
		application.closeResources()
		return nil, fmt.Errorf("failed to compile payload schemas: %w", err)
	}

	// --- use cases ---
	listingUseCase := usecase.NewGetListingPageUseCase(catalog)
	detailUseCase := usecase.NewGetPropertyDetailUseCase(catalog, viewEvents)
	filterSectionUseCase := usecase.NewGetFilterSectionUseCase()
	catalogUseCase := usecase.NewPropertyCatalogUseCase(catalog)
	recommendationsUseCase := usecase.NewRecommendationsUseCase(recommendationService, validator)
	appLogger.Info("All use cases initialized.", nil)

	// --- http ---
	pageHandler := web.NewPageHandler(listingUseCase, detailUseCase, filterSectionUseCase)
	apiHandler := web.NewAPIHandler(catalogUseCase, recommendationsUseCase)
	application.server = web.NewServer(web.ServerConfig{
		Port:           appConfig.Rest.PORT,
		PublicDir:      appConfig.Rest.PublicDir,
		AllowedOrigins: appConfig.API.AllowedOrigins,
		RateLimit:      appConfig.API.RateLimit,
	}, pageHandler, apiHandler, baseLogger)
	appLogger.Info("HTTP server configured.", nil)

	return application, nil
}

// initCatalog returns the PostgreSQL catalog when DATABASE_URL is set and
// the in-memory sample catalog otherwise.
func (a *App) initCatalog() (port.PropertyCatalogPort, error) {
	if a.config.Database.URL == "" {
		a.logger.Info("DATABASE_URL is not set, serving the built-in sample catalog.", nil)
		return memory.NewSampleCatalogAdapter(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: a.config.Database.URL, ConnectTimeout: 10 * time.Second})
	if err != nil {
		a.logger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	a.logger.Info("Successfully connected to PostgreSQL pool!", nil)

	catalog, err := postgres_adapter.NewPostgresCatalogAdapter(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres catalog adapter: %w", err)
	}
	if err := catalog.Migrate(ctx); err != nil {
		a.logger.Error("Failed to migrate catalog tables", err, nil)
		return nil, err
	}
	if err := catalog.Seed(ctx, memory.SampleProperties(), memory.SampleSponsoredAds()); err != nil {
		a.logger.Error("Failed to seed catalog tables", err, nil)
		return nil, err
	}
	a.logger.Info("Postgres catalog initialized.", nil)
	return catalog, nil
}

func (a *App) initViewEvents(baseLogger port.LoggerPort) (port.ViewEventsPort, error) {
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connManagerBridge)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             constants.WebExchange,
		ExchangeType:             constants.WebExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		a.logger.Error("Failed to create event producer", err, nil)
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.viewEventsProducer = producer

	adapter, err := rabbitmq_adapter.NewViewEventsPublisherAdapter(producer, constants.RoutingKeyPropertyViewed)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ view events producer initialized.", nil)
	return adapter, nil
}

// Run starts the HTTP server and blocks until a signal or a server error.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Stop(ctx); err != nil {
			a.logger.Error("Error during HTTP server shutdown", err, nil)
		}

		a.closeResources()
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Rest.PORT})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("HTTP server failed, shutting down", err, nil)
		return err
	}
}

// closeResources releases everything but the HTTP server. The fluent client
// goes last so the shutdown itself is still logged.
func (a *App) closeResources() {
	if a.viewEventsProducer != nil {
		if err := a.viewEventsProducer.Close(); err != nil {
			a.logger.Error("Error closing event producer", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.recommendationClient != nil {
		a.recommendationClient.Close()
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
