// Package server initializes and runs the wishlist application server. It
// configures logging, connects to the document store, wires the core
// services, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soplanita/giftgenie/internal/logging"
	"github.com/soplanita/giftgenie/internal/server/config"
	"github.com/soplanita/giftgenie/internal/server/httpapi"
	"github.com/soplanita/giftgenie/internal/server/repositories/repomanager"
	"github.com/soplanita/giftgenie/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client *mongo.Client
	http   *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	repos := repomanager.NewMongoManager(client.Database(cfg.MongoDatabase))

	membership := services.NewMembership(repos)
	sharing := services.NewSharing(repos, logger)
	wishlists := services.NewWishlists(repos, membership, sharing, logger)
	claims := services.NewClaims(repos, logger)
	resolver := services.NewJWTResolver([]byte(cfg.SecretKey))

	h := httpapi.NewServer(logger, resolver, wishlists, claims)

	return &App{config: cfg, logger: logger, client: client, http: h}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	metricsSrv := &http.Server{
		Addr:    app.config.MetricsAddr,
		Handler: promhttp.Handler(),
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.http.Listen(app.config.EndpointAddr); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()
	app.shutdown(metricsSrv)
	wg.Wait()
}

func (app *App) shutdown(metricsSrv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app.logger.Info(ctx, "shutting down")

	if err := app.http.Shutdown(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if err := metricsSrv.Shutdown(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if err := app.client.Disconnect(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
