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

	"github.com/peekay08/storefront/config"
	httpDelivery "github.com/peekay08/storefront/internal/delivery/http"
	"github.com/peekay08/storefront/internal/infrastructure/cartstore"
	"github.com/peekay08/storefront/internal/infrastructure/catalog"
	"github.com/peekay08/storefront/internal/usecase"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

func main() {
	sigCtx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg.Log)

	log.Infof("Starting PEE_KAY08 Storefront v1.0.0")
	log.Infof("Environment: %s", cfg.Server.Environment)
	log.Infof("Port: %s", cfg.Server.Port)
	log.Infof("Cart Store: %s (key %q)", cfg.CartStore.Type, cfg.CartStore.Key)

	// Initialize infrastructure dependencies
	store, err := cartstore.Open(sigCtx, cartstore.Options{
		Type:     cfg.CartStore.Type,
		Path:     cfg.CartStore.Path,
		RedisURL: cfg.CartStore.RedisURL,
	})
	if err != nil {
		log.Fatalf("Failed to open cart store: %v", err)
	}

	catalogClient := catalog.NewClient(catalog.Config{
		URL:               cfg.Catalog.URL,
		Timeout:           cfg.Catalog.Timeout,
		MaxRetries:        cfg.Catalog.MaxRetries,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Infof("Catalog client debug mode enabled")
	}
	log.Infof("Catalog API: %s", cfg.Catalog.URL)

	// Initialize usecase layer
	cart := usecase.NewCartManager(store, cfg.CartStore.Key)
	storefront := usecase.NewStorefront(catalogClient, cart)
	storefront.Start(sigCtx)

	// Create HTTP handler and router
	handler := httpDelivery.NewHandler(storefront)
	router := httpDelivery.SetupRouter(cfg, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-sigCtx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shutdown http server gracefully: %v", err)
	}
	if err := catalogClient.Close(); err != nil {
		log.Warnf("Failed to close catalog client: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Errorf("Failed to close cart store: %v", err)
	}

	log.Info("Storefront stopped")
}

// configPath returns the --config flag, overridden by STOREFRONT_CONFIG_FILE
func configPath() string {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	path := flags.String("config", "", "path to config file (default: search ./config.yaml)")
	_ = flags.Parse(os.Args[1:])

	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return *path
}

func initLogger(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
