package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"belrates/internal/adapters/httpclient"
	"belrates/internal/adapters/nbrb"
	"belrates/internal/api"
	"belrates/internal/config"
	"belrates/internal/domain"
	httpserver "belrates/internal/platform/http"
	"belrates/internal/rate"
	"belrates/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	SetupLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateService := NewRateService(appCfg)
	rateValidator := rate.NewValidator(domain.RequestableCurrencies())

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateValidator, rateService)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// NewRateService builds the lookup pipeline against the configured provider.
func NewRateService(appCfg *config.AppConfig) *rate.Service {
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	return rate.NewService(
		nbrb.NewRequestBuilder(appCfg.NBRBAPI.BaseURL),
		httpclient.NewClient(baseHTTPClient),
		nbrb.NewDecoder(),
	)
}

// SetupLogger applies level and format; an unknown level falls back to info.
func SetupLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
