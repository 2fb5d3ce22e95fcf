package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpdelivery "github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/delivery/http"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/domain/repository"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/config"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/logger"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/metrics"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/pixclient"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/postgres"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/tracing"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/usecase/generateqr"
	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/usecase/lookup"
)

const (
	qrCodeSize            = 256
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.ServiceName, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := tracing.Init(cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Error("tracing init failed", "error", err)
		cancel()
		return
	}
	defer shutdownTracing()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var charges repository.ChargeRepository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("database init failed", "error", err)
			cancel()
			return
		}
		defer pool.Close()
		charges = postgres.NewChargeRepo(pool)
	} else {
		log.Info("DATABASE_URL not set, charge records disabled")
	}

	pixClient := pixclient.NewClient(
		pixclient.NewHTTPClient(cfg.PIXTimeout),
		cfg.PIXAPIURL,
		log,
		pixclient.WithMetrics(metrics.NewClientMetrics(reg, cfg.ServiceName)),
	)

	generateQRUC := generateqr.NewUseCase(pixClient, qrgenerator.NewGenerator(qrCodeSize), charges, log)
	lookupUC := lookup.NewUseCase(charges)

	handler := httpdelivery.NewHandler(generateQRUC, lookupUC, log)
	router := httpdelivery.NewRouter(handler, metrics.NewHTTPMetrics(reg, cfg.ServiceName), reg)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "addr", cfg.HTTPAddr, "pix_api_url", cfg.PIXAPIURL)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Error("http serve failed", "error", serveErr)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
