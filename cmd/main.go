package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"coincompare/internal/config"
	"coincompare/internal/middleware"
	"coincompare/internal/service"
	"coincompare/internal/ui/handler"
	"coincompare/pkg/integrations/rates/coinbaserates"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	fetcher := coinbaserates.NewRateFetcher()
	fetcher.BaseURL = cfg.RatesBaseURL

	rateSvc, err := service.NewRateService(
		service.WithRatesLogger(logger),
		service.WithRatesFetcher(fetcher),
		service.WithRatesTTL(cfg.RatesTTL),
	)
	if err != nil {
		log.Fatal("Failed to create rate service:", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging(logger))

	h, err := handler.New(
		handler.WithEngine(r),
		handler.WithRates(rateSvc),
		handler.WithLogger(logger),
	)
	if err != nil {
		log.Fatal("Failed to create handler:", err)
	}
	if err := h.Setup(); err != nil {
		log.Fatal("Failed to setup routes:", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down...")
		os.Exit(0)
	}()

	logger.Info("starting coincompare", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
