package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matoboco/pay-by-square/internal/config"
	"github.com/matoboco/pay-by-square/internal/logger"
	"github.com/matoboco/pay-by-square/internal/payment"
	"github.com/matoboco/pay-by-square/internal/router"
	"github.com/matoboco/pay-by-square/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.New(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	frame, err := cfg.LoadFrame()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load frame image")
	}
	if frame != nil {
		log.Info().Str("path", cfg.QR.FramePath).Msg("loaded frame image")
	}

	srv := server.NewServer(cfg, &log, loggerService)

	paymentService := payment.NewService(frame)
	paymentHandler := payment.NewPaymentHandler(paymentService, &cfg.QR)

	handlers := &router.Handlers{
		Payment: paymentHandler,
	}

	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Give outstanding requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
