package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jimothydawson/phoebe-fund/internal/catalog"
	"github.com/jimothydawson/phoebe-fund/internal/client"
	"github.com/jimothydawson/phoebe-fund/internal/config"
	"github.com/jimothydawson/phoebe-fund/internal/server"
	"github.com/jimothydawson/phoebe-fund/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(&cfg.Log)

	stripeClient := client.NewStripeClient(cfg.Stripe.SecretKey)
	store := client.NewAirtableClient(&cfg.Airtable)

	checkoutService := service.NewCheckoutService(stripeClient, catalog.Default(), cfg.Currency, cfg.SiteURL, logger)
	webhookService := service.NewWebhookService(store, cfg.Stripe.WebhookSecret, logger)
	subscriberService := service.NewSubscriberService(store, logger)
	orderService := service.NewOrderService(store, logger)
	fundraisingService := service.NewFundraisingService(cfg.Fundraising.PageURL, logger)

	srv := server.NewServer(
		checkoutService,
		webhookService,
		subscriberService,
		orderService,
		fundraisingService,
		logger,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info().Str("addr", serverAddr).Msg("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info().Msg("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server shutdown error")
	}
}

func newLogger(cfg *config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
