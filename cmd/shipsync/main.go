// shipsync - transfers WooCommerce orders awaiting fulfillment into a
// ShipStation account. One linear pass: fetch "processing" orders, map
// them to ShipStation's order schema, submit the batch.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"shipsync/internal/config"
	"shipsync/internal/countries"
	"shipsync/internal/shipstation"
	"shipsync/internal/sync"
	"shipsync/internal/woocommerce"
)

// Distinct exit codes for the two configuration failure modes, so
// wrapping scripts can tell them apart.
const (
	exitOK             = 0
	exitFailure        = 1
	exitConfigNotFound = 2
	exitConfigParse    = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := initLogger()
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		switch {
		case errors.Is(err, config.ErrNotFound):
			fmt.Fprintln(os.Stderr, "Create a config.json (or set CONFIG_FILE) with your credentials.")
			return exitConfigNotFound
		case errors.Is(err, config.ErrMalformed):
			fmt.Fprintln(os.Stderr, "Please check the format of your configuration file.")
			return exitConfigParse
		default:
			return exitFailure
		}
	}

	logger.Info("configuration loaded",
		slog.String("store_url", cfg.WooCommerce.StoreURL),
		slog.Bool("submit_orders", cfg.SubmitOrders),
	)

	source, err := woocommerce.New(woocommerce.Config{
		StoreURL:       cfg.WooCommerce.StoreURL,
		ConsumerKey:    cfg.WooCommerce.ConsumerKey,
		ConsumerSecret: cfg.WooCommerce.ConsumerSecret,
		Debug:          cfg.WooCommerceDebug,
		Logger:         logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: creating WooCommerce client: %v\n", err)
		return exitFailure
	}

	dest, err := shipstation.New(shipstation.Config{
		APIKey:    cfg.ShipStation.APIKey,
		APISecret: cfg.ShipStation.APISecret,
		Debug:     cfg.ShipStationDebug,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: creating ShipStation client: %v\n", err)
		return exitFailure
	}

	normalizer := countries.NewNormalizer(logger)
	runner := sync.NewRunner(source, dest, normalizer, cfg.ShipStation.StoreID, cfg.SubmitOrders, logger)

	summary, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	fmt.Println(summaryMessage(summary, cfg.SubmitOrders))
	return exitOK
}

// summaryMessage describes the outcome of a pass. A run with submission
// enabled but nothing fetched reads differently from a run where
// submission was switched off.
func summaryMessage(s *sync.Summary, submitEnabled bool) string {
	switch {
	case s.Submitted:
		return fmt.Sprintf("Submitted %d orders to ShipStation (store %d).", s.Count, s.StoreID)
	case !submitEnabled:
		return fmt.Sprintf("Configured to not submit orders. %d orders processed but not submitted.", s.Count)
	default:
		return "No orders awaiting shipment; nothing to submit."
	}
}

// initLogger creates a structured logger configured for the environment.
// Production uses JSON format for GCP Cloud Logging compatibility.
// Development uses text format for readability.
func initLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	if os.Getenv("ENVIRONMENT") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
