// Package sync wires the fetch, map, and submit stages into one linear
// pass over the source store's pending orders.
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"shipsync/internal/countries"
	"shipsync/internal/shipstation"
	"shipsync/internal/woocommerce"
)

// Runner performs one synchronization pass. All dependencies are
// injected at construction; Run holds no state between invocations.
type Runner struct {
	source     *woocommerce.Client
	dest       *shipstation.Client
	normalizer *countries.Normalizer
	logger     *slog.Logger

	storeID int  // explicit destination store, 0 = resolve
	submit  bool // submit toggle
}

// Summary reports what a pass did. Submitted distinguishes a real
// submission from a mapping-only run with the submit toggle off.
type Summary struct {
	StoreID   int
	Fetched   int
	Submitted bool
	Count     int
}

// NewRunner creates a sync runner.
func NewRunner(source *woocommerce.Client, dest *shipstation.Client, normalizer *countries.Normalizer, storeID int, submit bool, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		source:     source,
		dest:       dest,
		normalizer: normalizer,
		logger:     logger,
		storeID:    storeID,
		submit:     submit,
	}
}

// Run executes one pass: resolve store → fetch → map → flush.
//
// Failures abort the run in order: store resolution fails before any
// fetch, a fetch failure performs zero mappings, and a submission
// failure leaves no partial batch behind (the batch call is atomic on
// our side).
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	storeID, err := r.dest.ResolveStoreID(ctx, r.storeID)
	if err != nil {
		return nil, fmt.Errorf("resolving destination store: %w", err)
	}
	r.logger.Info("destination store resolved", slog.Int("store_id", storeID))

	orders, err := r.source.FetchProcessingOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	r.logger.Info("orders fetched", slog.Int("count", len(orders)))

	submitter := shipstation.NewSubmitter(r.dest, r.submit, r.logger)
	for i := range orders {
		submitter.Add(shipstation.MapOrder(&orders[i], storeID, r.normalizer))
	}

	count, submitted, err := submitter.Flush(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		StoreID:   storeID,
		Fetched:   len(orders),
		Submitted: submitted,
		Count:     count,
	}, nil
}
