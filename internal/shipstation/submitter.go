package shipstation

import (
	"context"
	"fmt"
	"log/slog"
)

// Submitter buffers mapped orders and submits them in a single batch
// call when flushed. When the submit toggle is off, Flush makes zero
// HTTP calls and just reports how many orders it holds, so a dry run
// exercises the full mapping pipeline without touching ShipStation.
type Submitter struct {
	client *Client
	submit bool
	logger *slog.Logger
	orders []Order
}

// NewSubmitter creates a submission buffer. submit controls whether
// Flush actually calls the API.
func NewSubmitter(client *Client, submit bool, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{
		client: client,
		submit: submit,
		logger: logger,
	}
}

// Add buffers one mapped order for submission.
func (s *Submitter) Add(order Order) {
	s.orders = append(s.orders, order)
}

// Len reports the number of buffered orders.
func (s *Submitter) Len() int {
	return len(s.orders)
}

// Flush submits all buffered orders in one call if the submit toggle is
// enabled. Returns the order count and whether a submission happened.
// There is no partial submission: a failed batch call aborts the run
// with the error, leaving nothing half-created.
func (s *Submitter) Flush(ctx context.Context) (int, bool, error) {
	count := len(s.orders)

	if !s.submit {
		return count, false, nil
	}
	if count == 0 {
		return 0, false, nil
	}

	s.logger.Info("submitting orders to ShipStation", slog.Int("count", count))

	result, err := s.client.CreateOrders(ctx, s.orders)
	if err != nil {
		return 0, false, fmt.Errorf("submitting orders: %w", err)
	}
	if result.HasErrors {
		for _, r := range result.Results {
			if !r.Success {
				s.logger.Error("order rejected by ShipStation",
					slog.String("order_number", r.OrderNumber),
					slog.String("error", r.ErrorMessage))
			}
		}
		return count, true, fmt.Errorf("ShipStation rejected one or more orders")
	}

	return count, true, nil
}
