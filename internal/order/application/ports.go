package application

import (
	"context"

	"github.com/acme/order-fulfillment/internal/order/domain"
)

type OrderRepository interface {
	// Save persists the order, its line items, and the given outbox event in
	// one transaction. Returns the order with its storage-assigned ID.
	Save(ctx context.Context, o domain.Order, eventType string, payload []byte, traceparent string) (domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

// StockChecker is the remote availability authority. Implementations must
// bound the call with a deadline; any transport or upstream failure is
// returned as an error distinct from a "not in stock" answer.
type StockChecker interface {
	Check(ctx context.Context, itemCodes []string) ([]domain.StockAvailability, error)
}
