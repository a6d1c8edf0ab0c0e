package application

import (
	"context"

	"github.com/acme/order-fulfillment/internal/inventory/domain"
)

type StockRepository interface {
	// FindByItemCodes returns records matching any of the given codes.
	// Codes without a record are simply not present in the result.
	FindByItemCodes(ctx context.Context, codes []string) ([]domain.StockRecord, error)
}

// StockLookup is the read-only availability query exposed by this service.
type StockLookup interface {
	Lookup(ctx context.Context, codes []string) ([]domain.Availability, error)
}
