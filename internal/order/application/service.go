package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/acme/order-fulfillment/internal/order/domain"
	"github.com/acme/order-fulfillment/pkg/tracing"
)

var (
	// ErrStockUnavailable is a business rejection: one or more requested
	// items are not in stock. Never retried.
	ErrStockUnavailable = errors.New("stock unavailable")

	// ErrInventoryUnavailable is an infrastructure failure: the inventory
	// service could not be reached or did not answer in time. Retryable by
	// the caller; the workflow itself never retries.
	ErrInventoryUnavailable = errors.New("inventory service unavailable")
)

const eventOrderPlaced = "OrderPlaced"

type Service struct {
	log       *slog.Logger
	repo      OrderRepository
	stock     StockChecker
	validator Validator
}

func NewService(log *slog.Logger, repo OrderRepository, stock StockChecker, validator Validator) *Service {
	return &Service{log: log, repo: repo, stock: stock, validator: validator}
}

// PlaceOrder runs the placement workflow: assign an order number, check every
// distinct item code against inventory, and persist the order only when the
// check passes. Nothing is written on rejection or on inventory failure.
//
// Stock is checked but never reserved or decremented here, so two concurrent
// placements for the same code can both be accepted even if their combined
// demand exceeds the available quantity.
func (s *Service) PlaceOrder(ctx context.Context, items []domain.LineItem) (domain.Order, error) {
	order := domain.NewOrder(uuid.NewString(), items)
	codes := order.DistinctItemCodes()

	responses, err := s.stock.Check(ctx, codes)
	if err != nil {
		s.log.Error("stock check failed", "order_number", order.OrderNumber, "err", err)
		return domain.Order{}, fmt.Errorf("%w: %v", ErrInventoryUnavailable, err)
	}

	if !s.validator.Decide(codes, responses) {
		s.log.Info("order rejected", "order_number", order.OrderNumber, "codes", codes)
		return domain.Order{}, ErrStockUnavailable
	}

	payload, err := json.Marshal(domain.OrderPlaced{
		OrderNumber: order.OrderNumber,
		LineItems:   order.LineItems,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("marshal order placed event: %w", err)
	}

	saved, err := s.repo.Save(ctx, order, eventOrderPlaced, payload, tracing.Traceparent(ctx))
	if err != nil {
		return domain.Order{}, fmt.Errorf("persist order: %w", err)
	}

	s.log.Info("order placed", "order_number", saved.OrderNumber, "items", len(saved.LineItems))
	return saved, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}
