package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acme/order-fulfillment/internal/inventory/domain"
)

type Service struct {
	log  *slog.Logger
	repo StockRepository
}

func NewService(log *slog.Logger, repo StockRepository) *Service {
	return &Service{log: log, repo: repo}
}

// Lookup reports availability for each queried code that has a stock record.
// Duplicate codes in the request are collapsed; codes with no record are
// omitted from the result rather than treated as an error. The query never
// mutates stock.
func (s *Service) Lookup(ctx context.Context, codes []string) ([]domain.Availability, error) {
	distinct := dedupe(codes)
	if len(distinct) == 0 {
		return nil, nil
	}

	records, err := s.repo.FindByItemCodes(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("find stock records: %w", err)
	}

	out := make([]domain.Availability, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.Availability{
			ItemCode: rec.ItemCode,
			InStock:  rec.InStock(),
		})
	}
	s.log.Debug("stock lookup", "requested", len(distinct), "matched", len(out))
	return out, nil
}

func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
