package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/acme/order-fulfillment/internal/inventory/application"
	"github.com/acme/order-fulfillment/internal/inventory/domain"
)

// CachedLookup is a read-through decorator over the stock lookup. Responses
// are cached under the sorted code set for a short TTL; a cache failure falls
// through to the underlying lookup rather than surfacing an error.
type CachedLookup struct {
	log   *slog.Logger
	inner application.StockLookup
	store Store
	ttl   time.Duration
}

func NewCachedLookup(log *slog.Logger, inner application.StockLookup, store Store, ttl time.Duration) *CachedLookup {
	return &CachedLookup{log: log, inner: inner, store: store, ttl: ttl}
}

func (c *CachedLookup) Lookup(ctx context.Context, codes []string) ([]domain.Availability, error) {
	key := cacheKey(codes)

	if cached, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn("stock cache read failed", "err", err)
	} else if cached != "" {
		var out []domain.Availability
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
		c.log.Warn("stock cache entry corrupt, ignoring", "key", key)
	}

	out, err := c.inner.Lookup(ctx, codes)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(out); err == nil {
		if err := c.store.Set(ctx, key, string(encoded), c.ttl); err != nil {
			c.log.Warn("stock cache write failed", "err", err)
		}
	}
	return out, nil
}

func cacheKey(codes []string) string {
	sorted := make([]string, len(codes))
	copy(sorted, codes)
	sort.Strings(sorted)
	return "inventory:lookup:" + strings.Join(sorted, ",")
}
