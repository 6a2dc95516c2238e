package prices

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/chainlens/explorer/internal/metrics"
)

const DefaultFreshness = 5 * time.Minute

// snapshot is one immutable generation of quotes. Updates replace the whole
// snapshot; readers never observe a partial refresh.
type snapshot struct {
	prices    map[string]decimal.Decimal
	fetchedAt time.Time
}

// Cache fronts the price feed with a freshness window. Reads outside the
// window trigger a refresh, but a failed refresh serves the last known-good
// snapshot instead of failing the caller. Concurrent readers are never
// blocked by an in-flight refresh.
type Cache struct {
	feed      IPriceFeed
	symbols   []string
	freshness time.Duration

	current   atomic.Pointer[snapshot]
	refreshMu sync.Mutex
}

func NewCache(feed IPriceFeed, symbols []string, freshness time.Duration) *Cache {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &Cache{feed: feed, symbols: symbols, freshness: freshness}
}

// GetPrice returns the reference-currency price for a symbol. The second
// return is false only when no quote has ever been fetched for it; a zero
// placeholder (symbol transiently absent from the feed) returns (0, true).
func (c *Cache) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	snap := c.current.Load()
	if snap == nil || time.Since(snap.fetchedAt) > c.freshness {
		if err := c.Refresh(ctx); err != nil {
			if snap == nil {
				return decimal.Decimal{}, false
			}
			// stale-but-available
			metrics.StalePriceReads.Inc()
			log.Warn().Err(err).Msg("price refresh failed, serving stale snapshot")
		} else {
			snap = c.current.Load()
		}
	}
	if snap == nil {
		// a concurrent first refresh has not landed yet
		return decimal.Decimal{}, false
	}
	price, ok := snap.prices[symbol]
	return price, ok
}

// Refresh fetches all tracked symbols in one batched feed call and swaps in a
// whole new snapshot. A refresh already in flight is not waited on; the
// caller keeps the previous snapshot.
func (c *Cache) Refresh(ctx context.Context) error {
	if !c.refreshMu.TryLock() {
		return nil
	}
	defer c.refreshMu.Unlock()

	// a concurrent refresh may have finished while we raced for the lock
	if snap := c.current.Load(); snap != nil && time.Since(snap.fetchedAt) <= c.freshness {
		return nil
	}

	fetched, err := c.feed.FetchPrices(ctx, c.symbols)
	if err != nil {
		metrics.PriceRefreshFailures.Inc()
		return err
	}

	next := &snapshot{
		prices:    make(map[string]decimal.Decimal, len(c.symbols)),
		fetchedAt: time.Now(),
	}
	for _, symbol := range c.symbols {
		if price, ok := fetched[symbol]; ok {
			next.prices[symbol] = price
		} else {
			// symbol missing from an otherwise good response: placeholder,
			// not a failed refresh
			next.prices[symbol] = decimal.Zero
		}
	}
	c.current.Store(next)
	metrics.PriceRefreshes.Inc()
	return nil
}
