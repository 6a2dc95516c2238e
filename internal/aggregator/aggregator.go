package aggregator

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/metrics"
	"github.com/chainlens/explorer/internal/scanner"
)

const (
	DefaultPageSize        = 1000
	DefaultMaxPages        = 10
	DefaultMaxTransactions = 10000
)

// Aggregator walks the indexing API page by page over a block range. The walk
// is strictly sequential: every page fetch waits out the scanner's call delay
// so the remote per-second ceiling is respected.
type Aggregator struct {
	scanner         scanner.ITxScanner
	pageSize        int
	maxPages        int
	maxTransactions int
	nativeDecimals  int
}

// Result is a buffered aggregation outcome. Partial data is still carried
// here when the walk stopped early; Warning says why.
type Result struct {
	Transactions []common.TransactionRecord
	Pages        int
	ReachedLimit bool
	Truncated    bool
	Warning      string
}

func NewAggregator(txScanner scanner.ITxScanner) *Aggregator {
	cfg := config.Cfg.Scanner
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	maxTransactions := cfg.MaxTransactions
	if maxTransactions <= 0 {
		maxTransactions = DefaultMaxTransactions
	}
	nativeDecimals := config.Cfg.Chain.NativeDecimals
	if nativeDecimals <= 0 {
		nativeDecimals = 18
	}
	return &Aggregator{
		scanner:         txScanner,
		pageSize:        pageSize,
		maxPages:        maxPages,
		maxTransactions: maxTransactions,
		nativeDecimals:  nativeDecimals,
	}
}

// WithMaxTransactions returns a copy of the aggregator with a lower record
// ceiling for one request. Ceilings above the configured one are ignored.
func (a *Aggregator) WithMaxTransactions(n int) *Aggregator {
	if n <= 0 || n >= a.maxTransactions {
		return a
	}
	clone := *a
	clone.maxTransactions = n
	return &clone
}

// Aggregate collects the full transaction history for the range and returns
// it in one buffered result, ordered descending by block.
func (a *Aggregator) Aggregate(ctx context.Context, address common.Address, startBlock, endBlock uint64) (*Result, error) {
	return a.walk(ctx, address, startBlock, endBlock, nil)
}

// AggregateStream runs the same walk but emits tagged events into sink as
// pages arrive. The sink is closed when the stream terminates. A cancelled
// context stops remote fetches before the next page.
func (a *Aggregator) AggregateStream(ctx context.Context, address common.Address, startBlock, endBlock uint64, sink chan<- Event) {
	defer close(sink)

	initial := Event{
		Kind: EventInitial,
		Context: &StreamContext{
			Address:    address.Hex(),
			StartBlock: startBlock,
			EndBlock:   endBlock,
			PageSize:   a.pageSize,
		},
	}
	if !a.emit(ctx, sink, initial) {
		return
	}

	result, err := a.walk(ctx, address, startBlock, endBlock, func(records []common.TransactionRecord, info PageInfo) error {
		ev := Event{Kind: EventBatch, Records: records, Page: &PageInfo{Page: info.Page, Records: info.Records}}
		if !a.emit(ctx, sink, ev) {
			return context.Canceled
		}
		return nil
	})
	if err != nil {
		a.emit(ctx, sink, Event{Kind: EventError, Message: err.Error()})
		return
	}

	if result.Warning != "" {
		if !a.emit(ctx, sink, Event{Kind: EventWarning, Message: result.Warning}) {
			return
		}
	}
	a.emit(ctx, sink, Event{Kind: EventComplete, Summary: &Summary{
		Count:        len(result.Transactions),
		Pages:        result.Pages,
		ReachedLimit: result.ReachedLimit,
		Truncated:    result.Truncated,
	}})
}

// emit reports false when the sink is dead (consumer gone).
func (a *Aggregator) emit(ctx context.Context, sink chan<- Event, ev Event) bool {
	select {
	case sink <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// walk drives the page loop. onBatch, when set, sees each page after
// normalization; returning an error stops further fetches immediately.
func (a *Aggregator) walk(ctx context.Context, address common.Address, startBlock, endBlock uint64, onBatch func([]common.TransactionRecord, PageInfo) error) (*Result, error) {
	if startBlock > endBlock {
		return nil, common.NewValidationError("block range", "start block is after end block")
	}

	result := &Result{}
	for page := 1; ; page++ {
		if page > 1 {
			select {
			case <-time.After(a.scanner.CallDelay()):
			case <-ctx.Done():
				return a.settle(result, ctx.Err())
			}
		}

		raws, err := a.scanner.AccountTransactions(ctx, address.Hex(), startBlock, endBlock, page, a.pageSize)
		if err != nil {
			switch {
			case errors.Is(err, scanner.ErrNoData):
				// past the last record, everything gathered so far is final
				return result, nil
			case errors.Is(err, scanner.ErrPageWindow):
				result.Truncated = true
				result.Warning = "remote pagination window exceeded; results are truncated"
				metrics.TruncatedAggregations.Inc()
				return result, nil
			default:
				return a.settle(result, err)
			}
		}

		records := make([]common.TransactionRecord, 0, len(raws))
		for _, raw := range raws {
			record, normErr := scanner.Normalize(raw, a.nativeDecimals)
			if normErr != nil {
				log.Warn().Err(normErr).Str("hash", raw.Hash).Msg("skipping malformed record")
				continue
			}
			records = append(records, record)
		}

		if remaining := a.maxTransactions - len(result.Transactions); len(records) >= remaining {
			records = records[:remaining]
			result.ReachedLimit = true
		}

		result.Transactions = append(result.Transactions, records...)
		result.Pages++
		metrics.AggregatedTransactions.Add(float64(len(records)))

		if onBatch != nil {
			if cbErr := onBatch(records, PageInfo{Page: page, Records: len(records)}); cbErr != nil {
				return result, cbErr
			}
		}

		if result.ReachedLimit {
			metrics.TruncatedAggregations.Inc()
			return result, nil
		}
		if len(raws) < a.pageSize {
			// short page, nothing left behind it
			return result, nil
		}
		if page >= a.maxPages {
			result.ReachedLimit = true
			metrics.TruncatedAggregations.Inc()
			return result, nil
		}
	}
}

// settle applies the degrade policy: a failure after at least one accumulated
// page keeps the partial data instead of dropping it.
func (a *Aggregator) settle(result *Result, err error) (*Result, error) {
	if result.Pages == 0 {
		return nil, err
	}
	log.Warn().Err(err).Int("pages", result.Pages).Msg("aggregation degraded to partial results")
	result.Warning = "aggregation incomplete: " + err.Error()
	result.Truncated = true
	return result, nil
}
