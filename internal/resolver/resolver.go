package resolver

import (
	"context"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/metrics"
	"github.com/chainlens/explorer/internal/rpc"
)

// Resolver converts a wall-clock instant into the block height whose
// timestamp is the earliest one at or after it.
type Resolver struct {
	rpc rpc.IRPCClient
}

func NewResolver(rpcClient rpc.IRPCClient) *Resolver {
	return &Resolver{rpc: rpcClient}
}

// ValidateTarget rejects timestamps outside [genesis, now]. The search itself
// never sees an out-of-range target; handing it one would silently resolve to
// block 0 or the chain head.
func ValidateTarget(target, genesisTimestamp, now uint64) error {
	if target < genesisTimestamp {
		return common.NewValidationError("date", "before chain genesis")
	}
	if target > now {
		return common.NewValidationError("date", "in the future")
	}
	return nil
}

// ResolveTimestamp binary-searches [0, chainHead] for the smallest height
// whose block timestamp is >= target. Each step costs one header fetch and
// depends on the previous one, so the walk is strictly sequential. Ties on
// duplicate timestamps resolve to the first such block.
func (r *Resolver) ResolveTimestamp(ctx context.Context, target uint64, chainHead uint64) (uint64, error) {
	metrics.ResolverSearches.Inc()

	low, high := uint64(0), chainHead
	best := chainHead
	for low <= high {
		mid := low + (high-low)/2
		ts, err := r.rpc.GetBlockTimestamp(ctx, new(big.Int).SetUint64(mid))
		if err != nil {
			return 0, err
		}
		metrics.ResolverBlockFetches.Inc()

		if ts < target {
			low = mid + 1
		} else {
			best = mid
			if mid == 0 {
				break
			}
			high = mid - 1
		}
	}

	log.Debug().Uint64("target", target).Uint64("block", best).Msg("resolved timestamp to block")
	return best, nil
}
