package portfolio

import (
	"context"
	"math/big"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/metrics"
	"github.com/chainlens/explorer/internal/prices"
	"github.com/chainlens/explorer/internal/rpc"
)

// AssetBalance is one tracked asset held at the query block. Value is absent
// (not zero) when no usable price was available.
type AssetBalance struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Contract   string  `json:"contract"`
	Balance    string  `json:"balance"`
	BalanceRaw string  `json:"balance_raw"`
	Value      *string `json:"value,omitempty"`
}

// Snapshot is a point-in-time portfolio valuation. Constructed once per
// request and never mutated.
type Snapshot struct {
	Address          string         `json:"address"`
	BlockNumber      uint64         `json:"block_number"`
	NativeSymbol     string         `json:"native_symbol"`
	NativeBalance    string         `json:"native_balance"`
	NativeBalanceRaw string         `json:"native_balance_raw"`
	NativeValue      *string        `json:"native_value,omitempty"`
	Assets           []AssetBalance `json:"assets"`
	TotalValue       *string        `json:"total_value,omitempty"`
}

type Valuator struct {
	rpc            rpc.IRPCClient
	prices         *prices.Cache
	assets         []common.Asset
	nativeSymbol   string
	nativeDecimals int
}

func NewValuator(rpcClient rpc.IRPCClient, priceCache *prices.Cache, assets []common.Asset) *Valuator {
	nativeSymbol := config.Cfg.Chain.NativeSymbol
	if nativeSymbol == "" {
		nativeSymbol = "ETH"
	}
	nativeDecimals := config.Cfg.Chain.NativeDecimals
	if nativeDecimals <= 0 {
		nativeDecimals = 18
	}
	return &Valuator{
		rpc:            rpcClient,
		prices:         priceCache,
		assets:         assets,
		nativeSymbol:   nativeSymbol,
		nativeDecimals: nativeDecimals,
	}
}

// ValueAt values the address at one historical height. The native balance and
// every tracked asset balance are independent point-in-time reads against an
// immutable state, so they run concurrently; a failed branch degrades that
// branch only. Zero-balance assets are excluded from the snapshot.
func (v *Valuator) ValueAt(ctx context.Context, address common.Address, blockNumber uint64) (*Snapshot, error) {
	block := new(big.Int).SetUint64(blockNumber)

	var wg sync.WaitGroup
	results := make([]rpc.BalanceResult, len(v.assets)+1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		balance, err := v.rpc.GetNativeBalance(ctx, address.Geth(), block)
		results[0] = rpc.BalanceResult{Balance: balance, Error: err}
	}()

	for i := range v.assets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			asset := &v.assets[i]
			balance, err := v.rpc.GetTokenBalance(ctx, asset.Contract, address.Geth(), block)
			results[i+1] = rpc.BalanceResult{Asset: asset, Balance: balance, Error: err}
		}(i)
	}

	// warm the price cache alongside the balance reads, best effort
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := v.prices.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("price refresh failed during valuation")
		}
	}()

	wg.Wait()

	native := results[0]
	if native.Error != nil {
		return nil, native.Error
	}

	total := decimal.Zero
	totalKnown := true

	snapshot := &Snapshot{
		Address:          address.Hex(),
		BlockNumber:      blockNumber,
		NativeSymbol:     v.nativeSymbol,
		NativeBalance:    common.FormatBigUnits(native.Balance, v.nativeDecimals, common.AmountDisplayDecimals),
		NativeBalanceRaw: native.Balance.String(),
		Assets:           []AssetBalance{},
	}

	if price, ok := v.usablePrice(ctx, v.nativeSymbol); ok {
		value := common.FiatValue(native.Balance, v.nativeDecimals, price)
		snapshot.NativeValue = &value
		total = total.Add(mustDecimal(value))
	} else {
		totalKnown = false
	}

	for _, settled := range results[1:] {
		asset := settled.Asset
		if settled.Error != nil {
			log.Warn().Err(settled.Error).Str("symbol", asset.Symbol).Msg("asset balance read failed, excluding from snapshot")
			totalKnown = false
			continue
		}
		if settled.Balance.Sign() == 0 {
			continue
		}

		entry := AssetBalance{
			Symbol:     asset.Symbol,
			Name:       asset.Name,
			Contract:   asset.Contract.Hex(),
			Balance:    common.FormatBigUnits(settled.Balance, asset.Decimals, common.AmountDisplayDecimals),
			BalanceRaw: settled.Balance.String(),
		}
		if price, ok := v.usablePrice(ctx, asset.Symbol); ok {
			value := common.FiatValue(settled.Balance, asset.Decimals, price)
			entry.Value = &value
			total = total.Add(mustDecimal(value))
		} else {
			totalKnown = false
		}
		snapshot.Assets = append(snapshot.Assets, entry)
	}

	if totalKnown {
		totalStr := total.StringFixed(common.FiatDisplayDecimals)
		snapshot.TotalValue = &totalStr
	}

	metrics.PortfolioValuations.Inc()
	return snapshot, nil
}

// usablePrice filters out the never-fetched case and the zero placeholder a
// transiently missing feed symbol leaves behind.
func (v *Valuator) usablePrice(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	price, ok := v.prices.GetPrice(ctx, symbol)
	if !ok || price.IsZero() {
		return decimal.Decimal{}, false
	}
	return price, true
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Error().Err(err).Str("value", s).Msg("unparseable decimal value")
		return decimal.Zero
	}
	return d
}
