package common

import (
	gethCommon "github.com/ethereum/go-ethereum/common"

	config "github.com/chainlens/explorer/configs"
)

// Asset is a static catalog entry for a tracked token contract. The catalog
// is assembled once at startup and read-only afterwards.
type Asset struct {
	Symbol   string
	Name     string
	Contract gethCommon.Address
	Decimals int
}

// DefaultAssets is the built-in catalog used when no assets are configured.
func DefaultAssets() []Asset {
	return []Asset{
		{Symbol: "WETH", Name: "Wrapped Ether", Contract: gethCommon.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), Decimals: 18},
		{Symbol: "USDC", Name: "USD Coin", Contract: gethCommon.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Decimals: 6},
		{Symbol: "USDT", Name: "Tether USD", Contract: gethCommon.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), Decimals: 6},
		{Symbol: "DAI", Name: "Dai Stablecoin", Contract: gethCommon.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), Decimals: 18},
		{Symbol: "WBTC", Name: "Wrapped BTC", Contract: gethCommon.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), Decimals: 8},
	}
}

// AssetsFromConfig builds the catalog from configuration, falling back to the
// built-in catalog when the config carries no assets.
func AssetsFromConfig(cfgs []config.AssetConfig) ([]Asset, error) {
	if len(cfgs) == 0 {
		return DefaultAssets(), nil
	}
	assets := make([]Asset, 0, len(cfgs))
	for _, c := range cfgs {
		if !gethCommon.IsHexAddress(c.Contract) {
			return nil, NewValidationError("assets", "contract address for "+c.Symbol+" is not a valid hex address")
		}
		assets = append(assets, Asset{
			Symbol:   c.Symbol,
			Name:     c.Name,
			Contract: gethCommon.HexToAddress(c.Contract),
			Decimals: c.Decimals,
		})
	}
	return assets, nil
}
