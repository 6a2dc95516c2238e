package portfolio

import (
	"context"
	"math/big"
	"testing"
	"time"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/prices"
	"github.com/chainlens/explorer/test/mocks"
)

var (
	toknContract = gethCommon.HexToAddress("0x1111111111111111111111111111111111111111")
	idleContract = gethCommon.HexToAddress("0x2222222222222222222222222222222222222222")

	testAssets = []common.Asset{
		{Symbol: "TOKN", Name: "Test Token", Contract: toknContract, Decimals: 6},
		{Symbol: "IDLE", Name: "Idle Token", Contract: idleContract, Decimals: 18},
	}
)

func setupTestConfig(t *testing.T) {
	original := config.Cfg
	t.Cleanup(func() { config.Cfg = original })
	config.Cfg.Chain = config.ChainConfig{NativeSymbol: "ETH", NativeDecimals: 18}
}

func newCache(t *testing.T, quotes map[string]decimal.Decimal) *prices.Cache {
	mockFeed := &mocks.MockIPriceFeed{}
	mockFeed.On("FetchPrices", mock.Anything, mock.Anything).Return(quotes, nil)
	return prices.NewCache(mockFeed, []string{"ETH", "TOKN", "IDLE"}, time.Minute)
}

func newMockRPC(nativeWei string, balances map[gethCommon.Address]*big.Int) *mocks.MockIRPCClient {
	mockRPC := &mocks.MockIRPCClient{}
	native, _ := new(big.Int).SetString(nativeWei, 10)
	mockRPC.On("GetNativeBalance", mock.Anything, mock.Anything, mock.Anything).Return(native, nil)
	mockRPC.On("GetTokenBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, contract gethCommon.Address, owner gethCommon.Address, blockNumber *big.Int) *big.Int {
			return balances[contract]
		}, nil)
	return mockRPC
}

func testAddress(t *testing.T) common.Address {
	address, err := common.ParseAddress("0xaa7a9ca87d3694b5755f213b5d04094b8d0f0a6f")
	require.NoError(t, err)
	return address
}

func TestValueAtFullyPriced(t *testing.T) {
	setupTestConfig(t)
	mockRPC := newMockRPC("2000000000000000000", map[gethCommon.Address]*big.Int{
		toknContract: big.NewInt(5_000_000), // 5.0 at 6 decimals
		idleContract: big.NewInt(0),
	})
	cache := newCache(t, map[string]decimal.Decimal{
		"ETH":  decimal.NewFromInt(2000),
		"TOKN": decimal.NewFromInt(3),
		"IDLE": decimal.NewFromInt(10),
	})

	valuator := NewValuator(mockRPC, cache, testAssets)
	snapshot, err := valuator.ValueAt(context.Background(), testAddress(t), 9000123)
	require.NoError(t, err)

	assert.Equal(t, uint64(9000123), snapshot.BlockNumber)
	assert.Equal(t, "2.000000", snapshot.NativeBalance)
	require.NotNil(t, snapshot.NativeValue)
	assert.Equal(t, "4000.00", *snapshot.NativeValue)

	require.Len(t, snapshot.Assets, 1, "zero-balance asset must be excluded")
	tokn := snapshot.Assets[0]
	assert.Equal(t, "TOKN", tokn.Symbol)
	assert.Equal(t, "5.000000", tokn.Balance)
	require.NotNil(t, tokn.Value)
	assert.Equal(t, "15.00", *tokn.Value)

	require.NotNil(t, snapshot.TotalValue)
	assert.Equal(t, "4015.00", *snapshot.TotalValue)
}

func TestValueAtMissingPriceLeavesValueAbsent(t *testing.T) {
	setupTestConfig(t)
	mockRPC := newMockRPC("2000000000000000000", map[gethCommon.Address]*big.Int{
		toknContract: big.NewInt(5_000_000),
		idleContract: big.NewInt(0),
	})
	// TOKN absent from the feed response: placeholder zero, not a price
	cache := newCache(t, map[string]decimal.Decimal{"ETH": decimal.NewFromInt(2000)})

	valuator := NewValuator(mockRPC, cache, testAssets)
	snapshot, err := valuator.ValueAt(context.Background(), testAddress(t), 9000123)
	require.NoError(t, err)

	require.Len(t, snapshot.Assets, 1)
	assert.Equal(t, "5.000000", snapshot.Assets[0].Balance)
	assert.Nil(t, snapshot.Assets[0].Value, "unpriced balance must be absent, not zero")
	assert.Nil(t, snapshot.TotalValue)
}

func TestValueAtFailedAssetBranchDegrades(t *testing.T) {
	setupTestConfig(t)
	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetNativeBalance", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	mockRPC.On("GetTokenBalance", mock.Anything, toknContract, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockRPC.On("GetTokenBalance", mock.Anything, idleContract, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	cache := newCache(t, map[string]decimal.Decimal{
		"ETH":  decimal.NewFromInt(2000),
		"IDLE": decimal.NewFromInt(10),
	})

	valuator := NewValuator(mockRPC, cache, testAssets)
	snapshot, err := valuator.ValueAt(context.Background(), testAddress(t), 9000123)
	require.NoError(t, err, "one failed asset branch must not fail the valuation")

	require.Len(t, snapshot.Assets, 1)
	assert.Equal(t, "IDLE", snapshot.Assets[0].Symbol)
	assert.Nil(t, snapshot.TotalValue, "total is unknowable with a failed branch")
}

func TestValueAtNativeBalanceFailure(t *testing.T) {
	setupTestConfig(t)
	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetNativeBalance", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	mockRPC.On("GetTokenBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(0), nil)
	cache := newCache(t, map[string]decimal.Decimal{"ETH": decimal.NewFromInt(2000)})

	valuator := NewValuator(mockRPC, cache, testAssets)
	_, err := valuator.ValueAt(context.Background(), testAddress(t), 9000123)
	assert.Error(t, err)
}
