package handlers

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/aggregator"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/portfolio"
	"github.com/chainlens/explorer/internal/prices"
	"github.com/chainlens/explorer/internal/resolver"
	"github.com/chainlens/explorer/internal/scanner"
	"github.com/chainlens/explorer/test/mocks"
)

const testAddress = "0xaa7a9ca87d3694b5755f213b5d04094b8d0f0a6f"

func setupTestConfig(t *testing.T) {
	original := config.Cfg
	t.Cleanup(func() { config.Cfg = original })
	config.Cfg.Chain = config.ChainConfig{
		GenesisTimestamp: 1438269973,
		NativeSymbol:     "ETH",
		NativeDecimals:   18,
	}
	config.Cfg.Scanner = config.ScannerConfig{PageSize: 1000, MaxPages: 10, MaxTransactions: 10000}
}

func newTestRouter(t *testing.T, mockRPC *mocks.MockIRPCClient, mockScanner *mocks.MockITxScanner) *gin.Engine {
	gin.SetMode(gin.TestMode)

	mockFeed := &mocks.MockIPriceFeed{}
	mockFeed.On("FetchPrices", mock.Anything, mock.Anything).Return(nil, assert.AnError).Maybe()
	cache := prices.NewCache(mockFeed, []string{"ETH"}, time.Minute)

	handler := NewHandler(
		mockRPC,
		aggregator.NewAggregator(mockScanner),
		resolver.NewResolver(mockRPC),
		portfolio.NewValuator(mockRPC, cache, nil),
	)

	r := gin.New()
	r.GET("/v1/accounts/:address/transactions", handler.GetTransactions)
	r.GET("/v1/accounts/:address/transactions/stream", handler.StreamTransactions)
	r.GET("/v1/accounts/:address/balance", handler.GetBalance)
	r.GET("/v1/blocks/resolve", handler.ResolveBlock)
	return r
}

func rawTx(block, timestamp, hash string) scanner.RawTransaction {
	return scanner.RawTransaction{
		BlockNumber: block,
		TimeStamp:   timestamp,
		Hash:        hash,
		From:        testAddress,
		To:          "0xde0b295669a9fd93d5f28d9ec85e40f4cb697bae",
		Value:       "1500000000000000000",
		GasPrice:    "20000000000",
		GasUsed:     "21000",
		IsError:     "0",
	}
}

func TestGetTransactionsEndToEnd(t *testing.T) {
	setupTestConfig(t)

	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(big.NewInt(9000500), nil)
	mockRPC.On("GetChainID").Return(big.NewInt(1))

	mockScanner := &mocks.MockITxScanner{}
	mockScanner.On("CallDelay").Return(time.Millisecond).Maybe()
	mockScanner.On("AccountTransactions", mock.Anything, mock.Anything, uint64(9000000), uint64(9000500), 1, 1000).
		Return([]scanner.RawTransaction{
			rawTx("9000480", "1575382000", "0x3"),
			rawTx("9000250", "1575381000", "0x2"),
			rawTx("9000007", "1575380000", "0x1"),
		}, nil)

	router := newTestRouter(t, mockRPC, mockScanner)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/transactions?start_block=9000000", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Meta struct {
			ChainId      uint64 `json:"chain_id"`
			StartBlock   uint64 `json:"start_block"`
			EndBlock     uint64 `json:"end_block"`
			Count        int    `json:"count"`
			ReachedLimit bool   `json:"reached_limit"`
		} `json:"meta"`
		Data []common.TransactionRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, uint64(1), response.Meta.ChainId)
	assert.Equal(t, uint64(9000000), response.Meta.StartBlock)
	assert.Equal(t, uint64(9000500), response.Meta.EndBlock)
	assert.Equal(t, len(response.Data), response.Meta.Count)
	assert.False(t, response.Meta.ReachedLimit)

	require.Len(t, response.Data, 3)
	for i := 1; i < len(response.Data); i++ {
		assert.GreaterOrEqual(t, response.Data[i-1].BlockNumber, response.Data[i].BlockNumber)
	}
	assert.Equal(t, "1.500000", response.Data[0].ValueDisplay)
	assert.Equal(t, "0.000420", response.Data[0].Fee)
}

func TestGetTransactionsHonorsLimit(t *testing.T) {
	setupTestConfig(t)

	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(big.NewInt(9000500), nil)
	mockRPC.On("GetChainID").Return(big.NewInt(1))

	mockScanner := &mocks.MockITxScanner{}
	mockScanner.On("CallDelay").Return(time.Millisecond).Maybe()
	mockScanner.On("AccountTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, 1, mock.Anything).
		Return([]scanner.RawTransaction{
			rawTx("9000480", "1575382000", "0x3"),
			rawTx("9000250", "1575381000", "0x2"),
			rawTx("9000007", "1575380000", "0x1"),
		}, nil)

	router := newTestRouter(t, mockRPC, mockScanner)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/transactions?start_block=9000000&limit=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Meta struct {
			Count        int  `json:"count"`
			ReachedLimit bool `json:"reached_limit"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Meta.Count)
	assert.True(t, response.Meta.ReachedLimit)
}

func TestGetTransactionsRejectsBadAddress(t *testing.T) {
	setupTestConfig(t)
	router := newTestRouter(t, &mocks.MockIRPCClient{}, &mocks.MockITxScanner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/nonsense/transactions", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTransactionsRejectsFutureDate(t *testing.T) {
	setupTestConfig(t)
	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(big.NewInt(9000500), nil)
	router := newTestRouter(t, mockRPC, &mocks.MockITxScanner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/transactions?start_date=2100-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTransactionsRejectsPreGenesisDate(t *testing.T) {
	setupTestConfig(t)
	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(big.NewInt(9000500), nil)
	router := newTestRouter(t, mockRPC, &mocks.MockITxScanner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/transactions?start_date=2014-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "before chain genesis")
}

func TestGetTransactionsRejectsPreEpochDate(t *testing.T) {
	setupTestConfig(t)
	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(big.NewInt(9000500), nil)
	router := newTestRouter(t, mockRPC, &mocks.MockITxScanner{})

	// negative unix timestamps must not wrap into the future
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/transactions?start_date=1950-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "before chain genesis")
	assert.NotContains(t, w.Body.String(), "future")
}

func TestGetTransactionsRejectsConflictingRangeParams(t *testing.T) {
	setupTestConfig(t)
	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(big.NewInt(9000500), nil)
	router := newTestRouter(t, mockRPC, &mocks.MockITxScanner{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/transactions?start_block=1&start_date=2019-12-03", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// closeNotifyRecorder adds the CloseNotifier surface gin's Stream helper
// expects, which httptest.ResponseRecorder lacks.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestStreamTransactionsEmitsSSEFrames(t *testing.T) {
	setupTestConfig(t)

	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(big.NewInt(9000500), nil)

	mockScanner := &mocks.MockITxScanner{}
	mockScanner.On("CallDelay").Return(time.Millisecond).Maybe()
	mockScanner.On("AccountTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, 1, mock.Anything).
		Return([]scanner.RawTransaction{rawTx("9000480", "1575382000", "0x1")}, nil)

	router := newTestRouter(t, mockRPC, mockScanner)
	w := newCloseNotifyRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/transactions/stream?start_block=9000000", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	body := w.Body.String()
	assert.Contains(t, body, "event:initial")
	assert.Contains(t, body, "event:batch")
	assert.Contains(t, body, "event:complete")
}

func TestGetBalanceAtBlock(t *testing.T) {
	setupTestConfig(t)

	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetChainID").Return(big.NewInt(1))
	mockRPC.On("GetNativeBalance", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(2e18), nil)

	router := newTestRouter(t, mockRPC, &mocks.MockITxScanner{})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/accounts/"+testAddress+"/balance?block=9000123", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data portfolio.Snapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint64(9000123), response.Data.BlockNumber)
	assert.Equal(t, "2.000000", response.Data.NativeBalance)
	assert.Nil(t, response.Data.NativeValue, "price feed down: value absent, not zero")
}

func TestResolveBlockEndpoint(t *testing.T) {
	setupTestConfig(t)

	timestamps := map[uint64]uint64{}
	head := uint64(100)
	for h := uint64(0); h <= head; h++ {
		timestamps[h] = 1438269973 + h*15
	}

	mockRPC := &mocks.MockIRPCClient{}
	mockRPC.On("GetChainID").Return(big.NewInt(1))
	mockRPC.On("GetLatestBlockNumber", mock.Anything).Return(new(big.Int).SetUint64(head), nil)
	mockRPC.On("GetBlockTimestamp", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, blockNumber *big.Int) uint64 {
			return timestamps[blockNumber.Uint64()]
		}, nil)

	router := newTestRouter(t, mockRPC, &mocks.MockITxScanner{})
	w := httptest.NewRecorder()
	target := time.Unix(1438269973+50*15, 0).UTC().Format(time.RFC3339)
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/blocks/resolve?date="+target, nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		BlockNumber uint64 `json:"block_number"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint64(50), response.BlockNumber)
}
