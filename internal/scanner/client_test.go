package scanner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/chainlens/explorer/configs"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	original := config.Cfg
	t.Cleanup(func() { config.Cfg = original })
	config.Cfg.Scanner = config.ScannerConfig{
		URL:         server.URL,
		APIKey:      "test-key",
		TimeoutMs:   2000,
		CallDelayMs: 1,
	}
	return NewClient()
}

func TestAccountTransactionsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "account", r.URL.Query().Get("module"))
		assert.Equal(t, "txlist", r.URL.Query().Get("action"))
		assert.Equal(t, "desc", r.URL.Query().Get("sort"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"status":"1","message":"OK","result":[
			{"blockNumber":"9000400","timeStamp":"1575381000","hash":"0x1","from":"0xa","to":"0xb","value":"1","gasPrice":"1","gasUsed":"21000","isError":"0","contractAddress":""},
			{"blockNumber":"9000200","timeStamp":"1575380000","hash":"0x2","from":"0xa","to":"0xb","value":"2","gasPrice":"1","gasUsed":"21000","isError":"0","contractAddress":""}
		]}`))
	})

	txs, err := client.AccountTransactions(context.Background(), "0xabc", 9000000, 9000500, 1, 1000)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "0x1", txs[0].Hash)
	assert.Equal(t, "9000400", txs[0].BlockNumber)
}

func TestAccountTransactionsNoData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"No transactions found","result":[]}`))
	})

	_, err := client.AccountTransactions(context.Background(), "0xabc", 0, 100, 1, 1000)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAccountTransactionsPageWindowExceeded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Result window is too large, PageNo x Offset size must be less than or equal to 10000"}`))
	})

	_, err := client.AccountTransactions(context.Background(), "0xabc", 0, 100, 11, 1000)
	assert.ErrorIs(t, err, ErrPageWindow)
}

func TestAccountTransactionsRemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`))
	})

	_, err := client.AccountTransactions(context.Background(), "0xabc", 0, 100, 1, 1000)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.NotErrorIs(t, err, ErrPageWindow)
}

func TestAccountTransactionsHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.AccountTransactions(context.Background(), "0xabc", 0, 100, 1, 1000)
	assert.Error(t, err)
}
