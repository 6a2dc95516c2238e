package scanner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/common"
	"github.com/chainlens/explorer/internal/metrics"
)

const (
	DefaultTimeoutMs   = 10000
	DefaultCallDelayMs = 220
	DefaultPageSize    = 1000
)

// ErrNoData is the expected empty-result signal: the API's way of saying the
// address has no further transactions, not a failure.
var ErrNoData = errors.New("scanner: no transactions found")

// ErrPageWindow marks the remote pagination window being exceeded. Results
// gathered before it are valid but truncated.
var ErrPageWindow = errors.New("scanner: result window exceeded")

// ITxScanner lists transactions by address and block range, one page at a
// time. Implementations are stateless between calls; the inter-call delay
// discipline belongs to the caller driving the pagination.
type ITxScanner interface {
	AccountTransactions(ctx context.Context, address string, startBlock, endBlock uint64, page, pageSize int) ([]RawTransaction, error)
	CallDelay() time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	callDelay  time.Duration
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func NewClient() *Client {
	cfg := config.Cfg.Scanner
	timeoutMs := cfg.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = DefaultTimeoutMs
	}
	delayMs := cfg.CallDelayMs
	if delayMs <= 0 {
		delayMs = DefaultCallDelayMs
	}
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(timeoutMs) * time.Millisecond},
		baseURL:    cfg.URL,
		apiKey:     cfg.APIKey,
		callDelay:  time.Duration(delayMs) * time.Millisecond,
	}
}

func (c *Client) CallDelay() time.Duration {
	return c.callDelay
}

// AccountTransactions fetches one page of transactions in descending block
// order. Returns ErrNoData past the last record and ErrPageWindow when the
// remote pagination window is exceeded.
func (c *Client) AccountTransactions(ctx context.Context, address string, startBlock, endBlock uint64, page, pageSize int) ([]RawTransaction, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "txlist")
	params.Set("address", address)
	params.Set("startblock", strconv.FormatUint(startBlock, 10))
	params.Set("endblock", strconv.FormatUint(endBlock, 10))
	params.Set("page", strconv.Itoa(page))
	params.Set("offset", strconv.Itoa(pageSize))
	params.Set("sort", "desc")
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build scanner request: %v", err)
	}

	metrics.ScannerRequests.Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ScannerErrors.Inc()
		return nil, classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ScannerErrors.Inc()
		return nil, classify(err)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.ScannerErrors.Inc()
		return nil, &common.RemoteError{Op: "txlist", Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		metrics.ScannerErrors.Inc()
		return nil, &common.RemoteError{Op: "txlist", Message: fmt.Sprintf("malformed response: %v", err)}
	}

	if env.Status != "1" {
		return nil, decodeFailure(env)
	}

	var txs []RawTransaction
	if err := json.Unmarshal(env.Result, &txs); err != nil {
		metrics.ScannerErrors.Inc()
		return nil, &common.RemoteError{Op: "txlist", Message: fmt.Sprintf("malformed result array: %v", err)}
	}
	log.Debug().Int("page", page).Int("records", len(txs)).Msg("fetched scanner page")
	return txs, nil
}

// decodeFailure maps a status=0 envelope onto the sentinels the aggregator
// keys its stop conditions on.
func decodeFailure(env envelope) error {
	detail := env.Message
	var resultStr string
	if json.Unmarshal(env.Result, &resultStr) == nil && resultStr != "" {
		detail = detail + ": " + resultStr
	}
	lowered := strings.ToLower(detail)
	switch {
	case strings.Contains(lowered, "no transactions found"):
		return ErrNoData
	case strings.Contains(lowered, "window is too large"), strings.Contains(lowered, "window too large"):
		return ErrPageWindow
	default:
		metrics.ScannerErrors.Inc()
		return &common.RemoteError{Op: "txlist", Message: detail}
	}
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &common.TransportError{Op: "txlist", Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &common.TransportError{Op: "txlist", Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &common.TransportError{Op: "txlist", Err: err}
	}
	return &common.RemoteError{Op: "txlist", Message: err.Error()}
}
