package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	config "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/common"
)

const DefaultTimeoutMs = 10000

// IPriceFeed returns current reference-currency prices for a set of symbols
// in one batched call.
type IPriceFeed interface {
	FetchPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

type FeedClient struct {
	httpClient *http.Client
	baseURL    string
	currency   string
}

func NewFeedClient() *FeedClient {
	cfg := config.Cfg.Prices
	timeoutMs := cfg.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = DefaultTimeoutMs
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}
	return &FeedClient{
		httpClient: &http.Client{Timeout: time.Duration(timeoutMs) * time.Millisecond},
		baseURL:    cfg.URL,
		currency:   currency,
	}
}

// FetchPrices queries the feed for all symbols at once. Symbols the feed does
// not know are simply absent from the returned map.
func (f *FeedClient) FetchPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	params := url.Values{}
	params.Set("symbols", strings.Join(symbols, ","))
	params.Set("currency", f.currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build price feed request: %v", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, classifyFeedError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyFeedError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &common.RemoteError{Op: "prices", Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	// decoded through json.Number to keep quotes lossless
	var raw map[string]json.Number
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &common.RemoteError{Op: "prices", Message: fmt.Sprintf("malformed response: %v", err)}
	}

	out := make(map[string]decimal.Decimal, len(raw))
	for symbol, quote := range raw {
		price, err := decimal.NewFromString(quote.String())
		if err != nil {
			return nil, &common.RemoteError{Op: "prices", Message: fmt.Sprintf("malformed quote for %s: %v", symbol, err)}
		}
		out[strings.ToUpper(symbol)] = price
	}
	return out, nil
}

func classifyFeedError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &common.TransportError{Op: "prices", Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &common.TransportError{Op: "prices", Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &common.TransportError{Op: "prices", Err: err}
	}
	return &common.RemoteError{Op: "prices", Message: err.Error()}
}
