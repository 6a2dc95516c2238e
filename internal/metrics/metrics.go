package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chain tracking
var (
	ChainHead = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chain_head",
		Help: "The latest block number observed on the chain",
	})
)

// Resolver metrics
var (
	ResolverSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resolver_searches_total",
		Help: "The total number of block-for-timestamp searches",
	})

	ResolverBlockFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resolver_block_fetches_total",
		Help: "The total number of block header fetches issued by searches",
	})
)

// Scanner metrics
var (
	ScannerRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanner_requests_total",
		Help: "The total number of requests sent to the indexing API",
	})

	ScannerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanner_errors_total",
		Help: "The total number of failed indexing API requests",
	})
)

// Aggregator metrics
var (
	AggregatedTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aggregator_transactions_total",
		Help: "The total number of transactions returned by aggregations",
	})

	TruncatedAggregations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aggregator_truncated_total",
		Help: "The number of aggregations that hit a page or record ceiling",
	})
)

// Price cache metrics
var (
	PriceRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_refreshes_total",
		Help: "The total number of successful price feed refreshes",
	})

	PriceRefreshFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_refresh_failures_total",
		Help: "The total number of failed price feed refreshes",
	})

	StalePriceReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_stale_reads_total",
		Help: "The number of reads served from a stale snapshot",
	})
)

// Portfolio metrics
var (
	PortfolioValuations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_valuations_total",
		Help: "The total number of portfolio valuations served",
	})
)
