package aggregator

import (
	"github.com/chainlens/explorer/internal/common"
)

type EventKind string

const (
	EventInitial  EventKind = "initial"
	EventBatch    EventKind = "batch"
	EventWarning  EventKind = "warning"
	EventComplete EventKind = "complete"
	EventError    EventKind = "error"
)

// StreamContext describes the aggregation a stream was opened for.
type StreamContext struct {
	Address    string `json:"address"`
	StartBlock uint64 `json:"start_block"`
	EndBlock   uint64 `json:"end_block"`
	PageSize   int    `json:"page_size"`
}

type PageInfo struct {
	Page    int `json:"page"`
	Records int `json:"records"`
}

type Summary struct {
	Count        int  `json:"count"`
	Pages        int  `json:"pages"`
	ReachedLimit bool `json:"reached_limit"`
	Truncated    bool `json:"truncated"`
}

// Event is one tagged frame of an incremental aggregation stream. A stream is
// a sequence of Initial, zero or more Batch/Warning frames, and exactly one
// terminating Complete or Error frame.
type Event struct {
	Kind    EventKind                  `json:"kind"`
	Context *StreamContext             `json:"context,omitempty"`
	Records []common.TransactionRecord `json:"records,omitempty"`
	Page    *PageInfo                  `json:"page,omitempty"`
	Message string                     `json:"message,omitempty"`
	Summary *Summary                   `json:"summary,omitempty"`
}
