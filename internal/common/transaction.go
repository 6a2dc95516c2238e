package common

// TransactionRecord is the canonical shape one indexed transaction is
// normalized into. Constructed once per raw record and immutable afterwards;
// it lives only for the duration of one request or stream.
type TransactionRecord struct {
	Hash           string  `json:"hash"`
	BlockNumber    uint64  `json:"block_number"`
	BlockTimestamp uint64  `json:"block_timestamp"`
	FromAddress    string  `json:"from_address"`
	ToAddress      *string `json:"to_address"` // nil for contract creation
	Value          string  `json:"value"`      // raw native units, lossless
	ValueDisplay   string  `json:"value_display"`
	GasPrice       string  `json:"gas_price"` // raw native units
	GasUsed        uint64  `json:"gas_used"`
	Fee            string  `json:"fee"` // gas price x gas used, display scaled
	Failed         bool    `json:"failed"`
}
