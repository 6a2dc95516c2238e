package scanner

// RawTransaction is one record as delivered by the indexing API. All numeric
// fields arrive string-encoded and unscaled.
type RawTransaction struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
	IsError         string `json:"isError"`
	ContractAddress string `json:"contractAddress"`
}
