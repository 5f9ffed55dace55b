package ethereum

// Transaction is the node-style view of a finalized ledger transaction, shaped
// like the fields clients read from eth_getTransactionReceipt.
type Transaction struct {
	TransactionHash   string  `json:"transactionHash"`
	TransactionStatus uint64  `json:"status"` // 1 success, 0 failure
	BlockHash         string  `json:"blockHash"`
	BlockNumber       uint64  `json:"blockNumber"`
	From              string  `json:"from"`
	To                *string `json:"to"`
	ContractAddress   *string `json:"contractAddress"`
	GasUsed           uint64  `json:"gasUsed"`
	EffectiveGasPrice string  `json:"effectiveGasPrice"`
	LogsCount         int     `json:"logsCount"`
	Input             string  `json:"input"` // hex encoded RLP of the metadata
	Value             string  `json:"value"` // wei
}
