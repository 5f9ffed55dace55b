package ethereum

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"scholarledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

var ErrNoReceipt error = errors.New("transaction has no receipt yet")

// event topics emitted by successful transactions, by kind
var eventTopics = map[ledger.Kind]common.Hash{
	ledger.KindScholarshipCreation: crypto.Keccak256Hash([]byte("ScholarshipCreated(address,uint256)")),
	ledger.KindProofSubmission:     crypto.Keccak256Hash([]byte("ProofSubmitted(address,uint256)")),
	ledger.KindNFTMint:             crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
}

// BlockHash derives a stable hash for a simulated block number.
func BlockHash(number uint64) common.Hash {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], number)
	return crypto.Keccak256Hash([]byte("scholarledger-block"), buf[:])
}

// NewReceipt builds the receipt a node would return for tx. Pending
// transactions have none.
func NewReceipt(tx ledger.Transaction) (*types.Receipt, error) {
	if !tx.Status.IsTerminal() || tx.BlockNumber == nil {
		return nil, fmt.Errorf("receipt %s: %w", tx.Hash, ErrNoReceipt)
	}

	var gasUsed uint64
	if tx.GasUsed != nil {
		gasUsed = *tx.GasUsed
	}
	gasPrice := new(big.Int)
	if tx.GasPrice != nil {
		gasPrice.Set(tx.GasPrice)
	}

	number := *tx.BlockNumber
	receipt := &types.Receipt{
		Type:              types.LegacyTxType,
		Status:            types.ReceiptStatusFailed,
		CumulativeGasUsed: gasUsed,
		GasUsed:           gasUsed,
		EffectiveGasPrice: gasPrice,
		TxHash:            common.HexToHash(tx.Hash),
		BlockHash:         BlockHash(number),
		BlockNumber:       new(big.Int).SetUint64(number),
		Logs:              []*types.Log{},
	}
	if tx.Status != ledger.StatusConfirmed {
		return receipt, nil
	}
	receipt.Status = types.ReceiptStatusSuccessful

	emitter := common.Address{}
	if tx.To != nil {
		emitter = common.HexToAddress(*tx.To)
	}
	if tx.Kind == ledger.KindScholarshipCreation {
		receipt.ContractAddress = crypto.CreateAddress(common.HexToAddress(tx.From), number)
		emitter = receipt.ContractAddress
	}

	if topic, ok := eventTopics[tx.Kind]; ok {
		receipt.Logs = append(receipt.Logs, &types.Log{
			Address:     emitter,
			Topics:      []common.Hash{topic},
			BlockNumber: number,
			TxHash:      receipt.TxHash,
			BlockHash:   receipt.BlockHash,
		})
	}

	return receipt, nil
}

// NewView projects tx and its receipt into the node-style view.
func NewView(tx ledger.Transaction) (*Transaction, error) {
	receipt, err := NewReceipt(tx)
	if err != nil {
		return nil, err
	}

	input, err := encodeMetadata(tx.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode input of %s: %w", tx.Hash, err)
	}

	var contractAddress *string
	if receipt.ContractAddress != (common.Address{}) {
		addr := receipt.ContractAddress.Hex()
		contractAddress = &addr
	}

	value := "0"
	if tx.Value != nil {
		value = tx.Value.String()
	}

	return &Transaction{
		TransactionHash:   tx.Hash,
		TransactionStatus: receipt.Status,
		BlockHash:         receipt.BlockHash.Hex(),
		BlockNumber:       receipt.BlockNumber.Uint64(),
		From:              tx.From,
		To:                tx.To,
		ContractAddress:   contractAddress,
		GasUsed:           receipt.GasUsed,
		EffectiveGasPrice: receipt.EffectiveGasPrice.String(),
		LogsCount:         len(receipt.Logs),
		Input:             hexutil.Encode(input),
		Value:             value,
	}, nil
}

// DecodeInput reverses the input encoding of NewView.
func DecodeInput(input string) (map[string]string, error) {
	data, err := hexutil.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}

	var pairs [][2]string
	if err := rlp.DecodeBytes(data, &pairs); err != nil {
		return nil, fmt.Errorf("decode rlp input: %w", err)
	}

	metadata := make(map[string]string, len(pairs))
	for _, p := range pairs {
		metadata[p[0]] = p[1]
	}
	return metadata, nil
}

// encodeMetadata RLP encodes metadata as key sorted pairs.
func encodeMetadata(metadata map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, len(keys))
	for i, k := range keys {
		pairs[i] = [2]string{k, metadata[k]}
	}
	return rlp.EncodeToBytes(pairs)
}
