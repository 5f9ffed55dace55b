package core

import (
	"context"
	"fmt"
	"math/big"

	"scholarledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
)

func (l *Ledger) GetTransactionStatus(hash string) (ledger.Transaction, bool) {
	return l.store.Get(hash)
}

// GetBalance returns the balance of address in fiat units.
func (l *Ledger) GetBalance(address string) float64 {
	return l.units.ToFiat(l.store.Balance(address))
}

// GetNativeBalance returns the balance of address in wei.
func (l *Ledger) GetNativeBalance(address string) *big.Int {
	return l.store.Balance(address)
}

func (l *Ledger) GetTransactions(address string) []ledger.Transaction {
	return l.store.AllFor(address)
}

func (l *Ledger) GetNFTs() []ledger.NFTRecord {
	return l.registry.All()
}

func (l *Ledger) GetNFTsForAddress(address string) []ledger.NFTRecord {
	return l.registry.ForAddress(address)
}

// GenerateCID returns a fresh content identifier, standing in for an upload.
func (l *Ledger) GenerateCID() string {
	return l.ids.CID()
}

func (l *Ledger) Stats() Stats {
	snap := l.store.Snapshot()

	stats := Stats{
		Transactions: len(snap.Transactions),
		ByStatus: map[string]int{
			string(ledger.StatusPending):   0,
			string(ledger.StatusConfirmed): 0,
			string(ledger.StatusFailed):    0,
		},
		BlockHeight: snap.BlockCounter - 1,
		NFTs:        len(l.registry.All()),
	}
	for _, tx := range snap.Transactions {
		stats.ByStatus[string(tx.Status)]++
	}
	return stats
}

// GetTransactionsRLP looks up every hash of an RLP encoded list. Unknown
// hashes are reported with Found set to false.
func (l *Ledger) GetTransactionsRLP(_ context.Context, rlphex string) ([]TransactionStatus, error) {
	hashes, err := ParseRLP(rlphex)
	if err != nil {
		return nil, fmt.Errorf("parse rlp: %w", err)
	}

	statuses := make([]TransactionStatus, len(hashes))
	for i, hash := range hashes {
		statuses[i] = TransactionStatus{Hash: hash}
		if tx, ok := l.store.Get(hash); ok {
			statuses[i].Found = true
			statuses[i].Transaction = &tx
		}
	}

	l.logs.Debugw("batch status lookup", "requested", len(hashes))
	return statuses, nil
}

// ParseRLP decodes a hex encoded RLP list of byte strings into 0x prefixed
// transaction hashes. The 0x prefix on the input is optional.
func ParseRLP(rlphex string) ([]string, error) {
	if !has0xPrefix(rlphex) {
		rlphex = "0x" + rlphex
	}
	data, err := hexutil.Decode(rlphex)
	if err != nil {
		return nil, fmt.Errorf("decode hex string: %w", err)
	}

	var txHashBytes [][]byte
	if err := rlp.DecodeBytes(data, &txHashBytes); err != nil {
		return nil, fmt.Errorf("decode rlp bytes: %w", err)
	}

	txHashes := make([]string, len(txHashBytes))
	for i, b := range txHashBytes {
		txHashes[i] = hexutil.Encode(b)
	}
	return txHashes, nil
}

// EncodeRLP is the inverse of ParseRLP.
func EncodeRLP(hashes []string) (string, error) {
	raw := make([][]byte, len(hashes))
	for i, h := range hashes {
		b, err := hexutil.Decode(h)
		if err != nil {
			return "", fmt.Errorf("decode hash %q: %w", h, err)
		}
		raw[i] = b
	}

	data, err := rlp.EncodeToBytes(raw)
	if err != nil {
		return "", fmt.Errorf("encode rlp: %w", err)
	}
	return hexutil.Encode(data), nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
