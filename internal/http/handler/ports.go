package handler

import (
	"context"
	"math/big"
	"net/http"
	"time"

	"scholarledger/internal/core"
	"scholarledger/internal/ledger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	SimulateDonation(ctx context.Context, scholarshipID string, fiat float64, from string) (string, error)
	SimulateScholarshipCreation(ctx context.Context, student string, fiatGoal float64) (string, error)
	SimulateProofSubmission(ctx context.Context, scholarshipID string, milestoneIndex int, student string) (string, error)
	SimulateNFTMint(ctx context.Context, req core.MintRequest) (ledger.NFTRecord, error)
	GetTransactionStatus(hash string) (ledger.Transaction, bool)
	WaitForConfirmation(ctx context.Context, hash string, timeout time.Duration) (ledger.Transaction, error)
	GetTransactionsRLP(ctx context.Context, rlphex string) ([]core.TransactionStatus, error)
	GetBalance(address string) float64
	GetNativeBalance(address string) *big.Int
	GetTransactions(address string) []ledger.Transaction
	GetNFTs() []ledger.NFTRecord
	GetNFTsForAddress(address string) []ledger.NFTRecord
	GenerateCID() string
	Stats() core.Stats
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
