package core

import (
	"context"
	"math/big"
	"time"

	"scholarledger/internal/ledger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store is the part of ledger.Store the engine writes through.
type Store interface {
	Append(ctx context.Context, tx ledger.Transaction) error
	Commit(ctx context.Context, tx ledger.Transaction, updater ledger.Updater) (ledger.Transaction, error)
	Mutate(ctx context.Context, hash string, updater ledger.Updater) (ledger.Transaction, error)
	NextTokenID(ctx context.Context) uint64
	AdvanceTokenCounter(ctx context.Context, next uint64) bool
	Get(hash string) (ledger.Transaction, bool)
	AllFor(address string) []ledger.Transaction
	Pending() []ledger.Transaction
	Balance(address string) *big.Int
	Snapshot() ledger.State
}

type Registry interface {
	Add(ctx context.Context, rec ledger.NFTRecord) error
	Get(tokenID uint64) (ledger.NFTRecord, bool)
	All() []ledger.NFTRecord
	ForAddress(address string) []ledger.NFTRecord
}

//counterfeiter:generate -o fake -fake-name TaskScheduler . TaskScheduler
type TaskScheduler interface {
	Schedule(hash string, delay time.Duration)
}

// Confirmer finalizes a pending transaction when its scheduled task fires.
type Confirmer interface {
	ConfirmNow(ctx context.Context, hash string) (ledger.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	Submitted(kind string)
	Finalized(kind string, confirmed bool, latency time.Duration)
	WaitTimedOut()
}
