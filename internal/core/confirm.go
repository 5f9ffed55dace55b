package core

import (
	"context"
	"fmt"
	"math/big"

	"scholarledger/internal/ledger"
)

// finalize returns an updater that moves a pending transaction to status,
// stamping the next block number and the gas charged for its kind.
func finalize(status ledger.Status) ledger.Updater {
	return func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
		block := blocks.NextBlockNumber()
		gas := GasFor(tx.Kind)

		tx.Status = status
		tx.BlockNumber = &block
		tx.GasUsed = &gas
		tx.GasPrice = new(big.Int).Set(GasPrice)
		return nil
	}
}

// ConfirmNow runs the confirmation of hash immediately. A second call for the
// same hash returns the already terminal transaction unchanged.
func (l *Ledger) ConfirmNow(ctx context.Context, hash string) (ledger.Transaction, error) {
	status := ledger.StatusConfirmed
	if l.drawFailure() {
		status = ledger.StatusFailed
	}

	transitioned := false
	tx, err := l.store.Mutate(ctx, hash, func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
		transitioned = true
		return finalize(status)(tx, blocks)
	})
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("confirm: %w", err)
	}
	if !transitioned {
		return tx, nil
	}

	l.metrics.Finalized(string(tx.Kind), tx.Status == ledger.StatusConfirmed, l.now().Sub(tx.Timestamp))
	l.logs.Infow("transaction finalized",
		"hash", tx.Hash,
		"type", tx.Kind,
		"status", tx.Status,
		"block", *tx.BlockNumber)

	return tx, nil
}

// Resume schedules the confirmation of every transaction still pending, as
// found after a reload. It returns how many were scheduled.
func (l *Ledger) Resume(ctx context.Context) int {
	scheduled := 0
	for _, tx := range l.store.Pending() {
		if ctx.Err() != nil {
			break
		}
		l.scheduler.Schedule(tx.Hash, l.confirmDelay())
		scheduled++
	}

	if scheduled > 0 {
		l.logs.Infow("resumed pending transactions", "count", scheduled)
	}
	return scheduled
}
