package core

import (
	"context"
	"fmt"
	"time"

	"scholarledger/internal/ledger"
)

// WaitForConfirmation polls the store until hash reaches a terminal state or
// timeout elapses. Giving up never cancels the scheduled confirmation.
func (l *Ledger) WaitForConfirmation(ctx context.Context, hash string, timeout time.Duration) (ledger.Transaction, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	expired := false
	for {
		tx, ok := l.store.Get(hash)
		if !ok {
			return ledger.Transaction{}, fmt.Errorf("wait %s: %w", hash, ledger.ErrNotFound)
		}

		switch tx.Status {
		case ledger.StatusConfirmed:
			return tx, nil
		case ledger.StatusFailed:
			return tx, fmt.Errorf("wait %s: %w", hash, ErrTransactionFailed)
		}

		if expired {
			l.metrics.WaitTimedOut()
			l.logs.Infow("gave up waiting for confirmation", "hash", hash, "timeout", timeout)
			return tx, fmt.Errorf("wait %s after %s: %w", hash, timeout, ErrTimeout)
		}

		select {
		case <-ctx.Done():
			return ledger.Transaction{}, fmt.Errorf("wait %s: %w", hash, ctx.Err())
		case <-deadline.C:
			// one last look before giving up
			expired = true
		case <-ticker.C:
		}
	}
}
