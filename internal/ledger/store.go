package ledger

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"
)

// BlockSequence hands out block numbers inside a Store critical section.
type BlockSequence interface {
	NextBlockNumber() uint64
}

// Updater finalizes a pending transaction. It runs while the store lock is
// held and must not call back into the Store. Returning an error discards
// every change it made, including consumed block numbers.
type Updater func(tx *Transaction, blocks BlockSequence) error

// Store is the single owner of the ledger aggregate. Every operation is
// serialized through one mutex and every mutation is persisted before the
// lock is released.
type Store struct {
	logs    *zap.SugaredLogger
	persist *persister

	mu    sync.Mutex
	state State
	index map[string]int
}

// NewStore creates a Store over backend and loads the persisted aggregate.
func NewStore(ctx context.Context, logger *zap.SugaredLogger, backend Backend, opts ...Option) *Store {
	s := &Store{
		logs:    logger,
		persist: newPersister(logger, backend, opts),
	}
	s.Load(ctx)
	return s
}

// Load replaces the in-memory aggregate with the persisted one. A missing or
// corrupt record yields a fresh empty aggregate.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := NewState()
	var decoded State
	if s.persist.load(ctx, StateKey, &decoded) {
		decoded.normalize()
		state = decoded
	}

	s.state = state
	s.reindex()

	s.logs.Infow("ledger state loaded",
		"transactions", len(s.state.Transactions),
		"next_block", s.state.BlockCounter,
		"next_token", s.state.NFTCounter)
}

// Persist writes the full aggregate to the backend.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist.save(ctx, StateKey, s.state)
}

// Append inserts a new pending transaction.
func (s *Store) Append(ctx context.Context, tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validatePending(tx); err != nil {
		return fmt.Errorf("append: %w", err)
	}
	if err := s.appendLocked(tx); err != nil {
		return err
	}

	s.commitLocked(ctx)
	return nil
}

// Commit appends a pending transaction and finalizes it with updater in a
// single critical section, so no reader ever observes it pending.
func (s *Store) Commit(ctx context.Context, tx Transaction, updater Updater) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[tx.Hash]; ok {
		return Transaction{}, fmt.Errorf("commit %s: %w", tx.Hash, ErrDuplicateHash)
	}
	if err := validatePending(tx); err != nil {
		return Transaction{}, fmt.Errorf("commit: %w", err)
	}

	blockCounter := s.state.BlockCounter
	work := tx.clone()
	if err := updater(&work, &blockSeq{state: &s.state}); err != nil {
		s.state.BlockCounter = blockCounter
		return Transaction{}, fmt.Errorf("commit %s: %w", tx.Hash, err)
	}
	work.Hash = tx.Hash

	if err := s.appendLocked(work); err != nil {
		s.state.BlockCounter = blockCounter
		return Transaction{}, err
	}
	s.applySideEffects(StatusPending, work)

	s.commitLocked(ctx)
	return work.clone(), nil
}

// Mutate applies updater to the pending transaction identified by hash. A
// transaction already in a terminal state is returned unchanged.
func (s *Store) Mutate(ctx context.Context, hash string, updater Updater) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[hash]
	if !ok {
		return Transaction{}, fmt.Errorf("mutate %s: %w", hash, ErrNotFound)
	}

	current := s.state.Transactions[idx]
	if current.Status.IsTerminal() {
		return current.clone(), nil
	}

	blockCounter := s.state.BlockCounter
	work := current.clone()
	if err := updater(&work, &blockSeq{state: &s.state}); err != nil {
		s.state.BlockCounter = blockCounter
		return Transaction{}, fmt.Errorf("mutate %s: %w", hash, err)
	}
	work.Hash = current.Hash

	s.state.Transactions[idx] = work
	s.applySideEffects(current.Status, work)

	s.commitLocked(ctx)
	return work.clone(), nil
}

// NextBlockNumber returns the next block number and advances the counter.
func (s *Store) NextBlockNumber(ctx context.Context) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := (&blockSeq{state: &s.state}).NextBlockNumber()
	s.commitLocked(ctx)
	return n
}

// NextTokenID returns the next NFT token id and advances the counter.
func (s *Store) NextTokenID(ctx context.Context) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.state.NFTCounter
	s.state.NFTCounter++
	s.commitLocked(ctx)
	return id
}

// AdvanceTokenCounter raises the next token id to at least next. It reports
// whether the counter moved.
func (s *Store) AdvanceTokenCounter(ctx context.Context, next uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.NFTCounter >= next {
		return false
	}
	s.state.NFTCounter = next
	s.commitLocked(ctx)
	return true
}

func (s *Store) Get(hash string) (Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[hash]
	if !ok {
		return Transaction{}, false
	}
	return s.state.Transactions[idx].clone(), true
}

// AllFor returns, in log order, every transaction sent or received by address.
func (s *Store) AllFor(address string) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := []Transaction{}
	for _, tx := range s.state.Transactions {
		if tx.Involves(address) {
			txs = append(txs, tx.clone())
		}
	}
	return txs
}

// Pending returns every transaction that has not reached a terminal state.
func (s *Store) Pending() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := []Transaction{}
	for _, tx := range s.state.Transactions {
		if !tx.Status.IsTerminal() {
			txs = append(txs, tx.clone())
		}
	}
	return txs
}

// Balance returns the wei balance of address, zero when unknown.
func (s *Store) Balance(address string) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bal, ok := s.state.Balances[addressKey(address)]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

// Snapshot returns a deep copy of the aggregate.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

func (s *Store) appendLocked(tx Transaction) error {
	if _, ok := s.index[tx.Hash]; ok {
		return fmt.Errorf("append %s: %w", tx.Hash, ErrDuplicateHash)
	}
	s.state.Transactions = append(s.state.Transactions, tx.clone())
	s.index[tx.Hash] = len(s.state.Transactions) - 1
	return nil
}

// applySideEffects credits the recipient once a transaction becomes confirmed.
func (s *Store) applySideEffects(previous Status, tx Transaction) {
	if previous != StatusPending || tx.Status != StatusConfirmed {
		return
	}
	if tx.To == nil || tx.Value == nil || tx.Value.Sign() <= 0 {
		return
	}

	key := addressKey(*tx.To)
	bal, ok := s.state.Balances[key]
	if !ok {
		bal = new(big.Int)
	}
	s.state.Balances[key] = new(big.Int).Add(bal, tx.Value)
}

// commitLocked persists the aggregate. Failures are logged and swallowed by
// the persister; the in-memory aggregate stays authoritative.
func (s *Store) commitLocked(ctx context.Context) {
	_ = s.persist.save(ctx, StateKey, s.state)
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.state.Transactions))
	for i, tx := range s.state.Transactions {
		s.index[tx.Hash] = i
	}
}

func validatePending(tx Transaction) error {
	if tx.Hash == "" {
		return fmt.Errorf("empty hash: %w", ErrInvalidTransaction)
	}
	if tx.Status != StatusPending {
		return fmt.Errorf("%s: status %q is not pending: %w", tx.Hash, tx.Status, ErrInvalidTransaction)
	}
	if tx.BlockNumber != nil {
		return fmt.Errorf("%s: pending transaction has a block number: %w", tx.Hash, ErrInvalidTransaction)
	}
	return nil
}

type blockSeq struct {
	state *State
}

func (b *blockSeq) NextBlockNumber() uint64 {
	n := b.state.BlockCounter
	b.state.BlockCounter++
	return n
}
