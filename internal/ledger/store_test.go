package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"sync"
	"time"

	"scholarledger/internal/db"
	"scholarledger/internal/ledger"
	"scholarledger/internal/ledger/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func pendingTx(hash, from string, to *string, value int64) ledger.Transaction {
	return ledger.Transaction{
		Hash:      hash,
		From:      from,
		To:        to,
		Value:     big.NewInt(value),
		Status:    ledger.StatusPending,
		Timestamp: time.Now().UTC(),
		Kind:      ledger.KindDonation,
		Metadata:  map[string]string{"scholarshipId": "S1"},
	}
}

func confirmWith(gas uint64) ledger.Updater {
	return func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
		bn := blocks.NextBlockNumber()
		tx.Status = ledger.StatusConfirmed
		tx.BlockNumber = &bn
		tx.GasUsed = &gas
		tx.GasPrice = big.NewInt(20_000_000_000)
		return nil
	}
}

func strPtr(s string) *string {
	return &s
}

var _ = Describe("Store", func() {
	var (
		ctx     context.Context
		logger  *zap.SugaredLogger
		backend *db.MemoryDB
		store   *ledger.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = zap.NewNop().Sugar()
		backend = db.NewMemoryDB()
		store = ledger.NewStore(ctx, logger, backend)
	})

	When("the store is empty", func() {
		It("should answer queries with empty values", func() {
			_, ok := store.Get("0xmissing")
			Expect(ok).To(BeFalse())
			Expect(store.AllFor("0xabc")).To(BeEmpty())
			Expect(store.Pending()).To(BeEmpty())
			Expect(store.Balance("0xabc").Sign()).To(BeZero())

			snap := store.Snapshot()
			Expect(snap.BlockCounter).To(Equal(uint64(1)))
			Expect(snap.NFTCounter).To(Equal(uint64(1)))
		})
	})

	Describe("Append", func() {
		It("should store a pending transaction", func() {
			Expect(store.Append(ctx, pendingTx("0x1", "0xa", strPtr("0xb"), 10))).To(Succeed())

			tx, ok := store.Get("0x1")
			Expect(ok).To(BeTrue())
			Expect(tx.Status).To(Equal(ledger.StatusPending))
			Expect(tx.BlockNumber).To(BeNil())
		})

		It("should reject duplicate hashes", func() {
			Expect(store.Append(ctx, pendingTx("0x1", "0xa", nil, 10))).To(Succeed())
			err := store.Append(ctx, pendingTx("0x1", "0xa", nil, 10))
			Expect(err).To(MatchError(ledger.ErrDuplicateHash))
			Expect(store.Snapshot().Transactions).To(HaveLen(1))
		})

		It("should reject transactions that are not pending", func() {
			tx := pendingTx("0x1", "0xa", nil, 10)
			tx.Status = ledger.StatusConfirmed
			Expect(store.Append(ctx, tx)).To(MatchError(ledger.ErrInvalidTransaction))
		})

		It("should reject an empty hash", func() {
			Expect(store.Append(ctx, pendingTx("", "0xa", nil, 10))).To(MatchError(ledger.ErrInvalidTransaction))
		})

		It("should not let callers alias stored state", func() {
			tx := pendingTx("0x1", "0xa", nil, 10)
			Expect(store.Append(ctx, tx)).To(Succeed())
			tx.Value.SetInt64(999)
			tx.Metadata["scholarshipId"] = "changed"

			stored, _ := store.Get("0x1")
			Expect(stored.Value.Int64()).To(Equal(int64(10)))
			Expect(stored.Metadata["scholarshipId"]).To(Equal("S1"))
		})
	})

	Describe("Mutate", func() {
		BeforeEach(func() {
			Expect(store.Append(ctx, pendingTx("0x1", "0xa", strPtr("0xB"), 10))).To(Succeed())
		})

		It("should confirm a pending transaction and credit the recipient", func() {
			tx, err := store.Mutate(ctx, "0x1", confirmWith(21000))
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Status).To(Equal(ledger.StatusConfirmed))
			Expect(*tx.BlockNumber).To(Equal(uint64(1)))
			Expect(*tx.GasUsed).To(Equal(uint64(21000)))
			Expect(store.Balance("0xb").Int64()).To(Equal(int64(10)))
			Expect(store.Balance("0xa").Sign()).To(BeZero())
		})

		It("should fail for unknown hashes", func() {
			_, err := store.Mutate(ctx, "0xnope", confirmWith(1))
			Expect(err).To(MatchError(ledger.ErrNotFound))
		})

		It("should be a no-op once the transaction is terminal", func() {
			first, err := store.Mutate(ctx, "0x1", confirmWith(21000))
			Expect(err).NotTo(HaveOccurred())

			calls := 0
			second, err := store.Mutate(ctx, "0x1", func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
				calls++
				return confirmWith(1)(tx, blocks)
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(BeZero())
			Expect(second).To(Equal(first))
			Expect(store.Balance("0xb").Int64()).To(Equal(int64(10)))
			Expect(store.Snapshot().BlockCounter).To(Equal(uint64(2)))
		})

		It("should never move balances for failed transactions", func() {
			tx, err := store.Mutate(ctx, "0x1", func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
				bn := blocks.NextBlockNumber()
				tx.Status = ledger.StatusFailed
				tx.BlockNumber = &bn
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Status).To(Equal(ledger.StatusFailed))
			Expect(store.Balance("0xb").Sign()).To(BeZero())
		})

		It("should discard every change when the updater fails", func() {
			updaterErr := errors.New("boom")
			_, err := store.Mutate(ctx, "0x1", func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
				blocks.NextBlockNumber()
				tx.Status = ledger.StatusConfirmed
				return updaterErr
			})
			Expect(err).To(MatchError(updaterErr))

			tx, _ := store.Get("0x1")
			Expect(tx.Status).To(Equal(ledger.StatusPending))
			Expect(store.Snapshot().BlockCounter).To(Equal(uint64(1)))
		})

		It("should keep the hash immutable", func() {
			tx, err := store.Mutate(ctx, "0x1", func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
				tx.Hash = "0xother"
				return confirmWith(1)(tx, blocks)
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Hash).To(Equal("0x1"))
			_, ok := store.Get("0xother")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("concurrent confirmations", func() {
		It("should assign strictly increasing, unique block numbers", func() {
			const n = 200
			hashes := make([]string, n)
			for i := range hashes {
				hashes[i] = "0x" + big.NewInt(int64(i+1)).Text(16)
				Expect(store.Append(ctx, pendingTx(hashes[i], "0xa", strPtr("0xb"), 1))).To(Succeed())
			}

			var (
				wg    sync.WaitGroup
				mu    sync.Mutex
				order []uint64
			)
			for _, h := range hashes {
				wg.Add(1)
				go func(h string) {
					defer wg.Done()
					defer GinkgoRecover()
					_, err := store.Mutate(ctx, h, func(tx *ledger.Transaction, blocks ledger.BlockSequence) error {
						if err := confirmWith(21000)(tx, blocks); err != nil {
							return err
						}
						// recorded under the store lock, so this is assignment order
						mu.Lock()
						order = append(order, *tx.BlockNumber)
						mu.Unlock()
						return nil
					})
					Expect(err).NotTo(HaveOccurred())
				}(h)
			}
			wg.Wait()

			Expect(order).To(HaveLen(n))
			for i := 1; i < len(order); i++ {
				Expect(order[i]).To(BeNumerically(">", order[i-1]))
			}
			Expect(store.Balance("0xb").Int64()).To(Equal(int64(n)))
		})
	})

	Describe("Commit", func() {
		It("should append an already finalized transaction", func() {
			tx, err := store.Commit(ctx, pendingTx("0xm", "0xa", strPtr("0xc"), 0), confirmWith(150000))
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Status).To(Equal(ledger.StatusConfirmed))
			Expect(*tx.BlockNumber).To(Equal(uint64(1)))

			stored, ok := store.Get("0xm")
			Expect(ok).To(BeTrue())
			Expect(stored.Status).To(Equal(ledger.StatusConfirmed))
		})

		It("should reject duplicates without consuming a block number", func() {
			Expect(store.Append(ctx, pendingTx("0xm", "0xa", nil, 0))).To(Succeed())
			_, err := store.Commit(ctx, pendingTx("0xm", "0xa", nil, 0), confirmWith(1))
			Expect(err).To(MatchError(ledger.ErrDuplicateHash))
			Expect(store.Snapshot().BlockCounter).To(Equal(uint64(1)))
		})
	})

	Describe("counters", func() {
		It("should hand out sequential token ids starting at one", func() {
			for k := uint64(1); k <= 5; k++ {
				Expect(store.NextTokenID(ctx)).To(Equal(k))
			}
		})

		It("should hand out sequential block numbers", func() {
			Expect(store.NextBlockNumber(ctx)).To(Equal(uint64(1)))
			Expect(store.NextBlockNumber(ctx)).To(Equal(uint64(2)))
		})

		It("should only ever raise the token counter", func() {
			Expect(store.AdvanceTokenCounter(ctx, 7)).To(BeTrue())
			Expect(store.AdvanceTokenCounter(ctx, 3)).To(BeFalse())
			Expect(store.NextTokenID(ctx)).To(Equal(uint64(7)))

			reloaded := ledger.NewStore(ctx, logger, backend)
			Expect(reloaded.Snapshot().NFTCounter).To(Equal(uint64(8)))
		})
	})

	Describe("AllFor", func() {
		It("should match sender or recipient case-insensitively", func() {
			Expect(store.Append(ctx, pendingTx("0x1", "0xAA", strPtr("0xbb"), 1))).To(Succeed())
			Expect(store.Append(ctx, pendingTx("0x2", "0xcc", strPtr("0xBB"), 1))).To(Succeed())
			Expect(store.Append(ctx, pendingTx("0x3", "0xcc", nil, 1))).To(Succeed())

			Expect(store.AllFor("0xaa")).To(HaveLen(1))
			Expect(store.AllFor("0xbb")).To(HaveLen(2))
			Expect(store.AllFor("0xCC")).To(HaveLen(2))
		})
	})

	Describe("persistence", func() {
		It("should survive a reload into a fresh store", func() {
			Expect(store.Append(ctx, pendingTx("0x1", "0xa", strPtr("0xb"), 10))).To(Succeed())
			Expect(store.Append(ctx, pendingTx("0x2", "0xa", strPtr("0xb"), 20))).To(Succeed())
			Expect(store.Append(ctx, pendingTx("0x3", "0xc", nil, 30))).To(Succeed())
			_, err := store.Mutate(ctx, "0x2", confirmWith(21000))
			Expect(err).NotTo(HaveOccurred())
			store.NextTokenID(ctx)

			before, err := json.Marshal(store.Snapshot())
			Expect(err).NotTo(HaveOccurred())

			reloaded := ledger.NewStore(ctx, logger, backend)
			after, err := json.Marshal(reloaded.Snapshot())
			Expect(err).NotTo(HaveOccurred())
			Expect(after).To(MatchJSON(before))

			Expect(reloaded.Snapshot().BlockCounter).To(Equal(uint64(2)))
			Expect(reloaded.Snapshot().NFTCounter).To(Equal(uint64(2)))
			Expect(reloaded.Balance("0xb").Int64()).To(Equal(int64(20)))
			Expect(reloaded.Pending()).To(HaveLen(2))

			Expect(reloaded.Append(ctx, pendingTx("0x1", "0xa", nil, 1))).To(MatchError(ledger.ErrDuplicateHash))
		})

		It("should start empty from a corrupt record and keep working", func() {
			Expect(backend.Put(ctx, ledger.StateKey, []byte("{not json"))).To(Succeed())

			corrupt := ledger.NewStore(ctx, logger, backend)
			Expect(corrupt.Snapshot().Transactions).To(BeEmpty())
			Expect(corrupt.Snapshot().BlockCounter).To(Equal(uint64(1)))

			Expect(corrupt.Append(ctx, pendingTx("0x1", "0xa", nil, 1))).To(Succeed())
			_, err := corrupt.Mutate(ctx, "0x1", confirmWith(21000))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the backend fails", func() {
		var (
			fakeBackend *fake.Backend
			failures    []string
		)

		BeforeEach(func() {
			failures = nil
			fakeBackend = new(fake.Backend)
			fakeBackend.GetReturns(nil, errors.New("disk on fire"))
			fakeBackend.PutReturns(errors.New("disk on fire"))
			store = ledger.NewStore(ctx, logger, fakeBackend,
				ledger.WithPersistRetries(1),
				ledger.WithPersistErrorHook(func(key string, err error) {
					failures = append(failures, key)
				}))
		})

		It("should fall back to an empty aggregate on load", func() {
			Expect(store.Snapshot().Transactions).To(BeEmpty())
			Expect(failures).To(Equal([]string{ledger.StateKey}))
		})

		It("should keep serving submissions from memory", func() {
			Expect(store.Append(ctx, pendingTx("0x1", "0xa", nil, 1))).To(Succeed())
			_, ok := store.Get("0x1")
			Expect(ok).To(BeTrue())

			// initial attempt plus one retry
			Expect(fakeBackend.PutCallCount()).To(Equal(2))
		})

		It("should surface the failure from an explicit Persist", func() {
			err := store.Persist(ctx)
			Expect(err).To(MatchError(ledger.ErrPersistence))
		})
	})

	When("the backend has no record", func() {
		It("should not report a persistence failure", func() {
			fakeBackend := new(fake.Backend)
			fakeBackend.GetReturns(nil, ledger.ErrKeyNotFound)
			hookCalls := 0
			ledger.NewStore(ctx, logger, fakeBackend, ledger.WithPersistErrorHook(func(string, error) { hookCalls++ }))
			Expect(hookCalls).To(BeZero())
		})
	})
})
