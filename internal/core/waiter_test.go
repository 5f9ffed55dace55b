package core_test

import (
	"context"
	"time"

	"scholarledger/internal/core"
	"scholarledger/internal/db"
	"scholarledger/internal/ident"
	"scholarledger/internal/ledger"
	"scholarledger/internal/metrics"
	"scholarledger/internal/units"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WaitForConfirmation", func() {
	var (
		ctx       context.Context
		cancel    context.CancelFunc
		store     *ledger.Store
		scheduler *core.Scheduler
		opts      []core.Option

		engine *core.Ledger
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		DeferCleanup(cancel)
		opts = []core.Option{
			core.WithConfirmWindow(200*time.Millisecond, 250*time.Millisecond),
			core.WithPollInterval(10 * time.Millisecond),
		}
	})

	JustBeforeEach(func() {
		logger := zap.NewNop().Sugar()
		backend := db.NewMemoryDB()
		store = ledger.NewStore(ctx, logger, backend)
		registry := ledger.NewRegistry(ctx, logger, backend)
		converter, err := units.NewConverter(200000)
		Expect(err).NotTo(HaveOccurred())

		scheduler = core.NewScheduler(logger)
		engine = core.NewLedger(logger, store, registry, ident.NewRandom(), converter, scheduler,
			metrics.NewLedger("test"), opts...)
		go scheduler.Run(ctx, engine)
	})

	It("should resolve a donation once it is confirmed", func() {
		prior := store.Snapshot().BlockCounter

		hash, err := engine.SimulateDonation(ctx, "S1", 5000, "addrA")
		Expect(err).NotTo(HaveOccurred())

		tx, ok := engine.GetTransactionStatus(hash)
		Expect(ok).To(BeTrue())
		Expect(tx.Status).To(Equal(ledger.StatusPending))

		tx, err = engine.WaitForConfirmation(ctx, hash, 2*time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(tx.Status).To(Equal(ledger.StatusConfirmed))
		Expect(tx.BlockNumber).NotTo(BeNil())
		Expect(*tx.BlockNumber).To(BeNumerically(">=", prior))
		Expect(tx.Metadata["scholarshipId"]).To(Equal("S1"))
	})

	It("should time out without stopping the confirmation", func() {
		hash, err := engine.SimulateDonation(ctx, "S1", 5000, "addrA")
		Expect(err).NotTo(HaveOccurred())

		_, err = engine.WaitForConfirmation(ctx, hash, 20*time.Millisecond)
		Expect(err).To(MatchError(core.ErrTimeout))

		Eventually(func() ledger.Status {
			tx, _ := engine.GetTransactionStatus(hash)
			return tx.Status
		}).WithTimeout(time.Second).Should(Equal(ledger.StatusConfirmed))
	})

	It("should return immediately for a terminal transaction", func() {
		hash, err := engine.SimulateProofSubmission(ctx, "S1", 0, "addrS")
		Expect(err).NotTo(HaveOccurred())
		_, err = engine.ConfirmNow(ctx, hash)
		Expect(err).NotTo(HaveOccurred())

		start := time.Now()
		tx, err := engine.WaitForConfirmation(ctx, hash, time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(tx.Hash).To(Equal(hash))
		Expect(time.Since(start)).To(BeNumerically("<", 100*time.Millisecond))
	})

	It("should fail for an unknown hash", func() {
		_, err := engine.WaitForConfirmation(ctx, "0xmissing", time.Second)
		Expect(err).To(MatchError(ledger.ErrNotFound))
	})

	It("should stop when the caller gives up", func() {
		hash, err := engine.SimulateDonation(ctx, "S1", 100, "addrA")
		Expect(err).NotTo(HaveOccurred())

		waitCtx, waitCancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer waitCancel()
		_, err = engine.WaitForConfirmation(waitCtx, hash, time.Minute)
		Expect(err).To(MatchError(context.DeadlineExceeded))
	})

	When("confirmations fail", func() {
		BeforeEach(func() {
			opts = append(opts, core.WithFailureRate(1))
		})

		It("should report the failure to the waiter", func() {
			hash, err := engine.SimulateDonation(ctx, "S1", 100, "addrA")
			Expect(err).NotTo(HaveOccurred())

			tx, err := engine.WaitForConfirmation(ctx, hash, 2*time.Second)
			Expect(err).To(MatchError(core.ErrTransactionFailed))
			Expect(tx.Status).To(Equal(ledger.StatusFailed))
		})
	})

	It("should confirm many concurrent submissions with distinct blocks", func() {
		hashes := make([]string, 20)
		for i := range hashes {
			var err error
			hashes[i], err = engine.SimulateDonation(ctx, "S1", 10, "addrA")
			Expect(err).NotTo(HaveOccurred())
		}

		seen := map[uint64]bool{}
		for _, h := range hashes {
			tx, err := engine.WaitForConfirmation(ctx, h, 2*time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).NotTo(HaveKey(*tx.BlockNumber))
			seen[*tx.BlockNumber] = true
		}
		Expect(engine.GetBalance(core.ScholarshipAddress("S1"))).To(BeNumerically("~", 200, 1e-9))
	})
})
