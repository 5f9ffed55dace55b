package core

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"scholarledger/internal/ident"
	"scholarledger/internal/ledger"
	"scholarledger/internal/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

type Option func(*Ledger)

// WithConfirmWindow bounds the randomized confirmation delay.
func WithConfirmWindow(minDelay, maxDelay time.Duration) Option {
	return func(l *Ledger) {
		l.confirmMin = minDelay
		l.confirmMax = maxDelay
	}
}

// WithFailureRate sets the probability in [0, 1] that a scheduled
// confirmation ends in the failed state.
func WithFailureRate(rate float64) Option {
	return func(l *Ledger) {
		l.failureRate = rate
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(l *Ledger) {
		l.pollInterval = d
	}
}

// WithRand replaces the source used for delays and failures.
func WithRand(rnd *rand.Rand) Option {
	return func(l *Ledger) {
		l.rnd = rnd
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Ledger is the simulated chain: it accepts submissions, confirms them in the
// background and answers queries over the store and the NFT registry.
type Ledger struct {
	logs      *zap.SugaredLogger
	store     Store
	registry  Registry
	ids       ident.Generator
	units     *units.Converter
	scheduler TaskScheduler
	metrics   Recorder

	confirmMin   time.Duration
	confirmMax   time.Duration
	pollInterval time.Duration
	failureRate  float64
	now          func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewLedger(
	logger *zap.SugaredLogger,
	store Store,
	registry Registry,
	ids ident.Generator,
	converter *units.Converter,
	scheduler TaskScheduler,
	recorder Recorder,
	opts ...Option,
) *Ledger {
	l := &Ledger{
		logs:         logger,
		store:        store,
		registry:     registry,
		ids:          ids,
		units:        converter,
		scheduler:    scheduler,
		metrics:      recorder,
		confirmMin:   2 * time.Second,
		confirmMax:   3 * time.Second,
		pollInterval: 500 * time.Millisecond,
		now:          func() time.Time { return time.Now().UTC() },
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics == nil {
		l.metrics = nopRecorder{}
	}
	return l
}

// ScholarshipAddress derives the escrow address that receives donations for a
// scholarship.
func ScholarshipAddress(scholarshipID string) string {
	return common.BytesToAddress(crypto.Keccak256([]byte(scholarshipID))).Hex()
}

// SimulateDonation records a pending donation of fiat units from donor to the
// escrow address of the scholarship and returns its hash.
func (l *Ledger) SimulateDonation(ctx context.Context, scholarshipID string, fiat float64, from string) (string, error) {
	err := validation.Errors{
		"scholarshipId": validation.Validate(scholarshipID, validation.Required),
		"amount":        validation.Validate(fiat, validation.Required, Finite, validation.Min(0.0).Exclusive()),
		"from":          validation.Validate(from, validation.Required),
	}.Filter()
	if err != nil {
		return "", fmt.Errorf("donation: %w: %w", ErrValidation, err)
	}

	value := l.units.ToNative(fiat)
	if value.Sign() <= 0 {
		return "", fmt.Errorf("donation: %w: amount: %v is below one wei", ErrValidation, fiat)
	}

	to := ScholarshipAddress(scholarshipID)
	return l.submit(ctx, ledger.Transaction{
		From:  from,
		To:    &to,
		Value: value,
		Kind:  ledger.KindDonation,
		Metadata: map[string]string{
			"scholarshipId": scholarshipID,
		},
	})
}

// SimulateScholarshipCreation records a pending contract creation for a
// scholarship with the given fiat goal.
func (l *Ledger) SimulateScholarshipCreation(ctx context.Context, student string, fiatGoal float64) (string, error) {
	err := validation.Errors{
		"studentAddress": validation.Validate(student, validation.Required),
		"goal":           validation.Validate(fiatGoal, validation.Required, Finite, validation.Min(0.0).Exclusive()),
	}.Filter()
	if err != nil {
		return "", fmt.Errorf("scholarship creation: %w: %w", ErrValidation, err)
	}

	return l.submit(ctx, ledger.Transaction{
		From:  student,
		Value: new(big.Int),
		Kind:  ledger.KindScholarshipCreation,
		Metadata: map[string]string{
			"goal": strconv.FormatFloat(fiatGoal, 'f', -1, 64),
		},
	})
}

// SimulateProofSubmission records a pending milestone proof sent by the
// student to the scholarship escrow.
func (l *Ledger) SimulateProofSubmission(ctx context.Context, scholarshipID string, milestoneIndex int, student string) (string, error) {
	err := validation.Errors{
		"scholarshipId":  validation.Validate(scholarshipID, validation.Required),
		"milestoneIndex": validation.Validate(milestoneIndex, validation.Min(0)),
		"studentAddress": validation.Validate(student, validation.Required),
	}.Filter()
	if err != nil {
		return "", fmt.Errorf("proof submission: %w: %w", ErrValidation, err)
	}

	to := ScholarshipAddress(scholarshipID)
	return l.submit(ctx, ledger.Transaction{
		From:  student,
		To:    &to,
		Value: new(big.Int),
		Kind:  ledger.KindProofSubmission,
		Metadata: map[string]string{
			"scholarshipId":  scholarshipID,
			"milestoneIndex": strconv.Itoa(milestoneIndex),
		},
	})
}

// SimulateNFTMint mints a soulbound NFT. Unlike the other submissions the
// mint transaction is confirmed synchronously.
func (l *Ledger) SimulateNFTMint(ctx context.Context, req MintRequest) (ledger.NFTRecord, error) {
	if err := req.Validate(); err != nil {
		return ledger.NFTRecord{}, fmt.Errorf("nft mint: %w: %w", ErrValidation, err)
	}

	tokenID, err := l.reserveTokenID(ctx)
	if err != nil {
		return ledger.NFTRecord{}, fmt.Errorf("nft mint: %w", err)
	}
	now := l.now()

	metadata := map[string]string{
		"tokenId":     strconv.FormatUint(tokenID, 10),
		"nftType":     string(req.Kind),
		"studentName": req.StudentName,
	}
	if req.MilestoneID != nil {
		metadata["milestoneId"] = *req.MilestoneID
	}

	to := req.StudentAddress
	tx, err := l.store.Commit(ctx, ledger.Transaction{
		Hash:      l.ids.TxHash(),
		From:      req.DonorAddress,
		To:        &to,
		Value:     new(big.Int),
		Status:    ledger.StatusPending,
		Timestamp: now,
		Kind:      ledger.KindNFTMint,
		Metadata:  metadata,
	}, finalize(ledger.StatusConfirmed))
	if err != nil {
		return ledger.NFTRecord{}, fmt.Errorf("commit mint transaction: %w", err)
	}

	rec := ledger.NFTRecord{
		TokenID:         tokenID,
		DonorAddress:    req.DonorAddress,
		StudentAddress:  req.StudentAddress,
		StudentName:     req.StudentName,
		Amount:          req.Amount,
		MilestoneID:     req.MilestoneID,
		MilestoneTitle:  req.MilestoneTitle,
		Kind:            req.Kind,
		ImageRef:        "ipfs://" + l.ids.CID(),
		Description:     req.description(),
		MintedAt:        now,
		TransactionHash: tx.Hash,
	}
	if err := l.registry.Add(ctx, rec); err != nil {
		return ledger.NFTRecord{}, fmt.Errorf("register nft %d: %w", tokenID, err)
	}

	l.metrics.Submitted(string(ledger.KindNFTMint))
	l.metrics.Finalized(string(ledger.KindNFTMint), true, 0)
	l.logs.Infow("nft minted",
		"token_id", tokenID,
		"type", req.Kind,
		"student", req.StudentAddress,
		"hash", tx.Hash,
		"block", *tx.BlockNumber)

	return rec, nil
}

// ReconcileTokens moves the token counter past every token id already in
// the registry. The two are persisted as separate records and can diverge
// when one of them is lost. It returns the lowest token id the registry
// leaves free.
func (l *Ledger) ReconcileTokens(ctx context.Context) uint64 {
	var highest uint64
	for _, rec := range l.registry.All() {
		highest = max(highest, rec.TokenID)
	}

	next := highest + 1
	if l.store.AdvanceTokenCounter(ctx, next) {
		l.logs.Infow("token counter reconciled with nft registry", "next_token", next)
	}
	return next
}

// reserveTokenID draws a token id that the registry does not hold yet.
func (l *Ledger) reserveTokenID(ctx context.Context) (uint64, error) {
	tokenID := l.store.NextTokenID(ctx)
	if _, taken := l.registry.Get(tokenID); !taken {
		return tokenID, nil
	}

	l.logs.Errorw("token id already registered, reconciling counter", "token_id", tokenID)
	l.ReconcileTokens(ctx)

	tokenID = l.store.NextTokenID(ctx)
	if _, taken := l.registry.Get(tokenID); taken {
		return 0, fmt.Errorf("token %d: %w", tokenID, ledger.ErrDuplicateToken)
	}
	return tokenID, nil
}

func (r MintRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DonorAddress, validation.Required),
		validation.Field(&r.StudentAddress, validation.Required),
		validation.Field(&r.StudentName, validation.Required),
		validation.Field(&r.Amount, Finite, validation.Min(0.0)),
		validation.Field(&r.Kind, validation.Required, validation.In(ledger.NFTKindDonation, ledger.NFTKindAchievement)),
		validation.Field(&r.MilestoneID, validation.When(r.Kind == ledger.NFTKindAchievement, validation.Required)),
	)
}

func (r MintRequest) description() string {
	if r.Kind == ledger.NFTKindAchievement {
		title := *r.MilestoneID
		if r.MilestoneTitle != nil && *r.MilestoneTitle != "" {
			title = *r.MilestoneTitle
		}
		return fmt.Sprintf("%s completed milestone %q", r.StudentName, title)
	}
	return fmt.Sprintf("Donation of %s to %s", strconv.FormatFloat(r.Amount, 'f', -1, 64), r.StudentName)
}

// submit fills in the engine-owned fields, appends tx as pending and
// schedules its confirmation.
func (l *Ledger) submit(ctx context.Context, tx ledger.Transaction) (string, error) {
	tx.Hash = l.ids.TxHash()
	tx.Status = ledger.StatusPending
	tx.Timestamp = l.now()

	if err := l.store.Append(ctx, tx); err != nil {
		return "", fmt.Errorf("append %s: %w", tx.Kind, err)
	}

	delay := l.confirmDelay()
	l.scheduler.Schedule(tx.Hash, delay)
	l.metrics.Submitted(string(tx.Kind))

	l.logs.Infow("transaction submitted",
		"hash", tx.Hash,
		"type", tx.Kind,
		"from", tx.From,
		"confirm_in", delay)

	return tx.Hash, nil
}

func (l *Ledger) confirmDelay() time.Duration {
	spread := l.confirmMax - l.confirmMin
	if spread <= 0 {
		return l.confirmMin
	}

	l.rndMu.Lock()
	defer l.rndMu.Unlock()
	return l.confirmMin + time.Duration(l.rnd.Int63n(int64(spread)+1))
}

func (l *Ledger) drawFailure() bool {
	if l.failureRate <= 0 {
		return false
	}

	l.rndMu.Lock()
	defer l.rndMu.Unlock()
	return l.rnd.Float64() < l.failureRate
}

type nopRecorder struct{}

func (nopRecorder) Submitted(string)                      {}
func (nopRecorder) Finalized(string, bool, time.Duration) {}
func (nopRecorder) WaitTimedOut()                         {}
