package ledger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Registry holds minted NFT records. Records are soulbound: once added they
// are never modified or reassigned.
type Registry struct {
	logs    *zap.SugaredLogger
	persist *persister

	mu      sync.Mutex
	records []NFTRecord
	tokens  map[uint64]int
}

func NewRegistry(ctx context.Context, logger *zap.SugaredLogger, backend Backend, opts ...Option) *Registry {
	r := &Registry{
		logs:    logger,
		persist: newPersister(logger, backend, opts),
	}
	r.Load(ctx)
	return r
}

// Load replaces the in-memory records with the persisted list, falling back
// to an empty registry when the record is missing or corrupt.
func (r *Registry) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := []NFTRecord{}
	var decoded []NFTRecord
	if r.persist.load(ctx, NFTKey, &decoded) && decoded != nil {
		records = decoded
	}

	r.records = records
	r.tokens = make(map[uint64]int, len(records))
	for i, rec := range records {
		r.tokens[rec.TokenID] = i
	}

	r.logs.Infow("nft registry loaded", "records", len(r.records))
}

func (r *Registry) Persist(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.persist.save(ctx, NFTKey, r.records)
}

func (r *Registry) Add(ctx context.Context, rec NFTRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[rec.TokenID]; ok {
		return fmt.Errorf("add token %d: %w", rec.TokenID, ErrDuplicateToken)
	}

	r.records = append(r.records, cloneNFT(rec))
	r.tokens[rec.TokenID] = len(r.records) - 1

	_ = r.persist.save(ctx, NFTKey, r.records)
	return nil
}

func (r *Registry) Get(tokenID uint64) (NFTRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.tokens[tokenID]
	if !ok {
		return NFTRecord{}, false
	}
	return cloneNFT(r.records[idx]), true
}

func (r *Registry) All() []NFTRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]NFTRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, cloneNFT(rec))
	}
	return out
}

// ForAddress returns the records where address is the donor or the student.
func (r *Registry) ForAddress(address string) []NFTRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []NFTRecord{}
	for _, rec := range r.records {
		if sameAddress(rec.DonorAddress, address) || sameAddress(rec.StudentAddress, address) {
			out = append(out, cloneNFT(rec))
		}
	}
	return out
}

func cloneNFT(rec NFTRecord) NFTRecord {
	c := rec
	if rec.MilestoneID != nil {
		id := *rec.MilestoneID
		c.MilestoneID = &id
	}
	if rec.MilestoneTitle != nil {
		title := *rec.MilestoneTitle
		c.MilestoneTitle = &title
	}
	return c
}
