package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Option configures the persistence behaviour of a Store or Registry.
type Option func(*persister)

// WithPersistRetries sets how many times a failed write is retried before it
// is reported as a persistence error.
func WithPersistRetries(retries uint64) Option {
	return func(p *persister) {
		p.retries = retries
	}
}

// WithPersistErrorHook registers a callback invoked for every read or write
// failure against the backend.
func WithPersistErrorHook(hook func(key string, err error)) Option {
	return func(p *persister) {
		p.onError = hook
	}
}

type persister struct {
	logs    *zap.SugaredLogger
	backend Backend
	retries uint64
	onError func(key string, err error)
}

func newPersister(logger *zap.SugaredLogger, backend Backend, opts []Option) *persister {
	p := &persister{
		logs:    logger,
		backend: backend,
		retries: 3,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *persister) save(ctx context.Context, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return p.fail(key, fmt.Errorf("%w: marshal %q: %w", ErrPersistence, key, err))
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 20 * time.Millisecond
	policy.MaxInterval = 500 * time.Millisecond

	err = backoff.Retry(func() error {
		return p.backend.Put(ctx, key, data)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, p.retries), ctx))
	if err != nil {
		return p.fail(key, fmt.Errorf("%w: put %q: %w", ErrPersistence, key, err))
	}

	return nil
}

// load decodes the record stored under key into dest. It reports false when
// the record is missing, unreadable or malformed; dest is left untouched in
// the latter cases.
func (p *persister) load(ctx context.Context, key string, dest any) bool {
	data, err := p.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			p.logs.Debugw("no persisted record, starting empty", "key", key)
			return false
		}
		p.fail(key, fmt.Errorf("%w: get %q: %w", ErrPersistence, key, err))
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		p.fail(key, fmt.Errorf("%w: decode %q: %w", ErrPersistence, key, err))
		return false
	}

	return true
}

func (p *persister) fail(key string, err error) error {
	p.logs.Errorw("ledger persistence failed, continuing in memory", "key", key, "error", err)
	if p.onError != nil {
		p.onError(key, err)
	}
	return err
}
