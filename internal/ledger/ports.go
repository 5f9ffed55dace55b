package ledger

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by a Backend when no record exists under a key.
var ErrKeyNotFound error = errors.New("key not found")

const (
	StateKey = "ledger_state"
	NFTKey   = "ledger_nfts"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Backend . Backend
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
