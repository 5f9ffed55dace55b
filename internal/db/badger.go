package db

import (
	"context"
	"errors"
	"fmt"

	"scholarledger/internal/ledger"

	"github.com/dgraph-io/badger/v4"
)

type BadgerDB struct {
	db *badger.DB
}

// NewBadgerDB opens (or creates) a badger store under dir.
func NewBadgerDB(dir string) (*BadgerDB, error) {
	return openBadger(badger.DefaultOptions(dir))
}

// NewInMemoryBadgerDB opens a badger store that never touches disk.
func NewInMemoryBadgerDB() (*BadgerDB, error) {
	return openBadger(badger.DefaultOptions("").WithInMemory(true))
}

func openBadger(opts badger.Options) (*BadgerDB, error) {
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerDB{db: db}, nil
}

func (b *BadgerDB) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ledger.ErrKeyNotFound
		}
		return nil, fmt.Errorf("badger get %q: %w", key, err)
	}
	return value, nil
}

func (b *BadgerDB) Put(_ context.Context, key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("badger put %q: %w", key, err)
	}
	return nil
}

func (b *BadgerDB) Close() error {
	return b.db.Close()
}
