package ledger

import "errors"

var (
	ErrDuplicateHash  error = errors.New("duplicate transaction hash")
	ErrDuplicateToken error = errors.New("duplicate nft token id")
	ErrNotFound       error = errors.New("transaction not found")
	ErrPersistence    error = errors.New("ledger persistence failure")

	ErrInvalidTransaction error = errors.New("invalid transaction")
)
