package storage

import "errors"

// Transaction state errors shared by all storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin when the storage handle is already
	// transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional
	// handle.
	ErrNotInTx = errors.New("not in tx")
)
