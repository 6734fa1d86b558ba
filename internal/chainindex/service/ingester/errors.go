package ingester

import "errors"

var (
	// ErrInsertionFailed wraps a *utxo.InsertError. The store was not touched.
	ErrInsertionFailed = errors.New("insertion failed")
	// ErrRollbackFailed wraps a *utxo.RollbackError.
	ErrRollbackFailed = errors.New("rollback failed")
	// ErrStoreWriteFailed reports a block whose index insert succeeded but whose
	// artifacts were not all persisted. Retry with WriteArtifacts.
	ErrStoreWriteFailed = errors.New("store write failed")
)
