package utxo

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

// InsertReason explains why a delta was not accepted.
type InsertReason int

const (
	// InsertDuplicateBlock means the delta tip equals the current tip.
	InsertDuplicateBlock InsertReason = iota
	// InsertOlderBlock means the delta tip is not newer than the current tip.
	InsertOlderBlock
	// InsertNotSuccessor means the delta tip is newer but does not directly extend the current tip.
	InsertNotSuccessor
)

func (r InsertReason) String() string {
	switch r {
	case InsertDuplicateBlock:
		return "duplicate block"
	case InsertOlderBlock:
		return "older block"
	case InsertNotSuccessor:
		return "not a successor"
	default:
		return fmt.Sprintf("insert reason %d", int(r))
	}
}

// InsertError is returned when a delta does not extend the index.
type InsertError struct {
	Reason      InsertReason
	Current     model.Tip
	Conflicting model.Tip
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("insert %s on top of %s: %s", e.Conflicting, e.Current, e.Reason)
}

// RollbackReason explains why a rollback was refused.
type RollbackReason int

const (
	// RollbackOldPointNotFound means the target is older than the retained history.
	RollbackOldPointNotFound RollbackReason = iota
	// RollbackTipMismatch means the target is not a point of the tracked chain.
	RollbackTipMismatch
)

func (r RollbackReason) String() string {
	switch r {
	case RollbackOldPointNotFound:
		return "target older than retained history"
	case RollbackTipMismatch:
		return "target not on tracked chain"
	default:
		return fmt.Sprintf("rollback reason %d", int(r))
	}
}

// RollbackError is returned when the index cannot be rolled back to a tip.
type RollbackError struct {
	Reason  RollbackReason
	Target  model.Tip
	Current model.Tip
	Oldest  model.Tip
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("rollback to %s from %s (oldest %s): %s", e.Target, e.Current, e.Oldest, e.Reason)
}
