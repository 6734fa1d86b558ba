package utxo

import (
	"github.com/gammazero/deque"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

// DefaultRollbackWindow is the number of blocks kept for rollbacks.
const DefaultRollbackWindow = 2160

// InsertPosition describes where an accepted delta landed.
type InsertPosition struct {
	// Depth is the number of retained deltas after the insert, the new one included.
	Depth int
	// Folded is the number of old deltas merged into the anchor to honor the window.
	Folded int
}

type entry struct {
	delta Delta
	// spent holds the consumed refs that were live when the delta was applied.
	spent []model.TxOutRef
}

// Index is the live UTXO set plus the deltas needed to undo recent blocks.
// It is not safe for concurrent use.
type Index struct {
	window  int
	anchor  model.Tip
	history deque.Deque[entry]
	live    RefSet
}

// NewIndex returns an empty index at genesis keeping at most window deltas.
func NewIndex(window int) *Index {
	if window <= 0 {
		window = DefaultRollbackWindow
	}
	return &Index{
		window: window,
		live:   make(RefSet),
	}
}

// Tip returns the tip of the newest retained delta, or the anchor when there is none.
func (ix *Index) Tip() model.Tip {
	if ix.history.Len() == 0 {
		return ix.anchor
	}
	return ix.history.Back().delta.Tip
}

// Anchor returns the oldest point the index can roll back to.
func (ix *Index) Anchor() model.Tip {
	return ix.anchor
}

// Depth returns the number of retained deltas.
func (ix *Index) Depth() int {
	return ix.history.Len()
}

// Window returns the configured history bound.
func (ix *Index) Window() int {
	return ix.window
}

// Len returns the size of the live set.
func (ix *Index) Len() int {
	return len(ix.live)
}

// Contains reports whether ref is unspent.
func (ix *Index) Contains(ref model.TxOutRef) bool {
	_, ok := ix.live[ref]
	return ok
}

// Unspent returns the live set in TxOutRef order.
func (ix *Index) Unspent() []model.TxOutRef {
	return ix.live.Sorted()
}

// Restorable returns, in TxOutRef order, the refs spent by retained deltas.
// A rollback inside the window can put any of them back in the live set.
func (ix *Index) Restorable() []model.TxOutRef {
	set := make(RefSet)
	for i := 0; i < ix.history.Len(); i++ {
		for _, ref := range ix.history.At(i).spent {
			set[ref] = struct{}{}
		}
	}
	return set.Sorted()
}

// Insert applies d on top of the current tip. The index is left untouched on error.
func (ix *Index) Insert(d Delta) (InsertPosition, error) {
	cur := ix.Tip()
	if !d.Tip.Succeeds(cur) {
		return InsertPosition{}, &InsertError{
			Reason:      insertReason(cur, d.Tip),
			Current:     cur,
			Conflicting: d.Tip,
		}
	}

	e := entry{delta: d}
	for ref := range d.Consumed {
		if _, ok := ix.live[ref]; ok {
			e.spent = append(e.spent, ref)
			delete(ix.live, ref)
		}
	}
	for ref := range d.Produced {
		ix.live[ref] = struct{}{}
	}
	ix.history.PushBack(e)

	folded := 0
	for ix.history.Len() > ix.window {
		oldest := ix.history.PopFront()
		ix.anchor = oldest.delta.Tip
		folded++
	}
	return InsertPosition{Depth: ix.history.Len(), Folded: folded}, nil
}

func insertReason(cur, tip model.Tip) InsertReason {
	switch {
	case tip == cur:
		return InsertDuplicateBlock
	case !cur.Before(tip):
		return InsertOlderBlock
	default:
		return InsertNotSuccessor
	}
}

// Rollback discards every delta newer than target and restores the live set
// to what it was at target. The index is left untouched on error.
func (ix *Index) Rollback(target model.Tip) (model.Tip, error) {
	cur := ix.Tip()
	if target == cur {
		return cur, nil
	}

	keep := -1
	if target != ix.anchor {
		for i := ix.history.Len() - 1; i >= 0; i-- {
			if ix.history.At(i).delta.Tip == target {
				keep = i
				break
			}
		}
		if keep < 0 {
			reason := RollbackTipMismatch
			if target.Before(ix.anchor) {
				reason = RollbackOldPointNotFound
			}
			return cur, &RollbackError{
				Reason:  reason,
				Target:  target,
				Current: cur,
				Oldest:  ix.anchor,
			}
		}
	}

	for ix.history.Len() > keep+1 {
		ix.undo(ix.history.PopBack())
	}
	return ix.Tip(), nil
}

func (ix *Index) undo(e entry) {
	for ref := range e.delta.Produced {
		delete(ix.live, ref)
	}
	for _, ref := range e.spent {
		ix.live[ref] = struct{}{}
	}
}
