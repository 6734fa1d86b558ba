// Package utxo tracks the unspent output set over a bounded history of block deltas.
package utxo

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

// RefSet is a set of output references.
type RefSet map[model.TxOutRef]struct{}

// Sorted returns the refs of s in TxOutRef order.
func (s RefSet) Sorted() []model.TxOutRef {
	refs := make([]model.TxOutRef, 0, len(s))
	for ref := range s {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
	return refs
}

// Delta is the set of outputs one block produced and consumed.
type Delta struct {
	Tip      model.Tip
	Produced RefSet
	Consumed RefSet
}

// FromBlock computes the delta of a block. Outputs created and spent inside the
// same block appear in neither set.
func FromBlock(tip model.Tip, txs []model.Transaction) Delta {
	d := Delta{
		Tip:      tip,
		Produced: make(RefSet),
		Consumed: make(RefSet),
	}
	for _, tx := range txs {
		for _, in := range tx.Inputs {
			if _, ok := d.Produced[in]; ok {
				delete(d.Produced, in)
				continue
			}
			d.Consumed[in] = struct{}{}
		}
		for _, ref := range tx.OutRefs() {
			d.Produced[ref] = struct{}{}
		}
	}
	return d
}
