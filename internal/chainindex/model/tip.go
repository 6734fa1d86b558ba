// Package model defines domain models for the chain index.
package model

import "fmt"

// Tip identifies a point on the chain the index is synchronized to.
type Tip struct {
	Slot    uint64
	BlockNo uint64
	BlockID string
}

// TipAtGenesis is the tip of the empty chain.
var TipAtGenesis = Tip{}

// IsGenesis reports whether t is the origin tip.
func (t Tip) IsGenesis() bool {
	return t == TipAtGenesis
}

// Before reports whether t is strictly older than other. Genesis is older than any block.
func (t Tip) Before(other Tip) bool {
	if t.IsGenesis() {
		return !other.IsGenesis()
	}
	if other.IsGenesis() {
		return false
	}
	return t.Slot < other.Slot
}

// Succeeds reports whether t directly extends prev.
func (t Tip) Succeeds(prev Tip) bool {
	if t.IsGenesis() {
		return false
	}
	if prev.IsGenesis() {
		return true
	}
	return t.BlockNo == prev.BlockNo+1 && t.Slot > prev.Slot
}

func (t Tip) String() string {
	if t.IsGenesis() {
		return "genesis"
	}
	return fmt.Sprintf("%s@%d#%d", t.BlockID, t.Slot, t.BlockNo)
}
