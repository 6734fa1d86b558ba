package model

type (
	// TxID is the hex encoded transaction id.
	TxID string
	// DatumHash is the hex encoded blake2b-256 hash of a datum.
	DatumHash string
	// ScriptHash is the hex encoded hash of a validator, minting policy, stake validator or redeemer.
	ScriptHash string
)

type (
	// Datum is CBOR encoded plutus data attached to a script output.
	Datum []byte
	// Script is a serialized script. The index never executes it.
	Script []byte
	// Redeemer is CBOR encoded plutus data supplied when spending a script output.
	Redeemer []byte
)

// ValidRange is the slot interval a transaction is valid in. Zero bounds are open.
type ValidRange struct {
	From uint64 `cbor:"0,keyasint,omitempty"`
	To   uint64 `cbor:"1,keyasint,omitempty"`
}

// Transaction is a confirmed transaction together with the artifacts it references.
type Transaction struct {
	TxID            TxID                    `cbor:"0,keyasint"`
	Inputs          []TxOutRef              `cbor:"1,keyasint"`
	Outputs         []TxOut                 `cbor:"2,keyasint"`
	ValidRange      ValidRange              `cbor:"3,keyasint"`
	Datums          map[DatumHash]Datum     `cbor:"4,keyasint,omitempty"`
	Validators      map[ScriptHash]Script   `cbor:"5,keyasint,omitempty"`
	MintingPolicies map[ScriptHash]Script   `cbor:"6,keyasint,omitempty"`
	StakeValidators map[ScriptHash]Script   `cbor:"7,keyasint,omitempty"`
	Redeemers       map[ScriptHash]Redeemer `cbor:"8,keyasint,omitempty"`
}

// OutRefs returns references to every output of tx in order.
func (tx Transaction) OutRefs() []TxOutRef {
	refs := make([]TxOutRef, 0, len(tx.Outputs))
	for i := range tx.Outputs {
		refs = append(refs, TxOutRef{TxID: tx.TxID, Index: uint32(i)})
	}
	return refs
}

// Block is a confirmed block as delivered by the chain sync layer.
type Block struct {
	Tip          Tip
	Transactions []Transaction
}
