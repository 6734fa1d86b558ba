package model

// OutputKind tells which shape a ChainIndexTxOut has.
type OutputKind uint8

const (
	PublicKeyOutput OutputKind = iota
	ScriptOutput
)

// ValidatorField is the validator of a script output. Script is nil when the payload is not in the store.
type ValidatorField struct {
	Hash   ScriptHash
	Script Script
}

// Resolved reports whether the validator payload was found.
func (f ValidatorField) Resolved() bool {
	return f.Script != nil
}

// DatumField is the datum of a script output. Datum is nil when the payload is not in the store.
type DatumField struct {
	Hash  DatumHash
	Datum Datum
}

// Resolved reports whether the datum payload was found.
func (f DatumField) Resolved() bool {
	return f.Datum != nil
}

// ChainIndexTxOut is an output resolved against the store.
// Validator and Datum are set only for script outputs.
type ChainIndexTxOut struct {
	Kind      OutputKind
	Address   Address
	Value     Value
	Validator ValidatorField
	Datum     DatumField
}

// UtxoMembership answers whether a reference is unspent at Tip.
type UtxoMembership struct {
	Tip     Tip
	Unspent bool
}

// UtxoAtAddress lists the unspent refs owned by a credential at Tip.
// Truncated means more unspent refs may exist past the listed ones.
type UtxoAtAddress struct {
	Tip       Tip
	Refs      []TxOutRef
	Truncated bool
}
