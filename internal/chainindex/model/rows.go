package model

import "fmt"

// ScriptKind discriminates the artifacts sharing the script table.
type ScriptKind string

var (
	ValidatorScript      ScriptKind = "validator"
	MintingPolicyScript  ScriptKind = "minting_policy"
	StakeValidatorScript ScriptKind = "stake_validator"
	RedeemerScript       ScriptKind = "redeemer"
)

// ParseScriptKind validates a stored kind discriminant.
func ParseScriptKind(s string) (ScriptKind, error) {
	switch k := ScriptKind(s); k {
	case ValidatorScript, MintingPolicyScript, StakeValidatorScript, RedeemerScript:
		return k, nil
	default:
		return "", fmt.Errorf("unknown script kind %q", s)
	}
}

// DatumRow is a row of the datum table.
type DatumRow struct {
	Hash    DatumHash
	Payload []byte
}

// ScriptRow is a row of the script table shared by all script kinds.
type ScriptRow struct {
	Hash    ScriptHash
	Kind    ScriptKind
	Payload []byte
}

// TxRow is a row of the transaction table.
type TxRow struct {
	TxID    TxID
	Payload []byte
}

// AddressRow associates a credential with an output it owns.
type AddressRow struct {
	Credential string
	Ref        TxOutRef
}

// Diagnostics summarizes the store contents. Counts are -1 when the backend returned no aggregate.
type Diagnostics struct {
	NumTransactions  int64
	NumScripts       int64
	NumAddresses     int64
	SomeTransactions []TxID
}

// GCReport counts rows removed by a garbage collection pass.
type GCReport struct {
	AddressRows int
	Datums      int
	Scripts     int
}
