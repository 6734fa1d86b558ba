package model

import "fmt"

// CredentialKind tells who owns an output.
type CredentialKind uint8

const (
	// PubKeyCredential marks an output locked by a public key hash.
	PubKeyCredential CredentialKind = iota
	// ScriptCredential marks an output locked by a validator script hash.
	ScriptCredential
)

func (k CredentialKind) String() string {
	switch k {
	case PubKeyCredential:
		return "pubkey"
	case ScriptCredential:
		return "script"
	default:
		return fmt.Sprintf("credential(%d)", uint8(k))
	}
}

// Credential is the ownership discriminant of an output.
type Credential struct {
	Kind CredentialKind `cbor:"0,keyasint"`
	Hash string         `cbor:"1,keyasint"`
}

// Key is the string stored in the address table for the credential.
func (c Credential) Key() string {
	return c.Kind.String() + ":" + c.Hash
}

// Address of an output.
type Address struct {
	Credential Credential `cbor:"0,keyasint"`
}

// AssetQuantity is an amount of a native asset.
type AssetQuantity struct {
	PolicyID  string `cbor:"0,keyasint"`
	AssetName string `cbor:"1,keyasint"`
	Quantity  int64  `cbor:"2,keyasint"`
}

// Value carried by an output.
type Value struct {
	Lovelace uint64          `cbor:"0,keyasint"`
	Assets   []AssetQuantity `cbor:"1,keyasint,omitempty"`
}

// TxOut is an output inside a transaction.
type TxOut struct {
	Address   Address    `cbor:"0,keyasint"`
	Value     Value      `cbor:"1,keyasint"`
	DatumHash *DatumHash `cbor:"2,keyasint,omitempty"`
}

// TxOutRef identifies one output of one transaction.
type TxOutRef struct {
	TxID  TxID   `cbor:"0,keyasint"`
	Index uint32 `cbor:"1,keyasint"`
}

func (r TxOutRef) String() string {
	return fmt.Sprintf("%s#%d", r.TxID, r.Index)
}

// Less orders refs by transaction id, then output index.
func (r TxOutRef) Less(other TxOutRef) bool {
	if r.TxID != other.TxID {
		return r.TxID < other.TxID
	}
	return r.Index < other.Index
}
