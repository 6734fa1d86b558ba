// Package wire holds the JSON shapes shared by the HTTP and Kafka transports.
//
// Artifact payloads travel as lists of hex encoded CBOR. Their keys are not
// sent; they are recomputed from the payload when converting to the model.
package wire

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/codec"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

type Tip struct {
	Slot    uint64 `json:"slot"`
	BlockNo uint64 `json:"blockNo"`
	BlockID string `json:"blockId"`
}

func (t Tip) Model() model.Tip {
	return model.Tip{Slot: t.Slot, BlockNo: t.BlockNo, BlockID: t.BlockID}
}

func FromTip(t model.Tip) Tip {
	return Tip{Slot: t.Slot, BlockNo: t.BlockNo, BlockID: t.BlockID}
}

type TxOutRef struct {
	TxID  string `json:"txId"`
	Index uint32 `json:"index"`
}

func (r TxOutRef) Model() model.TxOutRef {
	return model.TxOutRef{TxID: model.TxID(r.TxID), Index: r.Index}
}

func FromTxOutRef(r model.TxOutRef) TxOutRef {
	return TxOutRef{TxID: string(r.TxID), Index: r.Index}
}

func FromTxOutRefs(refs []model.TxOutRef) []TxOutRef {
	out := make([]TxOutRef, len(refs))
	for i, r := range refs {
		out[i] = FromTxOutRef(r)
	}
	return out
}

type Credential struct {
	Kind string `json:"kind"`
	Hash string `json:"hash"`
}

// Model maps the credential to its model form. The hash is lowercased to
// match the hex stored in the address table.
func (c Credential) Model() (model.Credential, error) {
	hash := strings.ToLower(c.Hash)
	switch c.Kind {
	case model.PubKeyCredential.String():
		return model.Credential{Kind: model.PubKeyCredential, Hash: hash}, nil
	case model.ScriptCredential.String():
		return model.Credential{Kind: model.ScriptCredential, Hash: hash}, nil
	default:
		return model.Credential{}, fmt.Errorf("unknown credential kind %q", c.Kind)
	}
}

func FromCredential(c model.Credential) Credential {
	return Credential{Kind: c.Kind.String(), Hash: c.Hash}
}

type Asset struct {
	PolicyID  string `json:"policyId"`
	AssetName string `json:"assetName"`
	Quantity  int64  `json:"quantity"`
}

type Value struct {
	Lovelace uint64  `json:"lovelace"`
	Assets   []Asset `json:"assets,omitempty"`
}

func (v Value) Model() model.Value {
	out := model.Value{Lovelace: v.Lovelace}
	for _, a := range v.Assets {
		out.Assets = append(out.Assets, model.AssetQuantity{PolicyID: a.PolicyID, AssetName: a.AssetName, Quantity: a.Quantity})
	}
	return out
}

func FromValue(v model.Value) Value {
	out := Value{Lovelace: v.Lovelace}
	for _, a := range v.Assets {
		out.Assets = append(out.Assets, Asset{PolicyID: a.PolicyID, AssetName: a.AssetName, Quantity: a.Quantity})
	}
	return out
}

type TxOut struct {
	Credential Credential `json:"credential"`
	Value      Value      `json:"value"`
	DatumHash  *string    `json:"datumHash,omitempty"`
}

type Transaction struct {
	TxID            string     `json:"txId"`
	Inputs          []TxOutRef `json:"inputs"`
	Outputs         []TxOut    `json:"outputs"`
	ValidFrom       uint64     `json:"validFrom,omitempty"`
	ValidTo         uint64     `json:"validTo,omitempty"`
	Datums          []string   `json:"datums,omitempty"`
	Validators      []string   `json:"validators,omitempty"`
	MintingPolicies []string   `json:"mintingPolicies,omitempty"`
	StakeValidators []string   `json:"stakeValidators,omitempty"`
	Redeemers       []string   `json:"redeemers,omitempty"`
}

// Model decodes the payload lists and keys each artifact by its hash.
func (t Transaction) Model() (model.Transaction, error) {
	if t.TxID == "" {
		return model.Transaction{}, errors.New("transaction without id")
	}
	tx := model.Transaction{
		TxID:       model.TxID(t.TxID),
		ValidRange: model.ValidRange{From: t.ValidFrom, To: t.ValidTo},
	}

	for _, in := range t.Inputs {
		tx.Inputs = append(tx.Inputs, in.Model())
	}
	for i, o := range t.Outputs {
		cred, err := o.Credential.Model()
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d: %w", t.TxID, i, err)
		}
		out := model.TxOut{Address: model.Address{Credential: cred}, Value: o.Value.Model()}
		if o.DatumHash != nil {
			h := model.DatumHash(*o.DatumHash)
			out.DatumHash = &h
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	var err error
	if tx.Datums, err = decodeKeyed[model.DatumHash, model.Datum](t.Datums, hashDatum); err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s datums: %w", t.TxID, err)
	}
	if tx.Validators, err = decodeKeyed[model.ScriptHash, model.Script](t.Validators, hashScript(model.ValidatorScript)); err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s validators: %w", t.TxID, err)
	}
	if tx.MintingPolicies, err = decodeKeyed[model.ScriptHash, model.Script](t.MintingPolicies, hashScript(model.MintingPolicyScript)); err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s minting policies: %w", t.TxID, err)
	}
	if tx.StakeValidators, err = decodeKeyed[model.ScriptHash, model.Script](t.StakeValidators, hashScript(model.StakeValidatorScript)); err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s stake validators: %w", t.TxID, err)
	}
	if tx.Redeemers, err = decodeKeyed[model.ScriptHash, model.Redeemer](t.Redeemers, hashScript(model.RedeemerScript)); err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s redeemers: %w", t.TxID, err)
	}
	return tx, nil
}

func hashDatum(b []byte) model.DatumHash {
	return codec.HashDatum(b)
}

func hashScript(kind model.ScriptKind) func([]byte) model.ScriptHash {
	return func(b []byte) model.ScriptHash {
		return codec.HashScript(kind, b)
	}
}

func decodeKeyed[K comparable, V ~[]byte](payloads []string, hash func([]byte) K) (map[K]V, error) {
	if len(payloads) == 0 {
		return nil, nil
	}
	out := make(map[K]V, len(payloads))
	for i, p := range payloads {
		b, err := hex.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("payload %d: %w", i, err)
		}
		out[hash(b)] = V(b)
	}
	return out, nil
}

// FromTransaction renders tx with payload lists ordered by hash.
func FromTransaction(tx model.Transaction) Transaction {
	out := Transaction{
		TxID:      string(tx.TxID),
		Inputs:    FromTxOutRefs(tx.Inputs),
		Outputs:   make([]TxOut, len(tx.Outputs)),
		ValidFrom: tx.ValidRange.From,
		ValidTo:   tx.ValidRange.To,
	}
	for i, o := range tx.Outputs {
		out.Outputs[i] = TxOut{Credential: FromCredential(o.Address.Credential), Value: FromValue(o.Value)}
		if o.DatumHash != nil {
			h := string(*o.DatumHash)
			out.Outputs[i].DatumHash = &h
		}
	}
	out.Datums = encodeKeyed(tx.Datums)
	out.Validators = encodeKeyed(tx.Validators)
	out.MintingPolicies = encodeKeyed(tx.MintingPolicies)
	out.StakeValidators = encodeKeyed(tx.StakeValidators)
	out.Redeemers = encodeKeyed(tx.Redeemers)
	return out
}

func encodeKeyed[K ~string, V ~[]byte](m map[K]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = hex.EncodeToString(m[k])
	}
	return out
}
