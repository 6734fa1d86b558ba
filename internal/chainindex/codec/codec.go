// Package codec encodes stored payloads and computes content hashes.
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

// ErrCorruption reports stored bytes that fail to decode.
var ErrCorruption = errors.New("store decode corruption")

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: core deterministic enc mode: " + err.Error())
	}
	return em
}

// EncodeTransaction serializes tx for the transaction table.
func EncodeTransaction(tx model.Transaction) ([]byte, error) {
	b, err := encMode.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("encode transaction %s: %w", tx.TxID, err)
	}
	return b, nil
}

// DecodeTransaction reverses EncodeTransaction.
func DecodeTransaction(payload []byte) (model.Transaction, error) {
	var tx model.Transaction
	if err := cbor.Unmarshal(payload, &tx); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: transaction: %v", ErrCorruption, err)
	}
	return tx, nil
}

// EncodeBytes wraps an opaque artifact (datum, script, redeemer) as a CBOR byte string.
func EncodeBytes(b []byte) ([]byte, error) {
	out, err := encMode.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return out, nil
}

// DecodeBytes reverses EncodeBytes.
func DecodeBytes(payload []byte) ([]byte, error) {
	var b []byte
	if err := cbor.Unmarshal(payload, &b); err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrCorruption, err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}
