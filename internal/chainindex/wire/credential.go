package wire

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

// Bech32 prefixes for key and script hashes.
const (
	PubKeyHashPrefix = "addr_vkh"
	ScriptHashPrefix = "script"
)

// FormatCredential renders c as bech32 text.
func FormatCredential(c model.Credential) (string, error) {
	raw, err := hex.DecodeString(c.Hash)
	if err != nil {
		return "", fmt.Errorf("credential hash: %w", err)
	}
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert credential bits: %w", err)
	}

	hrp := PubKeyHashPrefix
	if c.Kind == model.ScriptCredential {
		hrp = ScriptHashPrefix
	}
	return bech32.Encode(hrp, data)
}

// ParseCredential reads a bech32 key or script hash.
func ParseCredential(s string) (model.Credential, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return model.Credential{}, fmt.Errorf("decode credential %q: %w", s, err)
	}

	var kind model.CredentialKind
	switch hrp {
	case PubKeyHashPrefix:
		kind = model.PubKeyCredential
	case ScriptHashPrefix:
		kind = model.ScriptCredential
	default:
		return model.Credential{}, fmt.Errorf("credential %q: unexpected prefix %q", s, hrp)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return model.Credential{}, fmt.Errorf("convert credential bits: %w", err)
	}
	return model.Credential{Kind: kind, Hash: hex.EncodeToString(raw)}, nil
}

func hexString[T ~[]byte](b T) string {
	return hex.EncodeToString(b)
}
