package codec

import (
	"encoding/hex"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
	"golang.org/x/crypto/blake2b"
)

const scriptHashSize = 28

// plutusTag is the language tag prefixed to script bytes before hashing.
// It does not depend on the role, so one script has one hash in every role.
const plutusTag = 0x02

// HashDatum returns the blake2b-256 hash of a datum.
func HashDatum(d model.Datum) model.DatumHash {
	sum := blake2b.Sum256(d)
	return model.DatumHash(hex.EncodeToString(sum[:]))
}

// HashRedeemer returns the blake2b-256 hash of a redeemer.
func HashRedeemer(r model.Redeemer) model.ScriptHash {
	sum := blake2b.Sum256(r)
	return model.ScriptHash(hex.EncodeToString(sum[:]))
}

// HashScript returns the blake2b-224 hash of the tagged script. Redeemers hash like HashRedeemer.
func HashScript(kind model.ScriptKind, s model.Script) model.ScriptHash {
	if kind == model.RedeemerScript {
		return HashRedeemer(model.Redeemer(s))
	}
	h, err := blake2b.New(scriptHashSize, nil)
	if err != nil {
		// Only returned for sizes outside 1..64.
		panic(err)
	}
	h.Write([]byte{plutusTag})
	h.Write(s)
	return model.ScriptHash(hex.EncodeToString(h.Sum(nil)))
}
