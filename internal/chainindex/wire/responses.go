package wire

import "github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"

// Block is the body of an append command.
type Block struct {
	Tip          Tip           `json:"tip"`
	Transactions []Transaction `json:"transactions"`
}

// Model converts every transaction of the block.
func (b Block) Model() (model.Tip, []model.Transaction, error) {
	txs := make([]model.Transaction, 0, len(b.Transactions))
	for _, t := range b.Transactions {
		tx, err := t.Model()
		if err != nil {
			return model.Tip{}, nil, err
		}
		txs = append(txs, tx)
	}
	return b.Tip.Model(), txs, nil
}

// Rollback is the body of a rollback command.
type Rollback struct {
	Tip Tip `json:"tip"`
}

// Payload is a single hex encoded artifact.
type Payload struct {
	Hash    string `json:"hash"`
	Payload string `json:"payload"`
}

type ChainIndexTxOut struct {
	Kind       string     `json:"kind"`
	Credential Credential `json:"credential"`
	Value      Value      `json:"value"`
	Validator  *Artifact  `json:"validator,omitempty"`
	Datum      *Artifact  `json:"datum,omitempty"`
}

// Artifact is a hash with its payload when the payload was found.
type Artifact struct {
	Hash     string  `json:"hash"`
	Payload  *string `json:"payload,omitempty"`
	Resolved bool    `json:"resolved"`
}

func FromChainIndexTxOut(o model.ChainIndexTxOut) ChainIndexTxOut {
	out := ChainIndexTxOut{
		Kind:       "pubkey",
		Credential: FromCredential(o.Address.Credential),
		Value:      FromValue(o.Value),
	}
	if o.Kind != model.ScriptOutput {
		return out
	}
	out.Kind = "script"
	out.Validator = &Artifact{Hash: string(o.Validator.Hash), Resolved: o.Validator.Resolved()}
	if out.Validator.Resolved {
		p := hexString(o.Validator.Script)
		out.Validator.Payload = &p
	}
	out.Datum = &Artifact{Hash: string(o.Datum.Hash), Resolved: o.Datum.Resolved()}
	if out.Datum.Resolved {
		p := hexString(o.Datum.Datum)
		out.Datum.Payload = &p
	}
	return out
}

type UtxoMembership struct {
	Tip     Tip  `json:"tip"`
	Unspent bool `json:"unspent"`
}

func FromUtxoMembership(m model.UtxoMembership) UtxoMembership {
	return UtxoMembership{Tip: FromTip(m.Tip), Unspent: m.Unspent}
}

type UtxoAtAddress struct {
	Tip       Tip        `json:"tip"`
	Refs      []TxOutRef `json:"refs"`
	Truncated bool       `json:"truncated,omitempty"`
}

func FromUtxoAtAddress(u model.UtxoAtAddress) UtxoAtAddress {
	return UtxoAtAddress{Tip: FromTip(u.Tip), Refs: FromTxOutRefs(u.Refs), Truncated: u.Truncated}
}

type Diagnostics struct {
	NumTransactions  int64    `json:"numTransactions"`
	NumScripts       int64    `json:"numScripts"`
	NumAddresses     int64    `json:"numAddresses"`
	SomeTransactions []string `json:"someTransactions"`
}

func FromDiagnostics(d model.Diagnostics) Diagnostics {
	out := Diagnostics{
		NumTransactions:  d.NumTransactions,
		NumScripts:       d.NumScripts,
		NumAddresses:     d.NumAddresses,
		SomeTransactions: make([]string, len(d.SomeTransactions)),
	}
	for i, id := range d.SomeTransactions {
		out.SomeTransactions[i] = string(id)
	}
	return out
}

type GCReport struct {
	AddressRows int `json:"addressRows"`
	Datums      int `json:"datums"`
	Scripts     int `json:"scripts"`
}

func FromGCReport(r model.GCReport) GCReport {
	return GCReport{AddressRows: r.AddressRows, Datums: r.Datums, Scripts: r.Scripts}
}

// Error is the body of every non 2xx response.
type Error struct {
	Error string `json:"error"`
}
