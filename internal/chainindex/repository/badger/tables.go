package badger

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

// InsertDatums stores datum rows in one transaction.
func (r *Repository) InsertDatums(_ context.Context, rows []model.DatumRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_datums", err, start)
	}()

	err = r.update(len(rows), func(i int) ([]byte, []byte) {
		return tableKey(datumPrefix, string(rows[i].Hash)), rows[i].Payload
	})
	if err != nil {
		return fmt.Errorf("insert datums: %w", err)
	}
	return nil
}

// InsertScripts stores script rows of any kind in one transaction.
func (r *Repository) InsertScripts(_ context.Context, rows []model.ScriptRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_scripts", err, start)
	}()

	err = r.update(len(rows), func(i int) ([]byte, []byte) {
		return scriptKey(rows[i].Hash, rows[i].Kind), rows[i].Payload
	})
	if err != nil {
		return fmt.Errorf("insert scripts: %w", err)
	}
	return nil
}

// InsertTransactions stores transaction rows in one transaction.
func (r *Repository) InsertTransactions(_ context.Context, rows []model.TxRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	err = r.update(len(rows), func(i int) ([]byte, []byte) {
		return tableKey(txPrefix, string(rows[i].TxID)), rows[i].Payload
	})
	if err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

// InsertAddresses stores credential to output associations in one transaction.
func (r *Repository) InsertAddresses(_ context.Context, rows []model.AddressRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_addresses", err, start)
	}()

	err = r.update(len(rows), func(i int) ([]byte, []byte) {
		return addressKey(rows[i]), nil
	})
	if err != nil {
		return fmt.Errorf("insert addresses: %w", err)
	}
	return nil
}

// Datum returns the datum row stored under hash.
func (r *Repository) Datum(_ context.Context, hash model.DatumHash) (model.DatumRow, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("datum", err, start)
	}()

	payload, found, err := r.get(tableKey(datumPrefix, string(hash)))
	if err != nil {
		return model.DatumRow{}, false, fmt.Errorf("get datum: %w", err)
	}
	if !found {
		return model.DatumRow{}, false, nil
	}
	return model.DatumRow{Hash: hash, Payload: payload}, true, nil
}

// Script returns the script row stored under hash with the given kind.
func (r *Repository) Script(_ context.Context, hash model.ScriptHash, kind model.ScriptKind) (model.ScriptRow, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("script", err, start)
	}()

	payload, found, err := r.get(scriptKey(hash, kind))
	if err != nil {
		return model.ScriptRow{}, false, fmt.Errorf("get script: %w", err)
	}
	if !found {
		return model.ScriptRow{}, false, nil
	}
	return model.ScriptRow{Hash: hash, Kind: kind, Payload: payload}, true, nil
}

// Transaction returns the transaction row stored under txid.
func (r *Repository) Transaction(_ context.Context, txid model.TxID) (model.TxRow, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction", err, start)
	}()

	payload, found, err := r.get(tableKey(txPrefix, string(txid)))
	if err != nil {
		return model.TxRow{}, false, fmt.Errorf("get transaction: %w", err)
	}
	if !found {
		return model.TxRow{}, false, nil
	}
	return model.TxRow{TxID: txid, Payload: payload}, true, nil
}

// AddressRefs lists at most limit output references owned by credential that sort after the
// after cursor. A zero cursor starts at the first reference.
func (r *Repository) AddressRefs(_ context.Context, credential string, after model.TxOutRef, limit int) ([]model.TxOutRef, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_refs", err, start)
	}()

	refs := make([]model.TxOutRef, 0)
	if limit <= 0 {
		return refs, nil
	}
	prefix := credentialPrefix(credential)
	from := prefix
	if after != (model.TxOutRef{}) {
		from = addressKey(model.AddressRow{Credential: credential, Ref: after})
	}
	err = r.scanFrom(prefix, from, func(key []byte) (bool, error) {
		row, perr := parseAddressKey(key)
		if perr != nil {
			return false, perr
		}
		if row.Ref == after {
			return true, nil
		}
		refs = append(refs, row.Ref)
		return len(refs) < limit, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan address refs: %w", err)
	}
	return refs, nil
}

// CountTransactions counts stored transactions. ok is false when the table is empty.
func (r *Repository) CountTransactions(_ context.Context) (uint64, bool, error) {
	return r.countKeys("count_transactions", txPrefix)
}

// CountScripts counts stored scripts of every kind.
func (r *Repository) CountScripts(_ context.Context) (uint64, bool, error) {
	return r.countKeys("count_scripts", scriptPrefix)
}

func (r *Repository) countKeys(operation string, prefix []byte) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	var n uint64
	err = r.scan(prefix, func([]byte) (bool, error) {
		n++
		return true, nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", operation, err)
	}
	return n, n > 0, nil
}

// CountDistinctCredentials counts credentials with at least one associated output.
func (r *Repository) CountDistinctCredentials(_ context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("count_distinct_credentials", err, start)
	}()

	var (
		n    uint64
		last []byte
	)
	err = r.scan(addressPrefix, func(key []byte) (bool, error) {
		row, perr := parseAddressKey(key)
		if perr != nil {
			return false, perr
		}
		if cred := []byte(row.Credential); last == nil || !bytes.Equal(cred, last) {
			n++
			last = cred
		}
		return true, nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("count distinct credentials: %w", err)
	}
	return n, n > 0, nil
}

// SampleTxIDs returns up to limit stored transaction ids.
func (r *Repository) SampleTxIDs(_ context.Context, limit int) ([]model.TxID, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("sample_txids", err, start)
	}()

	ids := make([]model.TxID, 0, limit)
	if limit <= 0 {
		return ids, nil
	}
	err = r.scan(txPrefix, func(key []byte) (bool, error) {
		ids = append(ids, model.TxID(key[len(txPrefix):]))
		return len(ids) < limit, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sample txids: %w", err)
	}
	return ids, nil
}
