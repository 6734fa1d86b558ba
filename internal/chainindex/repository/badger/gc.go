package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

// DatumHashes lists every stored datum hash.
func (r *Repository) DatumHashes(_ context.Context) ([]model.DatumHash, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("datum_hashes", err, start)
	}()

	var out []model.DatumHash
	err = r.scan(datumPrefix, func(key []byte) (bool, error) {
		out = append(out, model.DatumHash(key[len(datumPrefix):]))
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan datum hashes: %w", err)
	}
	return out, nil
}

// ScriptHashes lists every stored script hash.
func (r *Repository) ScriptHashes(_ context.Context) ([]model.ScriptHash, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("script_hashes", err, start)
	}()

	var out []model.ScriptHash
	err = r.scan(scriptPrefix, func(key []byte) (bool, error) {
		hash, _, perr := parseScriptKey(key)
		if perr != nil {
			return false, perr
		}
		if n := len(out); n == 0 || out[n-1] != hash {
			out = append(out, hash)
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan script hashes: %w", err)
	}
	return out, nil
}

// AddressRows lists every credential to output association.
func (r *Repository) AddressRows(_ context.Context) ([]model.AddressRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_rows", err, start)
	}()

	var out []model.AddressRow
	err = r.scan(addressPrefix, func(key []byte) (bool, error) {
		row, perr := parseAddressKey(key)
		if perr != nil {
			return false, perr
		}
		out = append(out, row)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan address rows: %w", err)
	}
	return out, nil
}

// DeleteDatums removes the datum rows with the given hashes.
func (r *Repository) DeleteDatums(_ context.Context, hashes []model.DatumHash) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_datums", err, start)
	}()

	keys := make([][]byte, len(hashes))
	for i, h := range hashes {
		keys[i] = tableKey(datumPrefix, string(h))
	}
	if err = r.deleteKeys(keys); err != nil {
		return fmt.Errorf("delete datums: %w", err)
	}
	return nil
}

// DeleteScripts removes the script rows of every kind with the given hashes.
func (r *Repository) DeleteScripts(_ context.Context, hashes []model.ScriptHash) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_scripts", err, start)
	}()

	var keys [][]byte
	for _, h := range hashes {
		err = r.scan(scriptHashPrefix(h), func(key []byte) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		if err != nil {
			return fmt.Errorf("scan scripts: %w", err)
		}
	}
	if err = r.deleteKeys(keys); err != nil {
		return fmt.Errorf("delete scripts: %w", err)
	}
	return nil
}

// DeleteAddressRows removes the given credential to output associations.
func (r *Repository) DeleteAddressRows(_ context.Context, rows []model.AddressRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_address_rows", err, start)
	}()

	keys := make([][]byte, len(rows))
	for i, row := range rows {
		keys[i] = addressKey(row)
	}
	if err = r.deleteKeys(keys); err != nil {
		return fmt.Errorf("delete address rows: %w", err)
	}
	return nil
}
