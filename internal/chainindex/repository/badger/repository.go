// Package badger implements the chain index store on an embedded Badger database.
//
// Tables share one keyspace and are separated by key prefix. Keys of the
// address table embed the output reference, so the table is a sorted set.
package badger

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

var (
	datumPrefix   = []byte("d/")
	scriptPrefix  = []byte("s/")
	txPrefix      = []byte("t/")
	addressPrefix = []byte("a/")
)

const keySep = 0x00

// Options configures the embedded database.
type Options struct {
	Dir      string
	InMemory bool
}

// Repository is the Badger backed store.
type Repository struct {
	db      *badger.DB
	metrics Metrics
}

// NewRepository opens the database at opts.Dir, or an in-memory one.
func NewRepository(opts Options, logger *zap.Logger, metrics Metrics) (*Repository, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("badger dir is required")
	}

	bopts := badger.DefaultOptions(opts.Dir).
		WithLogger(zapLogger{logger.Named("badger").Sugar()}).
		WithLoggingLevel(badger.WARNING)
	if opts.InMemory {
		bopts = bopts.WithDir("").WithValueDir("").WithInMemory(true)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Repository{db: db, metrics: metrics}, nil
}

// Close flushes and closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}

type zapLogger struct {
	*zap.SugaredLogger
}

func (l zapLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

func tableKey(prefix []byte, key string) []byte {
	out := make([]byte, 0, len(prefix)+len(key))
	out = append(out, prefix...)
	return append(out, key...)
}

func addressKey(row model.AddressRow) []byte {
	out := make([]byte, 0, len(addressPrefix)+len(row.Credential)+len(row.Ref.TxID)+6)
	out = append(out, addressPrefix...)
	out = append(out, row.Credential...)
	out = append(out, keySep)
	out = append(out, row.Ref.TxID...)
	out = append(out, keySep)
	return binary.BigEndian.AppendUint32(out, row.Ref.Index)
}

func credentialPrefix(credential string) []byte {
	out := make([]byte, 0, len(addressPrefix)+len(credential)+1)
	out = append(out, addressPrefix...)
	out = append(out, credential...)
	return append(out, keySep)
}

func parseAddressKey(key []byte) (model.AddressRow, error) {
	rest := key[len(addressPrefix):]
	if len(rest) < 4 {
		return model.AddressRow{}, fmt.Errorf("address key %x: too short", key)
	}
	index := binary.BigEndian.Uint32(rest[len(rest)-4:])
	rest = rest[:len(rest)-4]
	if len(rest) == 0 || rest[len(rest)-1] != keySep {
		return model.AddressRow{}, fmt.Errorf("address key %x: missing separator", key)
	}
	rest = rest[:len(rest)-1]
	for i := len(rest) - 1; i >= 0; i-- {
		if rest[i] == keySep {
			return model.AddressRow{
				Credential: string(rest[:i]),
				Ref:        model.TxOutRef{TxID: model.TxID(rest[i+1:]), Index: index},
			}, nil
		}
	}
	return model.AddressRow{}, fmt.Errorf("address key %x: missing credential", key)
}

func scriptKey(hash model.ScriptHash, kind model.ScriptKind) []byte {
	return append(scriptHashPrefix(hash), kind...)
}

// scriptHashPrefix covers the rows of every kind stored under hash.
func scriptHashPrefix(hash model.ScriptHash) []byte {
	out := make([]byte, 0, len(scriptPrefix)+len(hash)+1+len(model.StakeValidatorScript))
	out = append(out, scriptPrefix...)
	out = append(out, hash...)
	return append(out, keySep)
}

func parseScriptKey(key []byte) (model.ScriptHash, model.ScriptKind, error) {
	rest := key[len(scriptPrefix):]
	i := bytes.IndexByte(rest, keySep)
	if i < 0 {
		return "", "", fmt.Errorf("script key %x: missing kind", key)
	}
	kind, err := model.ParseScriptKind(string(rest[i+1:]))
	if err != nil {
		return "", "", fmt.Errorf("script key %x: %w", key, err)
	}
	return model.ScriptHash(rest[:i]), kind, nil
}

// update writes every entry in one transaction.
func (r *Repository) update(n int, entry func(i int) ([]byte, []byte)) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for i := 0; i < n; i++ {
			k, v := entry(i)
			if err := txn.Set(k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) get(key []byte) ([]byte, bool, error) {
	var value []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// scan visits the keys under prefix in order until visit returns false.
func (r *Repository) scan(prefix []byte, visit func(key []byte) (bool, error)) error {
	return r.scanFrom(prefix, prefix, visit)
}

// scanFrom is scan starting at the first key not below from.
func (r *Repository) scanFrom(prefix, from []byte, visit func(key []byte) (bool, error)) error {
	return r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(from); it.ValidForPrefix(prefix); it.Next() {
			more, err := visit(it.Item().KeyCopy(nil))
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
		return nil
	})
}

func (r *Repository) deleteKeys(keys [][]byte) error {
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()

	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return err
		}
	}
	return wb.Flush()
}
