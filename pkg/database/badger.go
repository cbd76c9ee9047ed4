package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// KVIface is the store handle the repositories work against.
type KVIface interface {
	View(fn func(txn *badger.Txn) error) error
	Update(fn func(txn *badger.Txn) error) error
	NextSequence() (uint64, error)
	Close() error
}

// DB wraps an in-memory badger instance. Nothing survives a restart.
type DB struct {
	kv  *badger.DB
	seq *badger.Sequence
}

const sequenceKey = "meta_sequence"

// maxConflictRetries bounds how often a write transaction is replayed after
// losing a conflict to a concurrent writer.
const maxConflictRetries = 64

// InitDB opens the in-memory store.
func InitDB(log *zap.Logger) (*DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(newBadgerLogger(log))

	kv, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	seq, err := kv.GetSequence([]byte(sequenceKey), 100)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("allocate sequence: %w", err)
	}

	return &DB{kv: kv, seq: seq}, nil
}

// View implements KVIface
func (db *DB) View(fn func(txn *badger.Txn) error) error {
	return db.kv.View(fn)
}

// Update implements KVIface
func (db *DB) Update(fn func(txn *badger.Txn) error) error {
	return db.kv.Update(fn)
}

// NextSequence returns a process-wide increasing number used to keep
// insertion order.
func (db *DB) NextSequence() (uint64, error) {
	return db.seq.Next()
}

// Close implements KVIface
func (db *DB) Close() error {
	if err := db.seq.Release(); err != nil {
		db.kv.Close()
		return err
	}
	return db.kv.Close()
}

// MakeKey joins a table prefix and an id, e.g. "user_<uuid>".
func MakeKey(prefix, id string) []byte {
	return []byte(fmt.Sprintf("%s_%s", prefix, id))
}

// Get decodes the value at key into a new T. A missing key yields (nil, nil).
func Get[T any](db KVIface, key []byte) (*T, error) {
	var out *T
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			out = new(T)
			return json.Unmarshal(v, out)
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put stores value as JSON at key, replacing any previous value.
func Put(db KVIface, key []byte, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return update(db, func(txn *badger.Txn) error {
		return txn.Set(key, b)
	})
}

// Scan decodes every value under prefix in key order. Returning false from fn
// stops the scan.
func Scan[T any](db KVIface, prefix []byte, fn func(*T) bool) error {
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var value T
			err := it.Item().Value(func(v []byte) error {
				return json.Unmarshal(v, &value)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			if !fn(&value) {
				return nil
			}
		}
		return nil
	})
}

// Mutate loads the value at key, applies fn and writes it back in a single
// transaction. A missing key yields (nil, nil) and fn is not called.
func Mutate[T any](db KVIface, key []byte, fn func(*T) error) (*T, error) {
	var out *T
	err := update(db, func(txn *badger.Txn) error {
		out = nil
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		value := new(T)
		if err := item.Value(func(v []byte) error {
			return json.Unmarshal(v, value)
		}); err != nil {
			return err
		}

		if err := fn(value); err != nil {
			return err
		}

		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := txn.Set(key, b); err != nil {
			return err
		}
		out = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes key. Deleting a missing key is not an error.
func Delete(db KVIface, keys ...[]byte) error {
	return update(db, func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// update runs fn in a write transaction, replaying it from scratch when the
// commit loses to a concurrent writer. fn must not keep state between runs.
func update(db KVIface, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		time.Sleep(time.Duration(rand.IntN(attempt+1)+1) * 100 * time.Microsecond)
	}
	return fmt.Errorf("gave up after %d attempts: %w", maxConflictRetries, err)
}

// badgerLogger routes badger's internal logging into zap.
type badgerLogger struct {
	*zap.SugaredLogger
}

func newBadgerLogger(log *zap.Logger) badgerLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return badgerLogger{
		log.Named("badger").WithOptions(zap.IncreaseLevel(zap.WarnLevel)).Sugar(),
	}
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
