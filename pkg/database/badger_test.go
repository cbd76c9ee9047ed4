package database

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := InitDB(zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetMissingKey(t *testing.T) {
	db := openTestDB(t)

	got, err := Get[record](db, MakeKey("rec", "missing"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPutGet(t *testing.T) {
	db := openTestDB(t)
	key := MakeKey("rec", "a")

	require.NoError(t, Put(db, key, record{Name: "a", Count: 1}))

	got, err := Get[record](db, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record{Name: "a", Count: 1}, *got)
}

func TestScanPrefix(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Put(db, MakeKey("rec", "1"), record{Name: "one"}))
	require.NoError(t, Put(db, MakeKey("rec", "2"), record{Name: "two"}))
	require.NoError(t, Put(db, MakeKey("other", "1"), record{Name: "other"}))

	var names []string
	err := Scan(db, []byte("rec_"), func(r *record) bool {
		names = append(names, r.Name)
		return true
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, names)

	var first []string
	err = Scan(db, []byte("rec_"), func(r *record) bool {
		first = append(first, r.Name)
		return false
	})
	require.NoError(t, err)
	assert.Len(t, first, 1)
}

func TestMutate(t *testing.T) {
	db := openTestDB(t)
	key := MakeKey("rec", "m")
	require.NoError(t, Put(db, key, record{Name: "m", Count: 1}))

	got, err := Mutate(db, key, func(r *record) error {
		r.Count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)

	stored, err := Get[record](db, key)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Count)
}

func TestMutateMissingKey(t *testing.T) {
	db := openTestDB(t)

	called := false
	got, err := Mutate(db, MakeKey("rec", "none"), func(r *record) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, called)
}

func TestMutateErrorLeavesValue(t *testing.T) {
	db := openTestDB(t)
	key := MakeKey("rec", "e")
	require.NoError(t, Put(db, key, record{Name: "e", Count: 5}))

	boom := errors.New("boom")
	_, err := Mutate(db, key, func(r *record) error {
		r.Count = 99
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := Get[record](db, key)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Count)
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	key := MakeKey("rec", "d")
	require.NoError(t, Put(db, key, record{Name: "d"}))

	require.NoError(t, Delete(db, key, MakeKey("rec", "never-existed")))

	got, err := Get[record](db, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNextSequenceIncreases(t *testing.T) {
	db := openTestDB(t)

	a, err := db.NextSequence()
	require.NoError(t, err)
	b, err := db.NextSequence()
	require.NoError(t, err)
	assert.Greater(t, b, a)
}

func TestMutateConcurrentWritersAllLand(t *testing.T) {
	db := openTestDB(t)
	key := MakeKey("rec", "counter")
	require.NoError(t, Put(db, key, record{Name: "counter"}))

	const writers = 100
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Mutate(db, key, func(r *record) error {
				r.Count++
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	got, err := Get[record](db, key)
	require.NoError(t, err)
	assert.Equal(t, writers, got.Count)
}
