package assistant

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerRunsAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	start := time.Now()
	ran := false
	err := d.Do(context.Background(), "k", func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDebouncerSupersedesWaiting(t *testing.T) {
	d := NewDebouncer(200 * time.Millisecond)
	var runs int32

	first := make(chan error, 1)
	go func() {
		first <- d.Do(context.Background(), "k", func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		})
	}()

	time.Sleep(50 * time.Millisecond)
	err := d.Do(context.Background(), "k", func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	})

	require.NoError(t, err)
	require.ErrorIs(t, <-first, ErrSuperseded)
	assert.EqualValues(t, 1, atomic.LoadInt32(&runs))
}

func TestDebouncerSupersedesInFlight(t *testing.T) {
	d := NewDebouncer(0)

	started := make(chan struct{})
	first := make(chan error, 1)
	go func() {
		first <- d.Do(context.Background(), "k", func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	<-started
	err := d.Do(context.Background(), "k", func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	require.ErrorIs(t, <-first, ErrSuperseded)
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	errs := make(chan error, 2)
	for _, key := range []string{"a", "b"} {
		key := key
		go func() {
			errs <- d.Do(context.Background(), key, func(ctx context.Context) error { return nil })
		}()
	}

	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
}

func TestDebouncerCallerCancel(t *testing.T) {
	d := NewDebouncer(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Do(ctx, "k", func(ctx context.Context) error { return nil })
	require.True(t, errors.Is(err, context.Canceled))
}

func TestDebouncerReturnsFnError(t *testing.T) {
	d := NewDebouncer(0)
	boom := errors.New("boom")

	err := d.Do(context.Background(), "k", func(ctx context.Context) error { return boom })
	require.ErrorIs(t, err, boom)
}
