package assistant

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned to a request that a newer one for the same key
// replaced before its result was delivered.
var ErrSuperseded = errors.New("superseded by a newer request")

// Debouncer delivers only the latest request per key. Each request waits a
// quiet period first; a newer request for the same key cancels the older one
// whether it is still waiting or already running.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	gen    uint64
	latest map[string]pending
}

type pending struct {
	gen    uint64
	cancel context.CancelFunc
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		latest: make(map[string]pending),
	}
}

// Do waits for the quiet period and runs fn unless a newer call with the
// same key arrives first, in which case it returns ErrSuperseded.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := d.register(key, cancel)
	defer d.release(key, gen)

	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			if !d.isLatest(key, gen) {
				return ErrSuperseded
			}
			return ctx.Err()
		}
	}

	if !d.isLatest(key, gen) {
		return ErrSuperseded
	}

	err := fn(ctx)
	if !d.isLatest(key, gen) {
		return ErrSuperseded
	}
	return err
}

func (d *Debouncer) register(key string, cancel context.CancelFunc) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.latest[key]; ok {
		prev.cancel()
	}
	d.gen++
	d.latest[key] = pending{gen: d.gen, cancel: cancel}
	return d.gen
}

func (d *Debouncer) release(key string, gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if cur, ok := d.latest[key]; ok && cur.gen == gen {
		delete(d.latest, key)
	}
}

func (d *Debouncer) isLatest(key string, gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	cur, ok := d.latest[key]
	return ok && cur.gen == gen
}
