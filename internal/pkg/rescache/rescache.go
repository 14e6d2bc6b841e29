// Package rescache provides an in-memory collection cache shared by the
// catalog-style usecases. Records live in an ordered map keyed by id so
// iteration preserves insertion order, and every mutation carries a monotonic
// stamp acquired when its operation was issued. A result is only applied if
// its stamp is newer than what the cache already holds for that id, so a
// create or update that completes after the record was deleted is dropped
// instead of resurrecting it.
package rescache

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type entry[T any] struct {
	value T
	stamp uint64
}

type Cache[T any] struct {
	mu      sync.Mutex
	keyFn   func(T) uuid.UUID
	entries map[uuid.UUID]*entry[T]
	order   []uuid.UUID
	// tombstones remember the stamp a record was deleted at; anything older
	// arriving later is stale.
	tombstones map[uuid.UUID]uint64
	nextStamp  uint64
	loaded     bool

	group singleflight.Group
}

func New[T any](keyFn func(T) uuid.UUID) *Cache[T] {
	return &Cache[T]{
		keyFn:      keyFn,
		entries:    make(map[uuid.UUID]*entry[T]),
		tombstones: make(map[uuid.UUID]uint64),
	}
}

// NextStamp hands out the sequence stamp for an operation about to be issued.
func (c *Cache[T]) NextStamp() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextStamp++
	return c.nextStamp
}

// GetOrLoad returns the cached collection, populating it through loader on
// first use. Concurrent callers collapse onto a single loader invocation.
// The loader runs detached from the initiating caller's cancellation, so one
// caller leaving mid-load cannot fail the collapsed waiters; that caller
// still gets its own context error back. A failed load leaves the cache
// unpopulated.
func (c *Cache[T]) GetOrLoad(ctx context.Context, loader func(context.Context) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	if c.loaded {
		snapshot := c.snapshotLocked()
		c.mu.Unlock()
		return snapshot, nil
	}
	c.mu.Unlock()

	_, err, _ := c.group.Do("list", func() (any, error) {
		stamp := c.NextStamp()
		values, err := loader(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, v := range values {
			c.applyLocked(stamp, v)
		}
		c.loaded = true
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(), nil
}

// Apply merges a confirmed server record into the collection. Stale results
// (older stamp than the current record or its tombstone) are discarded.
func (c *Cache[T]) Apply(stamp uint64, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(stamp, value)
}

func (c *Cache[T]) applyLocked(stamp uint64, value T) {
	id := c.keyFn(value)
	if ts, ok := c.tombstones[id]; ok && ts > stamp {
		return
	}
	if e, ok := c.entries[id]; ok {
		if stamp > e.stamp {
			e.value = value
			e.stamp = stamp
		}
		return
	}
	c.entries[id] = &entry[T]{value: value, stamp: stamp}
	c.order = append(c.order, id)
}

// Remove drops a record after the server confirmed its deletion and records
// the tombstone so older in-flight results for the id cannot re-add it.
func (c *Cache[T]) Remove(stamp uint64, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[id]; ok && e.stamp > stamp {
		return
	}
	delete(c.entries, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if ts, ok := c.tombstones[id]; !ok || stamp > ts {
		c.tombstones[id] = stamp
	}
}

func (c *Cache[T]) Get(id uuid.UUID) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		return e.value, true
	}
	var zero T
	return zero, false
}

func (c *Cache[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Cache[T]) snapshotLocked() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if e, ok := c.entries[id]; ok {
			out = append(out, e.value)
		}
	}
	return out
}

func (c *Cache[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Reset empties the cache so the next GetOrLoad hits the repository again.
func (c *Cache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uuid.UUID]*entry[T])
	c.order = nil
	c.tombstones = make(map[uuid.UUID]uint64)
	c.loaded = false
}
