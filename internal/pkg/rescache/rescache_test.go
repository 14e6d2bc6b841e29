//go:build unit

package rescache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"learnhub-api/internal/pkg/rescache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   uuid.UUID
	Name string
}

func newCache() *rescache.Cache[record] {
	return rescache.New(func(r record) uuid.UUID { return r.ID })
}

func TestGetOrLoad(t *testing.T) {
	t.Run("loads once and serves the snapshot afterwards", func(t *testing.T) {
		c := newCache()
		records := []record{
			{ID: uuid.New(), Name: "first"},
			{ID: uuid.New(), Name: "second"},
		}

		var calls int32
		loader := func(context.Context) ([]record, error) {
			atomic.AddInt32(&calls, 1)
			return records, nil
		}

		got, err := c.GetOrLoad(context.Background(), loader)
		require.NoError(t, err)
		assert.Equal(t, records, got)
		assert.True(t, c.Loaded())

		got, err = c.GetOrLoad(context.Background(), loader)
		require.NoError(t, err)
		assert.Equal(t, records, got)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("failed load leaves the cache unpopulated", func(t *testing.T) {
		c := newCache()
		boom := errors.New("backend down")

		_, err := c.GetOrLoad(context.Background(), func(context.Context) ([]record, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.False(t, c.Loaded())

		records := []record{{ID: uuid.New(), Name: "retry"}}
		got, err := c.GetOrLoad(context.Background(), func(context.Context) ([]record, error) {
			return records, nil
		})
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("concurrent callers all receive the collection", func(t *testing.T) {
		c := newCache()
		shared := []record{{ID: uuid.New(), Name: "shared"}}

		loader := func(context.Context) ([]record, error) {
			return shared, nil
		}

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				got, err := c.GetOrLoad(context.Background(), loader)
				assert.NoError(t, err)
				assert.Equal(t, shared, got)
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, shared, c.Snapshot())
	})

	t.Run("initiating caller's cancellation does not abort the load", func(t *testing.T) {
		c := newCache()
		records := []record{{ID: uuid.New(), Name: "survivor"}}

		ctx, cancel := context.WithCancel(context.Background())
		var calls int32
		_, err := c.GetOrLoad(ctx, func(loadCtx context.Context) ([]record, error) {
			atomic.AddInt32(&calls, 1)
			cancel()
			if loadCtx.Err() != nil {
				return nil, loadCtx.Err()
			}
			return records, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, c.Loaded())

		got, err := c.GetOrLoad(context.Background(), func(context.Context) ([]record, error) {
			return nil, errors.New("must not reload")
		})
		require.NoError(t, err)
		assert.Equal(t, records, got)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}

func TestApplyAndRemove(t *testing.T) {
	t.Run("created record appears exactly once in the listing", func(t *testing.T) {
		c := newCache()
		r := record{ID: uuid.New(), Name: "new"}

		stamp := c.NextStamp()
		c.Apply(stamp, r)
		c.Apply(stamp, r)

		snapshot := c.Snapshot()
		require.Len(t, snapshot, 1)
		assert.Equal(t, r, snapshot[0])
	})

	t.Run("newer update wins over an older in-flight one", func(t *testing.T) {
		c := newCache()
		id := uuid.New()

		older := c.NextStamp()
		newer := c.NextStamp()

		c.Apply(newer, record{ID: id, Name: "newer"})
		c.Apply(older, record{ID: id, Name: "older"})

		got, ok := c.Get(id)
		require.True(t, ok)
		assert.Equal(t, "newer", got.Name)
	})

	t.Run("removed record disappears from the listing", func(t *testing.T) {
		c := newCache()
		r := record{ID: uuid.New(), Name: "doomed"}

		c.Apply(c.NextStamp(), r)
		c.Remove(c.NextStamp(), r.ID)

		assert.Empty(t, c.Snapshot())
		_, ok := c.Get(r.ID)
		assert.False(t, ok)
	})

	t.Run("stale completion cannot resurrect a deleted record", func(t *testing.T) {
		c := newCache()
		id := uuid.New()

		// Create is issued first, then the delete, but the delete's
		// confirmation lands before the create's does.
		createStamp := c.NextStamp()
		deleteStamp := c.NextStamp()

		c.Remove(deleteStamp, id)
		c.Apply(createStamp, record{ID: id, Name: "ghost"})

		assert.Empty(t, c.Snapshot())
	})

	t.Run("record created after a delete of the same id reappears", func(t *testing.T) {
		c := newCache()
		id := uuid.New()

		c.Apply(c.NextStamp(), record{ID: id, Name: "v1"})
		c.Remove(c.NextStamp(), id)
		c.Apply(c.NextStamp(), record{ID: id, Name: "v2"})

		got, ok := c.Get(id)
		require.True(t, ok)
		assert.Equal(t, "v2", got.Name)
	})

	t.Run("insertion order is preserved across updates", func(t *testing.T) {
		c := newCache()
		first := record{ID: uuid.New(), Name: "a"}
		second := record{ID: uuid.New(), Name: "b"}

		c.Apply(c.NextStamp(), first)
		c.Apply(c.NextStamp(), second)

		first.Name = "a2"
		c.Apply(c.NextStamp(), first)

		snapshot := c.Snapshot()
		require.Len(t, snapshot, 2)
		assert.Equal(t, "a2", snapshot[0].Name)
		assert.Equal(t, "b", snapshot[1].Name)
	})
}

func TestReset(t *testing.T) {
	c := newCache()
	c.Apply(c.NextStamp(), record{ID: uuid.New(), Name: "gone after reset"})

	c.Reset()
	assert.False(t, c.Loaded())
	assert.Empty(t, c.Snapshot())

	records := []record{{ID: uuid.New(), Name: "fresh"}}
	got, err := c.GetOrLoad(context.Background(), func(context.Context) ([]record, error) {
		return records, nil
	})
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
