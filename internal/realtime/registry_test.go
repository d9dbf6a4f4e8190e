package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSubscriber struct {
	mu       sync.Mutex
	received [][]byte
	failSend bool
	closed   bool
}

func (f *fakeSubscriber) Send(payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSend {
		return assert.AnError
	}
	f.received = append(f.received, payload)
	return nil
}

func (f *fakeSubscriber) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeSubscriber) messages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.received...)
}

func TestRegistry(t *testing.T) {
	t.Run("join is idempotent", func(t *testing.T) {
		r := NewRegistry()
		sub := &fakeSubscriber{}

		r.Join("project:p1", sub)
		r.Join("project:p1", sub)

		assert.Equal(t, 1, r.Count("project:p1"))
	})

	t.Run("leave unknown scope is a no-op", func(t *testing.T) {
		r := NewRegistry()
		sub := &fakeSubscriber{}

		r.Leave("project:p1", sub)

		assert.Equal(t, 0, r.Count("project:p1"))
	})

	t.Run("leave removes only that scope", func(t *testing.T) {
		r := NewRegistry()
		sub := &fakeSubscriber{}
		r.Join("project:p1", sub)
		r.Join("team:t1", sub)

		r.Leave("project:p1", sub)

		assert.Equal(t, 0, r.Count("project:p1"))
		assert.Equal(t, 1, r.Count("team:t1"))
	})

	t.Run("drop removes from every scope", func(t *testing.T) {
		r := NewRegistry()
		sub := &fakeSubscriber{}
		other := &fakeSubscriber{}
		r.Join("project:p1", sub)
		r.Join("team:t1", sub)
		r.Join("team:t1", other)

		r.Drop(sub)

		assert.Equal(t, 0, r.Count("project:p1"))
		assert.Equal(t, 1, r.Count("team:t1"))
	})

	t.Run("subscribers snapshot", func(t *testing.T) {
		r := NewRegistry()
		a := &fakeSubscriber{}
		b := &fakeSubscriber{}
		r.Join("task:t1", a)
		r.Join("task:t1", b)

		subs := r.Subscribers("task:t1")

		assert.Len(t, subs, 2)
		assert.Empty(t, r.Subscribers("task:t2"))
	})

	t.Run("concurrent join and leave", func(t *testing.T) {
		r := NewRegistry()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			sub := &fakeSubscriber{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				r.Join("project:p1", sub)
				r.Leave("project:p1", sub)
			}()
		}
		wg.Wait()

		assert.Equal(t, 0, r.Count("project:p1"))
	})
}

func TestScopeKeys(t *testing.T) {
	assert.Equal(t, "team:t1", TeamScope("t1"))
	assert.Equal(t, "project:p1", ProjectScope("p1"))
	assert.Equal(t, "task:k1", TaskScope("k1"))

	assert.True(t, ValidScope("project:p1"))
	assert.False(t, ValidScope("project:"))
	assert.False(t, ValidScope("channel:x"))
	assert.False(t, ValidScope(""))
}
