// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{RejectEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c, _ := wordcodec.New(wordcodec.Options{Hooks: hooks})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/wordcodec"
)

// Hooks forwards events to inner on background workers. When the queue is
// full events are dropped, never blocking the decoder; Dropped counts them.
type Hooks struct {
	inner   wordcodec.Hooks
	q       chan func()
	wg      sync.WaitGroup
	dropped atomic.Uint64

	mu     sync.RWMutex // guards closed and the close of q
	closed bool
}

var _ wordcodec.Hooks = (*Hooks)(nil)

func New(inner wordcodec.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events sent after Close
// are dropped.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) WordRejected(i int, w string) { h.try(func() { h.inner.WordRejected(i, w) }) }
func (h *Hooks) TooManyWords(n int)           { h.try(func() { h.inner.TooManyWords(n) }) }
