package sequence

import (
	"context"
	"sync/atomic"
)

// Local keeps the counter in-process. Restarting the process starts over
// unless the caller seeds it with NewLocalFrom.
type Local struct {
	n atomic.Uint64
}

var _ Sequence = (*Local)(nil)

func NewLocal() *Local { return &Local{} }

// NewLocalFrom returns a sequence whose next id is next.
func NewLocalFrom(next uint32) *Local {
	s := &Local{}
	s.n.Store(uint64(next))
	return s
}

func (s *Local) Next(context.Context) (uint32, error) {
	for {
		cur := s.n.Load()
		if cur >= maxIssued {
			return 0, ErrExhausted
		}
		if s.n.CompareAndSwap(cur, cur+1) {
			return idFor(cur + 1)
		}
	}
}

func (s *Local) Issued(context.Context) (uint64, error) { return s.n.Load(), nil }

func (s *Local) Close(context.Context) error { return nil }
