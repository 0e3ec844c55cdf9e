// Package sequence hands out uint32 ids for phrasebook entries.
//
// Ids start at 0 and count up, so early entries get the shortest phrases:
// the first 256 ids are one word, the next 65280 are two.
package sequence

import (
	"context"
	"errors"
)

// ErrExhausted is returned once every uint32 id has been issued.
var ErrExhausted = errors.New("sequence: uint32 ids exhausted")

// Sequence abstracts where the counter lives.
// Use Local for a single process, or Redis to share ids between replicas.
type Sequence interface {
	// Next reserves and returns the next id.
	Next(ctx context.Context) (uint32, error)
	// Issued reports how many ids have been handed out so far.
	Issued(ctx context.Context) (uint64, error)
	// Close releases resources (no-op ok).
	Close(context.Context) error
}

const maxIssued = uint64(1) << 32

// idFor maps the 1-based counter value returned by an increment to an id.
func idFor(n uint64) (uint32, error) {
	if n == 0 || n > maxIssued {
		return 0, ErrExhausted
	}
	return uint32(n - 1), nil
}
