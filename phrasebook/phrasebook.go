// Package phrasebook stores values under uint32 ids and lets people fetch them
// back by the id's word phrase, e.g. "ant stamp" for id 1234.
//
// Components:
//   - Provider: byte store with TTL (Ristretto, BigCache, Redis).
//   - Sequence: id allocator for Add. Local by default; Redis to share ids.
//   - *wordcodec.Codec: id <-> phrase. Default English codec if nil.
//
// Keys:
//
//	phrase:<ns>:<id as 8 hex> - one entry per id
//
// Entries are framed with their id. A read whose frame is corrupt or carries
// a different id deletes the entry and reports a miss.
package phrasebook

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unkn0wn-root/wordcodec"
	"github.com/unkn0wn-root/wordcodec/internal/util"
	"github.com/unkn0wn-root/wordcodec/internal/wire"
	pr "github.com/unkn0wn-root/wordcodec/provider"
	"github.com/unkn0wn-root/wordcodec/sequence"
)

const defaultTTL = 24 * time.Hour

var (
	// ErrRejected is returned when the provider refused a write (eviction pressure).
	ErrRejected = errors.New("phrasebook: provider rejected write")
	// ErrEmptyPhrase is returned by Get and Delete for a phrase with no words.
	// The codec decodes that to id 0, which must not address an entry.
	ErrEmptyPhrase = errors.New("phrasebook: empty phrase")
)

type CostFunc func(key string, raw []byte) int64

type Options struct {
	// Required
	Namespace string // e.g. "invite", "ticket"
	Provider  pr.Provider

	Sequence    sequence.Sequence // nil => sequence.NewLocal()
	Words       *wordcodec.Codec  // nil => wordcodec.Default()
	Logger      wordcodec.Logger  // nil => NopLogger
	DefaultTTL  time.Duration     // 0 => 24h
	ComputeCost CostFunc          // default 1
}

type Book struct {
	ns          string
	provider    pr.Provider
	seq         sequence.Sequence
	words       *wordcodec.Codec
	log         wordcodec.Logger
	ttl         time.Duration
	computeCost CostFunc
}

func New(opts Options) (*Book, error) {
	if opts.Provider == nil {
		return nil, errors.New("phrasebook: provider is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("phrasebook: namespace is required")
	}

	b := &Book{
		ns:          opts.Namespace,
		provider:    opts.Provider,
		seq:         opts.Sequence,
		words:       opts.Words,
		log:         opts.Logger,
		ttl:         opts.DefaultTTL,
		computeCost: opts.ComputeCost,
	}
	if b.seq == nil {
		b.seq = sequence.NewLocal()
	}
	if b.words == nil {
		b.words = wordcodec.Default()
	}
	if b.log == nil {
		b.log = wordcodec.NopLogger{}
	}
	if b.ttl == 0 {
		b.ttl = defaultTTL
	}
	if b.computeCost == nil {
		b.computeCost = func(string, []byte) int64 { return 1 }
	}
	return b, nil
}

// Close closes the sequence, then the provider.
func (b *Book) Close(ctx context.Context) error {
	_ = b.seq.Close(ctx)
	return b.provider.Close(ctx)
}

// Phrase returns the phrase that addresses id.
func (b *Book) Phrase(id uint32) string { return b.words.EncodeUint32Joined(id) }

// Add stores value under a freshly allocated id and returns the id's phrase.
func (b *Book) Add(ctx context.Context, value []byte, ttl time.Duration) (phrase string, id uint32, err error) {
	id, err = b.seq.Next(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("phrasebook: allocate id: %w", err)
	}
	phrase, err = b.Put(ctx, id, value, ttl)
	if err != nil {
		return "", 0, err
	}
	return phrase, id, nil
}

// Put stores value under id, replacing any previous value, and returns the
// id's phrase. ttl == 0 uses DefaultTTL.
func (b *Book) Put(ctx context.Context, id uint32, value []byte, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = b.ttl
	}
	k := util.EntryKey(b.ns, id)
	raw := wire.EncodeEntry(id, value)
	ok, err := b.provider.Set(ctx, k, raw, b.computeCost(k, raw), ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		b.log.Warn("phrasebook put rejected by provider", wordcodec.Fields{"ns": b.ns, "id": id})
		return "", ErrRejected
	}
	return b.Phrase(id), nil
}

// Get looks up the value behind phrase. Word case and spacing do not matter.
// A phrase with an unknown word (or too many words) returns the
// *wordcodec.DecodeError so the caller can point at it; a blank phrase
// returns ErrEmptyPhrase.
func (b *Book) Get(ctx context.Context, phrase string) ([]byte, bool, error) {
	id, err := b.idOf(phrase)
	if err != nil {
		return nil, false, err
	}
	return b.GetID(ctx, id)
}

func (b *Book) GetID(ctx context.Context, id uint32) ([]byte, bool, error) {
	k := util.EntryKey(b.ns, id)
	raw, ok, err := b.provider.Get(ctx, k)
	if err != nil || !ok {
		return nil, false, err
	}
	got, payload, err := wire.DecodeEntry(raw)
	if err != nil {
		_ = b.provider.Del(ctx, k) // self-heal corrupt
		b.log.Debug("phrasebook dropped corrupt entry", wordcodec.Fields{"ns": b.ns, "id": id})
		return nil, false, nil
	}
	if got != id {
		_ = b.provider.Del(ctx, k)
		b.log.Debug("phrasebook dropped mismatched entry", wordcodec.Fields{"ns": b.ns, "id": id, "stored": got})
		return nil, false, nil
	}
	return payload, true, nil
}

// Delete removes the entry behind phrase.
func (b *Book) Delete(ctx context.Context, phrase string) error {
	id, err := b.idOf(phrase)
	if err != nil {
		return err
	}
	return b.provider.Del(ctx, util.EntryKey(b.ns, id))
}

func (b *Book) idOf(phrase string) (uint32, error) {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return 0, ErrEmptyPhrase
	}
	return b.words.DecodeUint32(words)
}
