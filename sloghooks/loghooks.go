// Package sloghooks reports rejected decode input through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/wordcodec"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RejectEvery  uint64
	TooManyEvery uint64
	// Optional word redactor. Defaults to a SHA-256 prefix, since a rejected
	// word may be part of a mistyped secret. Return w to log words verbatim.
	Redact func(w string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr  atomic.Uint64
	tooManyCtr atomic.Uint64
}

var _ wordcodec.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(w string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(w)
	}
	sum := sha256.Sum256([]byte(w))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) WordRejected(index int, word string) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Info("wordcodec.word_rejected",
		"index", index,
		"word", h.redact(word),
		"len", len(word))
}

func (h *Hooks) TooManyWords(count int) {
	if h.l == nil || !sample(h.opts.TooManyEvery, &h.tooManyCtr) {
		return
	}
	h.l.Info("wordcodec.too_many_words",
		"count", count,
		"max", wordcodec.MaxUint32Words)
}
