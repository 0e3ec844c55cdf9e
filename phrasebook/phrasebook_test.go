package phrasebook

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/unkn0wn-root/wordcodec"
	"github.com/unkn0wn-root/wordcodec/internal/util"
	"github.com/unkn0wn-root/wordcodec/internal/wire"
	pr "github.com/unkn0wn-root/wordcodec/provider"
	"github.com/unkn0wn-root/wordcodec/provider/bigcache"
	"github.com/unkn0wn-root/wordcodec/provider/ristretto"
	"github.com/unkn0wn-root/wordcodec/sequence"
)

type memEntry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

type memProvider struct {
	mu     sync.Mutex
	m      map[string]memEntry
	reject bool
	closed bool
}

var _ pr.Provider = (*memProvider)(nil)

func newMemProvider() *memProvider { return &memProvider{m: make(map[string]memEntry)} }

func (p *memProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.m[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(p.m, key)
		return nil, false, nil
	}
	return e.v, true, nil
}

func (p *memProvider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reject {
		return false, nil
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	p.m[key] = memEntry{v: value, exp: exp}
	return true, nil
}

func (p *memProvider) Del(_ context.Context, key string) error {
	p.mu.Lock()
	delete(p.m, key)
	p.mu.Unlock()
	return nil
}

func (p *memProvider) Close(_ context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

func newTestBook(t *testing.T, ns string, p pr.Provider, optsOpt func(*Options)) *Book {
	t.Helper()
	opts := Options{Namespace: ns, Provider: p}
	if optsOpt != nil {
		optsOpt(&opts)
	}
	b, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

// ==============================
// Basic flow
// ==============================

func TestAddGetDelete(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	b := newTestBook(t, "invite", mp, nil)
	defer b.Close(ctx)

	phrase, id, err := b.Add(ctx, []byte("hello"), 0)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != 0 || phrase != "able" {
		t.Fatalf("first Add: id=%d phrase=%q want 0 able", id, phrase)
	}

	got, ok, err := b.Get(ctx, "  ABLE ")
	if err != nil || !ok || string(got) != "hello" {
		t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
	}

	if err := b.Delete(ctx, phrase); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := b.Get(ctx, phrase); err != nil || ok {
		t.Fatalf("Get after Delete should miss, ok=%v err=%v", ok, err)
	}
}

func TestPutUsesIDPhrase(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, "ticket", newMemProvider(), nil)

	phrase, err := b.Put(ctx, 1234, []byte("v"), time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if phrase != "ant stamp" {
		t.Fatalf("phrase=%q want %q", phrase, "ant stamp")
	}
	if got, ok, err := b.GetID(ctx, 1234); err != nil || !ok || string(got) != "v" {
		t.Fatalf("GetID: %q %v %v", got, ok, err)
	}
}

func TestSequentialIDsGrowPhrases(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, "n", newMemProvider(), func(o *Options) {
		o.Sequence = sequence.NewLocalFrom(255)
	})
	p1, _, err := b.Add(ctx, []byte("a"), 0)
	if err != nil {
		t.Fatal(err)
	}
	p2, id2, err := b.Add(ctx, []byte("b"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != "zebra" || id2 != 256 || p2 != "acid able" {
		t.Fatalf("got %q then %q (id %d)", p1, p2, id2)
	}
}

func TestNamespacesIsolated(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	a := newTestBook(t, "a", mp, nil)
	b := newTestBook(t, "b", mp, nil)

	if _, err := a.Put(ctx, 7, []byte("from-a"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := b.GetID(ctx, 7); ok {
		t.Fatalf("namespace b sees namespace a entry")
	}
}

// ==============================
// Errors
// ==============================

func TestGetBadPhrase(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, "x", newMemProvider(), nil)

	_, _, err := b.Get(ctx, "able gibberish")
	if idx, ok := wordcodec.ErrorIndex(err); !ok || idx != 1 {
		t.Fatalf("want decode error at 1, got %v", err)
	}

	_, _, err = b.Get(ctx, "able able able able able")
	if !errors.Is(err, wordcodec.ErrTooManyWords) {
		t.Fatalf("want ErrTooManyWords, got %v", err)
	}
	if err := b.Delete(ctx, "nope"); !errors.Is(err, wordcodec.ErrInvalidWord) {
		t.Fatalf("Delete bad phrase: %v", err)
	}
}

func TestBlankPhraseDoesNotAddressIDZero(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, "x", newMemProvider(), nil)
	if _, err := b.Put(ctx, 0, []byte("secret-zero"), 0); err != nil {
		t.Fatal(err)
	}

	for _, phrase := range []string{"", "   ", "\t\n"} {
		got, ok, err := b.Get(ctx, phrase)
		if !errors.Is(err, ErrEmptyPhrase) || ok || got != nil {
			t.Fatalf("Get(%q) = %q ok=%v err=%v, want ErrEmptyPhrase", phrase, got, ok, err)
		}
		if err := b.Delete(ctx, phrase); !errors.Is(err, ErrEmptyPhrase) {
			t.Fatalf("Delete(%q) err=%v, want ErrEmptyPhrase", phrase, err)
		}
	}

	if got, ok, err := b.GetID(ctx, 0); err != nil || !ok || string(got) != "secret-zero" {
		t.Fatalf("entry 0 should survive: %q ok=%v err=%v", got, ok, err)
	}
	if got, ok, err := b.Get(ctx, "able"); err != nil || !ok || string(got) != "secret-zero" {
		t.Fatalf("Get(able): %q ok=%v err=%v", got, ok, err)
	}
}

func TestPutRejected(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	mp.reject = true
	b := newTestBook(t, "x", mp, nil)
	if _, err := b.Put(ctx, 1, []byte("v"), 0); !errors.Is(err, ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
}

func TestNewRequiresOptions(t *testing.T) {
	if _, err := New(Options{Namespace: "x"}); err == nil {
		t.Fatalf("expected error without provider")
	}
	if _, err := New(Options{Provider: newMemProvider()}); err == nil {
		t.Fatalf("expected error without namespace")
	}
}

func TestAddExhausted(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, "x", newMemProvider(), func(o *Options) {
		o.Sequence = sequence.NewLocalFrom(0xFFFFFFFF)
	})
	if _, _, err := b.Add(ctx, nil, 0); err != nil {
		t.Fatalf("last id should succeed: %v", err)
	}
	if _, _, err := b.Add(ctx, nil, 0); !errors.Is(err, sequence.ErrExhausted) {
		t.Fatalf("want ErrExhausted, got %v", err)
	}
}

// ==============================
// Self-heal
// ==============================

func TestSelfHealCorruptAndMismatched(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	b := newTestBook(t, "heal", mp, nil)

	k := util.EntryKey("heal", 9)
	if _, err := mp.Set(ctx, k, []byte("not-wire-format"), 1, 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := b.GetID(ctx, 9); err != nil || ok {
		t.Fatalf("corrupt entry should miss, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := mp.Get(ctx, k); ok {
		t.Fatalf("corrupt entry was not deleted")
	}

	// a valid frame for another id under this key
	if _, err := mp.Set(ctx, k, wire.EncodeEntry(10, []byte("x")), 1, 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := b.GetID(ctx, 9); err != nil || ok {
		t.Fatalf("mismatched entry should miss, ok=%v err=%v", ok, err)
	}
	if _, ok, _ := mp.Get(ctx, k); ok {
		t.Fatalf("mismatched entry was not deleted")
	}
}

func TestCloseClosesProvider(t *testing.T) {
	mp := newMemProvider()
	b := newTestBook(t, "x", mp, nil)
	if err := b.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !mp.closed {
		t.Fatalf("provider not closed")
	}
}

// ==============================
// Real in-process providers
// ==============================

func TestWithRistretto(t *testing.T) {
	ctx := context.Background()
	p, err := ristretto.New(ristretto.Config{MaxCost: 1000, Synchronous: true})
	if err != nil {
		t.Fatalf("ristretto.New: %v", err)
	}
	b := newTestBook(t, "r", p, nil)
	defer b.Close(ctx)

	phrase, err := b.Put(ctx, 0xDEADBEEF, []byte("payload"), time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := b.Get(ctx, phrase)
	if err != nil || !ok || !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("Get(%q): %q ok=%v err=%v", phrase, got, ok, err)
	}
}

func TestWithBigCache(t *testing.T) {
	ctx := context.Background()
	p, err := bigcache.New(ctx, bigcache.Config{LifeWindow: time.Minute, Shards: 16})
	if err != nil {
		t.Fatalf("bigcache.New: %v", err)
	}
	b := newTestBook(t, "bc", p, nil)
	defer b.Close(ctx)

	phrase, _, err := b.Add(ctx, []byte("v1"), 0)
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := b.Get(ctx, phrase)
	if err != nil || !ok || string(got) != "v1" {
		t.Fatalf("Get: %q ok=%v err=%v", got, ok, err)
	}
	if err := b.Delete(ctx, phrase); err != nil {
		t.Fatal(err)
	}
	if err := b.Delete(ctx, phrase); err != nil {
		t.Fatalf("second Delete should be a no-op: %v", err)
	}
}
