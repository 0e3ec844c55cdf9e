package wordcodec

import "sync"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

var defaultCodec = sync.OnceValue(func() *Codec {
	c, err := newCodec(Options{})
	if err != nil {
		panic(err) // zero Options cannot fail
	}
	return c
})

// Default returns the shared codec over the English dictionary, with logging
// and hooks disabled.
func Default() *Codec { return defaultCodec() }
