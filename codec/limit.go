package codec

import "fmt"

// Limit wraps another codec and refuses to decode inputs longer than
// MaxDecode bytes. Encode is forwarded to Inner unchanged.
// MaxDecode <= 0 disables the check.
//
// Put it outside a Phrase to bound untrusted phrases before any word lookup:
//
//	codec.Limit[T]{Inner: codec.Phrase[T]{Inner: codec.JSON[T]{}}, MaxDecode: 4096}
type Limit[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
