package codec

import (
	"fmt"

	"github.com/unkn0wn-root/wordcodec"
)

// Phrase renders the output of Inner as a space-separated word phrase.
// Words selects the dictionary; nil uses wordcodec.Default().
//
// Decode accepts any whitespace between words and any letter case. When a
// word does not resolve, the *wordcodec.DecodeError is returned unwrapped so
// callers can point at the bad word.
type Phrase[V any] struct {
	Inner Codec[V]
	Words *wordcodec.Codec
}

var _ Codec[[]byte] = Phrase[[]byte]{}

func (p Phrase[V]) words() *wordcodec.Codec {
	if p.Words != nil {
		return p.Words
	}
	return wordcodec.Default()
}

func (p Phrase[V]) Encode(v V) ([]byte, error) {
	if p.Inner == nil {
		return nil, errNoInner
	}
	raw, err := p.Inner.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("codec: phrase inner encode: %w", err)
	}
	return []byte(p.words().EncodeBytesJoined(raw)), nil
}

func (p Phrase[V]) Decode(b []byte) (V, error) {
	var zero V
	if p.Inner == nil {
		return zero, errNoInner
	}
	raw, err := p.words().DecodeBytesJoined(string(b))
	if err != nil {
		return zero, err
	}
	v, err := p.Inner.Decode(raw)
	if err != nil {
		return zero, fmt.Errorf("codec: phrase inner decode: %w", err)
	}
	return v, nil
}

// Uint32 encodes uint32 values as 1..4 words with leading zero bytes dropped.
type Uint32 struct {
	Words *wordcodec.Codec // nil => wordcodec.Default()
}

var _ Codec[uint32] = Uint32{}

func (u Uint32) words() *wordcodec.Codec {
	if u.Words != nil {
		return u.Words
	}
	return wordcodec.Default()
}

func (u Uint32) Encode(n uint32) ([]byte, error) {
	return []byte(u.words().EncodeUint32Joined(n)), nil
}

func (u Uint32) Decode(b []byte) (uint32, error) {
	return u.words().DecodeUint32Joined(string(b))
}
