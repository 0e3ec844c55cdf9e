package wordcodec

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/unkn0wn-root/wordcodec/dictionary"
)

// Codec converts between bytes and dictionary words. It holds no mutable
// state and is safe for concurrent use.
type Codec struct {
	dict  *dictionary.Dictionary
	log   Logger
	hooks Hooks
}

func newCodec(opts Options) (*Codec, error) {
	c := &Codec{dict: opts.Dictionary}
	if c.dict == nil {
		c.dict = dictionary.English()
	}
	if c.dict.Len() != dictionary.Size {
		// zero Dictionary{} rather than one from dictionary.New/Parse
		return nil, fmt.Errorf("wordcodec: dictionary has %d words, want %d", c.dict.Len(), dictionary.Size)
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c, nil
}

// Dictionary returns the word table this codec encodes with.
func (c *Codec) Dictionary() *dictionary.Dictionary { return c.dict }

// EncodeBytes returns one word per byte of b, in order.
// Empty input yields an empty, non-nil slice.
func (c *Codec) EncodeBytes(b []byte) []string {
	out := make([]string, len(b))
	for i, v := range b {
		out[i] = c.dict.Word(v)
	}
	return out
}

// EncodeBytesJoined is EncodeBytes joined with single spaces.
func (c *Codec) EncodeBytesJoined(b []byte) string {
	return strings.Join(c.EncodeBytes(b), " ")
}

// DecodeBytes maps each word back to its byte. Lookup ignores case.
// The first unknown word stops decoding; the returned *DecodeError carries
// its index and no partial output is returned.
func (c *Codec) DecodeBytes(words []string) ([]byte, error) {
	out := make([]byte, len(words))
	for i, w := range words {
		b, ok := c.dict.Index(w)
		if !ok {
			c.hooks.WordRejected(i, w)
			c.log.Debug("decode rejected word", Fields{"index": i, "count": len(words)})
			return nil, &DecodeError{Kind: InvalidWord, Index: i, Word: w, Count: len(words)}
		}
		out[i] = b
	}
	return out, nil
}

// DecodeBytesJoined splits phrase on runs of whitespace and decodes the words.
func (c *Codec) DecodeBytesJoined(phrase string) ([]byte, error) {
	return c.DecodeBytes(strings.Fields(phrase))
}

// EncodeUint32 encodes n big-endian with leading zero bytes dropped.
// The last byte is always kept, so the result has 1..4 words and 0 encodes
// as the word for byte 0.
func (c *Codec) EncodeUint32(n uint32) []string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], n)
	b := buf[:]
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}
	return c.EncodeBytes(b)
}

// EncodeUint32Joined is EncodeUint32 joined with single spaces.
func (c *Codec) EncodeUint32Joined(n uint32) string {
	return strings.Join(c.EncodeUint32(n), " ")
}

// DecodeUint32 reverses EncodeUint32. Words are validated first, so a bad
// word is reported at its own index even in over-long input. Input that
// resolves to more than four bytes fails with Kind TooManyWords and Index 4.
// An empty slice decodes to 0.
func (c *Codec) DecodeUint32(words []string) (uint32, error) {
	b, err := c.DecodeBytes(words)
	if err != nil {
		return 0, err
	}
	if len(b) > MaxUint32Words {
		c.hooks.TooManyWords(len(b))
		c.log.Debug("decode rejected uint32 input", Fields{"count": len(b)})
		return 0, &DecodeError{Kind: TooManyWords, Index: MaxUint32Words, Count: len(b)}
	}
	var n uint32
	for _, v := range b {
		n = n<<8 | uint32(v)
	}
	return n, nil
}

// DecodeUint32Joined splits phrase on runs of whitespace and decodes the words.
func (c *Codec) DecodeUint32Joined(phrase string) (uint32, error) {
	return c.DecodeUint32(strings.Fields(phrase))
}
