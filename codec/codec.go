// Package codec turns Go values into word phrases.
//
// A Phrase[V] chains two steps: an inner Codec[V] serializes V to bytes
// (JSON, CBOR, Msgpack, Protobuf, or raw), then wordcodec renders each byte as
// a dictionary word. Decoding runs the same steps in reverse.
//
//	c := codec.Phrase[Ticket]{Inner: codec.MustCBOR[Ticket](true)}
//	b, _ := c.Encode(t) // "able stamp tulip ..."
//
// Keep payloads small: every byte costs one word.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
