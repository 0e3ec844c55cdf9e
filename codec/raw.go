package codec

// Bytes passes []byte through unchanged. Phrase[[]byte]{Inner: Bytes{}} is
// equivalent to wordcodec.EncodeBytesJoined / DecodeBytesJoined.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between string and its UTF-8 bytes without validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
