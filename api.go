package wordcodec

import "github.com/unkn0wn-root/wordcodec/dictionary"

// Options configure a Codec. The zero value is valid.
type Options struct {
	Dictionary *dictionary.Dictionary // nil => dictionary.English()
	Logger     Logger                 // nil => NopLogger
	Hooks      Hooks                  // nil => NopHooks
}

func New(opts Options) (*Codec, error) {
	return newCodec(opts)
}

// EncodeBytes encodes b with the default codec.
func EncodeBytes(b []byte) []string { return Default().EncodeBytes(b) }

// EncodeBytesJoined encodes b with the default codec as a space-separated phrase.
func EncodeBytesJoined(b []byte) string { return Default().EncodeBytesJoined(b) }

// DecodeBytes decodes words with the default codec.
func DecodeBytes(words []string) ([]byte, error) { return Default().DecodeBytes(words) }

// DecodeBytesJoined decodes a whitespace-separated phrase with the default codec.
func DecodeBytesJoined(phrase string) ([]byte, error) { return Default().DecodeBytesJoined(phrase) }

// EncodeUint32 encodes n with the default codec.
func EncodeUint32(n uint32) []string { return Default().EncodeUint32(n) }

// EncodeUint32Joined encodes n with the default codec as a space-separated phrase.
func EncodeUint32Joined(n uint32) string { return Default().EncodeUint32Joined(n) }

// DecodeUint32 decodes words with the default codec.
func DecodeUint32(words []string) (uint32, error) { return Default().DecodeUint32(words) }

// DecodeUint32Joined decodes a whitespace-separated phrase with the default codec.
func DecodeUint32Joined(phrase string) (uint32, error) { return Default().DecodeUint32Joined(phrase) }
