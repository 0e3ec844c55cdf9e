package wordcodec

// Hooks are callbacks for rejected decode input.
// Implementations MUST be cheap and non-blocking; the codec calls them inline.
type Hooks interface {
	// A word could not be resolved. index is its position in the input.
	// word is the raw input and may be sensitive (a mistyped secret, for one).
	WordRejected(index int, word string)

	// DecodeUint32 got count valid words, more than MaxUint32Words.
	TooManyWords(count int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) WordRejected(int, string) {}
func (NopHooks) TooManyWords(int)         {}
