package wordcodec

import (
	"errors"
	"fmt"
)

// MaxUint32Words is the most words a uint32 encodes to. It doubles as the
// index reported for over-long DecodeUint32 input.
const MaxUint32Words = 4

var (
	ErrInvalidWord  = errors.New("wordcodec: invalid word")
	ErrTooManyWords = errors.New("wordcodec: too many words")
)

type ErrorKind uint8

const (
	// InvalidWord: a word is not in the dictionary.
	InvalidWord ErrorKind = iota + 1
	// TooManyWords: every word resolved but there are more than fit the target type.
	TooManyWords
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidWord:
		return "invalid_word"
	case TooManyWords:
		return "too_many_words"
	default:
		return "unknown"
	}
}

// DecodeError is returned by every decode operation.
//
// Index is the position callers act on. For InvalidWord it is the 0-based
// position of the first unresolvable word. For TooManyWords it is always
// MaxUint32Words (4), whatever the input length. 4 can also be a real word
// position; use Kind to tell the two apart.
type DecodeError struct {
	Kind  ErrorKind
	Index int
	Word  string // InvalidWord only
	Count int    // number of words in the input
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidWord:
		return fmt.Sprintf("wordcodec: invalid word %q at index %d", e.Word, e.Index)
	case TooManyWords:
		return fmt.Sprintf("wordcodec: too many words: got %d, max %d", e.Count, MaxUint32Words)
	default:
		return fmt.Sprintf("wordcodec: decode failed at index %d", e.Index)
	}
}

func (e *DecodeError) Unwrap() error {
	switch e.Kind {
	case InvalidWord:
		return ErrInvalidWord
	case TooManyWords:
		return ErrTooManyWords
	default:
		return nil
	}
}

// ErrorIndex returns the index carried by a *DecodeError anywhere in err's chain.
func ErrorIndex(err error) (int, bool) {
	var de *DecodeError
	if !errors.As(err, &de) {
		return 0, false
	}
	return de.Index, true
}
