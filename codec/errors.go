package codec

import "errors"

var (
	errNoInner = errors.New("codec: phrase has no inner codec")

	// ErrTooLarge is returned by Limit when the input exceeds MaxDecode.
	ErrTooLarge = errors.New("codec: payload too large")
)
