package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrSize is returned when a word list does not hold exactly Size words.
	ErrSize = errors.New("dictionary: wrong number of words")

	// ErrInvalidEntry is the base of every *EntryError.
	ErrInvalidEntry = errors.New("dictionary: invalid entry")
)

// EntryError reports the first word that breaks a dictionary invariant.
type EntryError struct {
	Index  int
	Word   string
	Reason string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("dictionary: entry %d (%q): %s", e.Index, e.Word, e.Reason)
}

func (e *EntryError) Unwrap() error { return ErrInvalidEntry }
