// Package dictionary holds the fixed 256-word table behind wordcodec.
//
// Position in the table is the byte value a word stands for. The table is
// validated once when built and never changes afterwards, so a *Dictionary can
// be shared freely between goroutines.
//
// Invariants checked at construction:
//   - exactly Size entries
//   - every word is 1..MaxWordLen lowercase ASCII letters
//   - words are strictly ascending (sorted, no duplicates); Index relies on it
package dictionary

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

const (
	// Size is the number of words in every dictionary: one per byte value.
	Size = 256
	// MaxWordLen is the longest word a dictionary may carry.
	MaxWordLen = 6
)

type Dictionary struct {
	words []string
}

// New validates words and returns a dictionary over a private copy of them.
func New(words []string) (*Dictionary, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d words, want %d", ErrSize, len(words), Size)
	}
	for i, w := range words {
		if reason := checkWord(w); reason != "" {
			return nil, &EntryError{Index: i, Word: w, Reason: reason}
		}
		if i > 0 && w <= words[i-1] {
			reason := "not sorted"
			if w == words[i-1] {
				reason = "duplicate"
			}
			return nil, &EntryError{Index: i, Word: w, Reason: reason}
		}
	}
	return &Dictionary{words: slices.Clone(words)}, nil
}

// Parse builds a dictionary from text holding one word per line.
// Both "\n" and "\r\n" endings are accepted, as is a single trailing newline.
// A blank line is an (empty) entry and fails validation.
func Parse(data []byte) (*Dictionary, error) {
	data = bytes.TrimSuffix(data, []byte("\n"))
	if len(data) == 0 {
		return New(nil)
	}
	lines := strings.Split(string(data), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return New(lines)
}

func checkWord(w string) string {
	switch {
	case w == "":
		return "empty"
	case len(w) > MaxWordLen:
		return fmt.Sprintf("longer than %d characters", MaxWordLen)
	}
	for i := 0; i < len(w); i++ {
		if c := w[i]; c < 'a' || c > 'z' {
			return fmt.Sprintf("invalid character %q", c)
		}
	}
	return ""
}

// Word returns the word for byte b. Always succeeds.
func (d *Dictionary) Word(b byte) string { return d.words[b] }

// Index returns the byte value of w. The lookup is case-insensitive:
// "TRUE", "True" and "true" resolve to the same entry.
func (d *Dictionary) Index(w string) (byte, bool) {
	i, found := slices.BinarySearch(d.words, lower(w))
	if !found {
		return 0, false
	}
	return byte(i), true
}

// Words returns a copy of the table in byte order.
func (d *Dictionary) Words() []string { return slices.Clone(d.words) }

func (d *Dictionary) Len() int { return len(d.words) }
