// Package wordcodec maps byte sequences, and uint32 values, to sequences of
// short dictionary words and back. The output is meant for people: reading a
// hash aloud, copying an identifier by hand, comparing two checksums at a glance.
//
// Each byte becomes exactly one word from a fixed 256-word dictionary
// (see package dictionary). Decoding is case-insensitive and reports the
// position of the first word it cannot resolve.
//
// Integers:
//
//	EncodeUint32(0xDEADBEEF) // [table potato school true]
//	EncodeUint32(1234)       // [ant stamp]
//	EncodeUint32(0)          // [able]
//
// Leading zero bytes are dropped, so the word count tracks magnitude (1..4).
//
// Errors:
//
//	_, err := DecodeBytes([]string{"table", "nonsense"})
//	idx, _ := ErrorIndex(err) // 1
//
// DecodeUint32 reports more than four words as index 4 (see DecodeError).
//
// The package-level functions use the built-in English dictionary. Build a
// Codec with New to use another dictionary or to attach a Logger and Hooks.
package wordcodec
