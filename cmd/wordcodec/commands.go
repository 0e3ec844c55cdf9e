package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/unkn0wn-root/wordcodec"
)

// EncodeCmd encodes a value given on the command line.
type EncodeCmd struct {
	As    string `short:"a" enum:"hex,uint,uuid,text" default:"hex" help:"How to read VALUE: hex, uint, uuid, text"`
	Value string `arg:"" help:"Value to encode"`
}

func (c *EncodeCmd) Run(e *env) error {
	var words []string
	switch c.As {
	case "uint":
		n, err := strconv.ParseUint(c.Value, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid uint32 %q: %w", c.Value, err)
		}
		words = e.wc.EncodeUint32(uint32(n))
	case "uuid":
		id, err := uuid.Parse(c.Value)
		if err != nil {
			return fmt.Errorf("invalid uuid %q: %w", c.Value, err)
		}
		words = e.wc.EncodeBytes(id[:])
	case "text":
		words = e.wc.EncodeBytes([]byte(c.Value))
	default:
		b, err := hex.DecodeString(trimHexPrefix(c.Value))
		if err != nil {
			return fmt.Errorf("invalid hex %q: %w", c.Value, err)
		}
		words = e.wc.EncodeBytes(b)
	}
	_, err := fmt.Fprintln(e.out, strings.Join(words, " "))
	return err
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// DecodeCmd decodes words given as arguments. Words may also be passed as a
// single quoted phrase.
type DecodeCmd struct {
	As    string   `short:"a" enum:"hex,uint,uuid,text" default:"hex" help:"How to print the result: hex, uint, uuid, text"`
	Words []string `arg:"" help:"Words to decode"`
}

func (c *DecodeCmd) Run(e *env) error {
	words := strings.Fields(strings.Join(c.Words, " "))

	if c.As == "uint" {
		n, err := e.wc.DecodeUint32(words)
		if err != nil {
			return describe(err, words)
		}
		_, err = fmt.Fprintln(e.out, n)
		return err
	}

	b, err := e.wc.DecodeBytes(words)
	if err != nil {
		return describe(err, words)
	}
	switch c.As {
	case "uuid":
		id, err := uuid.FromBytes(b)
		if err != nil {
			return fmt.Errorf("need 16 words for a uuid, got %d", len(b))
		}
		_, err = fmt.Fprintln(e.out, id.String())
		return err
	case "text":
		_, err = fmt.Fprintln(e.out, string(b))
	default:
		_, err = fmt.Fprintln(e.out, hex.EncodeToString(b))
	}
	return err
}

// describe turns a decode error into a message that points at the input.
func describe(err error, words []string) error {
	var de *wordcodec.DecodeError
	if !errors.As(err, &de) {
		return err
	}
	switch de.Kind {
	case wordcodec.InvalidWord:
		return fmt.Errorf("word %d %q is not in the dictionary", de.Index+1, words[de.Index])
	case wordcodec.TooManyWords:
		return fmt.Errorf("too many words for a uint32: got %d, max %d", de.Count, wordcodec.MaxUint32Words)
	default:
		return err
	}
}

// FingerprintCmd hashes a file (or stdin) with BLAKE3 and prints the first
// Size bytes of the digest as words.
type FingerprintCmd struct {
	Size int    `short:"n" default:"8" help:"Digest bytes to show (1-32); one word per byte"`
	File string `arg:"" optional:"" type:"existingfile" help:"File to hash; stdin if omitted"`
}

func (c *FingerprintCmd) Run(e *env) error {
	if c.Size < 1 || c.Size > 32 {
		return fmt.Errorf("--size must be between 1 and 32, got %d", c.Size)
	}
	r := e.in
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	sum := h.Sum(nil)
	_, err := fmt.Fprintln(e.out, e.wc.EncodeBytesJoined(sum[:c.Size]))
	return err
}

// WordsCmd prints the dictionary, one "<hex byte> <word>" pair per line.
type WordsCmd struct{}

func (c *WordsCmd) Run(e *env) error {
	for i, w := range e.wc.Dictionary().Words() {
		if _, err := fmt.Fprintf(e.out, "%02x %s\n", i, w); err != nil {
			return err
		}
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(e *env) error {
	_, err := fmt.Fprintf(e.out, "wordcodec version %s\n", version)
	return err
}
