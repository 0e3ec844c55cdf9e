// Command wordcodec converts bytes, integers and UUIDs to dictionary words
// and back, and prints short word fingerprints of files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/wordcodec"
	zapadapter "github.com/unkn0wn-root/wordcodec/log/zap"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Encode      EncodeCmd      `cmd:"" help:"Encode a value as words"`
	Decode      DecodeCmd      `cmd:"" help:"Decode words back to a value"`
	Fingerprint FingerprintCmd `cmd:"" help:"Print a BLAKE3 fingerprint of a file as words"`
	Words       WordsCmd       `cmd:"" help:"List the dictionary"`
	Version     VersionCmd     `cmd:"" help:"Print version information"`
}

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Log decode diagnostics to stderr"`
}

// env is what commands run against; tests swap the streams.
type env struct {
	out io.Writer
	in  io.Reader
	wc  *wordcodec.Codec
}

// codec returns the codec commands run against and a flush func for its
// logger, to be called before exit.
func (g *Globals) codec() (*wordcodec.Codec, func(), error) {
	if !g.Verbose {
		return wordcodec.Default(), func() {}, nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, err
	}
	// Sync returns EINVAL on a terminal stderr.
	flush := func() { _ = l.Sync() }
	wc, err := wordcodec.New(wordcodec.Options{Logger: zapadapter.New(l)})
	if err != nil {
		flush()
		return nil, nil, err
	}
	return wc, flush, nil
}

func newParser(cli *CLI, e *env) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("wordcodec"),
		kong.Description("Human-readable words for bytes, integers and hashes"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Bind(e),
	)
}

func run(args []string, out io.Writer, in io.Reader) error {
	var cli CLI
	e := &env{out: out, in: in}
	parser, err := newParser(&cli, e)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	wc, flush, err := cli.codec()
	if err != nil {
		return err
	}
	defer flush()
	e.wc = wc
	return ctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "wordcodec: error: %v\n", err)
		os.Exit(1)
	}
}
