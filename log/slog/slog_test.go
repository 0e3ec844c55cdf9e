package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/wordcodec"
)

func TestCodecLogsThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

	c, err := wordcodec.New(wordcodec.Options{Logger: Logger{L: l}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.DecodeBytes([]string{"bogus"}); err == nil {
		t.Fatalf("expected decode error")
	}
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "count=1 index=0") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelWarn}))}
	l.Debug("hidden", wordcodec.Fields{"a": 1})
	l.Info("hidden", nil)
	l.Warn("shown", nil)
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
