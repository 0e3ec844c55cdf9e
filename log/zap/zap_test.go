package zap

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/wordcodec"
)

func TestCodecLogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c, err := wordcodec.New(wordcodec.Options{Logger: New(zap.New(core))})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.DecodeBytes([]string{"able", "nope"}); err == nil {
		t.Fatalf("expected decode error")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "wordcodec" || e.Level != zapcore.DebugLevel {
		t.Fatalf("unexpected entry %+v", e.Entry)
	}
	if got := e.ContextMap()["index"]; got != int64(1) {
		t.Fatalf("index field=%v (%T)", got, got)
	}
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))
	l.Debug("d", nil)
	l.Info("i", wordcodec.Fields{"k": "v"})
	l.Warn("w", nil)
	l.Error("e", nil)

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	got := logs.All()
	if len(got) != len(want) {
		t.Fatalf("got %d entries", len(got))
	}
	for i, lvl := range want {
		if got[i].Level != lvl {
			t.Fatalf("entry %d level=%v want %v", i, got[i].Level, lvl)
		}
	}
	if got[1].ContextMap()["k"] != "v" {
		t.Fatalf("fields not forwarded: %v", got[1].ContextMap())
	}
}

func TestNilLogger(t *testing.T) {
	New(nil).Error("dropped", wordcodec.Fields{"x": 1})
}
