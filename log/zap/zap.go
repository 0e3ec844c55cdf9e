// Package zap adapts a *zap.Logger to wordcodec.Logger.
package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/wordcodec"
)

var _ wordcodec.Logger = Logger{}

type Logger struct{ L *zap.Logger }

// New names l "wordcodec" so codec logs can be filtered. A nil l yields a
// no-op logger.
func New(l *zap.Logger) Logger {
	if l == nil {
		return Logger{L: zap.NewNop()}
	}
	return Logger{L: l.Named("wordcodec")}
}

func (z Logger) Debug(msg string, f wordcodec.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f wordcodec.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f wordcodec.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f wordcodec.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f wordcodec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
