package logger

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/picolog/picolog/core"
	"github.com/picolog/picolog/writer"
)

// discardWriter is a no-op sink for benchmarking the formatting path
type discardWriter struct{}

func (discardWriter) Write(core.Level, string) error { return nil }
func (discardWriter) Close() error                   { return nil }

func setupBenchmark(b *testing.B) {
	b.Helper()
	SetWriter(discardWriter{})
	SetLevel(core.TraceLevel)
	SetPattern("{date} [{thread}] {method}\n{level}: {message}")
	b.Cleanup(func() {
		SetWriter(writer.NewConsole(writer.ConsoleConfig{}))
		SetLevel(core.InfoLevel)
		SetPattern("")
	})
}

// newZapLogger returns a zap.Logger writing to io.Discard for comparison
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(zc)
}

func BenchmarkSimpleMessage(b *testing.B) {
	setupBenchmark(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info("simple message without placeholders")
	}
}

func BenchmarkPlaceholderMessage(b *testing.B) {
	setupBenchmark(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info("request {0} finished with status {1}", i, 200)
	}
}

func BenchmarkSuppressedCall(b *testing.B) {
	setupBenchmark(b)
	SetLevel(core.ErrorLevel)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Debug("suppressed {0}", i)
	}
}

func BenchmarkChoiceMessage(b *testing.B) {
	setupBenchmark(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info("{0,choice,0#no files|1#one file|1<{0} files} changed", i%3)
	}
}

func BenchmarkZapComparison(b *testing.B) {
	l := newZapLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request finished", zap.Int("status", 200))
	}
}
