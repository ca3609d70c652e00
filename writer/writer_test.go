package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/picolog/picolog/core"
)

func TestConsole_RoutesBySeverity(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(ConsoleConfig{Out: &out, Err: &errOut})

	if err := c.Write(core.InfoLevel, "info entry\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := c.Write(core.WarningLevel, "warning entry\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := c.Write(core.ErrorLevel, "error entry\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if got := out.String(); got != "info entry\n" {
		t.Errorf("Unexpected stdout content: %q", got)
	}
	if got := errOut.String(); got != "warning entry\nerror entry\n" {
		t.Errorf("Unexpected stderr content: %q", got)
	}
}

func TestConsole_Stats(t *testing.T) {
	c := NewConsole(ConsoleConfig{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}})

	_ = c.Write(core.InfoLevel, "one\n")
	_ = c.Write(core.InfoLevel, "two\n")

	snapshot := c.Stats()
	if snapshot.ProcessedTotal != 2 {
		t.Errorf("Expected 2 processed entries, got %d", snapshot.ProcessedTotal)
	}
	if snapshot.FailedTotal != 0 {
		t.Errorf("Expected 0 failed entries, got %d", snapshot.FailedTotal)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestConsole_WriteFailure(t *testing.T) {
	c := NewConsole(ConsoleConfig{Out: failingWriter{}, Err: failingWriter{}})

	if err := c.Write(core.InfoLevel, "entry\n"); err == nil {
		t.Fatal("Expected an error from a failing stream")
	}
	if got := c.Stats().FailedTotal; got != 1 {
		t.Errorf("Expected 1 failed entry, got %d", got)
	}
}

func TestFile_WritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f, err := NewFile(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	defer f.Close()

	if err := f.Write(core.InfoLevel, "first entry\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Write(core.ErrorLevel, "second entry\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "first entry\nsecond entry\n" {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestFile_RequiresFilename(t *testing.T) {
	if _, err := NewFile(FileConfig{}); err == nil {
		t.Error("Expected an error for a missing filename")
	}
}

func TestMulti_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMulti(
		NewConsole(ConsoleConfig{Out: &a, Err: &a}),
		NewConsole(ConsoleConfig{Out: &b, Err: &b}),
	)

	if err := m.Write(core.InfoLevel, "entry\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if a.String() != "entry\n" || b.String() != "entry\n" {
		t.Errorf("Expected the entry in both writers, got %q and %q", a.String(), b.String())
	}
}

func TestMulti_ReportsLastError(t *testing.T) {
	var ok bytes.Buffer
	m := NewMulti(
		NewConsole(ConsoleConfig{Out: failingWriter{}, Err: failingWriter{}}),
		NewConsole(ConsoleConfig{Out: &ok, Err: &ok}),
	)

	if err := m.Write(core.InfoLevel, "entry\n"); err == nil {
		t.Fatal("Expected the failing writer's error")
	}
	if ok.String() != "entry\n" {
		t.Errorf("Healthy writer should still receive the entry, got %q", ok.String())
	}
}

func TestNew_Console(t *testing.T) {
	w, err := New("console")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := w.(*Console); !ok {
		t.Errorf("Expected a *Console, got %T", w)
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, err := New("file:" + path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	if _, ok := w.(*File); !ok {
		t.Errorf("Expected a *File, got %T", w)
	}
}

func TestNew_Null(t *testing.T) {
	w, err := New("null")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w != nil {
		t.Errorf("Expected a nil writer, got %T", w)
	}
}

func TestNew_UnknownKind(t *testing.T) {
	if _, err := New("carrier-pigeon"); err == nil || !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("Expected an error naming the unknown kind, got %v", err)
	}
}

func TestRegister_CustomKind(t *testing.T) {
	var buf bytes.Buffer
	Register("buffer", func(string) (Writer, error) {
		return NewConsole(ConsoleConfig{Out: &buf, Err: &buf}), nil
	})

	w, err := New("buffer:ignored")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Write(core.InfoLevel, "entry\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != "entry\n" {
		t.Errorf("Unexpected content: %q", buf.String())
	}
}
