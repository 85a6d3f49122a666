package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

const testMax = 1024

func TestSetupDisabled(t *testing.T) {
	f, logger := Setup(t.TempDir(), "test.log", testMax, false)
	if f != nil {
		t.Error("expected nil file when debug=false")
		f.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
	if logger == nil {
		t.Error("nil slog logger")
	}
}

func TestSetupEnabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f, logger := Setup(dir, "test.log", testMax, true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	log.Println("hello")
	logger.Info("structured")

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file empty")
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("logging to a terminal stream")
	}
}

func TestSetupRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")
	if err := os.WriteFile(path, make([]byte, testMax+1), 0644); err != nil {
		t.Fatal(err)
	}

	f, _ := Setup(dir, "test.log", testMax, true)
	if f == nil {
		t.Fatal("expected log file")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want current + rotated", len(entries))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > testMax {
		t.Errorf("current log is %d bytes after rotation", info.Size())
	}
}
