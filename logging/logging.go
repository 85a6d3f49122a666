// Package logging routes the standard logger to a size-rotated file, or nowhere.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Setup points the standard logger at dir/fileName when debug is set
// A file over maxSize is renamed with a timestamp first. With debug off, or when the
// file cannot be opened, output is discarded and the returned file is nil.
// The slog logger shares the same writer.
func Setup(dir, fileName string, maxSize int64, debug bool) (*os.File, *slog.Logger) {
	if !debug {
		return discard()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return discard()
	}

	path := filepath.Join(dir, fileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxSize {
		ext := filepath.Ext(fileName)
		base := fileName[:len(fileName)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return discard()
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard()
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("logging started (pid %d)", os.Getpid())

	return f, slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discard() (*os.File, *slog.Logger) {
	log.SetOutput(io.Discard)
	return nil, slog.New(slog.NewTextHandler(io.Discard, nil))
}
