package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestSetupLoggingRoutesGGToLogDir(t *testing.T) {
	old := logDir
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		logDir = old
		log.SetOutput(io.Discard)
		gg.SetLogger(nil)
	})

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("expected a log file with debug on")
	}
	defer logFile.Close()

	gg.Logger().Info("raster ready")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("log file not in logDir: %v", err)
	}
	if !strings.Contains(string(data), "raster ready") {
		t.Errorf("gg logger not writing to %s: %q", logFileName, data)
	}
}
