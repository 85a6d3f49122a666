package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/logging"
)

var logDir = constants.DefaultLogDir

const (
	logFileName = "portfolio.log"
	maxLogSize  = constants.MaxLogSize
)

// setupLogging sends log output to logDir/logFileName when debug is set, otherwise discards it
func setupLogging(debug bool) (*os.File, *slog.Logger) {
	f, logger := logging.Setup(logDir, logFileName, maxLogSize, debug)
	gg.SetLogger(logger)
	return f, logger
}
