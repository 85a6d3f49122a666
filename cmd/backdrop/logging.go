package main

import (
	"os"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/logging"
)

var logDir = constants.DefaultLogDir

const (
	logFileName = "backdrop.log"
	maxLogSize  = constants.MaxLogSize
)

// setupLogging sends log output to logDir/logFileName when debug is set, otherwise discards it
// The screen owns stdout, so nothing is ever logged there
func setupLogging(debug bool) *os.File {
	f, logger := logging.Setup(logDir, logFileName, maxLogSize, debug)
	gg.SetLogger(logger)
	return f
}
