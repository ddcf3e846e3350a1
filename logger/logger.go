package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// L is the process-wide logger. Workflows log suppressed subprocess
// failures through it at debug level, so they stay invisible unless
// debug logging is enabled.
var L = logrus.New()

// Init configures the logger once at startup.
func Init(debug bool) {
	L.SetOutput(os.Stderr)
	L.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		L.SetLevel(logrus.DebugLevel)
	} else {
		L.SetLevel(logrus.InfoLevel)
	}
}
