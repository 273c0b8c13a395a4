// Package logging owns the process-wide logrus logger. Packages derive a
// subsystem logger from DefaultLogger:
//
//	var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "scanner")
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogger is the base logrus logger. It writes to stderr so that
// token output on stdout stays machine readable.
var DefaultLogger = InitializeDefaultLogger()

// InitializeDefaultLogger returns a logger with the default text
// formatter at info level.
func InitializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// SetupLogging configures DefaultLogger for a CLI run.
func SetupLogging(debug bool) {
	if debug {
		DefaultLogger.SetLevel(logrus.DebugLevel)
	} else {
		DefaultLogger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects DefaultLogger, mainly for tests.
func SetOutput(w io.Writer) {
	DefaultLogger.SetOutput(w)
}
