package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared application logger, configured once via Init.
var Logger = logrus.New()

// Options control logger initialization.
type Options struct {
	Level  string // trace|debug|info|warning|error|fatal
	Format string // text|json
}

// Init configures the shared logger.
func Init(opts Options) {
	switch opts.Level {
	case "trace":
		Logger.SetLevel(logrus.TraceLevel)
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "warning", "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Logger.SetLevel(logrus.FatalLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}

	if opts.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Logger.SetOutput(os.Stdout)
}
