package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide diagnostic logger. It is usable before Init with
// logrus defaults so packages and tests never see a nil logger.
var Log = logrus.New()

// Init configures Log from the environment and points it at out.
//
// LOG_LEVEL selects the level (default "info"); LOG_FORMAT=json selects the
// JSON formatter, anything else the text formatter.
func Init(out io.Writer) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}

// Discard silences Log. The terminal game uses it when no log file is given
// so diagnostics never draw over the screen.
func Discard() {
	Log.SetOutput(io.Discard)
}

// ForSystem returns an entry tagged with the system name.
func ForSystem(name string) *logrus.Entry {
	return Log.WithField("system", name)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
