package log

import (
	"io"
	"log"
	"os"
)

// Debug controls debug log output. Set by PARDIFF_DEBUG environment variable by default.
var Debug = os.Getenv("PARDIFF_DEBUG") != ""

var logger = log.New(os.Stderr, "pardiff: ", log.LstdFlags)

// SetOutput redirects debug output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debugf logs a debug message if Debug is true.
func Debugf(format string, v ...any) {
	if !Debug {
		return
	}

	logger.Printf(format, v...)
}
