// Package logging configures the process-wide std logger.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the std logger at stdout and, when path is set, at a rotating
// log file as well. The returned writer is meant to be shared with gin and gorm.
func Setup(path string) io.Writer {
	var out io.Writer = os.Stdout
	if path != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	log.SetOutput(out)
	log.SetFlags(log.LstdFlags)
	return out
}
