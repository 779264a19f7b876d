// Package logging configures the process-wide logger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var fileLogger *lumberjack.Logger

// Init parses and sets the log level and directs output to logPath.
// An empty logPath or "console" keeps logging to stderr.
func Init(logLevel string, logPath string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Errorf("Failed parsing log-level %s: %s", logLevel, err)
		return err
	}

	if logPath != "" && logPath != "console" {
		lumberjackLogger := &lumberjack.Logger{
			// Log file absolute path, os agnostic
			Filename:   filepath.ToSlash(logPath),
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		log.SetOutput(io.Writer(lumberjackLogger))
		fileLogger = lumberjackLogger
	}

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	log.SetLevel(level)
	return nil
}

// Close releases the log file, if any, and reverts to logging to stderr.
func Close() error {
	if fileLogger == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := fileLogger.Close()
	fileLogger = nil
	return err
}
