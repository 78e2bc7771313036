package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName string
	LogToStderr bool
	LogLevel    string
	Stderr      io.Writer
}

// Setup configures the global logrus logger. The returned func closes the log
// file, if any.
func Setup(params SetupParams) func() error {
	stderr := params.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: params.LogFileName == ""})
	log.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		log.SetOutput(stderr)
		return func() error { return nil }
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  true,
	}

	if params.LogToStderr {
		log.SetOutput(NewCombinedWriter(stderr, fileLogger))
	} else {
		log.SetOutput(fileLogger)
	}
	return fileLogger.Close
}

// GetLevel maps a config value to a logrus level. Unknown values fall back
// to warn so the CLI stays quiet by default.
func GetLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}
