package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/momorph/shortpwd/internal/config"
	"github.com/rs/zerolog"
)

var (
	// Log is the global logger instance. It discards everything until Init
	// is called with debug enabled.
	Log = zerolog.Nop()

	logFile *os.File
)

// Init initializes the logger. Without debug the logger stays silent: the
// output of a prompt render must be the rendered path and nothing else.
func Init(debug bool) error {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		Log = zerolog.Nop()
		return nil
	}

	if err := config.EnsureLogsDir(); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	// Create log file with date-based rotation
	f, err := getLogFile()
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	logFile = f

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	multi := io.MultiWriter(logFile, consoleWriter)

	Log = zerolog.New(multi).With().
		Timestamp().
		Str("app", config.AppName).
		Logger()

	Log.Debug().Msg("Logger initialized")
	return nil
}

// Close flushes and closes the log file opened by Init, if any, and turns
// the logger back into a no-op.
func Close() error {
	Log = zerolog.Nop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// getLogFile returns the log file for the current date
func getLogFile() (*os.File, error) {
	logsDir := config.GetLogsDir()

	logFileName := fmt.Sprintf("%s-%s.log", config.AppName, time.Now().Format("2006-01-02"))
	logFilePath := filepath.Join(logsDir, logFileName)

	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	// Keep the last 7 days. Runs inline: the process is too short-lived for
	// a background goroutine to finish.
	cleanOldLogs(logsDir, 7)

	return f, nil
}

// cleanOldLogs removes log files older than the specified number of days
func cleanOldLogs(logsDir string, keepDays int) {
	files, err := os.ReadDir(logsDir)
	if err != nil {
		return
	}

	cutoffTime := time.Now().AddDate(0, 0, -keepDays)

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".log" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoffTime) {
			os.Remove(filepath.Join(logsDir, file.Name()))
		}
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Debug().Msg(format)
	} else {
		Log.Debug().Msgf(format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Info().Msg(format)
	} else {
		Log.Info().Msgf(format, args...)
	}
}

// Error logs an error message
func Error(msg string, err error) {
	Log.Error().Err(err).Msg(msg)
}
