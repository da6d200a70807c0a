package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
)

func init() {
	// Nothing is written until Init is called, so the terminal stays clean
	log.SetOutput(io.Discard)
}

// Init opens path for appending and sends log output there
func Init(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// A previous Init may still hold a file open
	if debugLog != nil {
		_ = debugLog.Close()
	}

	var err error
	debugLog, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logPath = path

	// Rotate if file is too large
	if info, err := debugLog.Stat(); err == nil && info.Size() > maxLogSize {
		_ = debugLog.Close()
		backupPath := fmt.Sprintf("%s.%d", path, time.Now().Unix())
		_ = os.Rename(path, backupPath)
		debugLog, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create new log file: %w", err)
		}
	}

	log.SetOutput(debugLog)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// Close closes the log file and discards further output
func Close() {
	log.SetOutput(io.Discard)
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf("[INFO] "+format, args...))
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf("[ERROR] "+format, args...))
}

// LogPanic logs a panic with stack trace
func LogPanic(r interface{}) {
	_ = log.Output(2, fmt.Sprintf("[PANIC] %v\n%s", r, debug.Stack()))
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
