package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const logsDir = "logs"

var (
	// InfoLogger logs informational messages
	InfoLogger *log.Logger
	// ErrorLogger logs error messages
	ErrorLogger *log.Logger
	// DebugLogger logs debug messages when LOG_LEVEL=debug
	DebugLogger *log.Logger
)

// openLogFile opens (or creates) the day-stamped log file for the given
// stream name, e.g. logs/info-2026-08-31.log.
func openLogFile(stream string) (*os.File, error) {
	name := fmt.Sprintf("%s-%s.log", stream, time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(
		filepath.Join(logsDir, name),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s log file: %v", stream, err)
	}
	return f, nil
}

// InitLogger wires the info, error and debug streams to day-stamped files
// under logs/. The debug stream is discarded unless LOG_LEVEL=debug.
func InitLogger() error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	infoFile, err := openLogFile("info")
	if err != nil {
		return err
	}
	errorFile, err := openLogFile("error")
	if err != nil {
		return err
	}

	var debugOut io.Writer = io.Discard
	if os.Getenv("LOG_LEVEL") == "debug" {
		debugFile, err := openLogFile("debug")
		if err != nil {
			return err
		}
		debugOut = debugFile
	}

	InfoLogger = log.New(infoFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(errorFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	DebugLogger = log.New(debugOut, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	if InfoLogger != nil {
		InfoLogger.Printf(format, v...)
	}
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	if ErrorLogger != nil {
		ErrorLogger.Printf(format, v...)
	}
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	if DebugLogger != nil {
		DebugLogger.Printf(format, v...)
	}
}

// LogRequest logs HTTP request details
func LogRequest(method, path, ip string, status int, duration time.Duration) {
	LogInfo("Request: %s %s from %s - Status: %d - Duration: %v", method, path, ip, status, duration)
}

// LogErrorWithStack logs an error with its stack trace
func LogErrorWithStack(err error, stack []byte) {
	if ErrorLogger != nil {
		ErrorLogger.Printf("Error: %v\nStack Trace:\n%s", err, stack)
	}
}
