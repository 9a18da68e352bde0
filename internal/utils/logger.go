package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// getDefaultLogFilePath returns the default log file path
func getDefaultLogFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	logDir := filepath.Join(homeDir, ".cursorlist")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}
	return filepath.Join(logDir, "cursorlist.log")
}

// NewLogger creates the process logger (singleton) writing to a file and stdout
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		if logFilePath == "" {
			logFilePath = getDefaultLogFilePath()
		}

		// Open the log file
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}

		instance = newLogger(io.MultiWriter(file, os.Stdout), file, debugMode)
	})
	return instance
}

// NewWriterLogger creates a standalone logger writing every level to w.
// Debug lines are dropped unless debugMode is set.
func NewWriterLogger(w io.Writer, debugMode bool) *Logger {
	return newLogger(w, io.Discard, debugMode)
}

// newLogger sends debug lines to quiet unless debugMode is set
func newLogger(w, quiet io.Writer, debugMode bool) *Logger {
	debugWriter := quiet
	if debugMode {
		debugWriter = w
	}

	return &Logger{
		infoLogger:  log.New(w, "[INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(w, "[WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(w, "[ERROR] ", log.Ldate|log.Ltime),
		debugLogger: log.New(debugWriter, "[DEBUG] ", log.Ldate|log.Ltime),
	}
}

// GetLogger retrieves the singleton logger instance
func GetLogger() *Logger {
	if instance == nil {
		log.Fatalf("Logger has not been initialized. Call NewLogger() first.")
	}
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}
