package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *AppLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, creating a
// default one if none was set.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			globalLogger = &AppLogger{Logger: logrus.New()}
		})
	}

	return globalLogger
}

func entry(fields []Fields) *logrus.Entry {
	e := logrus.NewEntry(GetGlobalLogger().Logger)
	for _, f := range fields {
		e = e.WithFields(f)
	}
	return e
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Fields) {
	entry(fields).Debug(msg)
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Fields) {
	entry(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Fields) {
	entry(fields).Warn(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Fields) {
	entry(fields).Error(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Fields) {
	entry(fields).Fatal(msg)
}
