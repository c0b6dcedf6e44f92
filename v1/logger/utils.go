package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
// If multiple field maps contain the same key, the later maps win.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	merged := make(map[string]interface{})
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			merged[key] = value
		}
	}
	for key, value := range merged {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}

// Info logs an informational message, along with an optional error and structured fields.
//
// Example:
//
//	logger.Info("User logged in successfully", nil, map[string]interface{}{
//	    "user_id": 12345,
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message, useful for development and troubleshooting.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
//
// Example:
//
//	if err := database.Connect(); err != nil {
//	    logger.Error("Failed to connect to database", err, map[string]interface{}{
//	        "database": "users",
//	    })
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Log writes msg at the level named by level (see ParseLevel). It never
// panics or exits, whatever the name.
func (l *LoggerClient) Log(level string, msg string, err error, fields ...map[string]interface{}) {
	l.LogAt(ParseLevel(level), msg, err, fields...)
}

// LogAt writes msg at an explicit zap level. Levels above error are
// written as error.
func (l *LoggerClient) LogAt(level zapcore.Level, msg string, err error, fields ...map[string]interface{}) {
	if level > zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}
	if ce := l.Zap.Check(level, msg); ce != nil {
		ce.Write(l.convertToZapFields(err, fields...)...)
	}
}

// Sync flushes buffered entries.
func (l *LoggerClient) Sync() error {
	return l.Zap.Sync()
}
