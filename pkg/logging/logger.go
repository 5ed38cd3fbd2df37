package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	slogmulti "github.com/samber/slog-multi"
)

// SlogLogger implements Logger on top of log/slog. Human-readable text goes to
// the console writer; when a file writer is attached every record is also
// written there as JSON.
type SlogLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// New creates a logger that writes text records to w.
func New(w io.Writer, level Level) *SlogLogger {
	lv := new(slog.LevelVar)
	lv.Set(level.slogLevel())

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})
	return &SlogLogger{logger: slog.New(handler), level: lv}
}

// NewWithFile creates a logger that writes text records to console and JSON
// records to file.
func NewWithFile(console, file io.Writer, level Level) *SlogLogger {
	lv := new(slog.LevelVar)
	lv.Set(level.slogLevel())

	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: lv})
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: lv})

	return &SlogLogger{
		logger: slog.New(slogmulti.Fanout(consoleHandler, fileHandler)),
		level:  lv,
	}
}

// Setup opens logFile for appending and returns a logger fanned out to stderr
// and that file, plus a cleanup function. An empty logFile yields a
// stderr-only logger.
func Setup(logFile string, level Level) (*SlogLogger, func() error, error) {
	if logFile == "" {
		return New(os.Stderr, level), func() error { return nil }, nil
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return New(os.Stderr, level), func() error { return nil }, err
	}

	return NewWithFile(os.Stderr, file, level), file.Close, nil
}

func toAttrs(fields []Field) []any {
	attrs := make([]any, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	return attrs
}

// Debug logs a debug-level message
func (l *SlogLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, toAttrs(fields)...)
}

// Info logs an info-level message
func (l *SlogLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, toAttrs(fields)...)
}

// Warn logs a warning-level message
func (l *SlogLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, toAttrs(fields)...)
}

// Error logs an error-level message
func (l *SlogLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, toAttrs(fields)...)
}

// With creates a child logger with the given fields pre-set. The child shares
// its parent's level.
func (l *SlogLogger) With(fields ...Field) Logger {
	return &SlogLogger{
		logger: l.logger.With(toAttrs(fields)...),
		level:  l.level,
	}
}

// SetLevel sets the minimum log level
func (l *SlogLogger) SetLevel(level Level) {
	l.level.Set(level.slogLevel())
}

// GetLevel returns the current log level
func (l *SlogLogger) GetLevel() Level {
	switch l.level.Level() {
	case slog.LevelDebug:
		return DebugLevel
	case slog.LevelWarn:
		return WarnLevel
	case slog.LevelError:
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// StartTimer begins timing an operation
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: logger,
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// End logs the operation at debug level with its duration and returns the
// elapsed time.
func (t *TimedOperation) End(fields ...Field) time.Duration {
	elapsed := time.Since(t.start)
	all := append(append([]Field{}, t.fields...), fields...)
	t.logger.Debug(t.msg, append(all, Latency(elapsed))...)
	return elapsed
}

// EndError logs the operation as an error with its duration
func (t *TimedOperation) EndError(err error) time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Error(t.msg, append(append([]Field{}, t.fields...), Latency(elapsed), Error(err))...)
	return elapsed
}
