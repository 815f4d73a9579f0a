package logger

import (
	"io"
	"log"
	"os"
)

type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelDebug
	LevelTrace
)

var levelPrefixes = map[LogLevel]string{
	LevelInfo:  "INFO: ",
	LevelDebug: "DEBUG: ",
	LevelTrace: "TRACE: ",
}

// Logger writes leveled messages. Info and Warn always print, Debug needs
// verbose mode and Trace needs LevelTrace.
type Logger struct {
	*log.Logger
	level     LogLevel
	isVerbose bool
}

type Option func(*Logger)

func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.SetOutput(w)
	}
}

func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.SetPrefix(prefix)
	}
}

func WithFlags(flags int) Option {
	return func(l *Logger) {
		l.SetFlags(flags)
	}
}

func New(options ...Option) *Logger {
	l := &Logger{
		Logger: log.New(os.Stderr, "", log.LstdFlags),
		level:  LevelInfo,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(WithOutput(io.Discard))
}

func (l *Logger) SetVerbose(verbose bool) {
	l.isVerbose = verbose
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
	if level >= LevelDebug {
		l.isVerbose = true
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.printf(levelPrefixes[LevelInfo], format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.printf("WARN: ", format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.isVerbose {
		l.printf(levelPrefixes[LevelDebug], format, args...)
	}
}

func (l *Logger) Trace(format string, args ...interface{}) {
	if l.level >= LevelTrace {
		l.printf(levelPrefixes[LevelTrace], format, args...)
	}
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Logger.Fatalf("FATAL: "+format, args...)
}

func (l *Logger) printf(prefix, format string, args ...interface{}) {
	l.Logger.Printf(prefix+format, args...)
}
