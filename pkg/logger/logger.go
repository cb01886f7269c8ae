package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Leveled logger used across the service, backed by zerolog.
// - package-level Debug/Info/Warn/Error/Fatal variants and Init(level)
// - Configure switches between JSON and human-readable console output
// - WithFields hands out child loggers for structured entries

var (
	mu     sync.RWMutex
	logger zerolog.Logger = newLogger(os.Stdout, false, zerolog.InfoLevel)
)

func newLogger(w io.Writer, pretty bool, lvl zerolog.Level) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func parseLevel(l string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	}
	return zerolog.InfoLevel
}

// Init sets the log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(parseLevel(l))
}

// Configure replaces the output; pretty selects the console format over JSON.
// The current level is kept.
func Configure(w io.Writer, pretty bool) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, pretty, logger.GetLevel())
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

func Debugf(format string, v ...interface{}) { current().Debug().Msgf(format, v...) }
func Infof(format string, v ...interface{})  { current().Info().Msgf(format, v...) }
func Warnf(format string, v ...interface{})  { current().Warn().Msgf(format, v...) }
func Errorf(format string, v ...interface{}) { current().Error().Msgf(format, v...) }

func Fatalf(format string, v ...interface{}) {
	current().WithLevel(zerolog.FatalLevel).Msgf(format, v...)
	os.Exit(1)
}

// Println kept for brief messages (maps to Info)
func Println(v ...interface{}) {
	current().Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// WithFields returns a child logger carrying the given fields.
func WithFields(fields map[string]interface{}) zerolog.Logger {
	return current().With().Fields(fields).Logger()
}

// LevelString returns the current level as text.
func LevelString() string {
	switch current().GetLevel() {
	case zerolog.DebugLevel:
		return "debug"
	case zerolog.WarnLevel:
		return "warn"
	case zerolog.ErrorLevel:
		return "error"
	case zerolog.FatalLevel:
		return "fatal"
	}
	return "info"
}
