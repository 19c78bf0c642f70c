package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/thema/pkg/constants"
)

// Config describes how a logger is built.
type Config struct {
	Level      string // trace, debug, info, warn, error, disabled
	Format     string // json, console, auto
	Output     string // stderr, stdout, discard, or a file path
	TimeFormat string // kitchen, rfc3339, unix, or a Go layout
	NoColor    bool
	AddCaller  bool

	// Fields are attached to every event.
	Fields map[string]string
}

// ConfigFromEnv reads the LOG_* variables. DEBUG=1 is a shortcut for
// LOG_LEVEL=debug.
func ConfigFromEnv() *Config {
	level := os.Getenv("LOG_LEVEL")
	if level == "" && os.Getenv("DEBUG") != "" {
		level = "debug"
	}
	return &Config{
		Level:      level,
		Format:     os.Getenv("LOG_FORMAT"),
		Output:     os.Getenv("LOG_OUTPUT"),
		TimeFormat: os.Getenv("LOG_TIME_FORMAT"),
		NoColor:    os.Getenv("NO_COLOR") != "",
		AddCaller:  os.Getenv("LOG_CALLER") == "true",
		Fields:     parseFields(os.Getenv("LOG_FIELDS")),
	}
}

// NewLoggerFromConfig builds a logger. A nil config reads the environment.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = ConfigFromEnv()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logCtx := zerolog.New(writer(cfg)).Level(level).With().Timestamp()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logCtx = logCtx.Caller()
	}
	for k, v := range cfg.Fields {
		logCtx = logCtx.Str(k, v)
	}
	return logCtx.Logger()
}

// writer resolves the output destination and wraps it for console output.
// The auto format picks console only when writing to a stderr terminal.
func writer(cfg *Config) io.Writer {
	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	case "discard", "none":
		out = io.Discard
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			out = os.Stderr
		} else {
			out = f
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if out == os.Stderr && stderrIsTerminal() {
			format = "console"
		}
	}
	if format != "console" && format != "pretty" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: parseTimeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

// parseLevel maps a level name to a zerolog level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

func parseTimeFormat(format string) string {
	switch strings.ToLower(format) {
	case "", "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "rfc3339nano":
		return time.RFC3339Nano
	case "stamp":
		return time.Stamp
	case "unix", "epoch":
		return ""
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}

// parseFields parses comma-separated key=value pairs.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if k = strings.TrimSpace(k); ok && k != "" {
			fields[k] = strings.TrimSpace(v)
		}
	}
	return fields
}

func stderrIsTerminal() bool {
	info, err := os.Stderr.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
