// Package logger is the structured logger of the enumconv command.
package logger

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type (
	LogLevel string

	// Logger defines the interface for structured logging.
	Logger interface {
		Debug(msg string, keyvals ...any)
		Info(msg string, keyvals ...any)
		Warn(msg string, keyvals ...any)
		Error(msg string, keyvals ...any)
		With(keyvals ...any) Logger
	}

	loggerImpl struct {
		charmLogger *charmlog.Logger
	}

	contextKey struct{}
)

const (
	DebugLevel    LogLevel = "debug"
	InfoLevel     LogLevel = "info"
	WarnLevel     LogLevel = "warn"
	ErrorLevel    LogLevel = "error"
	DisabledLevel LogLevel = "disabled"
)

// ToCharmlogLevel maps a level name to the charm level; unknown names are info.
func (l LogLevel) ToCharmlogLevel() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case InfoLevel:
		return charmlog.InfoLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	case DisabledLevel:
		return charmlog.Level(1000)
	default:
		return charmlog.InfoLevel
	}
}

// Config configures NewLogger.
type Config struct {
	Level      LogLevel
	Output     io.Writer
	JSON       bool
	TimeFormat string
	// Color forces styled output; otherwise it is used only on terminals.
	Color bool
}

// DefaultConfig logs info and above to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:      InfoLevel,
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

// TestConfig discards everything.
func TestConfig() *Config {
	return &Config{
		Level:      DisabledLevel,
		Output:     io.Discard,
		TimeFormat: "15:04:05",
	}
}

// NewLogger builds a charm logger from cfg.
func NewLogger(cfg *Config) Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	charmLogger := charmlog.NewWithOptions(cfg.Output, charmlog.Options{
		ReportTimestamp: cfg.TimeFormat != "",
		TimeFormat:      cfg.TimeFormat,
		Level:           cfg.Level.ToCharmlogLevel(),
	})

	if cfg.JSON {
		charmLogger.SetFormatter(charmlog.JSONFormatter)
	} else {
		charmLogger.SetFormatter(charmlog.TextFormatter)
		if cfg.Color || isTerminal(cfg.Output) {
			charmLogger.SetStyles(defaultStyles())
		}
	}

	return &loggerImpl{charmLogger: charmLogger}
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) { l.charmLogger.Debug(msg, keyvals...) }

func (l *loggerImpl) Info(msg string, keyvals ...any) { l.charmLogger.Info(msg, keyvals...) }

func (l *loggerImpl) Warn(msg string, keyvals ...any) { l.charmLogger.Warn(msg, keyvals...) }

func (l *loggerImpl) Error(msg string, keyvals ...any) { l.charmLogger.Error(msg, keyvals...) }

func (l *loggerImpl) With(keyvals ...any) Logger {
	return &loggerImpl{charmLogger: l.charmLogger.With(keyvals...)}
}

// ContextWithLogger stores l in ctx.
func ContextWithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or a default one.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(Logger); ok && l != nil {
			return l
		}
	}

	return NewLogger(nil)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func defaultStyles() *charmlog.Styles {
	styles := charmlog.DefaultStyles()

	styles.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B"))
	styles.Levels[charmlog.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	styles.Keys["enum"] = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	styles.Keys["code"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	styles.Values["pos"] = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return styles
}
