package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var levelColors = map[log.Level]struct {
	icon  string
	color lipgloss.AdaptiveColor
}{
	log.ErrorLevel: {"❌", lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF6B6B"}},
	log.WarnLevel:  {"⚠️", lipgloss.AdaptiveColor{Light: "#C17900", Dark: "#F6C177"}},
	log.InfoLevel:  {"ℹ️", lipgloss.AdaptiveColor{Light: "#047857", Dark: "#04B575"}},
	log.DebugLevel: {"🐛", lipgloss.AdaptiveColor{Light: "#5B3FA8", Dark: "#7E57C2"}},
}

func loggerStyles() *log.Styles {
	styles := log.DefaultStyles()
	for level, lc := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(lc.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(lc.color)
	}
	muted := lipgloss.NewStyle().Foreground(levelColors[log.DebugLevel].color)
	for _, key := range []string{"accountID", "currency", "amount", "prefix", "caller", "time"} {
		styles.Keys[key] = muted
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(levelColors[log.ErrorLevel].color)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	return styles
}

// newLogger builds the charmbracelet-backed slog logger described by cfg.
func newLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text"}
	}
	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(loggerStyles())
	return slog.New(logger)
}

func setupLogger(cfg *config.Log) *slog.Logger {
	slogger := newLogger(os.Stdout, cfg)
	slog.SetDefault(slogger)
	return slogger
}
