package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// SeverityHandler writes one JSON object per record to stdout with a
// `severity` field, the format structured-log collectors ingest directly.
type SeverityHandler struct {
	level slog.Level
	attrs []slog.Attr
}

func NewSeverityHandler(level slog.Level) slog.Handler {
	return &SeverityHandler{level: level}
}

func (h *SeverityHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *SeverityHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	data := make(map[string]any)
	for _, a := range h.attrs {
		data[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	if len(data) > 0 {
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func (h *SeverityHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &SeverityHandler{level: h.level, attrs: all}
}

// Groups are flattened; the severity format has no nesting.
func (h *SeverityHandler) WithGroup(_ string) slog.Handler {
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}
