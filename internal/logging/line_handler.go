// Package logging renders slog records as the plain text lines written to the
// transaction log: "<timestamp> - <LEVEL> - <message>".
package logging

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// TimestampLayout is the timestamp format of every line
const TimestampLayout = "2006-01-02 15:04:05,000"

// LineHandler is a slog.Handler that writes one line per record.
// Attributes are not rendered; they stay available to other handlers.
type LineHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
}

// NewLineHandler creates a handler writing records at or above level to w
func NewLineHandler(w io.Writer, level slog.Leveler) *LineHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &LineHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
	}
}

// Enabled reports whether records at level are written
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single line
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	buf := make([]byte, 0, 64+len(r.Message))
	buf = ts.AppendFormat(buf, TimestampLayout)
	buf = append(buf, " - "...)
	buf = append(buf, r.Level.String()...)
	buf = append(buf, " - "...)
	buf = append(buf, r.Message...)
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// WithAttrs returns the handler unchanged since attributes are not rendered
func (h *LineHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler unchanged since attributes are not rendered
func (h *LineHandler) WithGroup(_ string) slog.Handler {
	return h
}
