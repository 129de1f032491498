package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Sink is the transaction log destination: an append-mode file echoed to a console stream
type Sink struct {
	Logger *slog.Logger
	file   *os.File
}

// OpenSink opens (or creates) path for appending and returns a sink that
// writes every line to the file and to console
func OpenSink(path string, console io.Writer, level slog.Leveler) (*Sink, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction log %s: %w", path, err)
	}

	var w io.Writer = file
	if console != nil {
		w = io.MultiWriter(file, console)
	}

	return &Sink{
		Logger: slog.New(NewLineHandler(w, level)),
		file:   file,
	}, nil
}

// Close flushes and closes the log file. It is safe to call more than once.
func (s *Sink) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		_ = s.file.Close()
		s.file = nil
		return fmt.Errorf("failed to flush transaction log: %w", err)
	}
	err := s.file.Close()
	s.file = nil
	return err
}
