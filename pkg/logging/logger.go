// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for govhealth components.
//
// The scoring pipeline emits one structured line per dimension computation
// (organization id, input counts, resulting score) so any historical score
// can be reconstructed after the fact for compliance evidence. Lines must
// never carry personally identifying content; callers log counts and ids,
// not record contents.
//
// The logger is built on log/slog with three destinations:
//
//   - stderr (default, text or JSON)
//   - an optional JSON log file per service and day
//   - an optional EvidenceSink for enterprise export (cloud storage,
//     log aggregation)
//
// A zero-value Config writes Info+ text to stderr. Logger is safe for
// concurrent use.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config controls Logger behavior. All fields have usable zero values.
type Config struct {
	// Level is the minimum level written; lower levels are discarded.
	Level Level

	// LogDir enables file logging. When set, a JSON log file named
	// "{Service}_{YYYY-MM-DD}.log" is written alongside stderr. Supports
	// ~ expansion. Empty disables file logging.
	LogDir string

	// Service is attached to every line as the "service" attribute.
	Service string

	// JSON switches stderr output to JSON. File output is always JSON.
	JSON bool

	// Quiet disables stderr output entirely.
	Quiet bool

	// Sink receives every evidence entry asynchronously. Nil disables
	// export. Export failures are dropped, never propagated into the
	// scoring path.
	Sink EvidenceSink
}

// EvidenceSink is the enterprise extension point for shipping evidence
// lines to external systems. Implementations must buffer internally and
// be safe for concurrent use; Flush and Close are called on shutdown.
type EvidenceSink interface {
	Export(ctx context.Context, entry Entry) error
	Flush(ctx context.Context) error
	Close() error
}

// Entry is one structured evidence line as handed to an EvidenceSink.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Service   string
	Attrs     map[string]any
}

// Logger wraps slog.Logger with multi-destination output and sink export.
type Logger struct {
	slog   *slog.Logger
	config Config
	file   *os.File
	sink   EvidenceSink

	// closeOnce is shared between a root logger and every child derived
	// with With, so the file and sink are released exactly once no matter
	// which logger's Close runs first.
	closeOnce *sync.Once
}

// New creates a Logger for the given config. Close must be called when
// file logging or a sink is configured.
func New(config Config) *Logger {
	var handlers []slog.Handler

	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}

	if !config.Quiet {
		if config.JSON {
			handlers = append(handlers, slog.NewJSONHandler(os.Stderr, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
		}
	}

	logger := &Logger{config: config, sink: config.Sink, closeOnce: &sync.Once{}}

	if config.LogDir != "" {
		logDir := expandPath(config.LogDir)
		if err := os.MkdirAll(logDir, 0750); err == nil {
			service := config.Service
			if service == "" {
				service = "govhealth"
			}
			filename := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
			file, err := os.OpenFile(filepath.Join(logDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
			if err == nil {
				logger.file = file
				handlers = append(handlers, slog.NewJSONHandler(file, opts))
			}
		}
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.NewTextHandler(os.Stderr, opts)
	case 1:
		handler = handlers[0]
	default:
		handler = &multiHandler{handlers: handlers}
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", config.Service)})
	}

	logger.slog = slog.New(handler)
	return logger
}

// Default returns an Info-level stderr logger for the govhealth service.
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "govhealth"})
}

func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }

// With returns a child logger carrying additional attributes, typically
// the organization id for a scoring run. The parent is unchanged.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:      l.slog.With(args...),
		config:    l.config,
		file:      l.file,
		sink:      l.sink,
		closeOnce: l.closeOnce,
	}
}

// Slog exposes the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Close flushes and closes the sink and the log file. The file and sink
// are shared with children built via With; the first Close on any of them
// wins and the rest are no-ops.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		var errs []error

		if l.sink != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if flushErr := l.sink.Flush(ctx); flushErr != nil {
				errs = append(errs, fmt.Errorf("flush sink: %w", flushErr))
			}
			if closeErr := l.sink.Close(); closeErr != nil {
				errs = append(errs, fmt.Errorf("close sink: %w", closeErr))
			}
		}

		if l.file != nil {
			if syncErr := l.file.Sync(); syncErr != nil {
				errs = append(errs, fmt.Errorf("sync log file: %w", syncErr))
			}
			if closeErr := l.file.Close(); closeErr != nil {
				errs = append(errs, fmt.Errorf("close log file: %w", closeErr))
			}
		}

		if len(errs) > 0 {
			err = errs[0]
		}
	})
	return err
}

func (l *Logger) log(level Level, msg string, args ...any) {
	switch level {
	case LevelDebug:
		l.slog.Debug(msg, args...)
	case LevelInfo:
		l.slog.Info(msg, args...)
	case LevelWarn:
		l.slog.Warn(msg, args...)
	case LevelError:
		l.slog.Error(msg, args...)
	}

	if l.sink != nil && level >= l.config.Level {
		entry := Entry{
			Timestamp: time.Now(),
			Level:     level,
			Message:   msg,
			Service:   l.config.Service,
			Attrs:     argsToMap(args),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = l.sink.Export(ctx, entry)
		}()
	}
}

// multiHandler fans out records to several slog handlers so stderr and the
// log file can use different formats.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func argsToMap(args []any) map[string]any {
	result := make(map[string]any)
	for i := 0; i < len(args)-1; i += 2 {
		if key, ok := args[i].(string); ok {
			result[key] = args[i+1]
		}
	}
	return result
}

// MemorySink collects entries in memory for tests.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{entries: make([]Entry, 0, 64)}
}

func (s *MemorySink) Export(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemorySink) Flush(ctx context.Context) error { return nil }
func (s *MemorySink) Close() error                    { return nil }

// Entries returns a copy of the collected entries.
func (s *MemorySink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

var _ EvidenceSink = (*MemorySink)(nil)
