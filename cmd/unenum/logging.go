package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// slogFanout is a [slog.Handler] dispatching every record to all of its
// handlers, e.g. to the terminal and to a log file at the same time.
type slogFanout struct {
	sync.RWMutex
	handlers []slog.Handler
}

func newSlogFanout(handlers ...slog.Handler) *slogFanout {
	return &slogFanout{
		handlers: handlers,
	}
}

func (m *slogFanout) Enabled(ctx context.Context, level slog.Level) bool {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (m *slogFanout) Handle(ctx context.Context, r slog.Record) error {
	m.RLock()
	defer m.RUnlock()

	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m *slogFanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	m.RLock()
	defer m.RUnlock()

	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, h := range m.handlers {
		handlers = append(handlers, h.WithAttrs(attrs))
	}

	return newSlogFanout(handlers...)
}

func (m *slogFanout) WithGroup(name string) slog.Handler {
	m.RLock()
	defer m.RUnlock()

	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, h := range m.handlers {
		handlers = append(handlers, h.WithGroup(name))
	}

	return newSlogFanout(handlers...)
}

// AddHandler adds a handler to the fanout, receiving all later records.
func (m *slogFanout) AddHandler(handler slog.Handler) {
	m.Lock()
	defer m.Unlock()

	m.handlers = append(m.handlers, handler)
}
