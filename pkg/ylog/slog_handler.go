package ylog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
)

// handler splits the log stream, error records go to errWriter and
// the others to writer.
type handler struct {
	slog.Handler

	mu  *sync.Mutex
	buf *bytes.Buffer

	writer    io.Writer
	errWriter io.Writer
}

// NewHandlerFromConfig creates a slog.Handler from conf
func NewHandlerFromConfig(conf Config) slog.Handler {
	buf := new(bytes.Buffer)

	h := bufferedSlogHandler(buf, conf)

	return &handler{
		Handler:   h,
		mu:        new(sync.Mutex),
		buf:       buf,
		writer:    parseToWriter(conf.Output, os.Stdout),
		errWriter: parseToWriter(conf.ErrorOutput, os.Stderr),
	}
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer h.buf.Reset()

	if err := h.Handler.Handle(ctx, r); err != nil {
		return err
	}

	w := h.writer
	if r.Level >= slog.LevelError {
		w = h.errWriter
	}
	_, err := w.Write(h.buf.Bytes())

	return err
}

func (h *handler) WithAttrs(as []slog.Attr) slog.Handler {
	return h.with(h.Handler.WithAttrs(as))
}

func (h *handler) WithGroup(name string) slog.Handler {
	return h.with(h.Handler.WithGroup(name))
}

func (h *handler) with(inner slog.Handler) *handler {
	return &handler{
		Handler:   inner,
		mu:        h.mu,
		buf:       h.buf,
		writer:    h.writer,
		errWriter: h.errWriter,
	}
}

func bufferedSlogHandler(buf io.Writer, conf Config) slog.Handler {
	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if conf.DisableTime && a.Key == slog.TimeKey && len(groups) == 0 {
			return slog.Attr{}
		}
		return a
	}
	level := ParseLevel(conf.Level)

	if strings.ToLower(conf.Format) == "json" {
		return slog.NewJSONHandler(buf, &slog.HandlerOptions{
			AddSource:   conf.Verbose,
			Level:       level,
			ReplaceAttr: replaceAttr,
		})
	}

	return tint.NewHandler(buf, &tint.Options{
		AddSource:   conf.Verbose,
		Level:       level,
		ReplaceAttr: replaceAttr,
		NoColor:     conf.NoColor,
	})
}
