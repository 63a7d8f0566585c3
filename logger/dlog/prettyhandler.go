package dlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/net/context"
)

type color int

const (
	timeFormat = "[2006-01-02 15:04:05.000]"

	reset = "\033[0m"

	cyan         color = 36
	lightGray    color = 37
	lightRed     color = 91
	lightYellow  color = 93
	lightMagenta color = 95
	white        color = 97
	green        color = 32
)

func colorize(colorCode color, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(int(colorCode)), v, reset)
}

type DualWriter struct {
	Stdout *os.File
	File   io.Writer
}

func (t *DualWriter) Write(p []byte) (n int, err error) {
	n, err = t.WriteStd(p)
	if err != nil {
		return n, err
	}
	return t.WriteFile(p)
}

func (t *DualWriter) WriteStd(p []byte) (n int, err error) {
	return t.Stdout.Write(p)
}

func (t *DualWriter) WriteFile(p []byte) (n int, err error) {
	return t.File.Write(p)
}

// prettyHandler renders records as colored single lines with the attrs
// pretty-printed as JSON. Debug records go to the file only so stdout
// stays readable.
type prettyHandler struct {
	inner  slog.Handler
	buf    *bytes.Buffer
	mu     *sync.Mutex
	writer *DualWriter
}

func newPrettyHandler(writer *DualWriter, opts *slog.HandlerOptions) *prettyHandler {
	buf := &bytes.Buffer{}
	return &prettyHandler{
		inner: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: suppressDefaults(opts.ReplaceAttr),
		}),
		buf:    buf,
		mu:     &sync.Mutex{},
		writer: writer,
	}
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey {
			return slog.Attr{}
		}
		if next == nil {
			return a
		}
		return next(groups, a)
	}
}

func (h *prettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyHandler{inner: h.inner.WithAttrs(attrs), buf: h.buf, mu: h.mu, writer: h.writer}
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	return &prettyHandler{inner: h.inner.WithGroup(name), buf: h.buf, mu: h.mu, writer: h.writer}
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	switch {
	case r.Level <= slog.LevelDebug:
		level = colorize(lightGray, level)
	case r.Level <= slog.LevelInfo:
		level = colorize(cyan, level)
	case r.Level <= slog.LevelWarn:
		level = colorize(lightYellow, level)
	case r.Level <= slog.LevelError:
		level = colorize(lightRed, level)
	default:
		level = colorize(lightMagenta, level)
	}

	timestamp := colorize(lightGray, r.Time.Format(timeFormat))
	msg := colorize(white, r.Message)

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var file string
	if source, ok := attrs["source"].(map[string]interface{}); ok {
		if f, ok2 := source["file"].(string); ok2 {
			if line, ok3 := source["line"].(float64); ok3 {
				file = f + ":" + strconv.Itoa(int(line))
			} else {
				file = f
			}
		}
		delete(attrs, "source")
	}

	out := strings.Builder{}
	out.WriteString(timestamp)
	out.WriteString(" ")
	out.WriteString(level)
	out.WriteString(" ")
	if len(file) > 0 {
		out.WriteString(file)
		out.WriteString(" ")
	}
	out.WriteString(msg)
	if len(attrs) > 0 {
		jsonBytes, err := json.MarshalIndent(attrs, "", "  ")
		if err != nil {
			return fmt.Errorf("error when marshaling attrs: %w", err)
		}
		out.WriteString(" ")
		out.WriteString(colorize(green, string(jsonBytes)))
	}
	out.WriteString("\n")

	if r.Level <= slog.LevelDebug {
		_, err = h.writer.WriteFile([]byte(out.String()))
		return err
	}
	_, err = h.writer.Write([]byte(out.String()))
	return err
}

func (h *prettyHandler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.mu.Lock()
	defer func() {
		h.buf.Reset()
		h.mu.Unlock()
	}()
	if err := h.inner.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	if err := json.Unmarshal(h.buf.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}
