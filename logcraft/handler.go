// Copyright (c) 2026 BVK Chaitanya

package logcraft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// slogHandler renders attributes added through WithAttrs when they are
// added, so Handle only renders the record's own attributes.
type slogHandler struct {
	logger *Logger

	// group is the dotted key prefix from WithGroup calls, e.g. "req.".
	group string

	// preformatted holds the " key=value" text of all WithAttrs attributes.
	preformatted string
}

// NewHandler returns a slog.Handler that writes log records into the input
// logger. Records at slog.LevelError and above are written at LevelError
// and the rest at LevelInfo; debug records are dropped. Attributes are
// appended to the message as key=value pairs, so every record is one line.
//
// Like Print, the handler leaves the logger at the level of the last
// record.
func NewHandler(l *Logger) slog.Handler {
	return &slogHandler{logger: l}
}

// SlogLevel returns the slog level that NewHandler maps back to v.
func (v Level) SlogLevel() slog.Level {
	if v == LevelError {
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.group = h.group + name + "."
	return &h2
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	for _, a := range attrs {
		writeAttr(&sb, h.group, a)
	}
	if sb.Len() == 0 {
		return h
	}
	h2 := *h
	h2.preformatted = h.preformatted + sb.String()
	return &h2
}

func (h *slogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *slogHandler) Handle(ctx context.Context, r slog.Record) error {
	level := LevelInfo
	if r.Level >= slog.LevelError {
		level = LevelError
	}

	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(h.preformatted)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})
	return h.logger.Print(level, sb.String())
}

// writeAttr writes a as " <group><key>=<value>". Groups are flattened into
// dotted keys and empty attributes or groups write nothing.
func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return
	}

	switch v.Kind() {
	case slog.KindGroup:
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, ga := range v.Group() {
			writeAttr(sb, group, ga)
		}
	case slog.KindString:
		fmt.Fprintf(sb, " %s%s=%q", group, a.Key, v.String())
	case slog.KindTime:
		fmt.Fprintf(sb, " %s%s=%s", group, a.Key, v.Time().Format(time.RFC3339Nano))
	default:
		fmt.Fprintf(sb, " %s%s=%s", group, a.Key, v)
	}
}
