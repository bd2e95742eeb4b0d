// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/holiman/uint256"
)

type discardHandler struct{}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

func (h *discardHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h *discardHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (h *discardHandler) WithGroup(_ string) slog.Handler               { return &discardHandler{} }
func (h *discardHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return &discardHandler{} }

const (
	timeFormat = "01-02|15:04:05.000"

	escapeReset  = "\x1b[0m"
	escapeRed    = "\x1b[31m"
	escapeYellow = "\x1b[33m"
	escapeGreen  = "\x1b[32m"
	escapeCyan   = "\x1b[36m"
	escapeGray   = "\x1b[90m"
)

// TerminalHandler formats records for human readability on a terminal,
// with color-coded levels and logfmt-style attributes.
type TerminalHandler struct {
	mu       sync.Mutex
	wr       io.Writer
	lvl      slog.Level
	useColor bool
	attrs    []slog.Attr
}

// NewTerminalHandler returns a terminal handler printing records at LevelInfo and above.
func NewTerminalHandler(wr io.Writer, useColor bool) *TerminalHandler {
	return NewTerminalHandlerWithLevel(wr, LevelInfo, useColor)
}

// NewTerminalHandlerWithLevel returns a terminal handler printing records at
// the given level and above.
func NewTerminalHandlerWithLevel(wr io.Writer, lvl slog.Level, useColor bool) *TerminalHandler {
	return &TerminalHandler{
		wr:       wr,
		lvl:      lvl,
		useColor: useColor,
	}
}

func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.lvl
}

func (h *TerminalHandler) WithGroup(_ string) slog.Handler {
	panic("not implemented")
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TerminalHandler{
		wr:       h.wr,
		lvl:      h.lvl,
		useColor: h.useColor,
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	buf := make([]byte, 0, 128)
	lvl, color := levelString(r.Level)
	if h.useColor && color != "" {
		buf = append(buf, color...)
		buf = append(buf, lvl...)
		buf = append(buf, escapeReset...)
	} else {
		buf = append(buf, lvl...)
	}
	buf = append(buf, '[')
	buf = time.Now().AppendFormat(buf, timeFormat)
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	for _, attr := range h.attrs {
		buf = h.appendAttr(buf, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		buf = h.appendAttr(buf, attr)
		return true
	})
	buf = append(buf, '\n')

	_, err := h.wr.Write(buf)
	return err
}

func (h *TerminalHandler) appendAttr(buf []byte, attr slog.Attr) []byte {
	buf = append(buf, ' ')
	if h.useColor {
		buf = append(buf, escapeGray...)
		buf = append(buf, attr.Key...)
		buf = append(buf, '=')
		buf = append(buf, escapeReset...)
	} else {
		buf = append(buf, attr.Key...)
		buf = append(buf, '=')
	}
	return append(buf, formatValue(attr.Value)...)
}

func levelString(lvl slog.Level) (string, string) {
	switch {
	case lvl <= LevelTrace:
		return "TRACE", escapeGray
	case lvl <= LevelDebug:
		return "DEBUG", escapeCyan
	case lvl <= LevelInfo:
		return "INFO ", escapeGreen
	case lvl <= LevelWarn:
		return "WARN ", escapeYellow
	default:
		return "ERROR", escapeRed
	}
}

// formatValue renders an attribute value, with readable forms for the big
// integer types that dominate ledger logs.
func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindString:
		return v.String()
	case slog.KindAny:
		switch n := v.Any().(type) {
		case *big.Int:
			if n == nil {
				return "<nil>"
			}
			return n.String()
		case *uint256.Int:
			if n == nil {
				return "<nil>"
			}
			return n.Dec()
		case fmt.Stringer:
			return n.String()
		}
	}
	return fmt.Sprintf("%v", v.Any())
}
