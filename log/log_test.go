// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestTerminalHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTerminalHandlerWithLevel(&buf, LevelDebug, false))

	l.Info("reward paid", "amount", big.NewInt(4500), "weight", uint256.NewInt(12))
	out := buf.String()
	assert.Contains(t, out, "reward paid")
	assert.Contains(t, out, "amount=4500")
	assert.Contains(t, out, "weight=12")

	buf.Reset()
	l.Trace("dropped", "k", "v")
	assert.Empty(t, buf.String())
}

func TestLoggerAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTerminalHandler(&buf, false)).New("pkg", "staker")

	l.Info("staked", "amount", uint64(5))
	assert.Contains(t, buf.String(), "pkg=staker")
	assert.Contains(t, buf.String(), "amount=5")
}

func TestWithContextFollowsRoot(t *testing.T) {
	defer SetDefault(NewLogger(DiscardHandler()))

	ctxLogger := WithContext("pkg", "board")

	var buf bytes.Buffer
	SetDefault(NewLogger(NewTerminalHandler(&buf, false)))

	ctxLogger.Info("quest created", "id", uint64(1))
	assert.True(t, strings.Contains(buf.String(), "pkg=board"))
	assert.True(t, strings.Contains(buf.String(), "id=1"))
}

func TestLevelStrings(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(NewTerminalHandlerWithLevel(&buf, LevelTrace, false))
	l.Trace("t")
	l.Debug("d")
	l.Warn("w")
	l.Error("e")
	out := buf.String()
	for _, want := range []string{"TRACE", "DEBUG", "WARN", "ERROR"} {
		assert.Contains(t, out, want)
	}
}
