// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the error type of named revert conditions.
//
// A revert aborts the whole operation with no state change; the runtime
// distinguishes reverts from infrastructure failures through IsRevertErr.
package reverts

import (
	"errors"
)

// ErrRevert a named revert condition raised by a contract operation.
type ErrRevert struct {
	message string
}

// New creates a revert condition with the given message.
func New(message string) *ErrRevert {
	return &ErrRevert{message: message}
}

func (e *ErrRevert) Error() string {
	return e.message
}

// IsRevertErr reports whether the value is (or wraps) a revert condition.
func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var re *ErrRevert
	return errors.As(e, &re)
}
