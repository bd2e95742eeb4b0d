// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package xenv provides the execution environment of contract operations.
//
// The surrounding system supplies a monotonically non-decreasing logical
// clock and the identity of the caller; contracts read both through the
// Environment and never from the wall clock.
package xenv

import (
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/state"
)

// BlockContext block context.
type BlockContext struct {
	// Time logical clock of the execution environment, in seconds.
	Time uint64
}

// TransactionContext transaction context.
type TransactionContext struct {
	// Origin identity of the external caller, verified by the environment.
	Origin forge.Address
}

// Event an event emitted by a contract operation.
type Event struct {
	Address forge.Address
	Name    string
	Args    []any
}

// Environment the environment one contract operation executes in.
type Environment struct {
	state    *state.State
	blockCtx *BlockContext
	txCtx    *TransactionContext
	events   []*Event
}

// New creates a new environment.
func New(state *state.State, blockCtx *BlockContext, txCtx *TransactionContext) *Environment {
	return &Environment{
		state:    state,
		blockCtx: blockCtx,
		txCtx:    txCtx,
	}
}

func (env *Environment) State() *state.State                     { return env.state }
func (env *Environment) BlockContext() *BlockContext             { return env.blockCtx }
func (env *Environment) TransactionContext() *TransactionContext { return env.txCtx }

// Now returns the logical clock value.
func (env *Environment) Now() uint64 { return env.blockCtx.Time }

// Caller returns the identity of the caller.
func (env *Environment) Caller() forge.Address { return env.txCtx.Origin }

// Log records an event emitted by the contract at the given address.
func (env *Environment) Log(name string, address forge.Address, args ...any) {
	env.events = append(env.events, &Event{
		Address: address,
		Name:    name,
		Args:    args,
	})
}

// Events returns all events emitted so far, in emission order.
func (env *Environment) Events() []*Event { return env.events }

// DropEvents discards all collected events. Called when the operation reverts.
func (env *Environment) DropEvents() { env.events = nil }
