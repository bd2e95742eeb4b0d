// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/state"
	"github.com/forgeboard/forge/xenv"
)

func TestEnvironment(t *testing.T) {
	st := state.NewMem()
	caller := forge.BytesToAddress([]byte("caller"))
	contract := forge.BytesToAddress([]byte("contract"))

	env := xenv.New(st, &xenv.BlockContext{Time: 100}, &xenv.TransactionContext{Origin: caller})

	assert.Equal(t, st, env.State())
	assert.Equal(t, uint64(100), env.Now())
	assert.Equal(t, caller, env.Caller())

	env.Log("Transfer", contract, caller, contract, 1)
	env.Log("Approval", contract, caller, contract, 2)

	events := env.Events()
	assert.Len(t, events, 2)
	assert.Equal(t, "Transfer", events[0].Name)
	assert.Equal(t, contract, events[0].Address)
	assert.Equal(t, []any{caller, contract, 2}, events[1].Args)

	env.DropEvents()
	assert.Empty(t, env.Events())
}
