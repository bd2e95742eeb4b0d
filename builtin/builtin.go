// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin binds the built-in contracts to their well-known addresses.
package builtin

import (
	"github.com/forgeboard/forge/builtin/board"
	"github.com/forgeboard/forge/builtin/staker"
	"github.com/forgeboard/forge/builtin/token"
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/xenv"
)

// Builtin contracts binding. The board address doubles as the custody
// account: it holds staked principal and the reward treasury.
var (
	Token = &tokenContract{forge.BytesToAddress([]byte("forge-token"))}
	Board = &boardContract{forge.BytesToAddress([]byte("forge-board"))}
)

type (
	tokenContract struct{ Address forge.Address }
	boardContract struct{ Address forge.Address }
)

func (t *tokenContract) Bind(env *xenv.Environment) *token.Token {
	return token.New(t.Address, env)
}

func (b *boardContract) Bind(env *xenv.Environment) *board.Board {
	return board.New(b.Address, env, Token.Bind(env), b.BindStaker(env))
}

func (b *boardContract) BindStaker(env *xenv.Environment) *staker.Staker {
	return staker.New(b.Address, env, Token.Bind(env))
}
