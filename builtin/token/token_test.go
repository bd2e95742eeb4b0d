// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/state"
	"github.com/forgeboard/forge/xenv"
)

func newTestToken(t *testing.T) (*Token, *xenv.Environment) {
	env := xenv.New(state.NewMem(), &xenv.BlockContext{Time: 0}, &xenv.TransactionContext{})
	tok := New(forge.BytesToAddress([]byte("token")), env)
	return tok, env
}

func TestTransfer(t *testing.T) {
	tok, env := newTestToken(t)
	a := forge.BytesToAddress([]byte("a"))
	b := forge.BytesToAddress([]byte("b"))

	require.NoError(t, tok.Mint(a, big.NewInt(100)))

	assert.NoError(t, tok.Transfer(a, b, big.NewInt(40)))

	balA, err := tok.BalanceOf(a)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(60), balA)
	balB, err := tok.BalanceOf(b)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(40), balB)

	assert.ErrorIs(t, tok.Transfer(a, b, big.NewInt(61)), ErrInsufficientBalance)
	assert.ErrorIs(t, tok.Transfer(a, forge.Address{}, big.NewInt(1)), ErrInvalidReceiver)

	events := env.Events()
	require.Len(t, events, 2) // mint + transfer
	assert.Equal(t, EventTransfer, events[1].Name)
	assert.Equal(t, []any{a, b, big.NewInt(40)}, events[1].Args)
}

func TestTransferFrom(t *testing.T) {
	tok, _ := newTestToken(t)
	owner := forge.BytesToAddress([]byte("owner"))
	spender := forge.BytesToAddress([]byte("spender"))
	dst := forge.BytesToAddress([]byte("dst"))

	require.NoError(t, tok.Mint(owner, big.NewInt(100)))

	assert.ErrorIs(t, tok.TransferFrom(spender, owner, dst, big.NewInt(10)), ErrInsufficientAllowance)

	require.NoError(t, tok.Approve(owner, spender, big.NewInt(30)))
	assert.NoError(t, tok.TransferFrom(spender, owner, dst, big.NewInt(10)))

	allowed, err := tok.Allowance(owner, spender)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(20), allowed)

	assert.ErrorIs(t, tok.TransferFrom(spender, owner, dst, big.NewInt(21)), ErrInsufficientAllowance)

	bal, err := tok.BalanceOf(dst)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10), bal)
}

func TestUnlimitedAllowance(t *testing.T) {
	tok, _ := newTestToken(t)
	owner := forge.BytesToAddress([]byte("owner"))
	spender := forge.BytesToAddress([]byte("spender"))
	dst := forge.BytesToAddress([]byte("dst"))

	require.NoError(t, tok.Mint(owner, big.NewInt(100)))
	require.NoError(t, tok.Approve(owner, spender, forge.UnlimitedAllowance))

	assert.NoError(t, tok.TransferFrom(spender, owner, dst, big.NewInt(10)))

	allowed, err := tok.Allowance(owner, spender)
	require.NoError(t, err)
	assert.Equal(t, forge.UnlimitedAllowance, allowed)
}

func TestBurn(t *testing.T) {
	tok, _ := newTestToken(t)
	a := forge.BytesToAddress([]byte("a"))

	require.NoError(t, tok.Mint(a, big.NewInt(100)))
	assert.NoError(t, tok.Burn(a, big.NewInt(30)))

	bal, err := tok.BalanceOf(a)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(70), bal)

	supply, err := tok.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(70), supply)

	assert.ErrorIs(t, tok.Burn(a, big.NewInt(71)), ErrInsufficientBalance)
}

func TestConservation(t *testing.T) {
	tok, _ := newTestToken(t)
	accounts := []forge.Address{
		forge.BytesToAddress([]byte("a")),
		forge.BytesToAddress([]byte("b")),
		forge.BytesToAddress([]byte("c")),
	}

	require.NoError(t, tok.Mint(accounts[0], big.NewInt(1000)))

	transfers := []struct {
		from, to int
		amount   int64
	}{
		{0, 1, 100}, {0, 2, 300}, {1, 2, 50}, {2, 0, 25},
	}
	for _, tr := range transfers {
		require.NoError(t, tok.Transfer(accounts[tr.from], accounts[tr.to], big.NewInt(tr.amount)))
	}

	sum := new(big.Int)
	for _, acc := range accounts {
		bal, err := tok.BalanceOf(acc)
		require.NoError(t, err)
		sum.Add(sum, bal)
	}
	supply, err := tok.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, supply, sum)
}
