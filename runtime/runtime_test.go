// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeboard/forge/builtin"
	"github.com/forgeboard/forge/state"
	"github.com/forgeboard/forge/test/datagen"
	"github.com/forgeboard/forge/xenv"
)

func TestExecuteCommits(t *testing.T) {
	rt := New(state.NewMem())
	acc := datagen.RandAddress()

	out, err := rt.Execute("mint", 0, acc, func(env *xenv.Environment) error {
		return builtin.Token.Bind(env).Mint(acc, big.NewInt(1000))
	})
	require.NoError(t, err)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "Transfer", out.Events[0].Name)

	// the write survives into the next operation
	_, err = rt.Execute("check", 0, acc, func(env *xenv.Environment) error {
		bal, err := builtin.Token.Bind(env).BalanceOf(acc)
		if err != nil {
			return err
		}
		assert.Equal(t, big.NewInt(1000), bal)
		return nil
	})
	require.NoError(t, err)
}

func TestExecuteRevertsOnError(t *testing.T) {
	rt := New(state.NewMem())
	acc := datagen.RandAddress()
	boom := errors.New("boom")

	_, err := rt.Execute("mint-then-fail", 0, acc, func(env *xenv.Environment) error {
		if err := builtin.Token.Bind(env).Mint(acc, big.NewInt(1000)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// the mint was rolled back with the failure
	_, err = rt.Execute("check", 0, acc, func(env *xenv.Environment) error {
		bal, err := builtin.Token.Bind(env).BalanceOf(acc)
		if err != nil {
			return err
		}
		assert.Zero(t, bal.Sign())
		return nil
	})
	require.NoError(t, err)
}
