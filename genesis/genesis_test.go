// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeboard/forge/builtin"
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/state"
	"github.com/forgeboard/forge/test/datagen"
	"github.com/forgeboard/forge/xenv"
)

func TestBuild(t *testing.T) {
	deployer := datagen.RandAddress()
	st := state.NewMem()
	require.NoError(t, NewDevnet(deployer, 0).Build(st))

	env := xenv.New(st, &xenv.BlockContext{}, &xenv.TransactionContext{Origin: deployer})
	token := builtin.Token.Bind(env)

	supply, err := token.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, forge.InitialSupply, supply)

	treasury, err := token.BalanceOf(builtin.Board.Address)
	require.NoError(t, err)
	assert.Equal(t, forge.RewardPool, treasury)

	free, err := token.BalanceOf(deployer)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Sub(forge.InitialSupply, forge.RewardPool), free)

	owner, err := builtin.Board.Bind(env).Owner()
	require.NoError(t, err)
	assert.Equal(t, deployer, owner)
}

func TestBuildIsDeterministic(t *testing.T) {
	deployer := datagen.RandAddress()

	journal := func() [][2][]byte {
		st := state.NewMem()
		require.NoError(t, NewDevnet(deployer, 0).Build(st))
		var entries [][2][]byte
		st.Journal(func(addr forge.Address, slot forge.Bytes32, raw rlp.RawValue) bool {
			entries = append(entries, [2][]byte{append(addr.Bytes(), slot.Bytes()...), raw})
			return true
		})
		return entries
	}

	assert.Equal(t, journal(), journal())
}
