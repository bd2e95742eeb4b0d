// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solo

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeboard/forge/builtin"
	"github.com/forgeboard/forge/xenv"
)

func TestRun(t *testing.T) {
	s := New(Options{})
	require.NoError(t, s.Run())

	// the scripted quest is closed with the rewards paid out
	_, err := s.rt.Execute("check", s.now, s.deployer, func(env *xenv.Environment) error {
		board := builtin.Board.Bind(env)
		quest, err := board.GetQuest(0)
		if err != nil {
			return err
		}
		assert.True(t, quest.IsClosed)

		token := builtin.Token.Bind(env)
		// alice's solution took carol's vote: 9000 pool, 10% to voters,
		// top-2 split of the rest
		balAlice, err := token.BalanceOf(s.alice)
		if err != nil {
			return err
		}
		assert.Equal(t, big.NewInt(10_000+4050), balAlice)

		balCarol, err := token.BalanceOf(s.carol)
		if err != nil {
			return err
		}
		assert.Equal(t, big.NewInt(10_000+900), balCarol)
		return nil
	})
	require.NoError(t, err)
}
