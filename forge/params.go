// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package forge

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Constants of the forge protocol.
const (
	// OneDay number of seconds in a day.
	OneDay uint64 = 24 * 60 * 60

	// MinStakeDuration minimum time a stake must be held before it can be withdrawn.
	MinStakeDuration uint64 = OneDay

	// MinVotingDuration minimum voting duration of a quest.
	MinVotingDuration uint64 = OneDay

	// VoterRewardPercentage share of a quest's reward pool paid out to voters.
	VoterRewardPercentage uint64 = 10
)

var (
	// InitialSupply total token supply, fixed at genesis. 1,000,000 tokens of 18 decimals.
	InitialSupply = new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(1e18))

	// RewardPool the half of the initial supply credited to the board's custody account at genesis.
	RewardPool = new(big.Int).Div(InitialSupply, big.NewInt(2))

	// UnlimitedAllowance sentinel allowance value that is never decremented by transferFrom.
	UnlimitedAllowance = uint256.NewInt(0).Not(uint256.NewInt(0)).ToBig()
)
