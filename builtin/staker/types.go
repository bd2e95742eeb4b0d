// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"math/big"
)

// Stake the record of one account's locked balance.
// At most one active stake exists per account.
type Stake struct {
	Amount         *big.Int
	StartTime      uint64
	LastUpdateTime uint64
}

// IsEmpty returns true when no active stake exists.
func (s *Stake) IsEmpty() bool {
	return s == nil || s.Amount == nil || s.Amount.Sign() == 0
}
