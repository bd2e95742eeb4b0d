// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staker implements the stake registry.
//
// Staking locks part of an account's free balance in the board's custody for
// at least forge.MinStakeDuration and earns voting power that grows with both
// the staked amount and the holding time. Top-up deposits keep the original
// start time; withdrawal is all-or-nothing.
package staker

import (
	"math/big"

	"github.com/forgeboard/forge/builtin/reverts"
	"github.com/forgeboard/forge/builtin/slots"
	"github.com/forgeboard/forge/builtin/token"
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/log"
	"github.com/forgeboard/forge/xenv"
)

var logger = log.WithContext("pkg", "staker")

// Revert conditions of the stake registry.
var (
	ErrInvalidAmount         = reverts.New("invalid amount")
	ErrNoStake               = reverts.New("no stake")
	ErrMinimumDurationNotMet = reverts.New("minimum stake duration not met")
)

// Event names emitted by the stake registry.
const (
	EventTokensStaked   = "TokensStaked"
	EventTokensUnstaked = "TokensUnstaked"
)

var (
	slotStakes = slots.NameToSlot("stakes")
	slotGuard  = slots.NameToSlot("stake-guard")
)

// Staker binder of the stake registry.
type Staker struct {
	addr   forge.Address
	env    *xenv.Environment
	token  *token.Token
	stakes *slots.Mapping[forge.Address, *Stake]
	guard  *slots.Guard
}

// New creates a stake registry bound to the custody address. Staked funds
// move into the custody account of the given ledger.
func New(addr forge.Address, env *xenv.Environment, token *token.Token) *Staker {
	context := slots.NewContext(addr, env.State())
	return &Staker{
		addr:   addr,
		env:    env,
		token:  token,
		stakes: slots.NewMapping[forge.Address, *Stake](context, slotStakes),
		guard:  slots.NewGuard(context, slotGuard),
	}
}

// GetStake returns the caller's active stake record, or an empty record.
func (s *Staker) GetStake(addr forge.Address) (*Stake, error) {
	return s.stakes.Get(addr)
}

// VotingWeight returns the voting power of the account at the current clock:
// stake amount times whole elapsed days since the original stake start
// (integer truncation). Zero without an active stake.
func (s *Staker) VotingWeight(addr forge.Address) (*big.Int, error) {
	stake, err := s.stakes.Get(addr)
	if err != nil {
		return nil, err
	}
	if stake.IsEmpty() {
		return new(big.Int), nil
	}
	elapsed := new(big.Int).SetUint64(s.env.Now() - stake.StartTime)
	weight := new(big.Int).Mul(stake.Amount, elapsed)
	return weight.Div(weight, new(big.Int).SetUint64(forge.OneDay)), nil
}

// Stake locks amount of the caller's free balance in custody.
// The first deposit creates the stake record; later deposits top it up,
// refreshing the last-update time but preserving the original start time.
func (s *Staker) Stake(amount *big.Int) error {
	if err := s.guard.Enter(); err != nil {
		return err
	}
	defer s.guard.Leave()

	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	caller := s.env.Caller()
	if err := s.token.Transfer(caller, s.addr, amount); err != nil {
		return err
	}

	stake, err := s.stakes.Get(caller)
	if err != nil {
		return err
	}
	now := s.env.Now()
	if stake.IsEmpty() {
		stake = &Stake{
			Amount:         new(big.Int).Set(amount),
			StartTime:      now,
			LastUpdateTime: now,
		}
	} else {
		stake.Amount = new(big.Int).Add(stake.Amount, amount)
		stake.LastUpdateTime = now
	}
	if err := s.stakes.Set(caller, stake); err != nil {
		return err
	}

	logger.Debug("tokens staked", "staker", caller, "amount", amount, "start", stake.StartTime)
	s.env.Log(EventTokensStaked, s.addr, caller, new(big.Int).Set(amount))
	return nil
}

// Unstake withdraws the caller's full staked principal back to the free
// balance and deletes the stake record. Fails with ErrMinimumDurationNotMet
// before the stake has been held for forge.MinStakeDuration.
func (s *Staker) Unstake() error {
	if err := s.guard.Enter(); err != nil {
		return err
	}
	defer s.guard.Leave()

	caller := s.env.Caller()
	stake, err := s.stakes.Get(caller)
	if err != nil {
		return err
	}
	if stake.IsEmpty() {
		return ErrNoStake
	}
	if s.env.Now() < stake.StartTime+forge.MinStakeDuration {
		return ErrMinimumDurationNotMet
	}

	if err := s.token.Transfer(s.addr, caller, stake.Amount); err != nil {
		return err
	}
	if err := s.stakes.Delete(caller); err != nil {
		return err
	}

	logger.Debug("tokens unstaked", "staker", caller, "amount", stake.Amount)
	s.env.Log(EventTokensUnstaked, s.addr, caller, stake.Amount)
	return nil
}
