// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package solo runs a complete quest lifecycle against an in-memory state.
//
// Solo mode is the standalone client: no networking, no persistence. It
// builds the genesis state, then drives a scripted cast of accounts through
// quest creation, solution submission, staking, voting and reward
// distribution, advancing the logical clock a day at a time.
package solo

import (
	"math/big"
	"time"

	"github.com/forgeboard/forge/builtin"
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/genesis"
	"github.com/forgeboard/forge/log"
	"github.com/forgeboard/forge/runtime"
	"github.com/forgeboard/forge/state"
	"github.com/forgeboard/forge/xenv"
)

var logger = log.WithContext("pkg", "solo")

// Options tunes the lifecycle run.
type Options struct {
	// Pause wall-clock pause between lifecycle steps, zero to run flat out.
	Pause time.Duration
}

// Solo drives one scripted quest lifecycle.
type Solo struct {
	options Options
	rt      *runtime.Runtime
	now     uint64

	deployer forge.Address
	alice    forge.Address
	bob      forge.Address
	carol    forge.Address
}

// New returns a Solo instance over a fresh in-memory state.
func New(options Options) *Solo {
	return &Solo{
		options:  options,
		rt:       runtime.New(state.NewMem()),
		deployer: forge.BytesToAddress([]byte("solo-deployer")),
		alice:    forge.BytesToAddress([]byte("solo-alice")),
		bob:      forge.BytesToAddress([]byte("solo-bob")),
		carol:    forge.BytesToAddress([]byte("solo-carol")),
	}
}

// Run executes the lifecycle and logs every step. It returns the first
// operation error, which for the scripted scenario means a broken build.
func (s *Solo) Run() error {
	if err := genesis.NewDevnet(s.deployer, s.now).Build(s.rt.State()); err != nil {
		return err
	}

	// fund the cast out of the deployer's free balance
	for _, acc := range []forge.Address{s.alice, s.bob, s.carol} {
		if err := s.execute("transfer", s.deployer, func(env *xenv.Environment) error {
			return builtin.Token.Bind(env).Transfer(s.deployer, acc, big.NewInt(10_000))
		}); err != nil {
			return err
		}
	}

	var questID uint64
	if err := s.execute("createQuest", s.deployer, func(env *xenv.Environment) error {
		id, err := builtin.Board.Bind(env).CreateQuest(
			"build a forge client", big.NewInt(9_000), forge.OneDay, 2)
		questID = id
		return err
	}); err != nil {
		return err
	}

	// carol stakes early so her vote carries a day of weight
	if err := s.execute("stake", s.carol, func(env *xenv.Environment) error {
		return builtin.Board.BindStaker(env).Stake(big.NewInt(500))
	}); err != nil {
		return err
	}

	for _, sub := range []struct {
		who    forge.Address
		github string
		site   string
	}{
		{s.alice, "https://github.com/alice/forge-client", "https://alice.example"},
		{s.bob, "https://github.com/bob/forge-client", "https://bob.example"},
	} {
		if err := s.execute("submitSolution", sub.who, func(env *xenv.Environment) error {
			_, err := builtin.Board.Bind(env).SubmitSolution(questID, sub.github, sub.site)
			return err
		}); err != nil {
			return err
		}
	}

	s.advance(forge.OneDay)
	if err := s.execute("vote", s.carol, func(env *xenv.Environment) error {
		return builtin.Board.Bind(env).Vote(questID, 0)
	}); err != nil {
		return err
	}

	s.advance(1)
	if err := s.execute("distributeRewards", s.deployer, func(env *xenv.Environment) error {
		return builtin.Board.Bind(env).DistributeRewards(questID)
	}); err != nil {
		return err
	}

	// carol held her stake the minimum duration, so she can exit
	if err := s.execute("unstake", s.carol, func(env *xenv.Environment) error {
		return builtin.Board.BindStaker(env).Unstake()
	}); err != nil {
		return err
	}

	return s.printBalances()
}

func (s *Solo) execute(name string, origin forge.Address, op func(env *xenv.Environment) error) error {
	if s.options.Pause > 0 {
		time.Sleep(s.options.Pause)
	}
	out, err := s.rt.Execute(name, s.now, origin, op)
	if err != nil {
		logger.Error("operation failed", "op", name, "err", err)
		return err
	}
	for _, ev := range out.Events {
		logger.Info("event", "op", name, "name", ev.Name, "args", ev.Args)
	}
	return nil
}

func (s *Solo) advance(seconds uint64) {
	s.now += seconds
	logger.Info("clock advanced", "now", s.now)
}

func (s *Solo) printBalances() error {
	_, err := s.rt.Execute("balances", s.now, s.deployer, func(env *xenv.Environment) error {
		token := builtin.Token.Bind(env)
		for _, acc := range []struct {
			name string
			addr forge.Address
		}{
			{"deployer", s.deployer},
			{"alice", s.alice},
			{"bob", s.bob},
			{"carol", s.carol},
			{"custody", builtin.Board.Address},
		} {
			bal, err := token.BalanceOf(acc.addr)
			if err != nil {
				return err
			}
			logger.Info("balance", "account", acc.name, "amount", bal)
		}
		return nil
	})
	return err
}
