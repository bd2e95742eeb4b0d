// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis builds the deterministic initial state.
//
// The total supply is minted exactly once, at construction: half goes to the
// deployer's free balance, half to the board's custody account as the reward
// treasury. The deployer becomes the board owner. Nothing mints afterwards.
package genesis

import (
	"math/big"

	"github.com/forgeboard/forge/builtin"
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/log"
	"github.com/forgeboard/forge/state"
	"github.com/forgeboard/forge/xenv"
)

var logger = log.WithContext("pkg", "genesis")

// Genesis describes the initial state of a forge deployment.
type Genesis struct {
	deployer forge.Address
	launchAt uint64
}

// NewDevnet creates the genesis of a development deployment owned by the
// given deployer.
func NewDevnet(deployer forge.Address, launchAt uint64) *Genesis {
	return &Genesis{deployer: deployer, launchAt: launchAt}
}

// Deployer returns the deployer, the initial board owner.
func (g *Genesis) Deployer() forge.Address { return g.deployer }

// LaunchAt returns the clock value the deployment launches at.
func (g *Genesis) LaunchAt() uint64 { return g.launchAt }

// Build writes the initial state: mints the supply, funds the treasury and
// sets the board owner.
func (g *Genesis) Build(st *state.State) error {
	env := xenv.New(st,
		&xenv.BlockContext{Time: g.launchAt},
		&xenv.TransactionContext{Origin: g.deployer})

	token := builtin.Token.Bind(env)
	treasury := new(big.Int).Set(forge.RewardPool)
	free := new(big.Int).Sub(forge.InitialSupply, treasury)
	if err := token.Mint(g.deployer, free); err != nil {
		return err
	}
	if err := token.Mint(builtin.Board.Address, treasury); err != nil {
		return err
	}
	if err := builtin.Board.Bind(env).SetOwner(g.deployer); err != nil {
		return err
	}

	logger.Info("genesis state built",
		"deployer", g.deployer,
		"supply", forge.InitialSupply,
		"treasury", treasury,
	)
	return nil
}
