// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements the fungible-balance ledger.
//
// The ledger keeps per-account balances and the total supply. Supply is fixed
// at genesis; every later operation conserves it: the sum of all balances
// equals the total supply at all times.
package token

import (
	"math/big"

	"github.com/forgeboard/forge/builtin/reverts"
	"github.com/forgeboard/forge/builtin/slots"
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/xenv"
)

// Revert conditions of the ledger.
var (
	ErrInsufficientBalance   = reverts.New("insufficient balance")
	ErrInsufficientAllowance = reverts.New("insufficient allowance")
	ErrInvalidReceiver       = reverts.New("invalid receiver")
)

// Event names emitted by the ledger.
const (
	EventTransfer = "Transfer"
	EventApproval = "Approval"
)

var (
	slotTotalSupply = slots.NameToSlot("total-supply")
	slotBalances    = slots.NameToSlot("balances")
	slotAllowances  = slots.NameToSlot("allowances")
)

// Token binder of the ledger contract.
type Token struct {
	addr     forge.Address
	env      *xenv.Environment
	context  *slots.Context
	supply   *slots.BigInt
	balances *slots.Mapping[forge.Address, *big.Int]
}

// New creates a ledger bound to the contract address and environment.
func New(addr forge.Address, env *xenv.Environment) *Token {
	context := slots.NewContext(addr, env.State())
	return &Token{
		addr:     addr,
		env:      env,
		context:  context,
		supply:   slots.NewBigInt(context, slotTotalSupply),
		balances: slots.NewMapping[forge.Address, *big.Int](context, slotBalances),
	}
}

// Address returns the ledger's contract address.
func (t *Token) Address() forge.Address { return t.addr }

// TotalSupply returns the fixed total supply.
func (t *Token) TotalSupply() (*big.Int, error) {
	return t.supply.Get()
}

// BalanceOf returns the free balance of the account.
func (t *Token) BalanceOf(addr forge.Address) (*big.Int, error) {
	return t.balances.Get(addr)
}

func (t *Token) allowanceOf(owner forge.Address) *slots.Mapping[forge.Address, *big.Int] {
	return slots.NewMapping[forge.Address, *big.Int](t.context, slots.DeriveSlot(slotAllowances, owner.Bytes()))
}

// Allowance returns the amount the spender may transfer out of the owner's balance.
func (t *Token) Allowance(owner, spender forge.Address) (*big.Int, error) {
	return t.allowanceOf(owner).Get(spender)
}

// Transfer moves amount from one account to another.
// Fails with ErrInvalidReceiver for the null receiver and ErrInsufficientBalance
// when the sender's balance is short.
func (t *Token) Transfer(from, to forge.Address, amount *big.Int) error {
	if to.IsZero() {
		return ErrInvalidReceiver
	}
	fromBal, err := t.balances.Get(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	toBal, err := t.balances.Get(to)
	if err != nil {
		return err
	}
	if err := t.balances.Set(from, new(big.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	if err := t.balances.Set(to, new(big.Int).Add(toBal, amount)); err != nil {
		return err
	}
	t.env.Log(EventTransfer, t.addr, from, to, new(big.Int).Set(amount))
	return nil
}

// Approve lets the spender transfer up to amount out of the owner's balance.
// Approving forge.UnlimitedAllowance yields an allowance that transfers never decrement.
func (t *Token) Approve(owner, spender forge.Address, amount *big.Int) error {
	if err := t.allowanceOf(owner).Set(spender, amount); err != nil {
		return err
	}
	t.env.Log(EventApproval, t.addr, owner, spender, new(big.Int).Set(amount))
	return nil
}

// TransferFrom moves amount from one account to another on the spender's
// behalf, consuming the spender's allowance. Fails with
// ErrInsufficientAllowance when the approved amount is short.
func (t *Token) TransferFrom(spender, from, to forge.Address, amount *big.Int) error {
	allowed, err := t.allowanceOf(from).Get(spender)
	if err != nil {
		return err
	}
	if allowed.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}
	if allowed.Cmp(forge.UnlimitedAllowance) != 0 {
		if err := t.allowanceOf(from).Set(spender, new(big.Int).Sub(allowed, amount)); err != nil {
			return err
		}
	}
	return t.Transfer(from, to, amount)
}

// Mint credits a fresh balance and grows the supply. Genesis only; nothing
// mints after construction.
func (t *Token) Mint(addr forge.Address, amount *big.Int) error {
	bal, err := t.balances.Get(addr)
	if err != nil {
		return err
	}
	if err := t.balances.Set(addr, new(big.Int).Add(bal, amount)); err != nil {
		return err
	}
	supply, err := t.supply.Get()
	if err != nil {
		return err
	}
	if err := t.supply.Set(new(big.Int).Add(supply, amount)); err != nil {
		return err
	}
	t.env.Log(EventTransfer, t.addr, forge.Address{}, addr, new(big.Int).Set(amount))
	return nil
}

// Burn destroys part of an account's balance and shrinks the supply.
// Present for completeness; no quest or staking flow burns.
func (t *Token) Burn(from forge.Address, amount *big.Int) error {
	bal, err := t.balances.Get(from)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	if err := t.balances.Set(from, new(big.Int).Sub(bal, amount)); err != nil {
		return err
	}
	supply, err := t.supply.Get()
	if err != nil {
		return err
	}
	if err := t.supply.Set(new(big.Int).Sub(supply, amount)); err != nil {
		return err
	}
	t.env.Log(EventTransfer, t.addr, from, forge.Address{}, new(big.Int).Set(amount))
	return nil
}
