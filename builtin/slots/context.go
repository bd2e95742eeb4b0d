// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package slots provides Solidity-layout storage primitives for builtin
// contracts: single-value slots, mappings and append-only arrays addressed by
// hashed storage positions, all bound to one contract address.
package slots

import (
	"encoding/binary"

	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/state"
)

// Context binds storage primitives to a contract address and a state.
type Context struct {
	address forge.Address
	state   *state.State
}

// NewContext creates a storage context for the contract at the given address.
func NewContext(address forge.Address, state *state.State) *Context {
	return &Context{address: address, state: state}
}

func (c *Context) Address() forge.Address { return c.address }
func (c *Context) State() *state.State    { return c.state }

// NameToSlot maps a human readable name to a root storage slot.
func NameToSlot(name string) forge.Bytes32 {
	return forge.BytesToBytes32([]byte(name))
}

// DeriveSlot derives a child slot from a base slot and key material,
// the way Solidity derives mapping and dynamic-array element positions.
func DeriveSlot(base forge.Bytes32, keys ...[]byte) forge.Bytes32 {
	data := make([][]byte, 0, len(keys)+1)
	data = append(data, keys...)
	data = append(data, base.Bytes())
	return forge.Blake2b(data...)
}

// Uint64Key adapts a uint64 for use as a mapping key.
type Uint64Key uint64

// Bytes returns the big-endian byte form of the key.
func (k Uint64Key) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(k))
	return b[:]
}
