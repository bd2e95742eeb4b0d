// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slots

import (
	"math/big"

	"github.com/forgeboard/forge/forge"
)

// Uint64 is a wrapper for storage and retrieval of a uint64.
type Uint64 struct {
	context *Context
	pos     forge.Bytes32
}

func NewUint64(context *Context, pos forge.Bytes32) *Uint64 {
	return &Uint64{context: context, pos: pos}
}

func (u *Uint64) Get() (value uint64, err error) {
	err = u.context.state.GetStructuredStorage(u.context.address, u.pos, &value)
	return
}

func (u *Uint64) Set(value uint64) error {
	return u.context.state.SetStructuredStorage(u.context.address, u.pos, value)
}

// Counter is a monotonically increasing uint64 slot.
type Counter struct {
	Uint64
}

func NewCounter(context *Context, pos forge.Bytes32) *Counter {
	return &Counter{Uint64{context: context, pos: pos}}
}

// Next returns the current counter value and increments the stored one.
func (c *Counter) Next() (uint64, error) {
	value, err := c.Get()
	if err != nil {
		return 0, err
	}
	if err := c.Set(value + 1); err != nil {
		return 0, err
	}
	return value, nil
}

// BigInt is a wrapper for storage and retrieval of a big integer.
// An empty slot reads as zero.
type BigInt struct {
	context *Context
	pos     forge.Bytes32
}

func NewBigInt(context *Context, pos forge.Bytes32) *BigInt {
	return &BigInt{context: context, pos: pos}
}

func (b *BigInt) Get() (*big.Int, error) {
	value := new(big.Int)
	if err := b.context.state.GetStructuredStorage(b.context.address, b.pos, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (b *BigInt) Set(value *big.Int) error {
	return b.context.state.SetStructuredStorage(b.context.address, b.pos, value)
}

// Address is a wrapper for storage and retrieval of an address.
type Address struct {
	context *Context
	pos     forge.Bytes32
}

func NewAddress(context *Context, pos forge.Bytes32) *Address {
	return &Address{context: context, pos: pos}
}

func (a *Address) Get() (addr forge.Address, err error) {
	var b []byte
	if err = a.context.state.GetStructuredStorage(a.context.address, a.pos, &b); err != nil {
		return
	}
	return forge.BytesToAddress(b), nil
}

func (a *Address) Set(addr forge.Address) error {
	return a.context.state.SetStructuredStorage(a.context.address, a.pos, addr.Bytes())
}

// Bool is a wrapper for storage and retrieval of a bool.
type Bool struct {
	context *Context
	pos     forge.Bytes32
}

func NewBool(context *Context, pos forge.Bytes32) *Bool {
	return &Bool{context: context, pos: pos}
}

func (b *Bool) Get() (value bool, err error) {
	err = b.context.state.GetStructuredStorage(b.context.address, b.pos, &value)
	return
}

func (b *Bool) Set(value bool) error {
	return b.context.state.SetStructuredStorage(b.context.address, b.pos, value)
}
