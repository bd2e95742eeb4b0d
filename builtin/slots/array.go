// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slots

import (
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/forgeboard/forge/forge"
)

// ErrIndexOutOfRange returned when an array element index is >= the array length.
var ErrIndexOutOfRange = errors.New("array index out of range")

// Array is an append-only dynamic array abstraction, similar to a dynamic
// array in Solidity: the length lives at the base position, element i at a
// slot derived from the base position and i.
type Array[V any] struct {
	context *Context
	basePos forge.Bytes32
}

// NewArray creates an array rooted at the given storage position.
func NewArray[V any](context *Context, pos forge.Bytes32) *Array[V] {
	return &Array[V]{context: context, basePos: pos}
}

func (a *Array[V]) elementPos(index uint64) forge.Bytes32 {
	return DeriveSlot(a.basePos, Uint64Key(index).Bytes())
}

// Len returns the element count.
func (a *Array[V]) Len() (length uint64, err error) {
	err = a.context.state.GetStructuredStorage(a.context.address, a.basePos, &length)
	return
}

// Get returns the element at index, failing with ErrIndexOutOfRange when
// index is past the end.
func (a *Array[V]) Get(index uint64) (value V, err error) {
	length, err := a.Len()
	if err != nil {
		return
	}
	if index >= length {
		err = ErrIndexOutOfRange
		return
	}
	err = a.context.state.DecodeStorage(a.context.address, a.elementPos(index), func(raw []byte) error {
		if reflect.ValueOf(value).Kind() == reflect.Ptr {
			value = reflect.New(reflect.TypeOf(value).Elem()).Interface().(V)
		}
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &value)
	})
	return
}

// Set overwrites the element at index.
func (a *Array[V]) Set(index uint64, value V) error {
	length, err := a.Len()
	if err != nil {
		return err
	}
	if index >= length {
		return ErrIndexOutOfRange
	}
	return a.context.state.EncodeStorage(a.context.address, a.elementPos(index), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	})
}

// Append stores the value past the current end and returns its index.
func (a *Array[V]) Append(value V) (uint64, error) {
	length, err := a.Len()
	if err != nil {
		return 0, err
	}
	if err := a.context.state.EncodeStorage(a.context.address, a.elementPos(length), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	}); err != nil {
		return 0, err
	}
	if err := a.context.state.SetStructuredStorage(a.context.address, a.basePos, length+1); err != nil {
		return 0, err
	}
	return length, nil
}

// All reads the whole array into a slice.
func (a *Array[V]) All() ([]V, error) {
	length, err := a.Len()
	if err != nil {
		return nil, err
	}
	values := make([]V, 0, length)
	for i := uint64(0); i < length; i++ {
		v, err := a.Get(i)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
