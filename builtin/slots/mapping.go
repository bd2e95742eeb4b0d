// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slots

import (
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/forgeboard/forge/forge"
)

// Key a mapping key.
type Key interface {
	Bytes() []byte
}

// Mapping is a key/value storage abstraction, similar to a mapping in Solidity.
// Values are RLP encoded; a key never written reads as the zero value of V.
type Mapping[K Key, V any] struct {
	context *Context
	basePos forge.Bytes32
}

// NewMapping creates a mapping rooted at the given storage position.
func NewMapping[K Key, V any](context *Context, pos forge.Bytes32) *Mapping[K, V] {
	return &Mapping[K, V]{context: context, basePos: pos}
}

func (m *Mapping[K, V]) position(key K) forge.Bytes32 {
	return DeriveSlot(m.basePos, key.Bytes())
}

// Get returns the value stored under key.
func (m *Mapping[K, V]) Get(key K) (value V, err error) {
	err = m.context.state.DecodeStorage(m.context.address, m.position(key), func(raw []byte) error {
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

// Set stores the value under key.
func (m *Mapping[K, V]) Set(key K, value V) error {
	return m.context.state.EncodeStorage(m.context.address, m.position(key), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	})
}

// Delete clears the value stored under key.
func (m *Mapping[K, V]) Delete(key K) error {
	return m.context.state.EncodeStorage(m.context.address, m.position(key), func() ([]byte, error) {
		return nil, nil
	})
}
