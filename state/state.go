// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state provides the in-memory world state of the forge contracts.
//
// Storage is a flat mapping of (contract address, slot) to RLP-encoded bytes,
// journaled through a stackedmap so that an operation can be reverted as a
// whole. There is no persistence layer: the execution environment owns
// durability, the state only owns consistency within a run.
package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/stackedmap"
)

type storageKey struct {
	addr forge.Address
	slot forge.Bytes32
}

// State manages contract storage with checkpoint/revert semantics.
type State struct {
	sm *stackedmap.StackedMap
}

// NewMem creates an empty in-memory state.
func NewMem() *State {
	sm := stackedmap.New(func(any) (any, bool) {
		return nil, false
	})
	// base level, never popped
	sm.Push()
	return &State{sm: sm}
}

// GetRawStorage returns the RLP-encoded raw value stored at the given slot.
// A slot never written reads as empty.
func (s *State) GetRawStorage(addr forge.Address, slot forge.Bytes32) rlp.RawValue {
	if v, ok := s.sm.Get(storageKey{addr, slot}); ok {
		return v.(rlp.RawValue)
	}
	return nil
}

// SetRawStorage stores the RLP-encoded raw value at the given slot.
// Storing an empty value clears the slot.
func (s *State) SetRawStorage(addr forge.Address, slot forge.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, slot}, raw)
}

// DecodeStorage reads the slot and passes the raw value to the decoder.
func (s *State) DecodeStorage(addr forge.Address, slot forge.Bytes32, decode func(raw []byte) error) error {
	if err := decode(s.GetRawStorage(addr, slot)); err != nil {
		return errors.Wrap(err, "decode storage")
	}
	return nil
}

// EncodeStorage writes the encoder's output to the slot.
func (s *State) EncodeStorage(addr forge.Address, slot forge.Bytes32, encode func() ([]byte, error)) error {
	raw, err := encode()
	if err != nil {
		return errors.Wrap(err, "encode storage")
	}
	s.SetRawStorage(addr, slot, raw)
	return nil
}

// GetStructuredStorage RLP-decodes the slot content into val.
// An empty slot leaves val at its zero value.
func (s *State) GetStructuredStorage(addr forge.Address, slot forge.Bytes32, val any) error {
	return s.DecodeStorage(addr, slot, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, val)
	})
}

// SetStructuredStorage RLP-encodes val into the slot.
func (s *State) SetStructuredStorage(addr forge.Address, slot forge.Bytes32, val any) error {
	return s.EncodeStorage(addr, slot, func() ([]byte, error) {
		return rlp.EncodeToBytes(val)
	})
}

// NewCheckpoint makes a checkpoint of the current state.
// It returns a checkpoint handle for RevertTo.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts all changes made after the checkpoint was taken.
func (s *State) RevertTo(checkpoint int) {
	s.sm.PopTo(checkpoint)
}

// Journal walks all storage writes in order. Used by tests and diagnostics.
func (s *State) Journal(cb func(addr forge.Address, slot forge.Bytes32, raw rlp.RawValue) bool) {
	s.sm.Journal(func(key, value any) bool {
		k := key.(storageKey)
		return cb(k.addr, k.slot, value.(rlp.RawValue))
	})
}
