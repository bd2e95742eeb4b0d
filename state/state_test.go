// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"

	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/state"
)

func TestRawStorage(t *testing.T) {
	st := state.NewMem()
	addr := forge.BytesToAddress([]byte("contract"))
	slot := forge.BytesToBytes32([]byte("slot"))

	assert.Empty(t, st.GetRawStorage(addr, slot))

	raw, _ := rlp.EncodeToBytes([]byte("value"))
	st.SetRawStorage(addr, slot, raw)
	assert.Equal(t, rlp.RawValue(raw), st.GetRawStorage(addr, slot))
}

func TestStructuredStorage(t *testing.T) {
	st := state.NewMem()
	addr := forge.BytesToAddress([]byte("contract"))
	slot := forge.BytesToBytes32([]byte("balance"))

	// empty slot decodes to zero value
	var got big.Int
	assert.NoError(t, st.GetStructuredStorage(addr, slot, &got))
	assert.Equal(t, int64(0), got.Int64())

	assert.NoError(t, st.SetStructuredStorage(addr, slot, big.NewInt(42)))
	assert.NoError(t, st.GetStructuredStorage(addr, slot, &got))
	assert.Equal(t, int64(42), got.Int64())
}

func TestCheckpointRevert(t *testing.T) {
	st := state.NewMem()
	addr := forge.BytesToAddress([]byte("contract"))
	slot := forge.BytesToBytes32([]byte("slot"))

	assert.NoError(t, st.SetStructuredStorage(addr, slot, big.NewInt(1)))

	cp := st.NewCheckpoint()
	assert.NoError(t, st.SetStructuredStorage(addr, slot, big.NewInt(2)))

	var got big.Int
	assert.NoError(t, st.GetStructuredStorage(addr, slot, &got))
	assert.Equal(t, int64(2), got.Int64())

	st.RevertTo(cp)
	assert.NoError(t, st.GetStructuredStorage(addr, slot, &got))
	assert.Equal(t, int64(1), got.Int64())
}

func TestNestedCheckpoints(t *testing.T) {
	st := state.NewMem()
	addr := forge.BytesToAddress([]byte("contract"))
	slot := forge.BytesToBytes32([]byte("slot"))

	cp1 := st.NewCheckpoint()
	assert.NoError(t, st.SetStructuredStorage(addr, slot, big.NewInt(1)))
	cp2 := st.NewCheckpoint()
	assert.NoError(t, st.SetStructuredStorage(addr, slot, big.NewInt(2)))

	st.RevertTo(cp2)
	var got big.Int
	assert.NoError(t, st.GetStructuredStorage(addr, slot, &got))
	assert.Equal(t, int64(1), got.Int64())

	st.RevertTo(cp1)
	assert.NoError(t, st.GetStructuredStorage(addr, slot, &got))
	assert.Equal(t, int64(0), got.Int64())
}
