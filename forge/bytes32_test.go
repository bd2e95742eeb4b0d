// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes32(t *testing.T) {
	b := BytesToBytes32([]byte("quest"))
	assert.False(t, b.IsZero())
	assert.Equal(t, 32, len(b.Bytes()))

	parsed, err := ParseBytes32(b.String())
	assert.NoError(t, err)
	assert.Equal(t, b, parsed)

	_, err = ParseBytes32("0x123")
	assert.Error(t, err)

	assert.True(t, Bytes32{}.IsZero())
}

func TestBlake2b(t *testing.T) {
	single := Blake2b([]byte("ab"))
	multi := Blake2b([]byte("a"), []byte("b"))
	assert.Equal(t, single, multi)
	assert.NotEqual(t, single, Blake2b([]byte("ba")))
}
