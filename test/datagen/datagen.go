// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package datagen provides random test data helpers.
package datagen

import (
	"crypto/rand"
	mathrand "math/rand"

	"github.com/forgeboard/forge/forge"
)

func RandAddress() (addr forge.Address) {
	rand.Read(addr[:])
	return
}

func RandBytes32() (b forge.Bytes32) {
	rand.Read(b[:])
	return
}

func RandIntN(n int) int {
	return mathrand.Intn(n) //#nosec G404
}
