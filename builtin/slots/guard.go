// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slots

import (
	"github.com/pkg/errors"

	"github.com/forgeboard/forge/forge"
)

// ErrReentrantCall returned when a guarded operation is re-entered while
// already executing on the same contract instance.
var ErrReentrantCall = errors.New("reentrant call")

// Guard is a storage-backed re-entrancy guard. The flag lives in contract
// storage so that it is scoped to the contract instance, not the caller.
type Guard struct {
	flag *Bool
}

func NewGuard(context *Context, pos forge.Bytes32) *Guard {
	return &Guard{flag: NewBool(context, pos)}
}

// Enter sets the executing flag, failing with ErrReentrantCall if it is
// already set. Callers must pair every successful Enter with a deferred
// Leave so the flag clears on every exit path.
func (g *Guard) Enter() error {
	entered, err := g.flag.Get()
	if err != nil {
		return err
	}
	if entered {
		return ErrReentrantCall
	}
	return g.flag.Set(true)
}

// Leave clears the executing flag.
func (g *Guard) Leave() {
	// the flag is a plain bool slot, Set cannot fail
	_ = g.flag.Set(false)
}
