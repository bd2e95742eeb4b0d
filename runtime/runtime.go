// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime is the atomic execution shell of contract operations.
//
// Every operation runs against a state checkpoint: on success its writes and
// events are kept, on any error the state rolls back to the checkpoint and the
// events are dropped. An operation is therefore all-or-nothing even when it
// fails halfway through a multi-write sequence.
package runtime

import (
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/log"
	"github.com/forgeboard/forge/metrics"
	"github.com/forgeboard/forge/state"
	"github.com/forgeboard/forge/xenv"
)

var (
	logger = log.WithContext("pkg", "runtime")

	metricOps = metrics.LazyLoadCounterVec("ops_total", []string{"op", "status"})
)

// Output collects what a successful operation produced.
type Output struct {
	Events []*xenv.Event
}

// Runtime executes operations atomically against one state.
type Runtime struct {
	state *state.State
}

// New creates a Runtime over the given state.
func New(state *state.State) *Runtime {
	return &Runtime{state: state}
}

func (rt *Runtime) State() *state.State { return rt.state }

// Execute runs one named operation in a fresh environment with the given
// clock value and caller. The operation's state writes and events commit
// together or not at all.
func (rt *Runtime) Execute(
	name string,
	now uint64,
	origin forge.Address,
	op func(env *xenv.Environment) error,
) (*Output, error) {
	env := xenv.New(rt.state,
		&xenv.BlockContext{Time: now},
		&xenv.TransactionContext{Origin: origin})

	checkpoint := rt.state.NewCheckpoint()
	if err := op(env); err != nil {
		rt.state.RevertTo(checkpoint)
		env.DropEvents()
		logger.Debug("operation reverted", "op", name, "origin", origin, "err", err)
		metricOps().AddWithLabel(1, map[string]string{"op": name, "status": "reverted"})
		return nil, err
	}

	metricOps().AddWithLabel(1, map[string]string{"op": name, "status": "ok"})
	return &Output{Events: env.Events()}, nil
}
