// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stackedmap implements a journaled map stack.
//
// Each pushed level shadows the levels below it, so the whole structure acts
// as a single map with save/revert semantics. It backs the state layer's
// checkpointing: every mutation lands in the top level, and popping a level
// undoes all mutations made since the matching push.
package stackedmap

// Source supplies values for keys not present in any level.
type Source func(key any) (value any, exist bool)

type level struct {
	kvs     map[any]any
	journal []*JournalEntry
}

// JournalEntry a recorded Put operation.
type JournalEntry struct {
	Key   any
	Value any
}

// StackedMap maintains map levels in a stack, with a fallback source.
type StackedMap struct {
	src       Source
	levels    []*level
	revisions map[any][]int // per-key stack of level indexes that contain the key
}

// New creates a StackedMap backed by src.
func New(src Source) *StackedMap {
	return &StackedMap{
		src:       src,
		revisions: make(map[any][]int),
	}
}

// Depth returns the count of pushed levels.
func (sm *StackedMap) Depth() int {
	return len(sm.levels)
}

// Push adds a new level and returns the depth before the push.
func (sm *StackedMap) Push() int {
	sm.levels = append(sm.levels, &level{kvs: make(map[any]any)})
	return len(sm.levels) - 1
}

// Pop removes the top level, reverting all Put operations since the matching Push.
func (sm *StackedMap) Pop() {
	top := sm.levels[len(sm.levels)-1]
	for key := range top.kvs {
		revs := sm.revisions[key]
		if len(revs) == 1 {
			delete(sm.revisions, key)
		} else {
			sm.revisions[key] = revs[:len(revs)-1]
		}
	}
	sm.levels = sm.levels[:len(sm.levels)-1]
}

// PopTo pops levels until the depth reaches the given value.
func (sm *StackedMap) PopTo(depth int) {
	for len(sm.levels) > depth {
		sm.Pop()
	}
}

// Get looks the key up in the levels from top to bottom, falling back to the source.
// The second return value indicates whether the key was found.
func (sm *StackedMap) Get(key any) (any, bool) {
	if revs, ok := sm.revisions[key]; ok {
		lvl := sm.levels[revs[len(revs)-1]]
		if v, ok := lvl.kvs[key]; ok {
			return v, true
		}
	}
	return sm.src(key)
}

// Put stores the key/value pair in the top level.
// It panics if no level has been pushed.
func (sm *StackedMap) Put(key, value any) {
	top := sm.levels[len(sm.levels)-1]
	top.kvs[key] = value
	top.journal = append(top.journal, &JournalEntry{Key: key, Value: value})

	rev := len(sm.levels) - 1
	if revs, ok := sm.revisions[key]; ok {
		if revs[len(revs)-1] != rev {
			sm.revisions[key] = append(revs, rev)
		}
	} else {
		sm.revisions[key] = []int{rev}
	}
}

// Journal walks all recorded Put operations from the bottom level up, in order.
// Walking stops when cb returns false.
func (sm *StackedMap) Journal(cb func(key, value any) bool) {
	for _, lvl := range sm.levels {
		for _, entry := range lvl.journal {
			if !cb(entry.Key, entry.Value) {
				return
			}
		}
	}
}
