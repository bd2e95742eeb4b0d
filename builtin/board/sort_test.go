// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package board

import (
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeboard/forge/test/datagen"
)

func solutionsWithVotes(votes ...int64) []*Solution {
	solutions := make([]*Solution, 0, len(votes))
	for _, v := range votes {
		solutions = append(solutions, &Solution{
			Participant: datagen.RandAddress(),
			Votes:       big.NewInt(v),
		})
	}
	return solutions
}

func TestRankSolutionsDescending(t *testing.T) {
	for _, votes := range [][]int64{
		{3, 1, 2},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{0, 7, 0, 7, 1},
		{42},
		{},
	} {
		solutions := solutionsWithVotes(votes...)
		if len(solutions) > 0 {
			rankSolutions(solutions, 0, len(solutions)-1)
		}
		assert.True(t, sort.SliceIsSorted(solutions, func(i, j int) bool {
			return solutions[i].Votes.Cmp(solutions[j].Votes) > 0
		}), "votes %v", votes)
	}
}

func TestRankSolutionsKeepsElements(t *testing.T) {
	solutions := solutionsWithVotes(2, 2, 9, 0, 9, 5)
	before := make(map[string]int64, len(solutions))
	for _, s := range solutions {
		before[s.Participant.String()] = s.Votes.Int64()
	}

	rankSolutions(solutions, 0, len(solutions)-1)

	assert.Len(t, solutions, len(before))
	for _, s := range solutions {
		assert.Equal(t, before[s.Participant.String()], s.Votes.Int64())
	}
}
