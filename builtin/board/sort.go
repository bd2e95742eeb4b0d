// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package board

// rankSolutions sorts solutions by votes, descending, in place, using a
// partition-exchange sort with the rightmost element as pivot. Elements with
// votes greater than or equal to the pivot move into the left partition, so
// equal-vote entries are not guaranteed to keep their original relative
// order. The ordering this produces is part of the observable contract: the
// sort runs once, terminally, after a quest closes for appends.
func rankSolutions(solutions []*Solution, low, high int) {
	if low >= high {
		return
	}
	p := partition(solutions, low, high)
	rankSolutions(solutions, low, p-1)
	rankSolutions(solutions, p+1, high)
}

func partition(solutions []*Solution, low, high int) int {
	pivot := solutions[high].Votes
	i := low - 1
	for j := low; j < high; j++ {
		if solutions[j].Votes.Cmp(pivot) >= 0 {
			i++
			solutions[i], solutions[j] = solutions[j], solutions[i]
		}
	}
	solutions[i+1], solutions[high] = solutions[high], solutions[i+1]
	return i + 1
}
