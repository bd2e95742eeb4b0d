// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package board

import (
	"math/big"

	"github.com/forgeboard/forge/forge"
)

// Quest a time-boxed competition with a reward pool, open for solution
// submission and voting until its end time.
type Quest struct {
	ID                uint64
	Description       string
	RewardPool        *big.Int
	VotingDuration    uint64
	EndTime           uint64
	TopParticipants   uint64
	IsClosed          bool
	TotalVotingWeight *big.Int
}

// normalize backfills nil big integers so that an id never assigned reads as
// an all-zero quest record.
func (q *Quest) normalize() *Quest {
	if q.RewardPool == nil {
		q.RewardPool = new(big.Int)
	}
	if q.TotalVotingWeight == nil {
		q.TotalVotingWeight = new(big.Int)
	}
	return q
}

// Solution one participant's submission to a quest. Its index in the quest's
// solution list is the stable solution id.
type Solution struct {
	Participant    forge.Address
	GithubLink     string
	WebsiteLink    string
	Votes          *big.Int
	SubmissionTime uint64
}
