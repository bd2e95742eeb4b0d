// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package board

import (
	"math/big"

	"github.com/forgeboard/forge/builtin/slots"
	"github.com/forgeboard/forge/forge"
)

var oneHundred = big.NewInt(100)

// DistributeRewards closes a quest and pays out its reward pool. Owner only,
// once per quest.
//
// The pool splits 90/10 between participants and voters. Solutions are ranked
// by votes; each of the first TopParticipants ranked solutions with nonzero
// votes receives an equal share of the participant pool. Every voter receives
// a share of the voter pool proportional to the weight they cast. Division
// remainders stay in the custody balance.
func (b *Board) DistributeRewards(questID uint64) error {
	if err := b.guard.Enter(); err != nil {
		return err
	}
	defer b.guard.Leave()

	if err := b.checkOwner(); err != nil {
		return err
	}
	quest, err := b.getQuest(questID)
	if err != nil {
		return err
	}
	if b.env.Now() <= quest.EndTime {
		return ErrVotingPeriodNotEnded
	}
	if quest.IsClosed {
		return ErrAlreadyDistributed
	}
	if quest.TotalVotingWeight.Sign() == 0 {
		return ErrNoVotesCast
	}
	solutions := b.solutionsOf(questID)
	all, err := solutions.All()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return ErrNoSolutions
	}

	voterRewardPool := new(big.Int).Mul(quest.RewardPool, new(big.Int).SetUint64(forge.VoterRewardPercentage))
	voterRewardPool.Div(voterRewardPool, oneHundred)
	participantRewardPool := new(big.Int).Sub(quest.RewardPool, voterRewardPool)

	// terminal ranking; the sorted order stays visible through the accessors
	rankSolutions(all, 0, len(all)-1)
	for i, solution := range all {
		if err := solutions.Set(uint64(i), solution); err != nil {
			return err
		}
	}

	rewardPerParticipant := new(big.Int).Div(participantRewardPool, new(big.Int).SetUint64(quest.TopParticipants))
	winners := len(all)
	if quest.TopParticipants < uint64(winners) {
		winners = int(quest.TopParticipants)
	}
	paid := 0
	for i := 0; i < winners; i++ {
		if all[i].Votes.Sign() == 0 {
			continue
		}
		if err := b.token.Transfer(b.addr, all[i].Participant, rewardPerParticipant); err != nil {
			return err
		}
		paid++
	}
	totalParticipantRewardPaid := new(big.Int).Mul(rewardPerParticipant, big.NewInt(int64(paid)))

	voters, err := b.votersOf(questID).All()
	if err != nil {
		return err
	}
	votes := b.votesOf(questID)
	for _, voter := range voters {
		weight, err := votes.Get(voter)
		if err != nil {
			return err
		}
		voterReward := new(big.Int).Mul(voterRewardPool, weight)
		voterReward.Div(voterReward, quest.TotalVotingWeight)
		if voterReward.Sign() > 0 {
			if err := b.token.Transfer(b.addr, voter, voterReward); err != nil {
				return err
			}
		}
	}

	quest.IsClosed = true
	if err := b.quests.Set(slots.Uint64Key(questID), quest); err != nil {
		return err
	}

	logger.Info("rewards distributed",
		"quest", questID,
		"participantRewards", totalParticipantRewardPaid,
		"voterRewards", voterRewardPool,
	)
	metricDistributions().Add(1)
	b.env.Log(EventRewardsDistributed, b.addr, questID, totalParticipantRewardPaid, voterRewardPool)
	return nil
}
