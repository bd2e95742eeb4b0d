// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package board implements the quest board: the quest store, the voting
// engine and the reward distributor.
//
// Quests are created by the board owner with a reward pool backed by the
// board's custody balance. Participants submit solutions while the quest is
// open; stakers cast one time-weighted vote each. After the voting period the
// owner distributes the pool: 90% across the top-ranked solutions, 10% across
// voters proportionally to their cast weight.
package board

import (
	"math/big"

	"github.com/forgeboard/forge/builtin/reverts"
	"github.com/forgeboard/forge/builtin/slots"
	"github.com/forgeboard/forge/builtin/staker"
	"github.com/forgeboard/forge/builtin/token"
	"github.com/forgeboard/forge/forge"
	"github.com/forgeboard/forge/log"
	"github.com/forgeboard/forge/xenv"
)

var logger = log.WithContext("pkg", "board")

// Revert conditions of the quest board.
var (
	ErrNotOwner     = reverts.New("caller is not the owner")
	ErrInvalidOwner = reverts.New("invalid owner")

	ErrEmptyDescription       = reverts.New("empty description")
	ErrInvalidRewardPool      = reverts.New("invalid reward pool")
	ErrVotingDurationTooShort = reverts.New("voting duration too short")
	ErrInvalidTopParticipants = reverts.New("invalid top participants")

	ErrEmptyLink             = reverts.New("empty link")
	ErrQuestClosed           = reverts.New("quest closed")
	ErrSubmissionPeriodEnded = reverts.New("submission period ended")
	ErrDuplicateSubmission   = reverts.New("duplicate submission")

	ErrVotingPeriodEnded = reverts.New("voting period ended")
	ErrAlreadyVoted      = reverts.New("already voted")
	ErrInvalidSolutionID = reverts.New("invalid solution id")
	ErrNoStakedTokens    = reverts.New("no staked tokens")

	ErrVotingPeriodNotEnded = reverts.New("voting period not ended")
	ErrAlreadyDistributed   = reverts.New("already distributed")
	ErrNoVotesCast          = reverts.New("no votes cast")
	ErrNoSolutions          = reverts.New("no solutions")
)

// Event names emitted by the quest board.
const (
	EventQuestCreated         = "QuestCreated"
	EventSolutionSubmitted    = "SolutionSubmitted"
	EventVoteCast             = "VoteCast"
	EventRewardsDistributed   = "RewardsDistributed"
	EventOwnershipTransferred = "OwnershipTransferred"
)

var (
	slotOwner        = slots.NameToSlot("owner")
	slotQuestCounter = slots.NameToSlot("quest-counter")
	slotQuests       = slots.NameToSlot("quests")
	slotSolutions    = slots.NameToSlot("solutions")
	slotVoters       = slots.NameToSlot("voters")
	slotVotes        = slots.NameToSlot("votes")
	slotGuard        = slots.NameToSlot("distribute-guard")
)

// Board binder of the quest board contract. The board's own address is the
// custody account: the staking vault and the reward treasury.
type Board struct {
	addr    forge.Address
	env     *xenv.Environment
	token   *token.Token
	staker  *staker.Staker
	context *slots.Context
	owner   *slots.Address
	counter *slots.Counter
	quests  *slots.Mapping[slots.Uint64Key, *Quest]
	guard   *slots.Guard
}

// New creates a quest board bound to the given address and collaborators.
func New(addr forge.Address, env *xenv.Environment, token *token.Token, staker *staker.Staker) *Board {
	context := slots.NewContext(addr, env.State())
	return &Board{
		addr:    addr,
		env:     env,
		token:   token,
		staker:  staker,
		context: context,
		owner:   slots.NewAddress(context, slotOwner),
		counter: slots.NewCounter(context, slotQuestCounter),
		quests:  slots.NewMapping[slots.Uint64Key, *Quest](context, slotQuests),
		guard:   slots.NewGuard(context, slotGuard),
	}
}

// Address returns the board's contract address (the custody account).
func (b *Board) Address() forge.Address { return b.addr }

func (b *Board) solutionsOf(questID uint64) *slots.Array[*Solution] {
	return slots.NewArray[*Solution](b.context, slots.DeriveSlot(slotSolutions, slots.Uint64Key(questID).Bytes()))
}

func (b *Board) votersOf(questID uint64) *slots.Array[forge.Address] {
	return slots.NewArray[forge.Address](b.context, slots.DeriveSlot(slotVoters, slots.Uint64Key(questID).Bytes()))
}

func (b *Board) votesOf(questID uint64) *slots.Mapping[forge.Address, *big.Int] {
	return slots.NewMapping[forge.Address, *big.Int](b.context, slots.DeriveSlot(slotVotes, slots.Uint64Key(questID).Bytes()))
}

func (b *Board) getQuest(questID uint64) (*Quest, error) {
	quest, err := b.quests.Get(slots.Uint64Key(questID))
	if err != nil {
		return nil, err
	}
	return quest.normalize(), nil
}

func (b *Board) checkOwner() error {
	owner, err := b.owner.Get()
	if err != nil {
		return err
	}
	if b.env.Caller() != owner {
		return ErrNotOwner
	}
	return nil
}

//
// Ownership
//

// Owner returns the board owner, the only identity allowed to create quests
// and distribute rewards.
func (b *Board) Owner() (forge.Address, error) {
	return b.owner.Get()
}

// SetOwner initializes the owner. Genesis only.
func (b *Board) SetOwner(owner forge.Address) error {
	return b.owner.Set(owner)
}

// TransferOwnership hands the board over to a new owner.
func (b *Board) TransferOwnership(newOwner forge.Address) error {
	if err := b.checkOwner(); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return ErrInvalidOwner
	}
	prev, err := b.owner.Get()
	if err != nil {
		return err
	}
	if err := b.owner.Set(newOwner); err != nil {
		return err
	}
	b.env.Log(EventOwnershipTransferred, b.addr, prev, newOwner)
	return nil
}

//
// Quest store
//

// CreateQuest opens a new quest and returns its id. Owner only.
// The reward pool must be nonzero and covered by the custody balance.
func (b *Board) CreateQuest(description string, rewardPool *big.Int, votingDuration, topParticipants uint64) (uint64, error) {
	if err := b.checkOwner(); err != nil {
		return 0, err
	}
	if description == "" {
		return 0, ErrEmptyDescription
	}
	custody, err := b.token.BalanceOf(b.addr)
	if err != nil {
		return 0, err
	}
	if rewardPool == nil || rewardPool.Sign() <= 0 || rewardPool.Cmp(custody) > 0 {
		return 0, ErrInvalidRewardPool
	}
	if votingDuration < forge.MinVotingDuration {
		return 0, ErrVotingDurationTooShort
	}
	if topParticipants == 0 {
		return 0, ErrInvalidTopParticipants
	}

	id, err := b.counter.Next()
	if err != nil {
		return 0, err
	}
	quest := &Quest{
		ID:                id,
		Description:       description,
		RewardPool:        new(big.Int).Set(rewardPool),
		VotingDuration:    votingDuration,
		EndTime:           b.env.Now() + votingDuration,
		TopParticipants:   topParticipants,
		IsClosed:          false,
		TotalVotingWeight: new(big.Int),
	}
	if err := b.quests.Set(slots.Uint64Key(id), quest); err != nil {
		return 0, err
	}

	logger.Info("quest created", "id", id, "rewardPool", rewardPool, "endTime", quest.EndTime)
	metricQuestsCreated().Add(1)
	b.env.Log(EventQuestCreated, b.addr, id, description, new(big.Int).Set(rewardPool), votingDuration, topParticipants)
	return id, nil
}

// SubmitSolution records the caller's solution for an open quest and returns
// the solution id. One solution per participant per quest.
func (b *Board) SubmitSolution(questID uint64, githubLink, websiteLink string) (uint64, error) {
	if githubLink == "" || websiteLink == "" {
		return 0, ErrEmptyLink
	}
	quest, err := b.getQuest(questID)
	if err != nil {
		return 0, err
	}
	if quest.IsClosed {
		return 0, ErrQuestClosed
	}
	if b.env.Now() > quest.EndTime {
		return 0, ErrSubmissionPeriodEnded
	}

	caller := b.env.Caller()
	solutions := b.solutionsOf(questID)
	existing, err := solutions.All()
	if err != nil {
		return 0, err
	}
	for _, solution := range existing {
		if solution.Participant == caller {
			return 0, ErrDuplicateSubmission
		}
	}

	solutionID, err := solutions.Append(&Solution{
		Participant:    caller,
		GithubLink:     githubLink,
		WebsiteLink:    websiteLink,
		Votes:          new(big.Int),
		SubmissionTime: b.env.Now(),
	})
	if err != nil {
		return 0, err
	}

	logger.Debug("solution submitted", "quest", questID, "solution", solutionID, "participant", caller)
	b.env.Log(EventSolutionSubmitted, b.addr, questID, solutionID, caller, githubLink, websiteLink)
	return solutionID, nil
}

//
// Voting engine
//

// Vote casts the caller's time-weighted vote on a solution. The weight is the
// caller's staked amount times whole days elapsed since the stake's original
// start (integer truncation).
func (b *Board) Vote(questID, solutionID uint64) error {
	quest, err := b.getQuest(questID)
	if err != nil {
		return err
	}
	if quest.IsClosed {
		return ErrQuestClosed
	}
	if b.env.Now() > quest.EndTime {
		return ErrVotingPeriodEnded
	}

	caller := b.env.Caller()
	votes := b.votesOf(questID)
	recorded, err := votes.Get(caller)
	if err != nil {
		return err
	}
	if recorded.Sign() != 0 {
		return ErrAlreadyVoted
	}

	solutions := b.solutionsOf(questID)
	count, err := solutions.Len()
	if err != nil {
		return err
	}
	if solutionID >= count {
		return ErrInvalidSolutionID
	}

	stake, err := b.staker.GetStake(caller)
	if err != nil {
		return err
	}
	if stake.IsEmpty() {
		return ErrNoStakedTokens
	}
	weight, err := b.staker.VotingWeight(caller)
	if err != nil {
		return err
	}

	solution, err := solutions.Get(solutionID)
	if err != nil {
		return err
	}
	solution.Votes = new(big.Int).Add(solution.Votes, weight)
	if err := solutions.Set(solutionID, solution); err != nil {
		return err
	}

	quest.TotalVotingWeight = new(big.Int).Add(quest.TotalVotingWeight, weight)
	if err := b.quests.Set(slots.Uint64Key(questID), quest); err != nil {
		return err
	}

	// a weight of zero is recorded as zero, which intentionally does not
	// trip the AlreadyVoted check on a later vote
	if err := votes.Set(caller, weight); err != nil {
		return err
	}
	if _, err := b.votersOf(questID).Append(caller); err != nil {
		return err
	}

	logger.Debug("vote cast", "quest", questID, "voter", caller, "solution", solutionID, "weight", weight)
	metricVotesCast().Add(1)
	b.env.Log(EventVoteCast, b.addr, questID, caller, solutionID, weight)
	return nil
}

//
// Read accessors
//

// GetQuest returns the quest record. An id never assigned reads as a zero record.
func (b *Board) GetQuest(questID uint64) (*Quest, error) {
	return b.getQuest(questID)
}

// GetQuestSolutions returns all solutions of the quest, ordered by solution id.
func (b *Board) GetQuestSolutions(questID uint64) ([]*Solution, error) {
	return b.solutionsOf(questID).All()
}

// GetQuestSolution returns one solution of the quest by its id.
func (b *Board) GetQuestSolution(questID, solutionID uint64) (*Solution, error) {
	return b.solutionsOf(questID).Get(solutionID)
}

// GetQuestVoters returns the quest's voters in voting order.
func (b *Board) GetQuestVoters(questID uint64) ([]forge.Address, error) {
	return b.votersOf(questID).All()
}

// GetQuestVoter returns the voting weight the address has cast on the quest,
// zero if it has not voted.
func (b *Board) GetQuestVoter(questID uint64, voter forge.Address) (*big.Int, error) {
	return b.votesOf(questID).Get(voter)
}

// GetQuestIDCounter returns the id the next created quest will be assigned.
func (b *Board) GetQuestIDCounter() (uint64, error) {
	return b.counter.Get()
}
