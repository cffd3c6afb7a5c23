package chargen_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// rollsFor builds rolls whose totals equal scores, dropping a 1 each time
func rollsFor(scores ...int) []chargen.AbilityRoll {
	rolls := make([]chargen.AbilityRoll, len(scores))
	for i, score := range scores {
		a := score / 3
		b := (score - a) / 2
		c := score - a - b
		roll, err := chargen.NewAbilityRoll([]int{1, a, b, c})
		if err != nil {
			panic(err)
		}
		rolls[i] = roll
	}
	return rolls
}

type SessionTestSuite struct {
	suite.Suite
	session *chargen.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.session = chargen.NewSession("sess_1", rollsFor(15, 14, 13, 12, 10, 8))
}

func (s *SessionTestSuite) TestNewSession() {
	s.Equal(chargen.ScorePool{15, 14, 13, 12, 10, 8}, s.session.Pool)
	s.Len(s.session.Rolls, 6)
	s.Equal(chargen.BonusNotApplied, s.session.BonusState)
	s.False(s.session.IsComplete())
	s.Equal([]int{15, 14, 13, 12, 10, 8}, s.session.Remaining())
}

func (s *SessionTestSuite) TestAssign() {
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 15))

	s.Equal(15, s.session.Assignment.Get(chargen.AbilityStrength))
	s.Equal([]int{14, 13, 12, 10, 8}, s.session.Remaining())
}

func (s *SessionTestSuite) TestAssignUnknownValue() {
	err := s.session.Assign(chargen.AbilityStrength, 17)

	s.Require().Error(err)
	s.True(errors.Is(err, chargen.ErrValueUnavailable))
	s.Equal(chargen.Assignment{}, s.session.Assignment)
}

func (s *SessionTestSuite) TestAssignUnknownSlot() {
	err := s.session.Assign(chargen.Ability(6), 15)

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(chargen.Assignment{}, s.session.Assignment)
}

func (s *SessionTestSuite) TestDragToReplace() {
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 15))
	s.Require().NoError(s.session.Assign(chargen.AbilityDexterity, 15))

	s.Equal(0, s.session.Assignment.Get(chargen.AbilityStrength))
	s.Equal(15, s.session.Assignment.Get(chargen.AbilityDexterity))
	s.Equal(1, s.session.Assignment.Uses(15))
}

func (s *SessionTestSuite) TestReassignSameSlotReleasesPreviousValue() {
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 15))
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 14))

	s.Equal(14, s.session.Assignment.Get(chargen.AbilityStrength))
	s.Equal(0, s.session.Assignment.Uses(15))
	s.Contains(s.session.Remaining(), 15)
}

func (s *SessionTestSuite) TestReassignSameValueToSameSlot() {
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 15))
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 15))

	s.Equal(15, s.session.Assignment.Get(chargen.AbilityStrength))
	s.Equal(1, s.session.Assignment.Uses(15))
}

func (s *SessionTestSuite) TestDuplicateValuesInPool() {
	session := chargen.NewSession("sess_dup", rollsFor(12, 12, 12, 10, 9, 8))

	s.Require().NoError(session.Assign(chargen.AbilityStrength, 12))
	s.Require().NoError(session.Assign(chargen.AbilityDexterity, 12))
	s.Require().NoError(session.Assign(chargen.AbilityConstitution, 12))
	s.Equal(3, session.Assignment.Uses(12))

	// a fourth placement evicts the lowest-indexed holder
	s.Require().NoError(session.Assign(chargen.AbilityWisdom, 12))
	s.Equal(3, session.Assignment.Uses(12))
	s.Equal(0, session.Assignment.Get(chargen.AbilityStrength))
	s.Equal(12, session.Assignment.Get(chargen.AbilityWisdom))
}

func (s *SessionTestSuite) TestAssignAfterBonus() {
	s.assignAll()
	s.Require().NoError(s.session.ApplyFlatBonus())
	before := s.session.Assignment

	err := s.session.Assign(chargen.AbilityStrength, 15)

	s.Require().Error(err)
	s.True(errors.Is(err, chargen.ErrBonusAlreadyApplied))
	s.Equal(before, s.session.Assignment)
}

func (s *SessionTestSuite) TestUnassign() {
	s.Require().NoError(s.session.Assign(chargen.AbilityCharisma, 8))
	s.Require().NoError(s.session.Unassign(chargen.AbilityCharisma))

	s.Equal(0, s.session.Assignment.Get(chargen.AbilityCharisma))
	s.Error(s.session.Unassign(chargen.Ability(-1)))
}

func (s *SessionTestSuite) TestRerollClearsEverything() {
	s.assignAll()
	s.Require().NoError(s.session.ApplyFlatBonus())

	s.session.Reroll(rollsFor(18, 17, 16, 15, 14, 13))

	s.Equal(chargen.ScorePool{18, 17, 16, 15, 14, 13}, s.session.Pool)
	s.Equal(chargen.Assignment{}, s.session.Assignment)
	s.Equal(chargen.BonusNotApplied, s.session.BonusState)
	s.Empty(s.session.BonusRace)
}

func (s *SessionTestSuite) TestMissing() {
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 15))
	s.Require().NoError(s.session.Assign(chargen.AbilityWisdom, 10))

	s.Equal([]chargen.Ability{
		chargen.AbilityDexterity,
		chargen.AbilityConstitution,
		chargen.AbilityIntelligence,
		chargen.AbilityCharisma,
	}, s.session.Assignment.Missing())
}

func (s *SessionTestSuite) TestClone() {
	s.Require().NoError(s.session.Assign(chargen.AbilityStrength, 15))
	clone := s.session.Clone()

	s.Require().NoError(clone.Assign(chargen.AbilityStrength, 14))
	clone.Pool[0] = 3
	clone.Rolls[0].Dice[0] = 6

	s.Equal(15, s.session.Assignment.Get(chargen.AbilityStrength))
	s.Equal(15, s.session.Pool[0])
	s.Equal(1, s.session.Rolls[0].Dice[0])
}

func (s *SessionTestSuite) assignAll() {
	for i, v := range s.session.Pool {
		s.Require().NoError(s.session.Assign(chargen.Ability(i), v))
	}
	s.Require().True(s.session.IsComplete())
}
