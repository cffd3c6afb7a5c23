package chargen

import (
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Choice bonus amounts
const (
	FlatBonus       = 1
	ChoicePrimary   = 2
	ChoiceSecondary = 1
)

// BonusSelection names the slots for a choice bonus by index (0-5)
type BonusSelection struct {
	Plus2 int `json:"plus2"`
	Plus1 int `json:"plus1"`
}

// checkBonusPreconditions enforces the bonus ordering: never twice, and only
// on a complete assignment.
func (s *Session) checkBonusPreconditions() error {
	if s.BonusIsApplied() {
		return errors.Wrapf(ErrBonusAlreadyApplied, "bonus already applied for %s", s.BonusRace)
	}
	if !s.IsComplete() {
		return errors.Wrap(ErrIncompleteAssignment, "assign every ability before the racial bonus").
			WithMeta("missing", abilityNamesOf(s.Assignment.Missing()))
	}
	return nil
}

// ApplyFlatBonus adds one to every ability
func (s *Session) ApplyFlatBonus() error {
	if err := s.checkBonusPreconditions(); err != nil {
		return err
	}

	for _, a := range Abilities {
		s.Assignment[a] += FlatBonus
	}
	s.BonusState = BonusApplied
	return nil
}

// ApplyChoiceBonus adds two to the plus2 slot and one to the plus1 slot
func (s *Session) ApplyChoiceBonus(plus2, plus1 int) error {
	if err := s.checkBonusPreconditions(); err != nil {
		return err
	}
	if err := validateSelection(plus2, plus1); err != nil {
		return err
	}

	s.Assignment[plus2] += ChoicePrimary
	s.Assignment[plus1] += ChoiceSecondary
	s.BonusState = BonusApplied
	return nil
}

// ApplyRacialBonus applies the bonus kind of race. A choice race requires a
// selection.
func (s *Session) ApplyRacialBonus(race *Race, selection *BonusSelection) error {
	if race == nil {
		return errors.InvalidArgument("race is required")
	}

	var err error
	switch race.BonusKind {
	case BonusKindFlat:
		err = s.ApplyFlatBonus()
	case BonusKindChoice:
		if selection == nil {
			if err = s.checkBonusPreconditions(); err == nil {
				err = errors.Wrapf(ErrInvalidBonusSelection, "%s needs a +2 and a +1 ability", race.Name)
			}
			break
		}
		err = s.ApplyChoiceBonus(selection.Plus2, selection.Plus1)
	default:
		err = errors.Internalf("race %s has unknown bonus kind %q", race.Name, race.BonusKind)
	}
	if err != nil {
		return err
	}

	s.BonusRace = race.Name
	return nil
}

func validateSelection(plus2, plus1 int) error {
	if !Ability(plus2).Valid() || !Ability(plus1).Valid() {
		return errors.Wrapf(ErrInvalidBonusSelection, "slots must be between 0 and %d", AbilityCount-1).
			WithMeta("plus2", plus2).
			WithMeta("plus1", plus1)
	}
	if plus2 == plus1 {
		return errors.Wrapf(ErrInvalidBonusSelection, "+2 and +1 both target %s", Ability(plus2)).
			WithMeta("plus2", plus2).
			WithMeta("plus1", plus1)
	}
	return nil
}

func abilityNamesOf(abilities []Ability) []string {
	names := make([]string, len(abilities))
	for i, a := range abilities {
		names[i] = a.String()
	}
	return names
}
