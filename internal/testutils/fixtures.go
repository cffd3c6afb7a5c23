package testutils

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
)

// Fixture defaults
const (
	TestCharacterName = "Thorin Oakenshield"
	TestPlayerName    = "Ana"
	TestPlayerID      = "player-test-001"
)

// TestPool is the pool produced by TestRolls
var TestPool = chargen.ScorePool{15, 14, 13, 12, 10, 8}

// TestRolls returns rolls whose totals are TestPool
func TestRolls() []chargen.AbilityRoll {
	return RollsFor(TestPool...)
}

// RollsFor builds one roll per score. Each roll drops a 1 and splits the
// score across the other three dice.
func RollsFor(scores ...int) []chargen.AbilityRoll {
	rolls := make([]chargen.AbilityRoll, len(scores))
	for i, score := range scores {
		a := score / 3
		b := (score - a) / 2
		roll, err := chargen.NewAbilityRoll([]int{1, a, b, score - a - b})
		if err != nil {
			panic(err)
		}
		rolls[i] = roll
	}
	return rolls
}

// Faces flattens rolls into the die faces a roller would have produced
func Faces(rolls []chargen.AbilityRoll) []int {
	var faces []int
	for _, r := range rolls {
		faces = append(faces, r.Dice...)
	}
	return faces
}

// CreateTestSession creates a freshly rolled session with TestPool
func CreateTestSession(id string) *chargen.Session {
	session := chargen.NewSession(id, TestRolls())
	session.PlayerID = TestPlayerID
	return session
}

// CreateTestSessionReadyToFinalize creates a session whose pool is assigned in
// order with the flat bonus applied for TestHuman
func CreateTestSessionReadyToFinalize(id string) *chargen.Session {
	session := CreateTestSession(id)
	for i, v := range session.Pool {
		if err := session.Assign(chargen.Ability(i), v); err != nil {
			panic(err)
		}
	}
	if err := session.ApplyRacialBonus(TestHuman(), nil); err != nil {
		panic(err)
	}
	return session
}

// CreateTestCharacter creates a level 1 human fighter derived from sessionID
func CreateTestCharacter(sessionID string) *chargen.Character {
	scores := [chargen.AbilityCount]int{16, 15, 14, 13, 11, 9}
	c := &chargen.Character{
		ID:         "char-test-001",
		SessionID:  sessionID,
		PlayerID:   TestPlayerID,
		Name:       TestCharacterName,
		PlayerName: TestPlayerName,
		Race:       "Human",
		Occupation: "Fighter",
		Level:      1,
		Scores:     scores,
		Size:       "Medium",
		Speed:      30,
		MaxHP:      10,
		CurrentHP:  10,
	}
	for _, a := range chargen.Abilities {
		c.Modifiers[a] = chargen.Modifier(scores[a])
	}
	return c
}

// TestHuman is a flat-bonus race
func TestHuman() *chargen.Race {
	return &chargen.Race{Name: "Human", Size: "Medium", Speed: 30, BonusKind: chargen.BonusKindFlat}
}

// TestHalfling is a choice-bonus race
func TestHalfling() *chargen.Race {
	return &chargen.Race{Name: "Halfling", Size: "Small", Speed: 25, BonusKind: chargen.BonusKindChoice}
}

// TestFighter is an occupation with 10 hit points per level
func TestFighter() *chargen.Occupation {
	return &chargen.Occupation{Name: "Fighter", HPPerLevel: 10}
}

// TestWizard is an occupation with 6 hit points per level
func TestWizard() *chargen.Occupation {
	return &chargen.Occupation{Name: "Wizard", HPPerLevel: 6}
}
