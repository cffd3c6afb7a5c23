package chargen

import (
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Ability score rolling constants: four six-sided dice, lowest dropped, six times.
const (
	DicePerScore = 4
	DieSides     = 6
	ScoreCount   = AbilityCount
	MinScore     = 3
	MaxScore     = 18
)

// AbilityRoll records one 4d6-drop-lowest roll
type AbilityRoll struct {
	// Dice holds all four dice in the order they were rolled
	Dice []int `json:"dice"`

	// DroppedIndex is the position in Dice of the discarded die
	DroppedIndex int `json:"dropped_index"`

	// Total is the sum of the three kept dice
	Total int `json:"total"`
}

// NewAbilityRoll builds a roll from four die faces. Exactly one instance of the
// lowest face is dropped; when several dice tie for lowest the first is dropped.
func NewAbilityRoll(dice []int) (AbilityRoll, error) {
	if len(dice) != DicePerScore {
		return AbilityRoll{}, errors.InvalidArgumentf("expected %d dice, got %d", DicePerScore, len(dice))
	}

	lowest := 0
	sum := 0
	for i, d := range dice {
		if d < 1 || d > DieSides {
			return AbilityRoll{}, errors.InvalidArgumentf("die %d rolled %d, outside 1-%d", i, d, DieSides)
		}
		if d < dice[lowest] {
			lowest = i
		}
		sum += d
	}

	kept := make([]int, len(dice))
	copy(kept, dice)

	return AbilityRoll{
		Dice:         kept,
		DroppedIndex: lowest,
		Total:        sum - dice[lowest],
	}, nil
}

// Dropped returns the face of the discarded die
func (r AbilityRoll) Dropped() int {
	if r.DroppedIndex < 0 || r.DroppedIndex >= len(r.Dice) {
		return 0
	}
	return r.Dice[r.DroppedIndex]
}

// Kept returns the three dice that make up the total, in roll order
func (r AbilityRoll) Kept() []int {
	kept := make([]int, 0, len(r.Dice))
	for i, d := range r.Dice {
		if i != r.DroppedIndex {
			kept = append(kept, d)
		}
	}
	return kept
}

// Totals returns the score of each roll in generation order
func Totals(rolls []AbilityRoll) ScorePool {
	pool := make(ScorePool, len(rolls))
	for i, r := range rolls {
		pool[i] = r.Total
	}
	return pool
}
