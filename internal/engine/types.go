package engine

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
)

// RollAbilityScoreOutput contains a single ability roll
type RollAbilityScoreOutput struct {
	Roll chargen.AbilityRoll
}

// RollAbilityScoresOutput contains the rolls for a full pool
type RollAbilityScoresOutput struct {
	Rolls []chargen.AbilityRoll
}

// Pool returns the totals of the rolls
func (o *RollAbilityScoresOutput) Pool() chargen.ScorePool {
	return chargen.Totals(o.Rolls)
}
