// Package engine wraps the rpg toolkit
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-chargen/internal/engine Engine

import (
	"context"
)

// Engine provides the game mechanics used during character creation
type Engine interface {
	// RollAbilityScore rolls 4d6 and drops the lowest die
	RollAbilityScore(ctx context.Context) (*RollAbilityScoreOutput, error)

	// RollAbilityScores rolls the six scores of a new pool, in generation order
	RollAbilityScores(ctx context.Context) (*RollAbilityScoresOutput, error)

	// CalculateAbilityModifier returns the modifier for a final ability score
	CalculateAbilityModifier(score int) int
}
