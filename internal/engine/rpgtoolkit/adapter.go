// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-chargen/internal/engine"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// RollAbilityScore rolls four six-sided dice through the toolkit roller and
// drops the lowest
func (a *Adapter) RollAbilityScore(ctx context.Context) (*engine.RollAbilityScoreOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "ability roll canceled")
	}

	faces, err := a.diceRoller.RollN(chargen.DicePerScore, chargen.DieSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll, err := chargen.NewAbilityRoll(faces)
	if err != nil {
		// the roller broke its contract
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "dice roller returned invalid faces")
	}

	return &engine.RollAbilityScoreOutput{Roll: roll}, nil
}

// RollAbilityScores rolls a full pool
func (a *Adapter) RollAbilityScores(ctx context.Context) (*engine.RollAbilityScoresOutput, error) {
	rolls := make([]chargen.AbilityRoll, 0, chargen.ScoreCount)
	for i := 0; i < chargen.ScoreCount; i++ {
		out, err := a.RollAbilityScore(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
		}
		rolls = append(rolls, out.Roll)
	}

	return &engine.RollAbilityScoresOutput{Rolls: rolls}, nil
}

// CalculateAbilityModifier calculates the ability modifier for a given score
func (a *Adapter) CalculateAbilityModifier(score int) int {
	return chargen.Modifier(score)
}
