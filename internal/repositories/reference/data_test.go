package reference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/reference"
)

const dataDir = "../../../data/"

// The shipped text and YAML tables describe the same data
func TestShippedDataAgrees(t *testing.T) {
	ctx := context.Background()

	text, err := (&reference.TextSource{
		RacesPath:       dataDir + "races.txt",
		OccupationsPath: dataDir + "occupations.txt",
	}).Load(ctx)
	require.NoError(t, err)

	yml, err := (&reference.YAMLSource{Path: dataDir + "reference.yaml"}).Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, text.Races(), yml.Races())
	assert.Equal(t, text.Occupations(), yml.Occupations())

	human, ok := text.LookupRace("Human")
	require.True(t, ok)
	assert.Equal(t, chargen.BonusKindFlat, human.BonusKind)

	fighter, ok := yml.LookupOccupation("fighter")
	require.True(t, ok)
	assert.Equal(t, 10, fighter.HPPerLevel)
}
