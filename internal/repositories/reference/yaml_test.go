package reference_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/reference"
)

const referenceYAML = `races:
  - name: Human
    size: Medium
    speed: 30
    bonus: flat
  - name: Half-Elf
    size: Medium
    speed: 30
occupations:
  - name: Fighter
    hp_per_level: 10
  - name: Wizard
    hp_per_level: 6
`

func TestYAMLSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte(referenceYAML), 0o600))

	tables, err := (&reference.YAMLSource{Path: path}).Load(context.Background())
	require.NoError(t, err)

	human, ok := tables.LookupRace("human")
	require.True(t, ok)
	assert.Equal(t, chargen.BonusKindFlat, human.BonusKind)

	halfElf, ok := tables.LookupRace("Half-Elf")
	require.True(t, ok)
	assert.Equal(t, chargen.BonusKindChoice, halfElf.BonusKind)

	wizard, ok := tables.LookupOccupation("wizard")
	require.True(t, ok)
	assert.Equal(t, 6, wizard.HPPerLevel)
}

func TestParseYAMLRejectsBadDocuments(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unknown key", input: "races: []\noccupations: []\nmonsters: []\n"},
		{name: "wrong type", input: "races:\n  - name: Human\n    size: Medium\n    speed: fast\n"},
		{name: "unknown bonus", input: "races:\n  - {name: Human, size: Medium, speed: 30, bonus: double}\noccupations:\n  - {name: Fighter, hp_per_level: 10}\n"},
		{name: "empty tables", input: "races: []\noccupations: []\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reference.ParseYAML(strings.NewReader(tc.input), "reference.yaml")
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestYAMLSourceMissingFile(t *testing.T) {
	_, err := (&reference.YAMLSource{Path: filepath.Join(t.TempDir(), "missing.yaml")}).Load(context.Background())
	assert.True(t, errors.IsNotFound(err))
}
