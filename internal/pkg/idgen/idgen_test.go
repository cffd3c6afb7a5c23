package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("sess")

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "sess_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "sess_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("char")
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
