package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dominions-mapgen/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	bare := idgen.NewUUID("").Generate()
	_, err := uuid.Parse(bare)
	require.NoError(t, err)

	prefixed := idgen.NewUUID("req").Generate()
	require.True(t, strings.HasPrefix(prefixed, "req_"))
	_, err = uuid.Parse(strings.TrimPrefix(prefixed, "req_"))
	assert.NoError(t, err)

	assert.NotEqual(t, bare, idgen.NewUUID("").Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("req")
	assert.Equal(t, "req_1", gen.Generate())
	assert.Equal(t, "req_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
