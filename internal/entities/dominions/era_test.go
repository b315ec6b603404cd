package dominions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
)

func TestParseEra(t *testing.T) {
	for _, code := range dominions.EraCodes() {
		era, ok := dominions.ParseEra(code)
		assert.True(t, ok, code)
		assert.True(t, era.Valid())
		assert.Equal(t, code, era.Code())
	}

	_, ok := dominions.ParseEra("ea")
	assert.False(t, ok)
	assert.False(t, dominions.EraUnspecified.Valid())
}

func TestParseDominionID(t *testing.T) {
	id, err := dominions.ParseDominionID("1786")
	assert.NoError(t, err)
	assert.Equal(t, int32(1786), id)

	for _, bad := range []string{"", "0", "-4", "abc", "12.5"} {
		_, err := dominions.ParseDominionID(bad)
		assert.Error(t, err, bad)
	}
}
