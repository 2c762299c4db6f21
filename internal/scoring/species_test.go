package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileFor(t *testing.T) {
	t.Run("lookup ignores case", func(t *testing.T) {
		assert.Equal(t, ProfileFor("redfish"), ProfileFor("Redfish"))
		assert.Equal(t, ProfileFor("spotted seatrout"), ProfileFor("Spotted Seatrout"))
	})

	t.Run("unknown species get the default band", func(t *testing.T) {
		assert.Equal(t, defaultProfile, ProfileFor("coelacanth"))
	})

	t.Run("every profile is internally ordered", func(t *testing.T) {
		for name, p := range profiles {
			assert.Less(t, p.MinF, p.OptF, name)
			assert.Less(t, p.OptF, p.MaxF, name)
		}
	})
}

func TestKnownSpecies(t *testing.T) {
	assert.True(t, KnownSpecies("Snook"))
	assert.True(t, KnownSpecies("mangrove snapper"))
	assert.False(t, KnownSpecies("coelacanth"))
	assert.False(t, KnownSpecies(""))
}
