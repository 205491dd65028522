package core_test

import (
	"testing"

	"github.com/IanTeda/personal-ledger/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	t.Run("Should accept canonical #RRGGBB", func(t *testing.T) {
		c, err := core.ParseHexColor("#FF5733")
		require.NoError(t, err)
		assert.Equal(t, "#FF5733", c.String())
	})
	t.Run("Should canonicalise lowercase digits to uppercase", func(t *testing.T) {
		c, err := core.ParseHexColor("#ff5733")
		require.NoError(t, err)
		assert.Equal(t, "#FF5733", c.String())
	})
	t.Run("Should reject missing hash prefix", func(t *testing.T) {
		_, err := core.ParseHexColor("FF5733")
		assert.ErrorContains(t, err, "invalid hex color")
	})
	t.Run("Should reject short form", func(t *testing.T) {
		_, err := core.ParseHexColor("#F53")
		assert.ErrorContains(t, err, "invalid hex color")
	})
	t.Run("Should reject non-hex characters", func(t *testing.T) {
		_, err := core.ParseHexColor("#GGGGGG")
		assert.ErrorContains(t, err, "invalid hex color")
	})
}
