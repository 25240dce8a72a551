package cfengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigKnownPresets(t *testing.T) {
	cfg, err := Config(Medium)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Iterations)
}

func TestConfigUnknownPreset(t *testing.T) {
	_, err := Config(Preset("nightmare"))
	require.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLoadOverrideAppliesOnlySetFields(t *testing.T) {
	yaml := strings.NewReader("iterations: 9000\n")
	cfg, err := LoadOverride(Easy, yaml)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Iterations)
	assert.Equal(t, 1, cfg.Threads) // untouched, kept from Easy baseline
}
