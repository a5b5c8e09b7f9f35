package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photonforge/rtprep/internal/config"
)

func TestPrecisionFromBytes(t *testing.T) {
	p, err := config.PrecisionFromBytes(4)
	require.NoError(t, err)
	assert.Equal(t, config.Single, p)

	p, err = config.PrecisionFromBytes(8)
	require.NoError(t, err)
	assert.Equal(t, config.Double, p)

	for _, n := range []int{0, 2, 6, 16, -8} {
		_, err := config.PrecisionFromBytes(n)
		require.Error(t, err, "byte width %d should be rejected", n)
		assert.Contains(t, err.Error(), "unsupported byte width")
	}
}

func TestParseOutputLevel(t *testing.T) {
	for _, s := range []string{"all", "last", "none"} {
		lvl, err := config.ParseOutputLevel(s)
		require.NoError(t, err)
		assert.Equal(t, config.OutputLevel(s), lvl)
	}

	for _, s := range []string{"both", "ALL", "Last", "never", ""} {
		_, err := config.ParseOutputLevel(s)
		require.Error(t, err, "%q should be rejected", s)
		assert.Contains(t, err.Error(), "invalid output level")
	}
}

func TestImageEnabledHelpers(t *testing.T) {
	rc := &config.RunConfig{}
	assert.False(t, rc.BinnedEnabled())
	assert.False(t, rc.PeeledEnabled())

	rc.Binned = &config.BinnedImage{Group: "g", NTheta: 1, NPhi: 1}
	rc.Peeled = []config.PeeledImage{{Group: "g", NViews: 1}}
	assert.True(t, rc.BinnedEnabled())
	assert.True(t, rc.PeeledEnabled())
}
