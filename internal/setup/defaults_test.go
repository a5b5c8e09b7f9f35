package setup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photonforge/rtprep/internal/setup"
	"github.com/photonforge/rtprep/internal/store"
)

func group(t *testing.T, doc string) *store.Group {
	t.Helper()
	g, err := store.FromYAML([]byte(doc))
	require.NoError(t, err)
	return g
}

func TestStoreDustCountsSpecies(t *testing.T) {
	g := group(t, `
species_1: {size: 0.1}
species_2: {size: 1.0}
format: 2
`)
	n, err := setup.StoreDust{}.Configure(g)
	require.NoError(t, err)
	// The scalar keyword is not a species.
	assert.Equal(t, 2, n)

	n, err = setup.StoreDust{}.Configure(group(t, "format: 2"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStoreSourcesCountsSources(t *testing.T) {
	g := group(t, `
source_1: {luminosity: 1.0}
source_2: {luminosity: 2.0}
source_3: {luminosity: 3.0}
`)
	n, err := setup.StoreSources{}.Configure(g)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStoreGridGeometry(t *testing.T) {
	for _, gt := range []string{"car", "cyl", "sph", "amr", "oct"} {
		err := setup.StoreGrid{}.ConfigureGeometry(group(t, "grid_type: "+gt))
		assert.NoError(t, err, "grid_type %s should be accepted", gt)
	}

	err := setup.StoreGrid{}.ConfigureGeometry(group(t, "grid_type: voronoi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grid type")

	err = setup.StoreGrid{}.ConfigureGeometry(group(t, "nx: 10"))
	require.Error(t, err)
}

func TestStoreGridPhysics(t *testing.T) {
	withDensity := group(t, "density: 1.0")
	empty := group(t, "placeholder: 0")

	sg := setup.StoreGrid{}
	assert.NoError(t, sg.ConfigurePhysics(withDensity, true, false))
	assert.NoError(t, sg.ConfigurePhysics(empty, false, false))

	err := sg.ConfigurePhysics(empty, true, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")

	err = sg.ConfigurePhysics(empty, false, true)
	require.Error(t, err)
}

func TestStoreBinned(t *testing.T) {
	root := group(t, `
image: {n_theta: 10, n_phi: 20}
`)
	ig, err := root.Group("image")
	require.NoError(t, err)

	img, err := setup.StoreBinned{}.Configure(ig)
	require.NoError(t, err)
	assert.Equal(t, "image", img.Group)
	assert.Equal(t, 10, img.NTheta)
	assert.Equal(t, 20, img.NPhi)
}

func TestStoreBinnedRejectsBadBinning(t *testing.T) {
	root := group(t, `
no_phi: {n_theta: 10}
zero: {n_theta: 0, n_phi: 20}
`)
	ig, err := root.Group("no_phi")
	require.NoError(t, err)
	_, err = setup.StoreBinned{}.Configure(ig)
	require.Error(t, err)

	ig, err = root.Group("zero")
	require.NoError(t, err)
	_, err = setup.StoreBinned{}.Configure(ig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}

func TestStorePeeled(t *testing.T) {
	root := group(t, `
group_1: {n_view: 2}
group_2: {n_view: 9}
`)
	sp := setup.StorePeeled{}

	images, err := sp.Configure(root, []string{"group_1", "group_2"}, true)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "group_1", images[0].Group)
	assert.Equal(t, 2, images[0].NViews)
	assert.True(t, images[0].Raytracing)
	assert.False(t, images[0].Monochromatic)
	assert.Nil(t, images[0].Frequencies)
}

func TestStorePeeledMonochromatic(t *testing.T) {
	root := group(t, `
group_1: {n_view: 1}
`)
	nu := []float64{1e10, 2e10}
	images, err := setup.StorePeeled{}.ConfigureMonochromatic(root, []string{"group_1"}, false, nu)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.True(t, images[0].Monochromatic)
	assert.Equal(t, nu, images[0].Frequencies)
}

func TestStorePeeledRejectsBadViews(t *testing.T) {
	root := group(t, `
group_1: {n_view: 0}
`)
	_, err := setup.StorePeeled{}.Configure(root, []string{"group_1"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")

	_, err = setup.StorePeeled{}.Configure(root, []string{"missing"}, false)
	require.Error(t, err)
}
