// Package setup defines the domain collaborators consumed by the resolver.
//
// Each collaborator reads one sub-tree of the parameter store and returns the
// facts the resolver needs (species counts, source counts, image blobs). The
// physical interpretation of those sub-trees — optical properties, grid
// quantities, accumulator layout — lives in the simulation engine, not here.
package setup

import (
	"github.com/photonforge/rtprep/internal/config"
	"github.com/photonforge/rtprep/internal/store"
)

// DustSetup configures the dust sub-tree and reports how many dust species
// are present.
type DustSetup interface {
	Configure(g *store.Group) (int, error)
}

// GridSetup configures the grid geometry and grid physics sub-trees. Physics
// layout depends on whether the modified-random-walk or photon-diffusion
// approximations need extra per-cell storage, so both flags are passed in.
type GridSetup interface {
	ConfigureGeometry(g *store.Group) error
	ConfigurePhysics(g *store.Group, mrw, pda bool) error
}

// SourceSetup configures the radiation-source sub-tree and reports how many
// sources are present.
type SourceSetup interface {
	Configure(g *store.Group) (int, error)
}

// BinnedSetup configures the single binned-image group.
type BinnedSetup interface {
	Configure(g *store.Group) (*config.BinnedImage, error)
}

// PeeledSetup configures the peeled-image groups, in store order. The
// monochromatic variant additionally receives the exact-frequency list; the
// two methods are distinct because an unset list and an empty list mean
// different things to the accumulators.
type PeeledSetup interface {
	Configure(g *store.Group, names []string, raytracing bool) ([]config.PeeledImage, error)
	ConfigureMonochromatic(g *store.Group, names []string, raytracing bool, nu []float64) ([]config.PeeledImage, error)
}

// Setups bundles one collaborator per concern.
type Setups struct {
	Dust    DustSetup
	Grid    GridSetup
	Sources SourceSetup
	Binned  BinnedSetup
	Peeled  PeeledSetup
}

// Defaults returns the store-backed collaborator set.
func Defaults() Setups {
	return Setups{
		Dust:    StoreDust{},
		Grid:    StoreGrid{},
		Sources: StoreSources{},
		Binned:  StoreBinned{},
		Peeled:  StorePeeled{},
	}
}
