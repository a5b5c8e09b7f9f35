package setup

import (
	"fmt"
	"strings"

	"github.com/photonforge/rtprep/internal/config"
	"github.com/photonforge/rtprep/internal/store"
)

// StoreDust counts the dust species defined as child groups of /Dust.
type StoreDust struct{}

func (StoreDust) Configure(g *store.Group) (int, error) {
	return len(g.Groups()), nil
}

// StoreGrid validates the grid sub-trees. The per-cell quantity layout is an
// engine concern; here we only check that the groups are well-formed.
type StoreGrid struct{}

func (StoreGrid) ConfigureGeometry(g *store.Group) error {
	gtype, err := g.String("grid_type")
	if err != nil {
		return err
	}
	switch gtype {
	case "car", "cyl", "sph", "amr", "oct":
		return nil
	}
	return fmt.Errorf("%s/grid_type: unknown grid type %q", g.Path(), gtype)
}

func (StoreGrid) ConfigurePhysics(g *store.Group, mrw, pda bool) error {
	// The diffusion approximations need a density per cell to be of any use;
	// an empty physics group is only valid when both are off.
	if (mrw || pda) && !g.Has("density") {
		return fmt.Errorf("%s: density is required when mrw or pda is enabled", g.Path())
	}
	return nil
}

// StoreSources counts the radiation sources defined as child groups of /Sources.
type StoreSources struct{}

func (StoreSources) Configure(g *store.Group) (int, error) {
	return len(g.Groups()), nil
}

// StoreBinned reads the angular binning of the single binned-image group.
type StoreBinned struct{}

func (StoreBinned) Configure(g *store.Group) (*config.BinnedImage, error) {
	ntheta, err := g.Int("n_theta")
	if err != nil {
		return nil, err
	}
	nphi, err := g.Int("n_phi")
	if err != nil {
		return nil, err
	}
	if ntheta < 1 || nphi < 1 {
		return nil, fmt.Errorf("%s: n_theta and n_phi must be positive", g.Path())
	}
	name := g.Path()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return &config.BinnedImage{Group: name, NTheta: ntheta, NPhi: nphi}, nil
}

// StorePeeled reads the viewing setup of each peeled-image group.
type StorePeeled struct{}

func (StorePeeled) Configure(g *store.Group, names []string, raytracing bool) ([]config.PeeledImage, error) {
	return configurePeeled(g, names, raytracing, false, nil)
}

func (StorePeeled) ConfigureMonochromatic(g *store.Group, names []string, raytracing bool, nu []float64) ([]config.PeeledImage, error) {
	return configurePeeled(g, names, raytracing, true, nu)
}

func configurePeeled(g *store.Group, names []string, raytracing, mono bool, nu []float64) ([]config.PeeledImage, error) {
	images := make([]config.PeeledImage, 0, len(names))
	for _, name := range names {
		ig, err := g.Group(name)
		if err != nil {
			return nil, err
		}
		nviews, err := ig.Int("n_view")
		if err != nil {
			return nil, err
		}
		if nviews < 1 {
			return nil, fmt.Errorf("%s/n_view: must be positive", ig.Path())
		}
		images = append(images, config.PeeledImage{
			Group:         name,
			NViews:        nviews,
			Raytracing:    raytracing,
			Monochromatic: mono,
			Frequencies:   nu,
		})
	}
	return images, nil
}
