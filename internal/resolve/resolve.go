// Package resolve turns a parameter document into a validated run
// configuration.
//
// Resolution happens in two passes. Initial runs once at startup and fills
// everything except image extraction; FinalIteration runs once immediately
// before the last simulation pass and adds the image-extraction fields, using
// only flags captured by the first pass. Both passes stop at the first
// violated invariant — a partially-resolved configuration is never exposed.
package resolve

import (
	"fmt"

	"github.com/photonforge/rtprep/internal/config"
	"github.com/photonforge/rtprep/internal/logging"
	"github.com/photonforge/rtprep/internal/setup"
	"github.com/photonforge/rtprep/internal/store"
)

// Resolver orchestrates the two resolution passes over a set of domain
// collaborators.
type Resolver struct {
	setups setup.Setups
}

// New returns a Resolver using the store-backed collaborators.
func New() *Resolver {
	return NewWithSetups(setup.Defaults())
}

// NewWithSetups returns a Resolver using the given collaborator set.
func NewWithSetups(s setup.Setups) *Resolver {
	return &Resolver{setups: s}
}

// Initial resolves everything except the image-extraction fields.
//
// The steps are ordered: later reads are gated by flags and counts
// established earlier, and keys behind a false guard are never read at all.
func (r *Resolver) Initial(root *store.Group) (*config.RunConfig, error) {
	rc := &config.RunConfig{}
	var err error

	// Global mode flags and interaction caps.
	if rc.Monochromatic, err = boolKey(root, "monochromatic"); err != nil {
		return nil, err
	}
	if rc.Raytracing, err = boolKey(root, "raytracing"); err != nil {
		return nil, err
	}
	if rc.NStats, err = intKey(root, "n_stats"); err != nil {
		return nil, err
	}
	if rc.NInterMax, err = intKey(root, "n_inter_max"); err != nil {
		return nil, err
	}
	if rc.NReabsMax, err = intKey(root, "n_reabs_max"); err != nil {
		return nil, err
	}
	if rc.PDA, err = boolKey(root, "pda"); err != nil {
		return nil, err
	}
	if rc.MRW, err = boolKey(root, "mrw"); err != nil {
		return nil, err
	}
	if rc.KillOnAbsorb, err = boolKey(root, "kill_on_absorb"); err != nil {
		return nil, err
	}
	if rc.ForcedFirstScattering, err = boolKey(root, "forced_first_scattering"); err != nil {
		return nil, err
	}

	// The one tolerated missing key: even source sampling defaults to off.
	if root.Has("sample_sources_evenly") {
		if rc.EvenSampling, err = boolKey(root, "sample_sources_evenly"); err != nil {
			return nil, err
		}
	}

	// Modified-random-walk parameters are mandatory only when MRW is on.
	if rc.MRW {
		if rc.MRWGamma, err = floatKey(root, "mrw_gamma"); err != nil {
			return nil, err
		}
		if rc.NMRWMax, err = intKey(root, "n_inter_mrw_max"); err != nil {
			return nil, err
		}
	}

	// Dust and the temperature-iteration budgets that depend on it.
	dg, err := groupKey(root, "Dust")
	if err != nil {
		return nil, err
	}
	nDust, err := r.setups.Dust.Configure(dg)
	if err != nil {
		return nil, errMissing(PhaseInitial, "Dust", err)
	}
	if nDust == 0 {
		logging.Warn("no dust present - skipping temperature iterations")
	} else {
		if rc.NIterations, err = intKey(root, "n_initial_iter"); err != nil {
			return nil, err
		}
		if rc.NIterations > 0 {
			if rc.NPhotonsIter, err = intKey(root, "n_initial_photons"); err != nil {
				return nil, err
			}
			if rc.NPhotonsIter <= 0 {
				return nil, errCross(PhaseInitial, "n_initial_photons",
					"must be positive when n_initial_iter > 0")
			}
		}
		if !rc.Monochromatic {
			if rc.NLastPhotonsDust, err = intKey(root, "n_last_photons_dust"); err != nil {
				return nil, err
			}
			if rc.Raytracing {
				if rc.NRayPhotonsDust, err = intKey(root, "n_ray_photons_dust"); err != nil {
					return nil, err
				}
			}
		}
	}

	// Grid geometry and physics. The physics layout depends on which
	// diffusion approximations are enabled.
	gg, err := groupKey(root, "Grid")
	if err != nil {
		return nil, err
	}
	geo, err := groupKey(gg, "Geometry")
	if err != nil {
		return nil, err
	}
	if err := r.setups.Grid.ConfigureGeometry(geo); err != nil {
		return nil, errMissing(PhaseInitial, "Grid/Geometry", err)
	}
	phys, err := groupKey(gg, "Physics")
	if err != nil {
		return nil, err
	}
	if err := r.setups.Grid.ConfigurePhysics(phys, rc.MRW, rc.PDA); err != nil {
		return nil, errMissing(PhaseInitial, "Grid/Physics", err)
	}

	// Numeric precision.
	nbytes, err := intKey(root, "physics_io_bytes")
	if err != nil {
		return nil, err
	}
	if rc.Precision, err = config.PrecisionFromBytes(nbytes); err != nil {
		return nil, errUnsupported(PhaseInitial, "physics_io_bytes", err)
	}

	// Exact-frequency list, only in monochromatic mode. Outside that mode
	// the list stays nil, which downstream code treats as genuinely unset.
	if rc.Monochromatic {
		nu, err := root.Column("Frequencies", "nu")
		if err != nil {
			return nil, errMissing(PhaseInitial, "Frequencies/nu", err)
		}
		if len(nu) == 0 {
			return nil, &Error{Phase: PhaseInitial, Field: "Frequencies/nu",
				Kind: KindMissingKey, Msg: "frequency list is empty"}
		}
		rc.Frequencies = nu
	}

	// Sources and the budgets that depend on them.
	sg, err := groupKey(root, "Sources")
	if err != nil {
		return nil, err
	}
	nSources, err := r.setups.Sources.Configure(sg)
	if err != nil {
		return nil, errMissing(PhaseInitial, "Sources", err)
	}
	if nSources == 0 {
		if rc.NIterations > 0 {
			return nil, errCross(PhaseInitial, "n_initial_iter",
				"temperature iterations require at least one source")
		}
		if !rc.Monochromatic {
			n, err := intKey(root, "n_last_photons_sources")
			if err != nil {
				return nil, err
			}
			if n != 0 {
				return nil, errCross(PhaseInitial, "n_last_photons_sources",
					"must be 0 when no sources are configured")
			}
		}
		// In monochromatic mode the source budget is forced to zero without
		// reading it, and the raytracing budget is forced to zero either way.
	} else {
		if rc.NLastPhotonsSources, err = intKey(root, "n_last_photons_sources"); err != nil {
			return nil, err
		}
		if rc.Raytracing && !rc.Monochromatic {
			if rc.NRayPhotonsSources, err = intKey(root, "n_ray_photons_sources"); err != nil {
				return nil, err
			}
		}
	}

	// Output verbosity enums, each checked independently.
	og, err := groupKey(root, "Output")
	if err != nil {
		return nil, err
	}
	for _, f := range []struct {
		key string
		dst *config.OutputLevel
	}{
		{"output_temperature", &rc.OutputTemperature},
		{"output_density", &rc.OutputDensity},
		{"output_density_diff", &rc.OutputDensityDiff},
		{"output_specific_energy", &rc.OutputSpecificEnergy},
		{"output_n_photons", &rc.OutputNPhotons},
	} {
		s, err := og.String(f.key)
		if err != nil {
			return nil, errMissing(PhaseInitial, "Output/"+f.key, err)
		}
		lvl, err := config.ParseOutputLevel(s)
		if err != nil {
			return nil, errEnum(PhaseInitial, "Output/"+f.key, err)
		}
		*f.dst = lvl
	}

	// Convergence policy: only meaningful when iterating, and the three
	// sub-parameters are read as a unit.
	if rc.NIterations > 0 {
		if rc.CheckConvergence, err = boolKey(root, "check_convergence"); err != nil {
			return nil, err
		}
		if rc.CheckConvergence {
			if rc.ConvergenceAbsolute, err = floatKey(root, "convergence_absolute"); err != nil {
				return nil, err
			}
			if rc.ConvergenceRelative, err = floatKey(root, "convergence_relative"); err != nil {
				return nil, err
			}
			if rc.ConvergencePercentile, err = floatKey(root, "convergence_percentile"); err != nil {
				return nil, err
			}
		}
	}

	return rc, nil
}

// FinalIteration adds the image-extraction fields to an initially-resolved
// configuration. The mode flags and frequency list are taken from rc as
// captured by Initial, never re-read from the document.
func (r *Resolver) FinalIteration(root *store.Group, rc *config.RunConfig) error {
	og, err := root.Group("Output")
	if err != nil {
		return errMissing(PhaseFinal, "Output", err)
	}

	// Binned images: a single group enables them, none disables them, and
	// more than one is ambiguous.
	if og.Has("Binned") {
		bg, err := og.Group("Binned")
		if err != nil {
			return errMissing(PhaseFinal, "Output/Binned", err)
		}
		names := bg.Groups()
		switch {
		case len(names) == 0:
			// disabled
		case len(names) == 1:
			if rc.Monochromatic {
				return errCross(PhaseFinal, "Output/Binned",
					"binned images cannot be combined with monochromatic mode")
			}
			if rc.ForcedFirstScattering {
				return errCross(PhaseFinal, "Output/Binned",
					"binned images cannot be combined with forced first scattering")
			}
			ig, err := bg.Group(names[0])
			if err != nil {
				return errMissing(PhaseFinal, "Output/Binned", err)
			}
			binned, err := r.setups.Binned.Configure(ig)
			if err != nil {
				return errMissing(PhaseFinal, "Output/Binned/"+names[0], err)
			}
			rc.Binned = binned
		default:
			return errCross(PhaseFinal, "Output/Binned",
				fmt.Sprintf("found %d binned image groups, expected at most one", len(names)))
		}
	}

	// Peeled images: zero or more groups, configured in document order. The
	// frequency list is forwarded only when Initial actually populated it,
	// since the accumulators distinguish unset from empty.
	if og.Has("Peeled") {
		pg, err := og.Group("Peeled")
		if err != nil {
			return errMissing(PhaseFinal, "Output/Peeled", err)
		}
		names := pg.Groups()
		if len(names) > 0 {
			var peeled []config.PeeledImage
			if rc.Frequencies != nil {
				peeled, err = r.setups.Peeled.ConfigureMonochromatic(pg, names, rc.Raytracing, rc.Frequencies)
			} else {
				peeled, err = r.setups.Peeled.Configure(pg, names, rc.Raytracing)
			}
			if err != nil {
				return errMissing(PhaseFinal, "Output/Peeled", err)
			}
			rc.Peeled = peeled
		}
	}

	return nil
}

// Typed read helpers for the initial pass; each wraps a store failure into a
// labeled resolution error.

func boolKey(g *store.Group, key string) (bool, error) {
	v, err := g.Bool(key)
	if err != nil {
		return false, errMissing(PhaseInitial, key, err)
	}
	return v, nil
}

func intKey(g *store.Group, key string) (int, error) {
	v, err := g.Int(key)
	if err != nil {
		return 0, errMissing(PhaseInitial, key, err)
	}
	return v, nil
}

func floatKey(g *store.Group, key string) (float64, error) {
	v, err := g.Float(key)
	if err != nil {
		return 0, errMissing(PhaseInitial, key, err)
	}
	return v, nil
}

func groupKey(g *store.Group, name string) (*store.Group, error) {
	child, err := g.Group(name)
	if err != nil {
		return nil, errMissing(PhaseInitial, name, err)
	}
	return child, nil
}
