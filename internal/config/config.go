// Package config defines the resolved run configuration for a Monte Carlo
// radiative-transfer simulation.
//
// A RunConfig is produced by the resolver in two passes: the initial pass
// fills everything except the image-extraction fields, which are added once
// by the final-iteration pass. After that the value is read-only; the
// simulation engine performs no further validation.
package config

// RunConfig holds every resolved execution parameter.
// See the package comment for the two-pass construction rule.
type RunConfig struct {
	// Transport mode flags.
	Monochromatic         bool `json:"monochromatic"`
	Raytracing            bool `json:"raytracing"`
	PDA                   bool `json:"pda"`
	MRW                   bool `json:"mrw"`
	KillOnAbsorb          bool `json:"kill_on_absorb"`
	ForcedFirstScattering bool `json:"forced_first_scattering"`
	EvenSampling          bool `json:"sample_sources_evenly"`

	// Numeric precision for grid physical quantities.
	Precision Precision `json:"precision"`

	// Statistics cadence: photons between progress lines.
	NStats int `json:"n_stats"`

	// Interaction caps.
	NInterMax int `json:"n_inter_max"`
	NReabsMax int `json:"n_reabs_max"`

	// Modified-random-walk parameters, set only when MRW is true.
	MRWGamma float64 `json:"mrw_gamma,omitempty"`
	NMRWMax  int     `json:"n_inter_mrw_max,omitempty"`

	// Temperature-iteration budgets.
	NIterations  int `json:"n_initial_iter"`
	NPhotonsIter int `json:"n_initial_photons"`

	// Last-iteration photon budgets, split by origin.
	NLastPhotonsDust    int `json:"n_last_photons_dust"`
	NLastPhotonsSources int `json:"n_last_photons_sources"`

	// Raytracing photon budgets, split by origin.
	NRayPhotonsDust    int `json:"n_ray_photons_dust"`
	NRayPhotonsSources int `json:"n_ray_photons_sources"`

	// Convergence policy, read only when NIterations > 0.
	CheckConvergence      bool    `json:"check_convergence"`
	ConvergenceAbsolute   float64 `json:"convergence_absolute,omitempty"`
	ConvergenceRelative   float64 `json:"convergence_relative,omitempty"`
	ConvergencePercentile float64 `json:"convergence_percentile,omitempty"`

	// Output verbosity per quantity.
	OutputTemperature    OutputLevel `json:"output_temperature"`
	OutputDensity        OutputLevel `json:"output_density"`
	OutputDensityDiff    OutputLevel `json:"output_density_diff"`
	OutputSpecificEnergy OutputLevel `json:"output_specific_energy"`
	OutputNPhotons       OutputLevel `json:"output_n_photons"`

	// Frequencies is the ordered exact-frequency list. It is non-nil exactly
	// when Monochromatic is true; nil means genuinely unset, never "empty".
	Frequencies []float64 `json:"frequencies,omitempty"`

	// Image extraction, added by the final-iteration pass.
	Binned *BinnedImage  `json:"binned,omitempty"`
	Peeled []PeeledImage `json:"peeled,omitempty"`
}

// BinnedImage is the configuration of the single binned-image accumulator.
type BinnedImage struct {
	Group  string `json:"group"`
	NTheta int    `json:"n_theta"`
	NPhi   int    `json:"n_phi"`
}

// PeeledImage is the configuration of one peeling-off image group.
type PeeledImage struct {
	Group         string `json:"group"`
	NViews        int    `json:"n_view"`
	Raytracing    bool   `json:"raytracing"`
	Monochromatic bool   `json:"monochromatic"`

	// Frequencies is set only for monochromatic peeled images; nil otherwise.
	Frequencies []float64 `json:"frequencies,omitempty"`
}

// BinnedEnabled reports whether binned-image extraction was configured.
func (c *RunConfig) BinnedEnabled() bool { return c.Binned != nil }

// PeeledEnabled reports whether any peeled-image group was configured.
func (c *RunConfig) PeeledEnabled() bool { return len(c.Peeled) > 0 }
