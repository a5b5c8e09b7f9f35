// Package banner renders the resolved-configuration summary for the rtprep CLI.
package banner

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/photonforge/rtprep/internal/config"
)

var headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()

// PrintResolved displays a summary of a fully-resolved run configuration.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  rtprep - resolved run configuration
//	═══════════════════════════════════════════════════
//	  Input:        model.yaml
//	  Precision:    double
//	  Mode:         spectral
//	  Iterations:   5 x 100000 photons
//	  Last pass:    dust 100000 / sources 100000
//	  Raytracing:   off
//	  Images:       binned off, peeled 2
//	═══════════════════════════════════════════════════
func PrintResolved(input string, rc *config.RunConfig) {
	sep := headerColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(headerColor("  rtprep - resolved run configuration"))
	fmt.Println(sep)
	fmt.Printf("  Input:        %s\n", input)
	fmt.Printf("  Precision:    %s\n", rc.Precision)
	fmt.Printf("  Mode:         %s\n", modeLabel(rc))
	fmt.Printf("  Iterations:   %d x %d photons\n", rc.NIterations, rc.NPhotonsIter)
	fmt.Printf("  Last pass:    dust %d / sources %d\n", rc.NLastPhotonsDust, rc.NLastPhotonsSources)
	fmt.Printf("  Raytracing:   %s\n", raytracingLabel(rc))
	if rc.CheckConvergence {
		fmt.Printf("  Convergence:  abs %g, rel %g, pct %g\n",
			rc.ConvergenceAbsolute, rc.ConvergenceRelative, rc.ConvergencePercentile)
	}
	fmt.Printf("  Images:       binned %s, peeled %d\n", binnedLabel(rc), len(rc.Peeled))
	fmt.Println(sep)
}

func modeLabel(rc *config.RunConfig) string {
	if rc.Monochromatic {
		return fmt.Sprintf("monochromatic (%d frequencies)", len(rc.Frequencies))
	}
	return "spectral"
}

func raytracingLabel(rc *config.RunConfig) string {
	if !rc.Raytracing {
		return "off"
	}
	return fmt.Sprintf("dust %d / sources %d", rc.NRayPhotonsDust, rc.NRayPhotonsSources)
}

func binnedLabel(rc *config.RunConfig) string {
	if rc.Binned == nil {
		return "off"
	}
	return fmt.Sprintf("%dx%d", rc.Binned.NTheta, rc.Binned.NPhi)
}
