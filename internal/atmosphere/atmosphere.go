package atmosphere

import "math"

// Standard atmosphere constants

const (
	// SeaLevelDensity is the ISA sea-level air density (kg/m³)
	SeaLevelDensity = 1.225

	// ScaleHeight is the density scale height for the exponential
	// atmosphere approximation (m)
	ScaleHeight = 8400.0
)

// DensityAt returns the air density at the given altitude above sea
// level (m), using the exponential approximation
// rho = rho0 * exp(-h / H). Negative altitudes are allowed and give
// densities above sea level.
func DensityAt(altitude float64) float64 {
	return SeaLevelDensity * math.Exp(-altitude/ScaleHeight)
}
