// Package tears estimates tear volume and the fun metrics derived from it.
package tears

import (
	"math"
	"strings"
)

const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

// ml/min per intensity level.
var tearRates = map[string]float64{
	IntensityLow:      0.2,
	IntensityModerate: 0.5,
	IntensityHigh:     1.0,
}

// ValidIntensity reports whether the value (case-insensitive) is a known
// intensity level.
func ValidIntensity(intensity string) bool {
	_, ok := tearRates[strings.ToLower(intensity)]
	return ok
}

// EstimateVolume returns the estimated tear volume in milliliters for a
// session of the given duration and intensity, rounded to 2 decimal places.
// An unknown intensity falls back to the moderate rate; callers are expected
// to have validated the intensity already.
func EstimateVolume(durationMinutes int, intensity string) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	rate, ok := tearRates[strings.ToLower(intensity)]
	if !ok {
		rate = tearRates[IntensityModerate]
	}
	return Round2(float64(durationMinutes) * rate)
}

// PlantsWatered converts tear volume to plants watered (1 ml = 0.01 plant).
func PlantsWatered(tearsMl float64) float64 {
	return Round2(tearsMl * 0.01)
}

// RehydrationWater returns the water in milliliters needed to replace the
// given tear volume.
func RehydrationWater(tearsMl float64) float64 {
	return Round2(tearsMl * 1.5)
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
