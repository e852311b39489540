// Package simulation holds the pure, stateless formula cores of the
// parameterized disaster simulators. Every function maps scenario inputs to
// derived metrics and a discrete warning classification; nothing in this
// package carries state between calls.
package simulation

import "math"

// Earthquake input bounds, matching the UI sliders.
const (
	EarthquakeMinIntensity = 1.0
	EarthquakeMaxIntensity = 9.0
	EarthquakeMinDuration  = 1
	EarthquakeMaxDuration  = 30
)

// WaveformSamples is the fixed number of points synthesized per waveform.
const WaveformSamples = 100

// EarthquakeSeverity classifies a magnitude into a discrete impact band.
type EarthquakeSeverity string

const (
	SeverityMinimal  EarthquakeSeverity = "minimal"
	SeverityModerate EarthquakeSeverity = "moderate"
	SeveritySevere   EarthquakeSeverity = "severe"
)

// WavePoint is one sample of the synthesized seismic waveform.
type WavePoint struct {
	Time      float64 `json:"time"`
	Amplitude float64 `json:"amplitude"`
}

// EarthquakeResult is the full simulator output for one parameter set.
type EarthquakeResult struct {
	Intensity float64            `json:"intensity"`
	Duration  int                `json:"duration"`
	Waveform  []WavePoint        `json:"waveform"`
	Severity  EarthquakeSeverity `json:"severity"`
	Impacts   []string           `json:"impacts"`
}

// RandomSource supplies the per-sample random factor of the waveform. The
// source is injected so tests can make the synthesis deterministic.
type RandomSource interface {
	Float64() float64
}

// SimulateEarthquake synthesizes a waveform of WaveformSamples evenly spaced
// points over [0, duration]; the amplitude at each point t is
// sin(t) * intensity * U(0,1).
func SimulateEarthquake(intensity float64, duration int, rng RandomSource) EarthquakeResult {
	waveform := make([]WavePoint, WaveformSamples)
	step := float64(duration) / float64(WaveformSamples-1)
	for i := range waveform {
		t := float64(i) * step
		waveform[i] = WavePoint{
			Time:      t,
			Amplitude: math.Sin(t) * intensity * rng.Float64(),
		}
	}

	severity, impacts := ClassifyEarthquake(intensity)
	return EarthquakeResult{
		Intensity: intensity,
		Duration:  duration,
		Waveform:  waveform,
		Severity:  severity,
		Impacts:   impacts,
	}
}

// ClassifyEarthquake maps a magnitude to its severity band and the fixed
// impact statements shown to the user.
func ClassifyEarthquake(intensity float64) (EarthquakeSeverity, []string) {
	switch {
	case intensity < 4:
		return SeverityMinimal, []string{
			"Be felt by few people",
			"Cause minimal damage",
		}
	case intensity < 6:
		return SeverityModerate, []string{
			"Be felt by most people",
			"Cause minor damage to buildings",
		}
	default:
		return SeveritySevere, []string{
			"Be felt by everyone",
			"Cause significant damage to buildings",
			"Require immediate evacuation",
		}
	}
}
