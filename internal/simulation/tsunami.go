package simulation

import (
	"math"

	"disasterguard/internal/util"
)

// Tsunami input bounds, matching the UI sliders.
const (
	TsunamiMinDistanceKm = 0
	TsunamiMaxDistanceKm = 1000
	TsunamiMinDepthM     = 1000
	TsunamiMaxDepthM     = 10000
)

// TsunamiTrigger is the event that set off the wave.
type TsunamiTrigger string

const (
	TriggerEarthquake TsunamiTrigger = "Underwater Earthquake"
	TriggerVolcano    TsunamiTrigger = "Volcanic Eruption"
	TriggerLandslide  TsunamiTrigger = "Landslide"
)

// baseHeights is the fixed per-trigger starting wave height in meters.
var baseHeights = map[TsunamiTrigger]float64{
	TriggerEarthquake: 15,
	TriggerVolcano:    20,
	TriggerLandslide:  10,
}

func (t TsunamiTrigger) IsValid() bool {
	_, ok := baseHeights[t]
	return ok
}

// TsunamiWarning is the discrete classification derived from wave height.
type TsunamiWarning struct {
	Level       string   `json:"level"`
	Color       string   `json:"color"`
	Precautions []string `json:"precautions"`
}

// TsunamiResult holds the derived wave metrics for one parameter set.
type TsunamiResult struct {
	Trigger      TsunamiTrigger `json:"trigger"`
	DistanceKm   float64        `json:"distance_km"`
	DepthM       float64        `json:"depth_m"`
	SpeedKmh     float64        `json:"speed_kmh"`
	WaveHeightM  float64        `json:"wave_height_m"`
	ArrivalHours float64        `json:"arrival_hours"`
	Warning      TsunamiWarning `json:"warning"`
}

// SimulateTsunami derives wave speed from the shallow-water approximation
// sqrt(g*depth), attenuates the trigger's base height linearly with distance
// (never below 2 m) and classifies the result by fixed height thresholds.
func SimulateTsunami(trigger TsunamiTrigger, distanceKm, depthM float64) TsunamiResult {
	speed := util.RoundTo(math.Sqrt(9.8*depthM)*3.6, 2)

	height := baseHeights[trigger] * (1 - distanceKm/2000)
	height = util.RoundTo(math.Max(height, 2), 1)

	arrival := util.RoundTo(distanceKm/speed, 2)

	return TsunamiResult{
		Trigger:      trigger,
		DistanceKm:   distanceKm,
		DepthM:       depthM,
		SpeedKmh:     speed,
		WaveHeightM:  height,
		ArrivalHours: arrival,
		Warning:      ClassifyTsunami(height),
	}
}

// ClassifyTsunami maps a wave height to its warning level and the fixed
// precaution list.
func ClassifyTsunami(waveHeightM float64) TsunamiWarning {
	switch {
	case waveHeightM < 5:
		return TsunamiWarning{
			Level: "MODERATE",
			Color: "yellow",
			Precautions: []string{
				"Move to higher ground immediately",
				"Stay away from the beach",
				"Monitor official updates",
				"Prepare emergency kit",
			},
		}
	case waveHeightM < 10:
		return TsunamiWarning{
			Level: "HIGH",
			Color: "orange",
			Precautions: []string{
				"EVACUATE IMMEDIATELY to higher ground",
				"Take emergency supplies",
				"Follow evacuation routes",
				"Help others if possible",
				"Stay tuned to emergency broadcasts",
			},
		}
	default:
		return TsunamiWarning{
			Level: "EXTREME",
			Color: "red",
			Precautions: []string{
				"IMMEDIATE EVACUATION REQUIRED",
				"Move at least 2 miles inland or 100 feet above sea level",
				"Take only essential items",
				"Follow all official instructions",
				"Do not wait to observe the tsunami",
			},
		}
	}
}
