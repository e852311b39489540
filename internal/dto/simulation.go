package dto

import "disasterguard/internal/simulation"

// EarthquakeRequest holds the earthquake simulator parameters.
type EarthquakeRequest struct {
	Intensity float64 `json:"intensity"`
	Duration  int     `json:"duration"`
}

// HurricaneRequest selects a hurricane intensity level.
type HurricaneRequest struct {
	Level string `json:"level"`
}

// TsunamiRequest holds the tsunami simulator parameters.
type TsunamiRequest struct {
	Trigger    string  `json:"trigger"`
	DistanceKm float64 `json:"distance_km"`
	DepthM     float64 `json:"depth_m"`
}

// SceneMoveRequest moves the person one step in the 2D scene.
type SceneMoveRequest struct {
	Direction string `json:"direction"`
}

// SceneResponse is the full view of a session's 2D scene.
type SceneResponse struct {
	Scenario     string                 `json:"scenario"`
	Position     simulation.Point       `json:"position"`
	Status       simulation.SceneStatus `json:"status"`
	SafeZones    []simulation.Point     `json:"safe_zones"`
	Hazards      []simulation.Point     `json:"hazards"`
	Instructions []string               `json:"instructions"`
}
