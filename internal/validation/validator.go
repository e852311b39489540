package validation

import (
	"strings"

	"disasterguard/internal/domain"
	"disasterguard/internal/simulation"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuizCategory validates the category of a start-quiz request.
func (v *Validator) ValidateQuizCategory(category string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	} else if !domain.Category(category).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("category", category))
	}

	return errors
}

// ValidatePlayerName validates the name attached to a leaderboard entry.
func (v *Validator) ValidatePlayerName(name string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(name) > 50 {
		errors = append(errors, domain.NewOutOfRangeError("name", len(name), 1, 50))
	}

	return errors
}

// ValidateChatMessage validates a chat request.
func (v *Validator) ValidateChatMessage(message string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if len(message) > 2000 {
		errors = append(errors, domain.NewOutOfRangeError("message", len(message), 1, 2000))
	}

	return errors
}

// ValidateEarthquakeParams validates earthquake simulator inputs against the
// slider ranges.
func (v *Validator) ValidateEarthquakeParams(intensity float64, duration int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if intensity < simulation.EarthquakeMinIntensity || intensity > simulation.EarthquakeMaxIntensity {
		errors = append(errors, domain.NewOutOfRangeError("intensity", intensity,
			simulation.EarthquakeMinIntensity, simulation.EarthquakeMaxIntensity))
	}
	if duration < simulation.EarthquakeMinDuration || duration > simulation.EarthquakeMaxDuration {
		errors = append(errors, domain.NewOutOfRangeError("duration", duration,
			simulation.EarthquakeMinDuration, simulation.EarthquakeMaxDuration))
	}

	return errors
}

// ValidateHurricaneLevel validates the hurricane intensity selector.
func (v *Validator) ValidateHurricaneLevel(level string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(level) == "" {
		errors = append(errors, domain.NewMissingFieldError("level"))
	} else if !simulation.HurricaneLevel(level).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("level", level))
	}

	return errors
}

// ValidateTsunamiParams validates tsunami simulator inputs against the
// slider ranges.
func (v *Validator) ValidateTsunamiParams(trigger string, distanceKm, depthM float64) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(trigger) == "" {
		errors = append(errors, domain.NewMissingFieldError("trigger"))
	} else if !simulation.TsunamiTrigger(trigger).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("trigger", trigger))
	}
	if distanceKm < simulation.TsunamiMinDistanceKm || distanceKm > simulation.TsunamiMaxDistanceKm {
		errors = append(errors, domain.NewOutOfRangeError("distance_km", distanceKm,
			simulation.TsunamiMinDistanceKm, simulation.TsunamiMaxDistanceKm))
	}
	if depthM < simulation.TsunamiMinDepthM || depthM > simulation.TsunamiMaxDepthM {
		errors = append(errors, domain.NewOutOfRangeError("depth_m", depthM,
			simulation.TsunamiMinDepthM, simulation.TsunamiMaxDepthM))
	}

	return errors
}

// ValidateSceneMove validates a 2D scene move request.
func (v *Validator) ValidateSceneMove(direction string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(direction) == "" {
		errors = append(errors, domain.NewMissingFieldError("direction"))
	} else if !simulation.Direction(direction).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("direction", direction))
	}

	return errors
}
