package service

import (
	"disasterguard/internal/domain"
	"disasterguard/internal/dto"
	"disasterguard/internal/simulation"
	"disasterguard/internal/validation"
)

// SimulationService validates simulator inputs and runs the pure formula
// cores. The earthquake waveform's random factor comes from the injected
// source so tests can reproduce it.
type SimulationService interface {
	Earthquake(req *dto.EarthquakeRequest) (*simulation.EarthquakeResult, error)
	Hurricane(req *dto.HurricaneRequest) (*simulation.HurricaneProfile, error)
	Tsunami(req *dto.TsunamiRequest) (*simulation.TsunamiResult, error)

	Scene(session *domain.Session, scenario string) (*dto.SceneResponse, error)
	SceneMove(session *domain.Session, scenario, direction string) (*dto.SceneResponse, error)
	SceneReset(session *domain.Session, scenario string) (*dto.SceneResponse, error)
}

type simulationService struct {
	validator *validation.Validator
	rng       simulation.RandomSource
}

// NewSimulationService creates a new instance of simulationService. The
// random source may be shared with other services as long as it is safe for
// concurrent use.
func NewSimulationService(rng simulation.RandomSource) SimulationService {
	return &simulationService{
		validator: validation.NewValidator(),
		rng:       rng,
	}
}

// Earthquake implements SimulationService
func (s *simulationService) Earthquake(req *dto.EarthquakeRequest) (*simulation.EarthquakeResult, error) {
	if errs := s.validator.ValidateEarthquakeParams(req.Intensity, req.Duration); len(errs) > 0 {
		return nil, errs
	}
	result := simulation.SimulateEarthquake(req.Intensity, req.Duration, s.rng)
	return &result, nil
}

// Hurricane implements SimulationService
func (s *simulationService) Hurricane(req *dto.HurricaneRequest) (*simulation.HurricaneProfile, error) {
	if errs := s.validator.ValidateHurricaneLevel(req.Level); len(errs) > 0 {
		return nil, errs
	}
	profile, _ := simulation.LookupHurricane(simulation.HurricaneLevel(req.Level))
	return &profile, nil
}

// Tsunami implements SimulationService
func (s *simulationService) Tsunami(req *dto.TsunamiRequest) (*simulation.TsunamiResult, error) {
	if errs := s.validator.ValidateTsunamiParams(req.Trigger, req.DistanceKm, req.DepthM); len(errs) > 0 {
		return nil, errs
	}
	result := simulation.SimulateTsunami(simulation.TsunamiTrigger(req.Trigger), req.DistanceKm, req.DepthM)
	return &result, nil
}

// Scene implements SimulationService. The session's position for the
// scenario is created at the start point on first access.
func (s *simulationService) Scene(session *domain.Session, scenario string) (*dto.SceneResponse, error) {
	layout, ok := simulation.LookupScenario(scenario)
	if !ok {
		return nil, domain.NewInvalidCategoryError(scenario)
	}
	pos := s.position(session, scenario)
	return sceneResponse(layout, pos), nil
}

// SceneMove implements SimulationService
func (s *simulationService) SceneMove(session *domain.Session, scenario, direction string) (*dto.SceneResponse, error) {
	layout, ok := simulation.LookupScenario(scenario)
	if !ok {
		return nil, domain.NewInvalidCategoryError(scenario)
	}
	if errs := s.validator.ValidateSceneMove(direction); len(errs) > 0 {
		return nil, errs
	}

	pos := s.position(session, scenario)
	moved := simulation.Move(simulation.Point{X: pos.X, Y: pos.Y}, simulation.Direction(direction))
	pos.X, pos.Y = moved.X, moved.Y
	return sceneResponse(layout, pos), nil
}

// SceneReset implements SimulationService
func (s *simulationService) SceneReset(session *domain.Session, scenario string) (*dto.SceneResponse, error) {
	layout, ok := simulation.LookupScenario(scenario)
	if !ok {
		return nil, domain.NewInvalidCategoryError(scenario)
	}
	pos := s.position(session, scenario)
	pos.X, pos.Y = simulation.SceneStartX, simulation.SceneStartY
	return sceneResponse(layout, pos), nil
}

func (s *simulationService) position(session *domain.Session, scenario string) *domain.ScenePosition {
	if pos, ok := session.Scenes[scenario]; ok {
		return pos
	}
	pos := &domain.ScenePosition{X: simulation.SceneStartX, Y: simulation.SceneStartY}
	session.Scenes[scenario] = pos
	return pos
}

func sceneResponse(layout simulation.SceneScenario, pos *domain.ScenePosition) *dto.SceneResponse {
	point := simulation.Point{X: pos.X, Y: pos.Y}
	return &dto.SceneResponse{
		Scenario:     layout.Name,
		Position:     point,
		Status:       simulation.EvaluateScene(layout, point),
		SafeZones:    layout.SafeZones,
		Hazards:      layout.Hazards,
		Instructions: layout.Instructions,
	}
}
