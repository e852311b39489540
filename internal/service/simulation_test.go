package service

import (
	"math/rand"
	"sync"
	"testing"

	"disasterguard/internal/domain"
	"disasterguard/internal/dto"
	"disasterguard/internal/simulation"
	"disasterguard/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSimulationService() SimulationService {
	return NewSimulationService(rand.New(rand.NewSource(1)))
}

func TestSimulationService_Earthquake(t *testing.T) {
	t.Run("runs the simulation for valid params", func(t *testing.T) {
		service := newTestSimulationService()

		result, err := service.Earthquake(&dto.EarthquakeRequest{Intensity: 6.5, Duration: 10})

		require.NoError(t, err)
		assert.Equal(t, simulation.SeveritySevere, result.Severity)
		assert.Len(t, result.Waveform, simulation.WaveformSamples)
	})

	t.Run("rejects out-of-range params", func(t *testing.T) {
		service := newTestSimulationService()

		_, err := service.Earthquake(&dto.EarthquakeRequest{Intensity: 10, Duration: 0})

		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Len(t, validationErrs, 2)
	})
}

func TestSimulationService_Hurricane(t *testing.T) {
	t.Run("returns the fixed profile", func(t *testing.T) {
		service := newTestSimulationService()

		profile, err := service.Hurricane(&dto.HurricaneRequest{Level: "Moderate"})

		require.NoError(t, err)
		assert.Equal(t, "Category 2-3", profile.Category)
		assert.Equal(t, 112.5, profile.GaugeValue)
	})

	t.Run("rejects an unknown level", func(t *testing.T) {
		service := newTestSimulationService()

		_, err := service.Hurricane(&dto.HurricaneRequest{Level: "Breezy"})

		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
	})
}

func TestSimulationService_Tsunami(t *testing.T) {
	t.Run("runs the simulation for valid params", func(t *testing.T) {
		service := newTestSimulationService()

		result, err := service.Tsunami(&dto.TsunamiRequest{
			Trigger:    "Underwater Earthquake",
			DistanceKm: 400,
			DepthM:     5000,
		})

		require.NoError(t, err)
		assert.Equal(t, 12.0, result.WaveHeightM)
		assert.Equal(t, "EXTREME", result.Warning.Level)
	})

	t.Run("rejects an unknown trigger", func(t *testing.T) {
		service := newTestSimulationService()

		_, err := service.Tsunami(&dto.TsunamiRequest{
			Trigger:    "Meteor Strike",
			DistanceKm: 400,
			DepthM:     5000,
		})

		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
	})
}

func TestSimulationService_Scene(t *testing.T) {
	t.Run("first access starts at the room center", func(t *testing.T) {
		service := newTestSimulationService()
		session := domain.NewSession("s1")

		resp, err := service.Scene(session, "fire")

		require.NoError(t, err)
		assert.Equal(t, "fire", resp.Scenario)
		assert.Equal(t, simulation.Point{X: 5, Y: 4}, resp.Position)
		assert.Equal(t, simulation.SceneStatusSearching, resp.Status)
		assert.NotEmpty(t, resp.Instructions)
	})

	t.Run("unknown scenario", func(t *testing.T) {
		service := newTestSimulationService()

		_, err := service.Scene(domain.NewSession("s1"), "flood")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidCategory, domainErr.Code)
	})
}

func TestSimulationService_SceneMove(t *testing.T) {
	t.Run("moves one step and keeps the position on the session", func(t *testing.T) {
		service := newTestSimulationService()
		session := domain.NewSession("s1")

		resp, err := service.SceneMove(session, "earthquake", "left")
		require.NoError(t, err)
		assert.Equal(t, simulation.Point{X: 4.5, Y: 4}, resp.Position)

		resp, err = service.SceneMove(session, "earthquake", "down")
		require.NoError(t, err)
		assert.Equal(t, simulation.Point{X: 4.5, Y: 3.5}, resp.Position)
	})

	t.Run("positions are tracked per scenario", func(t *testing.T) {
		service := newTestSimulationService()
		session := domain.NewSession("s1")

		_, err := service.SceneMove(session, "earthquake", "left")
		require.NoError(t, err)
		resp, err := service.Scene(session, "fire")
		require.NoError(t, err)

		assert.Equal(t, simulation.Point{X: 5, Y: 4}, resp.Position)
	})

	t.Run("walking into a safe zone flips the status", func(t *testing.T) {
		service := newTestSimulationService()
		session := domain.NewSession("s1")

		// From (5,4) toward the earthquake safe zone at (6.5,2.5).
		var resp *dto.SceneResponse
		var err error
		for _, dir := range []string{"right", "right", "right", "down", "down", "down"} {
			resp, err = service.SceneMove(session, "earthquake", dir)
			require.NoError(t, err)
		}

		assert.Equal(t, simulation.Point{X: 6.5, Y: 2.5}, resp.Position)
		assert.Equal(t, simulation.SceneStatusSafe, resp.Status)
	})

	t.Run("rejects an unknown direction", func(t *testing.T) {
		service := newTestSimulationService()

		_, err := service.SceneMove(domain.NewSession("s1"), "fire", "forward")

		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
	})
}

// The quiz and simulation services share one generator in production; run
// both through it concurrently to keep the shared source race-free.
func TestSharedRandomSource_ConcurrentServices(t *testing.T) {
	rng := util.NewLockedRand(1)
	bank := new(mockQuestionRepo)
	bank.On("Questions", mock.Anything).Return(quizQuestions(5), nil)
	quizSvc := NewQuizService(bank, new(mockLeaderboardRepo), rng)
	simSvc := NewSimulationService(rng)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				session := domain.NewSession("quiz")
				if _, err := quizSvc.Start(session, "earthquake"); err != nil {
					t.Errorf("Start failed: %v", err)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				req := &dto.EarthquakeRequest{Intensity: 5, Duration: 10}
				if _, err := simSvc.Earthquake(req); err != nil {
					t.Errorf("Earthquake failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestSimulationService_SceneReset(t *testing.T) {
	service := newTestSimulationService()
	session := domain.NewSession("s1")

	_, err := service.SceneMove(session, "tornado", "up")
	require.NoError(t, err)
	resp, err := service.SceneReset(session, "tornado")

	require.NoError(t, err)
	assert.Equal(t, simulation.Point{X: 5, Y: 4}, resp.Position)
	assert.Equal(t, simulation.SceneStatusSearching, resp.Status)
}
