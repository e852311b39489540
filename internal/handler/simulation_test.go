package handler

import (
	"math/rand"
	"net/http"
	"testing"

	"disasterguard/internal/dto"
	"disasterguard/internal/middleware"
	"disasterguard/internal/repository"
	"disasterguard/internal/service"
	"disasterguard/internal/simulation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulationTestApp(t *testing.T) *fiber.App {
	t.Helper()

	simHandler := NewSimulationHandler(
		service.NewSimulationService(rand.New(rand.NewSource(1))))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api := app.Group("/api", middleware.WithSession(repository.NewSessionStore()))
	api.Post("/simulations/earthquake", simHandler.Earthquake)
	api.Post("/simulations/hurricane", simHandler.Hurricane)
	api.Post("/simulations/tsunami", simHandler.Tsunami)
	api.Get("/scene/:scenario", simHandler.Scene)
	api.Post("/scene/:scenario/move", simHandler.SceneMove)
	api.Post("/scene/:scenario/reset", simHandler.SceneReset)
	return app
}

func TestSimulationHandler_Earthquake(t *testing.T) {
	t.Run("returns the simulated waveform", func(t *testing.T) {
		app := newSimulationTestApp(t)

		resp := doJSON(t, app, http.MethodPost, "/api/simulations/earthquake", "",
			dto.EarthquakeRequest{Intensity: 7.2, Duration: 12})

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body simulation.EarthquakeResult
		decode(t, resp, &body)
		assert.Equal(t, simulation.SeveritySevere, body.Severity)
		assert.Len(t, body.Waveform, simulation.WaveformSamples)
	})

	t.Run("out-of-range params are a validation failure", func(t *testing.T) {
		app := newSimulationTestApp(t)

		resp := doJSON(t, app, http.MethodPost, "/api/simulations/earthquake", "",
			dto.EarthquakeRequest{Intensity: 0.5, Duration: 60})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestSimulationHandler_Hurricane(t *testing.T) {
	app := newSimulationTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/simulations/hurricane", "",
		dto.HurricaneRequest{Level: "Extreme"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body simulation.HurricaneProfile
	decode(t, resp, &body)
	assert.Equal(t, "Category 5", body.Category)
	assert.Equal(t, "purple", body.Color)
}

func TestSimulationHandler_Tsunami(t *testing.T) {
	app := newSimulationTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/simulations/tsunami", "",
		dto.TsunamiRequest{Trigger: "Volcanic Eruption", DistanceKm: 200, DepthM: 4000})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body simulation.TsunamiResult
	decode(t, resp, &body)
	assert.Equal(t, 18.0, body.WaveHeightM)
	assert.Equal(t, "EXTREME", body.Warning.Level)
}

func TestSimulationHandler_Scene(t *testing.T) {
	t.Run("move persists across requests in a session", func(t *testing.T) {
		app := newSimulationTestApp(t)

		first := doJSON(t, app, http.MethodPost, "/api/scene/fire/move", "",
			dto.SceneMoveRequest{Direction: "up"})
		require.Equal(t, http.StatusOK, first.StatusCode)
		sessionID := first.Header.Get(middleware.SessionHeader)
		var moved dto.SceneResponse
		decode(t, first, &moved)
		assert.Equal(t, simulation.Point{X: 5, Y: 4.5}, moved.Position)

		second := doJSON(t, app, http.MethodGet, "/api/scene/fire", sessionID, nil)
		require.Equal(t, http.StatusOK, second.StatusCode)
		var viewed dto.SceneResponse
		decode(t, second, &viewed)
		assert.Equal(t, simulation.Point{X: 5, Y: 4.5}, viewed.Position)
	})

	t.Run("reset restores the start position", func(t *testing.T) {
		app := newSimulationTestApp(t)

		moved := doJSON(t, app, http.MethodPost, "/api/scene/tornado/move", "",
			dto.SceneMoveRequest{Direction: "left"})
		sessionID := moved.Header.Get(middleware.SessionHeader)
		moved.Body.Close()

		resp := doJSON(t, app, http.MethodPost, "/api/scene/tornado/reset", sessionID, nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body dto.SceneResponse
		decode(t, resp, &body)
		assert.Equal(t, simulation.Point{X: 5, Y: 4}, body.Position)
	})

	t.Run("unknown scenario is a validation failure", func(t *testing.T) {
		app := newSimulationTestApp(t)

		resp := doJSON(t, app, http.MethodGet, "/api/scene/flood", "", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}
