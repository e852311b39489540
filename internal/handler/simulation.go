package handler

import (
	"disasterguard/internal/dto"
	"disasterguard/internal/middleware"
	"disasterguard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SimulationHandler handles the parameterized simulators and the 2D scene
type SimulationHandler struct {
	service service.SimulationService
}

// NewSimulationHandler creates a new SimulationHandler instance
func NewSimulationHandler(service service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Earthquake godoc
// @Summary Run the earthquake simulator
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body dto.EarthquakeRequest true "Intensity and duration"
// @Success 200 {object} simulation.EarthquakeResult
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /simulations/earthquake [post]
func (h *SimulationHandler) Earthquake(c *fiber.Ctx) error {
	var req dto.EarthquakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	result, err := h.service.Earthquake(&req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Hurricane godoc
// @Summary Run the hurricane simulator
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body dto.HurricaneRequest true "Intensity level"
// @Success 200 {object} simulation.HurricaneProfile
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /simulations/hurricane [post]
func (h *SimulationHandler) Hurricane(c *fiber.Ctx) error {
	var req dto.HurricaneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	profile, err := h.service.Hurricane(&req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// Tsunami godoc
// @Summary Run the tsunami simulator
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body dto.TsunamiRequest true "Trigger, distance and depth"
// @Success 200 {object} simulation.TsunamiResult
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /simulations/tsunami [post]
func (h *SimulationHandler) Tsunami(c *fiber.Ctx) error {
	var req dto.TsunamiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	result, err := h.service.Tsunami(&req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Scene godoc
// @Summary Get the 2D scene state
// @Tags scene
// @Produce json
// @Param scenario path string true "Scenario (earthquake, fire, tornado)"
// @Success 200 {object} dto.SceneResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /scene/{scenario} [get]
func (h *SimulationHandler) Scene(c *fiber.Ctx) error {
	scene, err := h.service.Scene(middleware.SessionFromCtx(c), c.Params("scenario"))
	if err != nil {
		return err
	}
	return c.JSON(scene)
}

// SceneMove godoc
// @Summary Move within the 2D scene
// @Tags scene
// @Accept json
// @Produce json
// @Param scenario path string true "Scenario (earthquake, fire, tornado)"
// @Param request body dto.SceneMoveRequest true "Direction"
// @Success 200 {object} dto.SceneResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /scene/{scenario}/move [post]
func (h *SimulationHandler) SceneMove(c *fiber.Ctx) error {
	var req dto.SceneMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	scene, err := h.service.SceneMove(middleware.SessionFromCtx(c), c.Params("scenario"), req.Direction)
	if err != nil {
		return err
	}
	return c.JSON(scene)
}

// SceneReset godoc
// @Summary Reset the 2D scene position
// @Tags scene
// @Produce json
// @Param scenario path string true "Scenario (earthquake, fire, tornado)"
// @Success 200 {object} dto.SceneResponse
// @Router /scene/{scenario}/reset [post]
func (h *SimulationHandler) SceneReset(c *fiber.Ctx) error {
	scene, err := h.service.SceneReset(middleware.SessionFromCtx(c), c.Params("scenario"))
	if err != nil {
		return err
	}
	return c.JSON(scene)
}
