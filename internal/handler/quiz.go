package handler

import (
	"disasterguard/internal/dto"
	"disasterguard/internal/middleware"
	"disasterguard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz and leaderboard HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// GetCategories godoc
// @Summary List quiz categories
// @Description Returns all selectable quiz categories
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /quiz/categories [get]
func (h *QuizHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

// StartQuiz godoc
// @Summary Start a quiz
// @Description Starts a shuffled five-question quiz for the chosen category.
// @Description Starting an already-running or completed quiz leaves it as is.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.StartQuizRequest true "Quiz category"
// @Success 200 {object} dto.StartQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/start [post]
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	resp, err := h.service.Start(middleware.SessionFromCtx(c), req.Category)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CurrentQuestion godoc
// @Summary Get the current question
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/current [get]
func (h *QuizHandler) CurrentQuestion(c *fiber.Ctx) error {
	question, err := h.service.CurrentQuestion(middleware.SessionFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(question)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Grades the selected option and advances the quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Selected option index"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/answer [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	result, err := h.service.SubmitAnswer(middleware.SessionFromCtx(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ResetQuiz godoc
// @Summary Reset the quiz
// @Description Discards the session's quiz state
// @Tags quiz
// @Success 204
// @Router /quiz/reset [post]
func (h *QuizHandler) ResetQuiz(c *fiber.Ctx) error {
	h.service.Reset(middleware.SessionFromCtx(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// QuizResult godoc
// @Summary Get the completed quiz result
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/result [get]
func (h *QuizHandler) QuizResult(c *fiber.Ctx) error {
	result, err := h.service.Result(middleware.SessionFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetLeaderboard godoc
// @Summary Get the top-10 leaderboard
// @Tags leaderboard
// @Produce json
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /leaderboard [get]
func (h *QuizHandler) GetLeaderboard(c *fiber.Ctx) error {
	leaderboard, err := h.service.Leaderboard()
	if err != nil {
		return err
	}
	return c.JSON(leaderboard)
}

// SaveScore godoc
// @Summary Save the session's completed score
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param request body dto.SaveScoreRequest true "Player name"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /leaderboard [post]
func (h *QuizHandler) SaveScore(c *fiber.Ctx) error {
	var req dto.SaveScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	if err := h.service.SaveScore(middleware.SessionFromCtx(c), req.Name); err != nil {
		return err
	}

	leaderboard, err := h.service.Leaderboard()
	if err != nil {
		return err
	}
	return c.JSON(leaderboard)
}
