package handler

import (
	"disasterguard/internal/dto"
	"disasterguard/internal/middleware"
	"disasterguard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ForumHandler handles community forum requests
type ForumHandler struct {
	service service.ForumService
}

// NewForumHandler creates a new ForumHandler instance
func NewForumHandler(service service.ForumService) *ForumHandler {
	return &ForumHandler{service: service}
}

// ListPosts godoc
// @Summary List forum posts
// @Description Lists the session's posts, newest first. Supports category
// @Description filtering and keyword search.
// @Tags forum
// @Produce json
// @Param category query string false "Category filter"
// @Param q query string false "Search term"
// @Success 200 {object} dto.PostsResponse
// @Router /forum/posts [get]
func (h *ForumHandler) ListPosts(c *fiber.Ctx) error {
	posts := h.service.ListPosts(middleware.SessionFromCtx(c), c.Query("category"), c.Query("q"))
	return c.JSON(posts)
}

// CreatePost godoc
// @Summary Create a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "New post"
// @Success 201 {object} domain.Post
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /forum/posts [post]
func (h *ForumHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	post, err := h.service.CreatePost(middleware.SessionFromCtx(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// LikePost godoc
// @Summary Like a forum post
// @Tags forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} domain.Post
// @Failure 404 {object} middleware.ErrorResponse
// @Router /forum/posts/{id}/like [post]
func (h *ForumHandler) LikePost(c *fiber.Ctx) error {
	post, err := h.service.LikePost(middleware.SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// AddComment godoc
// @Summary Comment on a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.AddCommentRequest true "Comment"
// @Success 200 {object} domain.Post
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /forum/posts/{id}/comments [post]
func (h *ForumHandler) AddComment(c *fiber.Ctx) error {
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	post, err := h.service.AddComment(middleware.SessionFromCtx(c), c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(post)
}
