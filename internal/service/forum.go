package service

import (
	"strings"
	"time"

	"disasterguard/internal/domain"
	"disasterguard/internal/dto"
	"disasterguard/internal/util"
)

// defaultAuthor is the display name for all forum activity; the app has no
// accounts.
const defaultAuthor = "Anonymous"

// ForumService manages the session-scoped community forum.
type ForumService interface {
	CreatePost(session *domain.Session, req *dto.CreatePostRequest) (*domain.Post, error)
	ListPosts(session *domain.Session, category, searchTerm string) *dto.PostsResponse
	LikePost(session *domain.Session, postID string) (*domain.Post, error)
	AddComment(session *domain.Session, postID, content string) (*domain.Post, error)
}

type forumService struct {
	now func() time.Time
}

// NewForumService creates a new instance of forumService.
func NewForumService() ForumService {
	return &forumService{now: time.Now}
}

// CreatePost implements ForumService. New posts go to the front of the list.
func (s *forumService) CreatePost(session *domain.Session, req *dto.CreatePostRequest) (*domain.Post, error) {
	post := &domain.Post{
		ID:        util.NewULID(),
		Title:     req.Title,
		Category:  domain.PostCategory(req.Category),
		Content:   req.Content,
		Author:    defaultAuthor,
		Timestamp: s.now(),
		Comments:  []domain.Comment{},
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	session.Posts = append([]*domain.Post{post}, session.Posts...)
	return post, nil
}

// ListPosts implements ForumService. category filters exactly; searchTerm is
// a case-insensitive substring match over title and content.
func (s *forumService) ListPosts(session *domain.Session, category, searchTerm string) *dto.PostsResponse {
	posts := []*domain.Post{}
	for _, post := range session.Posts {
		if category != "" && category != "All Categories" && string(post.Category) != category {
			continue
		}
		if searchTerm != "" && !post.Matches(searchTerm) {
			continue
		}
		posts = append(posts, post)
	}

	if len(posts) == 0 {
		message := "No posts yet! Be the first to share your experience."
		if searchTerm != "" {
			message = "No matching posts found. Try a different keyword!"
		}
		return &dto.PostsResponse{Posts: posts, Message: message}
	}
	return &dto.PostsResponse{Posts: posts}
}

// LikePost implements ForumService
func (s *forumService) LikePost(session *domain.Session, postID string) (*domain.Post, error) {
	post, err := s.find(session, postID)
	if err != nil {
		return nil, err
	}
	post.Likes++
	return post, nil
}

// AddComment implements ForumService
func (s *forumService) AddComment(session *domain.Session, postID, content string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("content")}
	}
	post, err := s.find(session, postID)
	if err != nil {
		return nil, err
	}
	post.Comments = append(post.Comments, domain.Comment{
		ID:        util.NewULID(),
		Author:    defaultAuthor,
		Content:   content,
		Timestamp: s.now(),
	})
	return post, nil
}

func (s *forumService) find(session *domain.Session, postID string) (*domain.Post, error) {
	for _, post := range session.Posts {
		if post.ID == postID {
			return post, nil
		}
	}
	return nil, domain.NewPostNotFoundError(postID)
}
