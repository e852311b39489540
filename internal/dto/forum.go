package dto

import "disasterguard/internal/domain"

// CreatePostRequest is a new forum post from the user.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// AddCommentRequest attaches a comment to a post.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// PostsResponse lists the session's posts, newest first. Message is set
// instead of posts when there are none yet.
type PostsResponse struct {
	Posts   []*domain.Post `json:"posts"`
	Message string         `json:"message,omitempty"`
}
