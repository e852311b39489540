package domain

import (
	"strings"
	"time"
)

// PostCategory tags a forum post with one of the fixed discussion topics.
type PostCategory string

const (
	PostCategoryExperience PostCategory = "Disaster Experience"
	PostCategorySafetyTips PostCategory = "Safety Tips"
	PostCategoryResources  PostCategory = "Resources"
	PostCategoryRecovery   PostCategory = "Recovery Story"
)

// PostCategories lists the selectable forum categories.
func PostCategories() []PostCategory {
	return []PostCategory{
		PostCategoryExperience,
		PostCategorySafetyTips,
		PostCategoryResources,
		PostCategoryRecovery,
	}
}

func (c PostCategory) IsValid() bool {
	switch c {
	case PostCategoryExperience, PostCategorySafetyTips, PostCategoryResources, PostCategoryRecovery:
		return true
	}
	return false
}

// Comment is a reply attached to a forum post.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is a community forum entry. Posts live in session state only and are
// never persisted.
type Post struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  PostCategory `json:"category"`
	Content   string       `json:"content"`
	Author    string       `json:"author"`
	Timestamp time.Time    `json:"timestamp"`
	Likes     int          `json:"likes"`
	Comments  []Comment    `json:"comments"`
}

// Validate checks the fields a user supplies when creating a post.
func (p Post) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, NewMissingFieldError("title"))
	}
	if strings.TrimSpace(p.Content) == "" {
		errs = append(errs, NewMissingFieldError("content"))
	}
	if !p.Category.IsValid() {
		errs = append(errs, NewInvalidFormatError("category", string(p.Category)))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches reports whether the post matches a case-insensitive search term
// against its title or content.
func (p Post) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Content), term)
}
