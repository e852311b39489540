package dto

import "disasterguard/internal/domain"

// CategoriesResponse lists the selectable quiz categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// StartQuizRequest starts a new quiz for the session.
// @Description Request body for starting a quiz
type StartQuizRequest struct {
	Category string `json:"category"`
}

// StartQuizResponse is the start endpoint's view of the session's quiz: the
// question to answer, or the finished result when the quiz was already
// completed (starting then is a no-op).
type StartQuizResponse struct {
	Question *QuestionResponse   `json:"question,omitempty"`
	Result   *QuizResultResponse `json:"result,omitempty"`
}

// QuestionResponse is the question currently awaiting an answer.
// @Description Current quiz question
type QuestionResponse struct {
	Number   int      `json:"number"`
	Total    int      `json:"total"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// SubmitAnswerRequest carries the selected option index. A nil index means
// the user submitted without selecting, which is rejected.
type SubmitAnswerRequest struct {
	SelectedIndex *int `json:"selected_index"`
}

// SubmitAnswerResponse is the per-submission correctness signal.
type SubmitAnswerResponse struct {
	Correct       bool              `json:"correct"`
	CorrectAnswer string            `json:"correct_answer"`
	Score         int               `json:"score"`
	Completed     bool              `json:"completed"`
	Next          *QuestionResponse `json:"next,omitempty"`
}

// QuizResultResponse summarizes a completed quiz.
type QuizResultResponse struct {
	Category   string  `json:"category"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// SaveScoreRequest saves the session's completed quiz score under a name.
type SaveScoreRequest struct {
	Name string `json:"name"`
}

// LeaderboardResponse is the ranked top-10 view. Message is set instead of
// entries when the store is empty.
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
	Message string                    `json:"message,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
