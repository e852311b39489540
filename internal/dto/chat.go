package dto

import "disasterguard/internal/domain"

// ChatRequest is one user message to the learning assistant.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHistoryResponse is the session's conversation so far.
type ChatHistoryResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// QuickQuestion is a canned prompt with its button label.
type QuickQuestion struct {
	Label    string `json:"label"`
	Question string `json:"question"`
}

// QuickQuestionsResponse lists the fixed quick-question prompts.
type QuickQuestionsResponse struct {
	Questions []QuickQuestion `json:"questions"`
}
