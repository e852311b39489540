package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"disasterguard/internal/cache"
	"disasterguard/internal/domain"
	"disasterguard/internal/dto"
	"disasterguard/internal/logger"
	"disasterguard/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ChatService drives the learning-assistant conversation for a session.
type ChatService interface {
	Ask(ctx context.Context, session *domain.Session, message string) (*dto.ChatResponse, error)
	History(session *domain.Session) *dto.ChatHistoryResponse
	Clear(session *domain.Session)
	QuickQuestions() *dto.QuickQuestionsResponse
}

// chatService implements ChatService. Identical prompts are cached (when a
// cache is configured) and collapsed through singleflight so bursts of the
// same quick-question only hit the completion API once.
type chatService struct {
	completer domain.Completer
	cache     domain.Cache
	cacheTTL  time.Duration
	validator *validation.Validator
	group     singleflight.Group
	now       func() time.Time
}

// NewChatService creates a new instance of chatService. cache may be nil, in
// which case every ask goes to the completion API.
func NewChatService(completer domain.Completer, chatCache domain.Cache, cacheTTL time.Duration) ChatService {
	return &chatService{
		completer: completer,
		cache:     chatCache,
		cacheTTL:  cacheTTL,
		validator: validation.NewValidator(),
		now:       time.Now,
	}
}

// Ask implements ChatService. The completion call can only ever produce a
// friendly string (the adapter absorbs failures), so beyond input validation
// this never fails the interaction.
func (s *chatService) Ask(ctx context.Context, session *domain.Session, message string) (*dto.ChatResponse, error) {
	if errs := s.validator.ValidateChatMessage(message); len(errs) > 0 {
		return nil, errs
	}

	session.Chat = append(session.Chat, domain.ChatMessage{
		Role:      domain.ChatRoleUser,
		Content:   message,
		Timestamp: s.now(),
	})

	reply := s.complete(ctx, message)

	session.Chat = append(session.Chat, domain.ChatMessage{
		Role:      domain.ChatRoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	})

	return &dto.ChatResponse{Reply: reply}, nil
}

func (s *chatService) complete(ctx context.Context, message string) string {
	key := chatCacheKey(message)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			logger.Get().Debug("Chat cache hit", zap.String("key", key))
			return cached
		}
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Chat cache read failed", zap.Error(err), zap.String("key", key))
		}
	}

	reply, _, _ := s.group.Do(key, func() (interface{}, error) {
		return s.completer.Complete(ctx, message), nil
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, reply.(string), s.cacheTTL); err != nil {
			logger.Get().Warn("Chat cache write failed", zap.Error(err), zap.String("key", key))
		}
	}
	return reply.(string)
}

// chatCacheKey derives the cache key from the normalized message text.
func chatCacheKey(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	sum := sha256.Sum256([]byte(normalized))
	return cache.GenerateCacheKey("chat", "completion", hex.EncodeToString(sum[:]))
}

// History implements ChatService
func (s *chatService) History(session *domain.Session) *dto.ChatHistoryResponse {
	messages := session.Chat
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	return &dto.ChatHistoryResponse{Messages: messages}
}

// Clear implements ChatService
func (s *chatService) Clear(session *domain.Session) {
	session.Chat = nil
}

// QuickQuestions implements ChatService
func (s *chatService) QuickQuestions() *dto.QuickQuestionsResponse {
	return &dto.QuickQuestionsResponse{
		Questions: []dto.QuickQuestion{
			{Label: "What is sustainability? 🌱", Question: "What is sustainability and why is it important?"},
			{Label: "How to save water? 💧", Question: "What are some simple ways to save water at home?"},
			{Label: "Earthquake safety? 🏠", Question: "What should I do during an earthquake?"},
			{Label: "Recycling tips? ♻️", Question: "What are the basic rules of recycling?"},
			{Label: "Climate change? 🌍", Question: "Can you explain climate change in simple terms?"},
		},
	}
}
