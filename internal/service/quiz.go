package service

import (
	"time"

	"disasterguard/internal/domain"
	"disasterguard/internal/dto"
	"disasterguard/internal/logger"
	"disasterguard/internal/validation"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz and leaderboard operations.
// All quiz state lives on the caller's session; the service owns the
// question bank, the score store and the shuffle source.
type QuizService interface {
	Categories() *dto.CategoriesResponse
	Start(session *domain.Session, category string) (*dto.StartQuizResponse, error)
	CurrentQuestion(session *domain.Session) (*dto.QuestionResponse, error)
	SubmitAnswer(session *domain.Session, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	Reset(session *domain.Session)
	Result(session *domain.Session) (*dto.QuizResultResponse, error)
	SaveScore(session *domain.Session, name string) error
	Leaderboard() (*dto.LeaderboardResponse, error)
}

// quizService implements QuizService
type quizService struct {
	bank        domain.QuestionRepository
	leaderboard domain.LeaderboardRepository
	validator   *validation.Validator
	rng         domain.Shuffler
	now         func() time.Time
}

// NewQuizService creates a new instance of quizService. The random source
// drives the question shuffle and is injected so tests can seed it; it may
// be shared with other services as long as it is safe for concurrent use.
func NewQuizService(
	bank domain.QuestionRepository,
	leaderboard domain.LeaderboardRepository,
	rng domain.Shuffler,
) QuizService {
	return &quizService{
		bank:        bank,
		leaderboard: leaderboard,
		validator:   validation.NewValidator(),
		rng:         rng,
		now:         time.Now,
	}
}

// Categories implements QuizService
func (s *quizService) Categories() *dto.CategoriesResponse {
	categories := s.bank.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return &dto.CategoriesResponse{Categories: names}
}

// Start implements QuizService. Starting is only effective from NotStarted;
// otherwise it leaves the quiz untouched and reports where it stands: the
// current question mid-quiz, the result after completion.
func (s *quizService) Start(session *domain.Session, category string) (*dto.StartQuizResponse, error) {
	if errs := s.validator.ValidateQuizCategory(category); len(errs) > 0 {
		return nil, errs
	}

	questions, err := s.bank.Questions(domain.Category(category))
	if err != nil {
		return nil, err
	}

	session.Quiz.Start(domain.Category(category), questions, s.rng)
	if session.Quiz.Phase == domain.PhaseCompleted {
		result, err := s.Result(session)
		if err != nil {
			return nil, err
		}
		return &dto.StartQuizResponse{Result: result}, nil
	}

	question, err := s.CurrentQuestion(session)
	if err != nil {
		return nil, err
	}
	return &dto.StartQuizResponse{Question: question}, nil
}

// CurrentQuestion implements QuizService
func (s *quizService) CurrentQuestion(session *domain.Session) (*dto.QuestionResponse, error) {
	question, err := session.Quiz.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	return &dto.QuestionResponse{
		Number:   session.Quiz.Current + 1,
		Total:    len(session.Quiz.Questions),
		Question: question.Text,
		Options:  question.Options,
	}, nil
}

// SubmitAnswer implements QuizService
func (s *quizService) SubmitAnswer(session *domain.Session, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	outcome, err := session.Quiz.SubmitAnswer(req.SelectedIndex)
	if err != nil {
		return nil, err
	}

	resp := &dto.SubmitAnswerResponse{
		Correct:       outcome.Correct,
		CorrectAnswer: outcome.CorrectAnswer,
		Score:         outcome.Score,
		Completed:     outcome.Completed,
	}
	if !outcome.Completed {
		next, err := s.CurrentQuestion(session)
		if err != nil {
			return nil, err
		}
		resp.Next = next
	}
	return resp, nil
}

// Reset implements QuizService
func (s *quizService) Reset(session *domain.Session) {
	session.Quiz.Reset()
}

// Result implements QuizService
func (s *quizService) Result(session *domain.Session) (*dto.QuizResultResponse, error) {
	quiz := session.Quiz
	if quiz.Phase != domain.PhaseCompleted {
		return nil, domain.NewInvalidPhaseError("result", quiz.Phase)
	}
	return &dto.QuizResultResponse{
		Category:   string(quiz.Category),
		Score:      quiz.Score,
		Total:      len(quiz.Questions),
		Percentage: quiz.Percentage(),
	}, nil
}

// SaveScore implements QuizService. Only a completed quiz can be saved.
func (s *quizService) SaveScore(session *domain.Session, name string) error {
	if errs := s.validator.ValidatePlayerName(name); len(errs) > 0 {
		return errs
	}
	if session.Quiz.Phase != domain.PhaseCompleted {
		return domain.NewInvalidPhaseError("save_score", session.Quiz.Phase)
	}

	entry := domain.LeaderboardEntry{
		Name:  name,
		Score: session.Quiz.Score,
		Date:  s.now().Format(domain.LeaderboardDateLayout),
	}
	if err := s.leaderboard.Append(entry); err != nil {
		logger.Get().Error("Failed to save leaderboard entry",
			zap.Error(err),
			zap.String("name", name),
			zap.Int("score", entry.Score),
		)
		return err
	}
	return nil
}

// Leaderboard implements QuizService
func (s *quizService) Leaderboard() (*dto.LeaderboardResponse, error) {
	entries, err := s.leaderboard.Load()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return &dto.LeaderboardResponse{
			Entries: []domain.LeaderboardEntry{},
			Message: "No scores yet. Be the first to take the quiz!",
		}, nil
	}
	return &dto.LeaderboardResponse{
		Entries: domain.Rank(entries, domain.LeaderboardTopN),
	}, nil
}
