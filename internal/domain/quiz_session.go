package domain

import "math"

// Shuffler produces a uniform random permutation. Both *rand.Rand and the
// process-wide locked generator satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Phase is the lifecycle state of a quiz session.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseCompleted  Phase = "completed"
)

// AnswerOutcome is the per-submission correctness signal shown to the user.
type AnswerOutcome struct {
	Correct       bool
	CorrectAnswer string
	Score         int
	Completed     bool
}

// QuizSession drives question sequencing, scoring and completion for a single
// user session. It is not safe for concurrent use; the owning session store
// serializes access.
type QuizSession struct {
	Category  Category
	Questions []Question
	Current   int
	Score     int
	Phase     Phase
}

// NewQuizSession creates a session in the NotStarted phase.
func NewQuizSession() *QuizSession {
	return &QuizSession{Phase: PhaseNotStarted}
}

// Start loads the category's questions as a freshly shuffled copy and moves
// the session to InProgress. Calling Start outside NotStarted is a no-op.
// The random source is injected so tests can seed the shuffle.
func (s *QuizSession) Start(category Category, questions []Question, rng Shuffler) {
	if s.Phase != PhaseNotStarted {
		return
	}

	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	s.Category = category
	s.Questions = shuffled
	s.Current = 0
	s.Score = 0
	s.Phase = PhaseInProgress
}

// CurrentQuestion returns the question awaiting an answer.
func (s *QuizSession) CurrentQuestion() (Question, error) {
	if s.Phase != PhaseInProgress {
		return Question{}, NewInvalidPhaseError("current_question", s.Phase)
	}
	return s.Questions[s.Current], nil
}

// SubmitAnswer grades the selected option against the current question and
// advances the session. A nil selection is rejected without mutating state.
// The score increments at most once per question.
func (s *QuizSession) SubmitAnswer(selected *int) (*AnswerOutcome, error) {
	if s.Phase != PhaseInProgress {
		return nil, NewInvalidPhaseError("submit_answer", s.Phase)
	}
	if selected == nil {
		return nil, ValidationErrors{NewMissingFieldError("selected_index")}
	}
	question := s.Questions[s.Current]
	if *selected < 0 || *selected >= len(question.Options) {
		return nil, ValidationErrors{
			NewOutOfRangeError("selected_index", *selected, 0, len(question.Options)-1),
		}
	}

	correct := *selected == question.CorrectIndex
	if correct {
		s.Score++
	}

	if s.Current == len(s.Questions)-1 {
		s.Phase = PhaseCompleted
	} else {
		s.Current++
	}

	return &AnswerOutcome{
		Correct:       correct,
		CorrectAnswer: question.Options[question.CorrectIndex],
		Score:         s.Score,
		Completed:     s.Phase == PhaseCompleted,
	}, nil
}

// Reset discards all session fields and returns to NotStarted. Valid from
// any phase.
func (s *QuizSession) Reset() {
	s.Category = ""
	s.Questions = nil
	s.Current = 0
	s.Score = 0
	s.Phase = PhaseNotStarted
}

// Percentage returns the final score as a percentage rounded to one decimal
// place for display.
func (s *QuizSession) Percentage() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	pct := 100 * float64(s.Score) / float64(len(s.Questions))
	return math.Round(pct*10) / 10
}
