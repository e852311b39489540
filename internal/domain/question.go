package domain

// Category identifies one of the disaster-safety question sets.
type Category string

const (
	CategoryEarthquake Category = "earthquake"
	CategoryFire       Category = "fire"
	CategoryTornado    Category = "tornado"
)

// Categories lists every known quiz category in display order.
func Categories() []Category {
	return []Category{CategoryEarthquake, CategoryFire, CategoryTornado}
}

// IsValid reports whether c names a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryEarthquake, CategoryFire, CategoryTornado:
		return true
	}
	return false
}

// QuestionsPerCategory is the fixed size of every category's question set.
const QuestionsPerCategory = 5

// OptionsPerQuestion is the fixed number of answer options on every question.
const OptionsPerQuestion = 4

// Question is an immutable multiple-choice question. CorrectIndex always
// indexes a valid entry of Options.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
}

// Validate validates the question
func (q Question) Validate() error {
	if q.Text == "" {
		return NewError(CodeValidation, "question text is required", nil)
	}
	if len(q.Options) != OptionsPerQuestion {
		return NewError(CodeValidation, "question must have exactly four options", nil)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewError(CodeValidation, "correct index must address a valid option", nil)
	}
	return nil
}

// QuestionRepository is the port for the static question bank.
type QuestionRepository interface {
	// Questions returns a defensive copy of the category's question set.
	Questions(category Category) ([]Question, error)
	// Categories returns all categories that have a question set.
	Categories() []Category
}
