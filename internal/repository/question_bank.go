package repository

import (
	"disasterguard/internal/domain"
)

// QuestionBank is the static, build-time question repository. Three
// categories, five questions each; the data never changes at runtime.
type QuestionBank struct {
	sets map[domain.Category][]domain.Question
}

// NewQuestionBank creates the bank with the fixed disaster-safety question
// sets.
func NewQuestionBank() *QuestionBank {
	return &QuestionBank{sets: questionSets}
}

// Questions returns a defensive copy of the category's question set so a
// caller's shuffle cannot reorder the bank.
func (b *QuestionBank) Questions(category domain.Category) ([]domain.Question, error) {
	set, ok := b.sets[category]
	if !ok {
		return nil, domain.NewInvalidCategoryError(string(category))
	}
	questions := make([]domain.Question, len(set))
	copy(questions, set)
	return questions, nil
}

// Categories returns all categories that have a question set.
func (b *QuestionBank) Categories() []domain.Category {
	return domain.Categories()
}

var questionSets = map[domain.Category][]domain.Question{
	domain.CategoryEarthquake: {
		{
			Text: "What should you do first during an earthquake?",
			Options: []string{
				"Run outside",
				"Drop to the ground",
				"Call emergency services",
				"Look out the window",
			},
			CorrectIndex: 1,
		},
		{
			Text: "Which is the safest place during an earthquake?",
			Options: []string{
				"Under a sturdy desk",
				"Near windows",
				"In an elevator",
				"Outside the building",
			},
			CorrectIndex: 0,
		},
		{
			Text: "What is the 'Triangle of Life' in earthquake safety?",
			Options: []string{
				"A warning system",
				"A safety position",
				"A safe space next to solid objects",
				"An emergency kit",
			},
			CorrectIndex: 2,
		},
		{
			Text: "What should you do after an earthquake?",
			Options: []string{
				"Immediately run outside",
				"Use elevators to evacuate",
				"Check for injuries and damage",
				"Call all your friends",
			},
			CorrectIndex: 2,
		},
		{
			Text: "Which item is most important in an earthquake kit?",
			Options: []string{
				"Television",
				"Water supply",
				"Board games",
				"Books",
			},
			CorrectIndex: 1,
		},
	},
	domain.CategoryFire: {
		{
			Text: "What should you do if your clothes catch fire?",
			Options: []string{
				"Run to find water",
				"Stop, Drop, and Roll",
				"Call for help",
				"Remove clothing",
			},
			CorrectIndex: 1,
		},
		{
			Text: "How should you move through a smoke-filled room?",
			Options: []string{
				"Run quickly",
				"Walk normally",
				"Crawl low to the ground",
				"Hold your breath and sprint",
			},
			CorrectIndex: 2,
		},
		{
			Text: "What should you check before opening a door during a fire?",
			Options: []string{
				"Look through the peephole",
				"Feel the door and handle for heat",
				"Open it slowly",
				"Knock first",
			},
			CorrectIndex: 1,
		},
		{
			Text: "Where should you meet your family after evacuating?",
			Options: []string{
				"In the house",
				"At a predetermined meeting place",
				"At the neighbor's house",
				"By the front door",
			},
			CorrectIndex: 1,
		},
		{
			Text: "How often should you test smoke alarms?",
			Options: []string{
				"Once a year",
				"Every month",
				"Every day",
				"Never",
			},
			CorrectIndex: 1,
		},
	},
	domain.CategoryTornado: {
		{
			Text: "Where is the safest place during a tornado?",
			Options: []string{
				"Near windows",
				"In a mobile home",
				"In a basement or storm cellar",
				"Outside watching it",
			},
			CorrectIndex: 2,
		},
		{
			Text: "What is a tornado watch?",
			Options: []string{
				"A tornado has been spotted",
				"Conditions are right for a tornado",
				"A tornado has passed",
				"Time to watch the news",
			},
			CorrectIndex: 1,
		},
		{
			Text: "What should you do if you're in a car during a tornado?",
			Options: []string{
				"Drive faster than the tornado",
				"Park under an overpass",
				"Seek sturdy shelter immediately",
				"Stay in the car",
			},
			CorrectIndex: 2,
		},
		{
			Text: "What is the best protection during a tornado?",
			Options: []string{
				"A blanket",
				"A helmet or thick padding",
				"Sunglasses",
				"An umbrella",
			},
			CorrectIndex: 1,
		},
		{
			Text: "What weather conditions often precede a tornado?",
			Options: []string{
				"Clear skies",
				"Heavy snow",
				"Dark, greenish clouds",
				"Extreme heat",
			},
			CorrectIndex: 2,
		},
	},
}
