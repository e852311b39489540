package repository

import (
	"testing"

	"disasterguard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBank_Questions(t *testing.T) {
	bank := NewQuestionBank()

	t.Run("every category has the full question set", func(t *testing.T) {
		for _, category := range bank.Categories() {
			questions, err := bank.Questions(category)

			require.NoError(t, err)
			assert.Len(t, questions, domain.QuestionsPerCategory)
			for _, q := range questions {
				assert.NoError(t, q.Validate())
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := bank.Questions(domain.Category("flood"))

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidCategory, domainErr.Code)
	})

	t.Run("returns a copy the caller cannot corrupt", func(t *testing.T) {
		first, err := bank.Questions(domain.CategoryEarthquake)
		require.NoError(t, err)
		first[0].Text = "tampered"

		second, err := bank.Questions(domain.CategoryEarthquake)
		require.NoError(t, err)
		assert.NotEqual(t, "tampered", second[0].Text)
	})
}

func TestQuestionBank_Categories(t *testing.T) {
	bank := NewQuestionBank()

	categories := bank.Categories()

	assert.Equal(t, []domain.Category{
		domain.CategoryEarthquake,
		domain.CategoryFire,
		domain.CategoryTornado,
	}, categories)
}
