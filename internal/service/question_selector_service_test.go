package service

import (
	"math/rand"
	"testing"

	"github.com/careerai/interview-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededSelector(seed int64) *questionSelectorService {
	return newQuestionSelectorService(NewSkillExtractorService(), rand.New(rand.NewSource(seed)))
}

func categoryCounts(questions []model.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range questions {
		counts[q.Category]++
	}
	return counts
}

func TestGenerateQuestions_DefaultTotalMeetsQuotas(t *testing.T) {
	selector := seededSelector(1)

	generated, err := selector.GenerateQuestions("Backend Engineer", "Backend Engineer working with python, postgresql and docker", 0)
	require.NoError(t, err)

	questions := generated.Questions
	assert.Len(t, questions, DefaultTotalQuestions)

	counts := categoryCounts(questions)
	assert.Equal(t, 2, counts[model.CategoryBehavioral])
	assert.Equal(t, 4, counts[model.CategoryTechnical])
	assert.Equal(t, 2, counts[model.CategorySituational])
}

func TestGenerateQuestions_OrderIsSequentialAfterShuffle(t *testing.T) {
	selector := seededSelector(2)

	generated, err := selector.GenerateQuestions("Backend Engineer", "python and docker", 0)
	require.NoError(t, err)

	for i, q := range generated.Questions {
		assert.Equal(t, i+1, q.OrderInSession)
		assert.NotEmpty(t, q.ID)
	}
}

func TestGenerateQuestions_NoDuplicateTexts(t *testing.T) {
	selector := seededSelector(3)

	generated, err := selector.GenerateQuestions("Full Stack Developer", "react, node.js, mongodb, docker, kubernetes", 0)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, q := range generated.Questions {
		assert.False(t, seen[q.Text], "duplicate question text: %s", q.Text)
		seen[q.Text] = true
	}
}

func TestGenerateQuestions_RelatedSkillComesFromExtraction(t *testing.T) {
	selector := seededSelector(4)

	generated, err := selector.GenerateQuestions("Frontend Developer", "We are hiring a Frontend Developer to build rich interfaces with react and modern tooling", 0)
	require.NoError(t, err)

	extracted := make(map[string]bool)
	for _, skill := range generated.Skills.TechnicalSkills {
		extracted[skill] = true
	}

	reactQuestions := 0
	for _, q := range generated.Questions {
		if q.RelatedSkill == nil {
			continue
		}
		assert.Equal(t, model.CategoryTechnical, q.Category)
		assert.True(t, extracted[*q.RelatedSkill], "related skill %q was not extracted", *q.RelatedSkill)
		if *q.RelatedSkill == "react" {
			reactQuestions++
		}
	}
	assert.GreaterOrEqual(t, reactQuestions, 1, "a react-heavy description should produce react questions")
}

func TestGenerateQuestions_TechnicalQuotaClamped(t *testing.T) {
	t.Run("large total", func(t *testing.T) {
		selector := seededSelector(5)

		generated, err := selector.GenerateQuestions("Platform Engineer", "kubernetes, docker, terraform, aws, python, golang", 12)
		require.NoError(t, err)

		// 2 behavioral + at most 4 technical + 2 situational.
		assert.Len(t, generated.Questions, 8)
		assert.Equal(t, 4, categoryCounts(generated.Questions)[model.CategoryTechnical])
	})

	t.Run("small total", func(t *testing.T) {
		selector := seededSelector(6)

		generated, err := selector.GenerateQuestions("Platform Engineer", "kubernetes and docker", 4)
		require.NoError(t, err)

		// Quotas produce six candidates; the set is truncated to the total.
		assert.Len(t, generated.Questions, 4)
		for i, q := range generated.Questions {
			assert.Equal(t, i+1, q.OrderInSession)
		}
	})
}

func TestGenerateQuestions_NoSkillsFallsBackToGenericPool(t *testing.T) {
	selector := seededSelector(7)

	generated, err := selector.GenerateQuestions("Project Coordinator", "A motivated self-starter for our fast-paced office", 0)
	require.NoError(t, err)

	assert.Empty(t, generated.Skills.TechnicalSkills)
	assert.Len(t, generated.Questions, DefaultTotalQuestions)

	counts := categoryCounts(generated.Questions)
	assert.Equal(t, 4, counts[model.CategoryTechnical])
	for _, q := range generated.Questions {
		if q.Category == model.CategoryTechnical {
			assert.Nil(t, q.RelatedSkill, "generic pool questions carry no related skill")
		}
	}
}

func TestGenerateQuestions_DeterministicForSameSeed(t *testing.T) {
	first, err := seededSelector(42).GenerateQuestions("Backend Engineer", "python and redis", 0)
	require.NoError(t, err)
	second, err := seededSelector(42).GenerateQuestions("Backend Engineer", "python and redis", 0)
	require.NoError(t, err)

	require.Len(t, second.Questions, len(first.Questions))
	for i := range first.Questions {
		assert.Equal(t, first.Questions[i].Text, second.Questions[i].Text)
		assert.Equal(t, first.Questions[i].Category, second.Questions[i].Category)
	}
}
