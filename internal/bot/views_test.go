package bot

import (
	"strings"
	"testing"

	"github.com/example/nihongobot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatProgress(t *testing.T) {
	p := models.UserProgress{
		Stats: models.UserStats{
			Level:             models.LevelIntermediate,
			XP:                450,
			CharactersLearned: 12,
			VocabularyLearned: 3,
			TotalQuizzes:      4,
			AverageScore:      81.25,
		},
		Achievements: []models.Achievement{
			{ID: "first_quiz", Name: "First Steps", Description: "Complete your first quiz", Icon: "🌟"},
		},
		Quizzes: []models.QuizProgress{
			{QuizType: "hiragana", Score: 80, CorrectAnswers: 4, TotalQuestions: 5},
			{QuizType: "vocabulary", Score: 100, CorrectAnswers: 5, TotalQuestions: 5},
		},
	}

	out := formatProgress(p)
	assert.Contains(t, out, "Level: intermediate | XP: 450")
	assert.Contains(t, out, "Characters learned: 12 | Vocabulary learned: 3")
	assert.Contains(t, out, "Average score: 81.2%")
	assert.Contains(t, out, "🌟 First Steps — Complete your first quiz")
	assert.Contains(t, out, "• vocabulary: 100% (5/5)")
}

func TestFormatProgressFreshUser(t *testing.T) {
	out := formatProgress(models.UserProgress{Stats: models.UserStats{Level: models.LevelBeginner}})
	assert.Contains(t, out, "Level: beginner | XP: 0")
	assert.NotContains(t, out, "Achievements")
	assert.NotContains(t, out, "Recent quizzes")
}

func TestFormatProgressShowsLastFiveQuizzes(t *testing.T) {
	p := models.UserProgress{Stats: models.UserStats{Level: models.LevelBeginner}}
	for i := 0; i < 7; i++ {
		p.Quizzes = append(p.Quizzes, models.QuizProgress{QuizType: "hiragana", Score: 10 * i, TotalQuestions: 5})
	}

	out := formatProgress(p)
	assert.Equal(t, 5, strings.Count(out, "• hiragana"))
	assert.NotContains(t, out, ": 0%", "oldest quizzes fall off the view")
	assert.Contains(t, out, ": 60%")
}

func TestPreview(t *testing.T) {
	keys := []string{"あ", "い", "う"}
	assert.Equal(t, keys, preview(keys, 5), "short lists pass through")
	assert.Equal(t, []string{"あ", "い", "…"}, preview(keys, 2))
}
