package bot

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/example/nihongobot/internal/ai"
	"github.com/example/nihongobot/internal/catalog"
	"github.com/example/nihongobot/pkg/models"
)

// quizQuestions asks the AI for questions when a client is configured,
// falling back to catalog-built questions otherwise.
func (b *Bot) quizQuestions(quizType string) []ai.QuizQuestion {
	count := b.config.QuestionsPerQuiz
	if b.chatGPT != nil {
		difficulty := difficultyForLevel(b.tracker.Progress().Stats.Level)
		if questions, err := b.chatGPT.GenerateQuiz(quizType, difficulty, count); err == nil && len(questions) > 0 {
			return questions
		}
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return buildCatalogQuiz(b.catalog, quizType, count, rnd)
}

// difficultyForLevel maps the derived proficiency tier to a quiz
// difficulty.
func difficultyForLevel(level models.Level) string {
	switch level {
	case models.LevelAdvanced:
		return "hard"
	case models.LevelIntermediate:
		return "medium"
	}
	return "easy"
}

// scorePercent converts a correct count to a 0-100 percentage.
func scorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// buildCatalogQuiz assembles multiple-choice questions from the
// catalog: reading questions for characters, meaning questions for
// vocabulary.
func buildCatalogQuiz(cat *catalog.Catalog, quizType string, count int, rnd *rand.Rand) []ai.QuizQuestion {
	type pair struct {
		prompt string
		answer string
	}

	var pool []pair
	var questionFmt string
	switch quizType {
	case "hiragana":
		for _, ch := range cat.Hiragana {
			pool = append(pool, pair{ch.Character, ch.Romaji})
		}
		questionFmt = "What is the romaji for %s?"
	case "katakana":
		for _, ch := range cat.Katakana {
			pool = append(pool, pair{ch.Character, ch.Romaji})
		}
		questionFmt = "What is the romaji for %s?"
	case "kanji":
		for _, k := range cat.Kanji {
			pool = append(pool, pair{k.Character, k.Meaning})
		}
		questionFmt = "What does the kanji %s mean?"
	case "vocabulary":
		for _, v := range cat.Vocabulary {
			pool = append(pool, pair{fmt.Sprintf("%s (%s)", v.Japanese, v.Romaji), v.English})
		}
		questionFmt = "What does %s mean?"
	default:
		return nil
	}

	if len(pool) < 4 {
		return nil
	}
	if count > len(pool) {
		count = len(pool)
	}

	var questions []ai.QuizQuestion
	for _, idx := range rnd.Perm(len(pool))[:count] {
		item := pool[idx]

		// Collect three distinct wrong answers.
		options := []string{item.answer}
		for _, j := range rnd.Perm(len(pool)) {
			if len(options) == 4 {
				break
			}
			candidate := pool[j].answer
			if candidate == item.answer || contains(options, candidate) {
				continue
			}
			options = append(options, candidate)
		}
		if len(options) < 4 {
			continue
		}

		correct := rnd.Intn(len(options))
		options[0], options[correct] = options[correct], options[0]

		questions = append(questions, ai.QuizQuestion{
			Question:      fmt.Sprintf(questionFmt, item.prompt),
			Options:       options,
			CorrectAnswer: correct,
			Explanation:   fmt.Sprintf("%s — %s", item.prompt, item.answer),
			Type:          quizType,
		})
	}
	return questions
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
