package bot

import (
	"fmt"
	"strings"

	"github.com/example/nihongobot/pkg/models"
)

// formatProgress renders a progress snapshot for the chat.
func formatProgress(p models.UserProgress) string {
	var sb strings.Builder

	sb.WriteString("📊 Your progress\n\n")
	fmt.Fprintf(&sb, "Level: %s | XP: %d\n", p.Stats.Level, p.Stats.XP)
	fmt.Fprintf(&sb, "Characters learned: %d | Vocabulary learned: %d\n",
		p.Stats.CharactersLearned, p.Stats.VocabularyLearned)
	fmt.Fprintf(&sb, "Quizzes taken: %d | Average score: %.1f%%\n",
		p.Stats.TotalQuizzes, p.Stats.AverageScore)

	if len(p.Achievements) > 0 {
		sb.WriteString("\n🏅 Achievements\n")
		for _, a := range p.Achievements {
			fmt.Fprintf(&sb, "%s %s — %s\n", a.Icon, a.Name, a.Description)
		}
	}

	if len(p.Quizzes) > 0 {
		sb.WriteString("\nRecent quizzes\n")
		start := len(p.Quizzes) - 5
		if start < 0 {
			start = 0
		}
		for _, q := range p.Quizzes[start:] {
			fmt.Fprintf(&sb, "• %s: %d%% (%d/%d)\n", q.QuizType, q.Score, q.CorrectAnswers, q.TotalQuestions)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// formatReview renders the due-for-review queues.
func (b *Bot) formatReview() string {
	var sb strings.Builder
	sb.WriteString("📋 Due for review\n")

	total := 0
	for _, class := range []models.CharacterClass{models.Hiragana, models.Katakana, models.Kanji} {
		due := b.tracker.CharactersForReview(class)
		total += len(due)
		if len(due) > 0 {
			fmt.Fprintf(&sb, "\n%s (%d): %s", class, len(due), strings.Join(preview(due, 10), " "))
		}
	}
	dueVocab := b.tracker.VocabularyForReview()
	total += len(dueVocab)
	if len(dueVocab) > 0 {
		fmt.Fprintf(&sb, "\nvocabulary (%d): %s", len(dueVocab), strings.Join(preview(dueVocab, 5), ", "))
	}

	if total == 0 {
		return "Nothing is due for review. よくできました!"
	}
	sb.WriteString("\n\nStart with /study or /vocab.")
	return sb.String()
}

// preview truncates a key list for display.
func preview(keys []string, limit int) []string {
	if len(keys) <= limit {
		return keys
	}
	return append(append([]string(nil), keys[:limit]...), "…")
}
