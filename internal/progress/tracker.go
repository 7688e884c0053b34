package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/example/nihongobot/pkg/models"
)

// StorageKey is the logical key the serialized aggregate is persisted under.
const StorageKey = "japanese_learning_progress"

// Store persists one serialized progress record per key. Load returns
// a nil slice when no record exists.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// Tracker owns the UserProgress aggregate and is the only component
// allowed to mutate it. Callers receive value snapshots from reads and
// go through the update operations for every change. A tracker is not
// safe for concurrent use; the application drives it from a single
// update loop.
type Tracker struct {
	store    Store
	progress *models.UserProgress
	now      func() time.Time
}

// New creates a tracker backed by store, loading any previously
// persisted record. A nil store keeps progress in memory only for the
// session; operations still succeed and nothing is surfaced to callers.
func New(store Store) *Tracker {
	t := &Tracker{store: store, now: time.Now}
	t.loadProgress()
	return t
}

// loadProgress restores the persisted record or initializes defaults.
// A malformed record is discarded with a log line rather than kept
// around half-parsed.
func (t *Tracker) loadProgress() {
	if t.store == nil {
		t.initializeProgress()
		return
	}
	data, err := t.store.Load(StorageKey)
	if err != nil {
		log.Printf("Failed to load progress record, starting fresh: %v", err)
		t.initializeProgress()
		return
	}
	if data == nil {
		t.initializeProgress()
		return
	}
	var p models.UserProgress
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Discarding malformed progress record: %v", err)
		t.initializeProgress()
		return
	}
	t.progress = &p
}

func (t *Tracker) initializeProgress() {
	t.progress = &models.UserProgress{
		UserID:       "default_user",
		Hiragana:     []models.CharacterProgress{},
		Katakana:     []models.CharacterProgress{},
		Kanji:        []models.CharacterProgress{},
		Vocabulary:   []models.VocabularyProgress{},
		Grammar:      []models.GrammarProgress{},
		Quizzes:      []models.QuizProgress{},
		Stats:        models.UserStats{Level: models.LevelBeginner},
		Achievements: []models.Achievement{},
		LastStudied:  t.now(),
	}
	t.saveProgress()
}

// saveProgress flushes the full aggregate. Storage trouble is logged
// and absorbed so the session continues in memory.
func (t *Tracker) saveProgress() {
	if t.store == nil {
		return
	}
	data, err := json.Marshal(t.progress)
	if err != nil {
		log.Printf("Failed to serialize progress record: %v", err)
		return
	}
	if err := t.store.Save(StorageKey, data); err != nil {
		log.Printf("Failed to persist progress record: %v", err)
	}
}

// Progress returns a value snapshot of the aggregate. Mutating the
// returned value or its slices has no effect on tracker state.
func (t *Tracker) Progress() models.UserProgress {
	p := *t.progress
	p.Hiragana = append([]models.CharacterProgress(nil), t.progress.Hiragana...)
	p.Katakana = append([]models.CharacterProgress(nil), t.progress.Katakana...)
	p.Kanji = append([]models.CharacterProgress(nil), t.progress.Kanji...)
	p.Vocabulary = append([]models.VocabularyProgress(nil), t.progress.Vocabulary...)
	p.Grammar = append([]models.GrammarProgress(nil), t.progress.Grammar...)
	p.Quizzes = append([]models.QuizProgress(nil), t.progress.Quizzes...)
	p.Achievements = append([]models.Achievement(nil), t.progress.Achievements...)
	return p
}

// ledger resolves a character class to its backing slice.
func (t *Tracker) ledger(class models.CharacterClass) (*[]models.CharacterProgress, error) {
	switch class {
	case models.Hiragana:
		return &t.progress.Hiragana, nil
	case models.Katakana:
		return &t.progress.Katakana, nil
	case models.Kanji:
		return &t.progress.Kanji, nil
	}
	return nil, fmt.Errorf("unknown character class %q", class)
}

// UpdateCharacterProgress records one answer event for a character,
// creating its ledger entry on first sight.
func (t *Tracker) UpdateCharacterProgress(class models.CharacterClass, character string, correct bool) error {
	ledger, err := t.ledger(class)
	if err != nil {
		return err
	}

	idx := -1
	for i := range *ledger {
		if (*ledger)[i].Character == character {
			idx = i
			break
		}
	}
	if idx == -1 {
		*ledger = append(*ledger, models.CharacterProgress{Character: character})
		idx = len(*ledger) - 1
	}

	entry := &(*ledger)[idx]
	if correct {
		entry.TimesCorrect++
	} else {
		entry.TimesIncorrect++
	}
	entry.Mastery = nextMastery(entry.Mastery, correct)

	now := t.now()
	entry.LastReviewed = now
	entry.NextReview = nextReviewAt(entry.Mastery, now)

	t.updateStats()
	t.saveProgress()
	return nil
}

// UpdateVocabularyProgress records one answer event for a word.
func (t *Tracker) UpdateVocabularyProgress(word string, correct bool) {
	idx := -1
	for i := range t.progress.Vocabulary {
		if t.progress.Vocabulary[i].Word == word {
			idx = i
			break
		}
	}
	if idx == -1 {
		t.progress.Vocabulary = append(t.progress.Vocabulary, models.VocabularyProgress{Word: word})
		idx = len(t.progress.Vocabulary) - 1
	}

	entry := &t.progress.Vocabulary[idx]
	if correct {
		entry.TimesCorrect++
	} else {
		entry.TimesIncorrect++
	}
	entry.Mastery = nextMastery(entry.Mastery, correct)

	now := t.now()
	entry.LastReviewed = now
	entry.NextReview = nextReviewAt(entry.Mastery, now)

	t.updateStats()
	t.saveProgress()
}

// RecordQuizResult appends a completed quiz to the history and folds
// its score into the statistics. Score is the percentage result the
// quiz surface already computed; XP grows by exactly that percentage
// regardless of question count.
func (t *Tracker) RecordQuizResult(quizType string, score, totalQuestions, timeSpent int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("score must be within [0,100], got %d", score)
	}
	if totalQuestions <= 0 {
		return fmt.Errorf("totalQuestions must be positive, got %d", totalQuestions)
	}
	if timeSpent < 0 {
		return fmt.Errorf("timeSpent must not be negative, got %d", timeSpent)
	}

	t.progress.Quizzes = append(t.progress.Quizzes, models.QuizProgress{
		QuizType:       quizType,
		Score:          score,
		TotalQuestions: totalQuestions,
		CorrectAnswers: int(math.Round(float64(score) * float64(totalQuestions) / 100)),
		CompletedAt:    t.now(),
		TimeSpent:      timeSpent,
	})

	t.progress.Stats.TotalQuizzes++
	t.progress.Stats.XP += score

	var total int
	for _, q := range t.progress.Quizzes {
		total += q.Score
	}
	t.progress.Stats.AverageScore = float64(total) / float64(len(t.progress.Quizzes))

	t.checkAchievements()
	t.saveProgress()
	return nil
}

// MasteryLevel returns the mastery for an item, or 0 when no record
// exists. It never creates a ledger entry.
func (t *Tracker) MasteryLevel(class models.CharacterClass, character string) int {
	ledger, err := t.ledger(class)
	if err != nil {
		return 0
	}
	for i := range *ledger {
		if (*ledger)[i].Character == character {
			return (*ledger)[i].Mastery
		}
	}
	return 0
}

// CharactersForReview returns the characters whose next review is due,
// in ledger (first-seen) order.
func (t *Tracker) CharactersForReview(class models.CharacterClass) []string {
	ledger, err := t.ledger(class)
	if err != nil {
		return nil
	}
	now := t.now()
	var due []string
	for i := range *ledger {
		if !(*ledger)[i].NextReview.After(now) {
			due = append(due, (*ledger)[i].Character)
		}
	}
	return due
}

// VocabularyForReview returns the words whose next review is due, in
// ledger order.
func (t *Tracker) VocabularyForReview() []string {
	now := t.now()
	var due []string
	for i := range t.progress.Vocabulary {
		if !t.progress.Vocabulary[i].NextReview.After(now) {
			due = append(due, t.progress.Vocabulary[i].Word)
		}
	}
	return due
}

// Reset discards the persisted record and reinitializes the aggregate
// to its defaults. The previous state is unrecoverable afterwards.
func (t *Tracker) Reset() {
	if t.store != nil {
		if err := t.store.Delete(StorageKey); err != nil {
			log.Printf("Failed to delete persisted progress record: %v", err)
		}
	}
	t.initializeProgress()
}

// nextMastery applies one answer to a mastery value, clamped to [0,100].
func nextMastery(current int, correct bool) int {
	if correct {
		m := current + 10
		if m > 100 {
			m = 100
		}
		return m
	}
	m := current - 5
	if m < 0 {
		m = 0
	}
	return m
}
