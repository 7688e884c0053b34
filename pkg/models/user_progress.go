package models

import "time"

// CharacterClass identifies one of the three character ledgers.
type CharacterClass string

const (
	Hiragana CharacterClass = "hiragana"
	Katakana CharacterClass = "katakana"
	Kanji    CharacterClass = "kanji"
)

// UserProgress is the root aggregate for a single user's study history.
// It is the exact shape persisted under the progress storage key, so the
// JSON tags double as the storage field names.
type UserProgress struct {
	UserID       string               `json:"userId"`
	Hiragana     []CharacterProgress  `json:"hiragana"`
	Katakana     []CharacterProgress  `json:"katakana"`
	Kanji        []CharacterProgress  `json:"kanji"`
	Vocabulary   []VocabularyProgress `json:"vocabulary"`
	Grammar      []GrammarProgress    `json:"grammar"`
	Quizzes      []QuizProgress       `json:"quizzes"`
	Stats        UserStats            `json:"stats"`
	Achievements []Achievement        `json:"achievements"`
	LastStudied  time.Time            `json:"lastStudied"`
	StudyStreak  int                  `json:"studyStreak"`
}
