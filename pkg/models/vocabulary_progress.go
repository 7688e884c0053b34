package models

import "time"

// VocabularyProgress tracks a user's mastery of a single word.
type VocabularyProgress struct {
	Word           string    `json:"word"`
	Mastery        int       `json:"mastery"` // 0-100
	LastReviewed   time.Time `json:"lastReviewed"`
	TimesCorrect   int       `json:"timesCorrect"`
	TimesIncorrect int       `json:"timesIncorrect"`
	NextReview     time.Time `json:"nextReview"`
}
