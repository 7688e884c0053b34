package models

import "time"

// GrammarProgress tracks a user's mastery of a single grammar pattern.
// The field is part of the persisted shape but no operation currently
// writes to it; grammar study has no answer-recording entry point yet.
type GrammarProgress struct {
	Pattern        string    `json:"pattern"`
	Mastery        int       `json:"mastery"` // 0-100
	LastReviewed   time.Time `json:"lastReviewed"`
	TimesCorrect   int       `json:"timesCorrect"`
	TimesIncorrect int       `json:"timesIncorrect"`
	NextReview     time.Time `json:"nextReview"`
}
