package models

import "time"

// CharacterProgress tracks a user's mastery of a single character.
// At most one record exists per character within a class; records are
// created lazily on the first answer and removed only by a full reset.
type CharacterProgress struct {
	Character      string    `json:"character"`
	Mastery        int       `json:"mastery"` // 0-100
	LastReviewed   time.Time `json:"lastReviewed"`
	TimesCorrect   int       `json:"timesCorrect"`
	TimesIncorrect int       `json:"timesIncorrect"`
	NextReview     time.Time `json:"nextReview"`
}
