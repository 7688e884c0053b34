package models

import "time"

// QuizProgress is one completed quiz in the user's history. Entries are
// append-only and never modified after recording.
type QuizProgress struct {
	QuizType       string    `json:"quizType"`
	Score          int       `json:"score"` // 0-100
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	CompletedAt    time.Time `json:"completedAt"`
	TimeSpent      int       `json:"timeSpent"` // seconds
}
