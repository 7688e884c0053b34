package models

// Level is the user's derived proficiency tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// UserStats is the statistics snapshot kept on the aggregate. The
// learned counts and level are rederived from the ledgers after every
// update; XP and study time are accumulators and only ever grow.
type UserStats struct {
	TotalStudyTime       int     `json:"totalStudyTime"` // minutes
	TotalQuizzes         int     `json:"totalQuizzes"`
	AverageScore         float64 `json:"averageScore"`
	CharactersLearned    int     `json:"charactersLearned"`
	VocabularyLearned    int     `json:"vocabularyLearned"`
	GrammarPointsLearned int     `json:"grammarPointsLearned"`
	Level                Level   `json:"level"`
	XP                   int     `json:"xp"`
}
