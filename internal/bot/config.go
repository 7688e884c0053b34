package bot

// Config represents the configuration for the bot
type Config struct {
	// Number of items presented per study session
	ItemsPerSession int
	// Number of questions per quiz
	QuestionsPerQuiz int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *Config {
	return &Config{
		ItemsPerSession:  10,
		QuestionsPerQuiz: 5,
	}
}
