package progress

import "github.com/example/nihongobot/pkg/models"

// learnedThreshold is the mastery at which an item counts as learned.
const learnedThreshold = 70

// Level boundaries on charactersLearned + vocabularyLearned.
const (
	intermediateAt = 100
	advancedAt     = 200
)

// updateStats rederives every statistic that is a pure function of the
// ledgers: learned counts and level. XP and study time are accumulators
// and are never touched here, only by their own write paths.
func (t *Tracker) updateStats() {
	p := t.progress

	learned := 0
	for _, ledger := range [][]models.CharacterProgress{p.Hiragana, p.Katakana, p.Kanji} {
		for i := range ledger {
			if ledger[i].Mastery >= learnedThreshold {
				learned++
			}
		}
	}
	p.Stats.CharactersLearned = learned

	vocab := 0
	for i := range p.Vocabulary {
		if p.Vocabulary[i].Mastery >= learnedThreshold {
			vocab++
		}
	}
	p.Stats.VocabularyLearned = vocab

	grammar := 0
	for i := range p.Grammar {
		if p.Grammar[i].Mastery >= learnedThreshold {
			grammar++
		}
	}
	p.Stats.GrammarPointsLearned = grammar

	totalMastery := p.Stats.CharactersLearned + p.Stats.VocabularyLearned
	switch {
	case totalMastery >= advancedAt:
		p.Stats.Level = models.LevelAdvanced
	case totalMastery >= intermediateAt:
		p.Stats.Level = models.LevelIntermediate
	default:
		p.Stats.Level = models.LevelBeginner
	}

	p.LastStudied = t.now()
}
