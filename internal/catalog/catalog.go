package catalog

import "github.com/example/nihongobot/pkg/models"

// Character is a kana character with its romanization.
type Character struct {
	Character string
	Romaji    string
}

// KanjiEntry is a kanji character with readings and metadata.
type KanjiEntry struct {
	Character string
	Romaji    string
	Meaning   string
	Kunyomi   []string
	Onyomi    []string
	Grade     int
	JLPT      int
	Examples  []string
}

// VocabularyEntry is one word in the study vocabulary.
type VocabularyEntry struct {
	Japanese string
	Romaji   string
	English  string
	Category string
	JLPT     int
}

// GrammarPoint describes one grammar pattern with usage examples.
type GrammarPoint struct {
	Pattern     string
	Meaning     string
	Explanation string
	Level       string
}

// Catalog is the read-only study content the application draws items
// from. The progress ledger identifies items by key only and never
// validates keys against the catalog.
type Catalog struct {
	Hiragana   []Character
	Katakana   []Character
	Kanji      []KanjiEntry
	Vocabulary []VocabularyEntry
	Grammar    []GrammarPoint
}

// New returns a catalog populated with the built-in study content.
// Vocabulary can be extended afterwards via ImportVocabulary.
func New() *Catalog {
	return &Catalog{
		Hiragana:   hiraganaData,
		Katakana:   katakanaData,
		Kanji:      kanjiData,
		Vocabulary: vocabularyData,
		Grammar:    grammarData,
	}
}

// CharacterKeys returns the ordered item keys for a character class.
func (c *Catalog) CharacterKeys(class models.CharacterClass) []string {
	switch class {
	case models.Hiragana:
		return characterKeys(c.Hiragana)
	case models.Katakana:
		return characterKeys(c.Katakana)
	case models.Kanji:
		keys := make([]string, len(c.Kanji))
		for i, k := range c.Kanji {
			keys[i] = k.Character
		}
		return keys
	}
	return nil
}

// VocabularyKeys returns the ordered word keys.
func (c *Catalog) VocabularyKeys() []string {
	keys := make([]string, len(c.Vocabulary))
	for i, v := range c.Vocabulary {
		keys[i] = v.Japanese
	}
	return keys
}

// Romaji returns the romanization for a character key, or "" when the
// key is not in the catalog.
func (c *Catalog) Romaji(class models.CharacterClass, character string) string {
	switch class {
	case models.Hiragana:
		for _, ch := range c.Hiragana {
			if ch.Character == character {
				return ch.Romaji
			}
		}
	case models.Katakana:
		for _, ch := range c.Katakana {
			if ch.Character == character {
				return ch.Romaji
			}
		}
	case models.Kanji:
		for _, k := range c.Kanji {
			if k.Character == character {
				return k.Romaji
			}
		}
	}
	return ""
}

// Word returns the vocabulary entry for a word key, or nil when the
// key is not in the catalog.
func (c *Catalog) Word(japanese string) *VocabularyEntry {
	for i := range c.Vocabulary {
		if c.Vocabulary[i].Japanese == japanese {
			return &c.Vocabulary[i]
		}
	}
	return nil
}

func characterKeys(chars []Character) []string {
	keys := make([]string, len(chars))
	for i, ch := range chars {
		keys[i] = ch.Character
	}
	return keys
}
