package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/nihongobot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInContent(t *testing.T) {
	c := New()

	assert.Len(t, c.Hiragana, 45)
	assert.Len(t, c.Katakana, 45)
	assert.NotEmpty(t, c.Kanji)
	assert.NotEmpty(t, c.Vocabulary)
	assert.NotEmpty(t, c.Grammar)

	assert.Equal(t, "あ", c.Hiragana[0].Character)
	assert.Equal(t, "a", c.Hiragana[0].Romaji)
	assert.Equal(t, "ア", c.Katakana[0].Character)
}

func TestCharacterKeys(t *testing.T) {
	c := New()

	hira := c.CharacterKeys(models.Hiragana)
	require.Len(t, hira, len(c.Hiragana))
	assert.Equal(t, "あ", hira[0])

	kanji := c.CharacterKeys(models.Kanji)
	require.Len(t, kanji, len(c.Kanji))
	assert.Equal(t, c.Kanji[0].Character, kanji[0])

	assert.Nil(t, c.CharacterKeys("romaji"))
}

func TestRomajiLookup(t *testing.T) {
	c := New()

	assert.Equal(t, "a", c.Romaji(models.Hiragana, "あ"))
	assert.Equal(t, "ka", c.Romaji(models.Katakana, "カ"))
	assert.NotEmpty(t, c.Romaji(models.Kanji, "人"))
	assert.Empty(t, c.Romaji(models.Hiragana, "missing"))
	assert.Empty(t, c.Romaji("romaji", "あ"))
}

func TestWordLookup(t *testing.T) {
	c := New()

	entry := c.Word("こんにちは")
	require.NotNil(t, entry)
	assert.Equal(t, "konnichiwa", entry.Romaji)
	assert.Nil(t, c.Word("missing"))

	keys := c.VocabularyKeys()
	require.Len(t, keys, len(c.Vocabulary))
	assert.Equal(t, c.Vocabulary[0].Japanese, keys[0])
}

func TestImportVocabularyCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.csv")
	content := "word,romaji,english,category,jlpt\n" +
		"ねこ,neko,cat,animals,5\n" +
		"こんにちは,konnichiwa,good day,greetings,5\n" +
		",missing,no word,misc,5\n" +
		"いぬ,inu,dog,animals,not-a-number\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c := New()
	before := len(c.Vocabulary)

	config := DefaultImportConfig()
	config.FilePath = path
	result, err := c.ImportVocabulary(config)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Updated, "existing words are updated in place")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "word cannot be empty")

	assert.Len(t, c.Vocabulary, before+2)

	updated := c.Word("こんにちは")
	require.NotNil(t, updated)
	assert.Equal(t, "good day", updated.English)

	dog := c.Word("いぬ")
	require.NotNil(t, dog)
	assert.Equal(t, 5, dog.JLPT, "unparseable JLPT falls back to the default")

	cat := c.Word("ねこ")
	require.NotNil(t, cat)
	assert.Equal(t, "animals", cat.Category)
}

func TestImportVocabularyMissingFile(t *testing.T) {
	c := New()
	config := DefaultImportConfig()
	config.FilePath = "no-such-file.csv"
	_, err := c.ImportVocabulary(config)
	require.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"a", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, columnToIndex(tt.column), "column %s", tt.column)
	}
}
