package bot

import (
	"testing"

	"github.com/example/nihongobot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		arg  string
		want models.CharacterClass
		ok   bool
	}{
		{"", models.Hiragana, true},
		{"hiragana", models.Hiragana, true},
		{"KATAKANA", models.Katakana, true},
		{"Kanji", models.Kanji, true},
		{"romaji", "", false},
	}
	for _, tt := range tests {
		t.Run("arg "+tt.arg, func(t *testing.T) {
			class, ok := parseClass(tt.arg)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, class)
		})
	}
}

func TestStudyKeys(t *testing.T) {
	tests := []struct {
		name  string
		due   []string
		all   []string
		limit int
		want  []string
	}{
		{
			name:  "due items come first",
			due:   []string{"か", "さ"},
			all:   []string{"あ", "い", "か"},
			limit: 10,
			want:  []string{"か", "さ", "あ", "い"},
		},
		{
			name:  "limit caps the session",
			due:   []string{"か"},
			all:   []string{"あ", "い", "う"},
			limit: 2,
			want:  []string{"か", "あ"},
		},
		{
			name:  "due alone can fill the session",
			due:   []string{"あ", "い", "う"},
			all:   nil,
			limit: 2,
			want:  []string{"あ", "い"},
		},
		{
			name:  "duplicates collapse",
			due:   []string{"あ", "あ"},
			all:   []string{"あ"},
			limit: 10,
			want:  []string{"あ"},
		},
		{
			name:  "empty inputs yield an empty session",
			due:   nil,
			all:   nil,
			limit: 10,
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, studyKeys(tt.due, tt.all, tt.limit))
		})
	}
}

func TestContainsJapanese(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"hello", false},
		{"こんにちは", true},
		{"カタカナ", true},
		{"日本語", true},
		{"say こんにちは to everyone", true},
		{"", false},
		{"123 abc!", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsJapanese(tt.text), "text %q", tt.text)
	}
}
