package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a stub chat-completions endpoint
// that always answers with content.
func newTestClient(t *testing.T, content string) (*Client, *ChatRequest) {
	t.Helper()

	var captured ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		response := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)

	return &Client{
		apiKey:      "test-key",
		apiURL:      server.URL,
		model:       "test-model",
		maxTokens:   1000,
		temperature: 0.7,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}, &captured
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv("AI_API_KEY", "")
	_, err := New()
	require.Error(t, err)

	t.Setenv("AI_API_KEY", "key")
	t.Setenv("AI_API_URL", "")
	t.Setenv("AI_MODEL", "")
	client, err := New()
	require.NoError(t, err)
	assert.Equal(t, defaultAPIURL, client.apiURL)
	assert.Equal(t, "gpt-4o-mini", client.model)
}

func TestChatWithTutor(t *testing.T) {
	client, captured := newTestClient(t, "  こんにちは! Let's study.  ")

	history := make([]Message, 0, 12)
	for i := 0; i < 12; i++ {
		history = append(history, Message{Role: "user", Content: "older"})
	}

	answer, err := client.ChatWithTutor("How do I say hello?", history)
	require.NoError(t, err)
	assert.Equal(t, "こんにちは! Let's study.", answer, "responses are trimmed")

	// system prompt + last 10 history messages + user message
	require.Len(t, captured.Messages, 12)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "How do I say hello?", captured.Messages[11].Content)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	t.Cleanup(server.Close)

	client := &Client{apiKey: "k", apiURL: server.URL, httpClient: http.DefaultClient}
	_, err := client.complete([]Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestTranslate(t *testing.T) {
	t.Run("parses the JSON envelope", func(t *testing.T) {
		client, _ := newTestClient(t, `{"japanese": "みず", "english": "water", "romaji": "mizu", "confidence": 95}`)

		result, err := client.Translate("water", "en", "ja")
		require.NoError(t, err)
		assert.Equal(t, "みず", result.Japanese)
		assert.Equal(t, "mizu", result.Romaji)
		assert.Equal(t, 95, result.Confidence)
	})

	t.Run("falls back on free-form answers", func(t *testing.T) {
		client, _ := newTestClient(t, "water")

		result, err := client.Translate("みず", "ja", "en")
		require.NoError(t, err)
		assert.Equal(t, "みず", result.Japanese)
		assert.Equal(t, "water", result.English)
		assert.Equal(t, 70, result.Confidence)
	})

	t.Run("missing confidence defaults", func(t *testing.T) {
		client, _ := newTestClient(t, `{"japanese": "みず", "english": "water"}`)

		result, err := client.Translate("water", "en", "ja")
		require.NoError(t, err)
		assert.Equal(t, 80, result.Confidence)
	})
}

func TestGenerateQuiz(t *testing.T) {
	t.Run("parses generated questions", func(t *testing.T) {
		client, captured := newTestClient(t, `[{"question": "What is あ?", "options": ["a", "i", "u", "e"], "correctAnswer": 0, "explanation": "", "type": "hiragana"}]`)

		questions, err := client.GenerateQuiz("hiragana", "easy", 5)
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "What is あ?", questions[0].Question)
		assert.Contains(t, captured.Messages[0].Content, "5 multiple choice questions")
	})

	t.Run("falls back on unparseable output", func(t *testing.T) {
		client, _ := newTestClient(t, "Sorry, I cannot do that.")

		questions, err := client.GenerateQuiz("vocabulary", "easy", 5)
		require.NoError(t, err)
		require.NotEmpty(t, questions)
		assert.Equal(t, "vocabulary", questions[0].Type)
	})

	t.Run("falls back on transport failure", func(t *testing.T) {
		client := &Client{
			apiKey:     "k",
			apiURL:     "http://127.0.0.1:1",
			httpClient: &http.Client{Timeout: time.Second},
		}
		questions, err := client.GenerateQuiz("hiragana", "easy", 5)
		require.NoError(t, err)
		assert.NotEmpty(t, questions)
	})

	t.Run("unknown type falls back to hiragana", func(t *testing.T) {
		questions := fallbackQuestions("kanji")
		require.NotEmpty(t, questions)
		assert.Equal(t, "hiragana", questions[0].Type)
	})
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Japanese", languageName("ja"))
	assert.Equal(t, "English", languageName("en"))
	assert.Equal(t, "English", languageName("anything"))
}
