package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultAPIURL = "https://api.openai.com/v1/chat/completions"

// Client talks to the chat-completions API behind the tutor features.
// The progress core never calls it; quiz scores produced from its
// questions flow back through the tracker only.
type Client struct {
	apiKey      string
	apiURL      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// New creates a new tutor API client
func New() (*Client, error) {
	apiKey := os.Getenv("AI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("AI_API_KEY environment variable is not set")
	}

	apiURL := os.Getenv("AI_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Client{
		apiKey:      apiKey,
		apiURL:      apiURL,
		model:       model,
		maxTokens:   1000,
		temperature: 0.7,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Message represents a message in the tutor conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the chat-completions API
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse represents a response from the chat-completions API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// TranslationResult is a parsed translation answer.
type TranslationResult struct {
	Japanese   string `json:"japanese"`
	English    string `json:"english"`
	Romaji     string `json:"romaji,omitempty"`
	Confidence int    `json:"confidence"`
}

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Type          string   `json:"type"`
}

const tutorSystemPrompt = `You are a friendly and knowledgeable Japanese language tutor. Help students learn Japanese characters (Hiragana, Katakana, Kanji), explain grammar concepts clearly with examples, provide pronunciation guidance and answer questions about Japanese culture and language usage. Be patient and encouraging, use romaji when helpful for pronunciation, and break down complex concepts into simple steps.`

// complete sends messages to the API and returns the first choice.
func (c *Client) complete(messages []Message) (string, error) {
	request := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// ChatWithTutor answers a student message in the tutor persona,
// carrying up to the last ten messages of conversation history.
func (c *Client) ChatWithTutor(userMessage string, history []Message) (string, error) {
	messages := []Message{{Role: "system", Content: tutorSystemPrompt}}
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userMessage})

	return c.complete(messages)
}

// Translate translates text between English and Japanese. When the
// model does not return the expected JSON envelope the raw response is
// wrapped with a reduced confidence instead of failing.
func (c *Client) Translate(text, fromLanguage, toLanguage string) (*TranslationResult, error) {
	system := `You are a professional Japanese-English translator. Respond with JSON only: {"japanese": "...", "english": "...", "romaji": "...", "confidence": 95}. If translating to Japanese, always include romaji. Confidence is 1-100.`
	user := fmt.Sprintf("Translate this %s text to %s: %q", languageName(fromLanguage), languageName(toLanguage), text)

	response, err := c.complete([]Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, err
	}

	var result TranslationResult
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		// Fall back to treating the whole response as the translation.
		result = TranslationResult{Confidence: 70}
		if fromLanguage == "ja" {
			result.Japanese = text
			result.English = response
		} else {
			result.English = text
			result.Japanese = response
		}
	}
	if result.Confidence == 0 {
		result.Confidence = 80
	}
	return &result, nil
}

// GenerateQuiz asks the model for multiple-choice questions of the
// given type and difficulty. Built-in fallback questions are returned
// when generation fails or the response cannot be parsed.
func (c *Client) GenerateQuiz(quizType, difficulty string, count int) ([]QuizQuestion, error) {
	system := fmt.Sprintf(`You are a Japanese language quiz generator. Create %d multiple choice questions for %s at %s level. Return ONLY a valid JSON array: [{"question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": 0, "explanation": "...", "type": %q}]. correctAnswer is the index (0-3) of the correct option.`,
		count, quizType, difficulty, quizType)
	user := fmt.Sprintf("Generate %d %s level %s quiz questions.", count, difficulty, quizType)

	response, err := c.complete([]Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return fallbackQuestions(quizType), nil
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(response), &questions); err != nil || len(questions) == 0 {
		return fallbackQuestions(quizType), nil
	}
	return questions, nil
}

// ExplainGrammar explains a grammar point for language learners.
func (c *Client) ExplainGrammar(pattern string) (string, error) {
	system := `You are a Japanese grammar expert. Explain grammar points clearly and simply for language learners: what the point means, when and how to use it, 2-3 clear examples with translations, and common mistakes to avoid.`

	return c.complete([]Message{
		{Role: "system", Content: system},
		{Role: "user", Content: "Please explain the Japanese grammar point: " + pattern},
	})
}

func languageName(code string) string {
	if code == "ja" {
		return "Japanese"
	}
	return "English"
}

// fallbackQuestions returns static questions when generation fails.
func fallbackQuestions(quizType string) []QuizQuestion {
	fallbacks := map[string][]QuizQuestion{
		"hiragana": {
			{
				Question:      "What is the romaji for あ?",
				Options:       []string{"a", "i", "u", "e"},
				CorrectAnswer: 0,
				Explanation:   `あ is pronounced "a" as in "father"`,
				Type:          "hiragana",
			},
			{
				Question:      "What is the romaji for か?",
				Options:       []string{"sa", "ka", "ta", "na"},
				CorrectAnswer: 1,
				Explanation:   `か is pronounced "ka"`,
				Type:          "hiragana",
			},
		},
		"vocabulary": {
			{
				Question:      "What does こんにちは mean?",
				Options:       []string{"goodbye", "hello", "thank you", "excuse me"},
				CorrectAnswer: 1,
				Explanation:   `こんにちは (konnichiwa) means "hello" or "good afternoon"`,
				Type:          "vocabulary",
			},
		},
	}

	if questions, ok := fallbacks[quizType]; ok {
		return questions
	}
	return fallbacks["hiragana"]
}
