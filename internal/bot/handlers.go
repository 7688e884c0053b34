package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/example/nihongobot/internal/ai"
	"github.com/example/nihongobot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.reminderChat = update.Message.Chat.ID
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		if update.CallbackQuery.Message != nil {
			b.reminderChat = update.CallbackQuery.Message.Chat.ID
		}
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	// Plain text goes to the tutor when the AI client is configured.
	if b.chatGPT != nil && strings.TrimSpace(message.Text) != "" {
		b.handleTutor(message.Chat.ID, message.Text)
		return
	}

	if err := b.send(message.Chat.ID, "Use /help to see what I can do."); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	var err error
	switch message.Command() {
	case "start", "help":
		err = b.send(chatID, helpText)
	case "study":
		class, ok := parseClass(args)
		if !ok && args != "" {
			err = b.send(chatID, "Unknown class. Try /study hiragana, /study katakana or /study kanji.")
			break
		}
		b.startStudy(chatID, class, false)
	case "vocab":
		b.startStudy(chatID, "", true)
	case "quiz":
		quizType := args
		if quizType == "" {
			quizType = "hiragana"
		}
		b.startQuiz(chatID, quizType)
	case "progress":
		err = b.send(chatID, formatProgress(b.tracker.Progress()))
	case "review":
		err = b.send(chatID, b.formatReview())
	case "tutor":
		if args == "" {
			err = b.send(chatID, "Ask me anything about Japanese: /tutor how does は work?")
			break
		}
		b.handleTutor(chatID, args)
	case "translate":
		if args == "" {
			err = b.send(chatID, "Give me a text to translate: /translate good morning")
			break
		}
		b.handleTranslate(chatID, args)
	case "reset":
		if args != "confirm" {
			err = b.send(chatID, "This erases all study progress. Send /reset confirm if you are sure.")
			break
		}
		b.tracker.Reset()
		err = b.send(chatID, "Progress has been reset. がんばって!")
	default:
		err = b.send(chatID, "Unknown command. Use /help to see what I can do.")
	}

	if err != nil {
		log.Printf("Error handling /%s: %v", message.Command(), err)
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	// Acknowledge the button press so the client stops spinning.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("Error acknowledging callback: %v", err)
	}
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	switch {
	case callback.Data == "study:correct":
		b.handleStudyAnswer(chatID, true)
	case callback.Data == "study:incorrect":
		b.handleStudyAnswer(chatID, false)
	case strings.HasPrefix(callback.Data, "quiz:"):
		idx, err := strconv.Atoi(strings.TrimPrefix(callback.Data, "quiz:"))
		if err != nil {
			return
		}
		b.handleQuizAnswer(chatID, idx)
	}
}

// parseClass maps a command argument to a character class, defaulting
// to hiragana on empty input.
func parseClass(arg string) (models.CharacterClass, bool) {
	switch strings.ToLower(arg) {
	case "", "hiragana":
		return models.Hiragana, true
	case "katakana":
		return models.Katakana, true
	case "kanji":
		return models.Kanji, true
	}
	return "", false
}

// startStudy builds a flashcard session: due items first, then fresh
// catalog items, up to the configured session size.
func (b *Bot) startStudy(chatID int64, class models.CharacterClass, vocabulary bool) {
	var due, all []string
	if vocabulary {
		due = b.tracker.VocabularyForReview()
		all = b.catalog.VocabularyKeys()
	} else {
		due = b.tracker.CharactersForReview(class)
		all = b.catalog.CharacterKeys(class)
	}

	keys := studyKeys(due, all, b.config.ItemsPerSession)
	if len(keys) == 0 {
		if err := b.send(chatID, "Nothing to study right now — check back later!"); err != nil {
			log.Printf("Error sending message: %v", err)
		}
		return
	}

	b.studySessions[chatID] = &studySession{class: class, vocabulary: vocabulary, keys: keys}
	b.sendStudyItem(chatID)
}

// studyKeys merges due keys with the remaining catalog order, capped
// at limit. Due items come first so reviews are never starved.
func studyKeys(due, all []string, limit int) []string {
	seen := make(map[string]bool, len(due))
	keys := make([]string, 0, limit)
	for _, k := range due {
		if len(keys) == limit {
			return keys
		}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, k := range all {
		if len(keys) == limit {
			return keys
		}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

func (b *Bot) sendStudyItem(chatID int64) {
	session, ok := b.studySessions[chatID]
	if !ok {
		return
	}
	if session.current >= len(session.keys) {
		delete(b.studySessions, chatID)
		text := fmt.Sprintf("Session complete! %d/%d answered correctly. Use /progress to see where you stand.",
			session.correct, len(session.keys))
		if err := b.send(chatID, text); err != nil {
			log.Printf("Error sending message: %v", err)
		}
		return
	}

	key := session.keys[session.current]
	text := fmt.Sprintf("(%d/%d)  %s\n\nSay the reading out loud, then grade yourself.",
		session.current+1, len(session.keys), key)
	buttons := [][]MenuButton{{
		{Text: "✅ I knew it", CallbackData: "study:correct"},
		{Text: "❌ I didn't", CallbackData: "study:incorrect"},
	}}
	if err := b.sendWithKeyboard(chatID, text, buttons); err != nil {
		log.Printf("Error sending study item: %v", err)
	}
}

func (b *Bot) handleStudyAnswer(chatID int64, correct bool) {
	session, ok := b.studySessions[chatID]
	if !ok || session.current >= len(session.keys) {
		return
	}
	key := session.keys[session.current]

	var reveal string
	if session.vocabulary {
		b.tracker.UpdateVocabularyProgress(key, correct)
		if entry := b.catalog.Word(key); entry != nil {
			reveal = fmt.Sprintf("%s (%s) — %s", key, entry.Romaji, entry.English)
		} else {
			reveal = key
		}
	} else {
		if err := b.tracker.UpdateCharacterProgress(session.class, key, correct); err != nil {
			log.Printf("Error updating character progress: %v", err)
		}
		reveal = fmt.Sprintf("%s — %s", key, b.catalog.Romaji(session.class, key))
		reveal += fmt.Sprintf(" (mastery %d)", b.tracker.MasteryLevel(session.class, key))
	}

	if correct {
		session.correct++
	}
	session.current++

	mark := "✅"
	if !correct {
		mark = "❌"
	}
	if err := b.send(chatID, fmt.Sprintf("%s %s", mark, reveal)); err != nil {
		log.Printf("Error sending message: %v", err)
	}
	b.sendStudyItem(chatID)
}

func (b *Bot) startQuiz(chatID int64, quizType string) {
	questions := b.quizQuestions(quizType)
	if len(questions) == 0 {
		if err := b.send(chatID, "No quiz questions available for "+quizType+"."); err != nil {
			log.Printf("Error sending message: %v", err)
		}
		return
	}

	b.quizSessions[chatID] = &quizSession{
		quizType:  quizType,
		questions: questions,
		startedAt: time.Now(),
	}
	b.sendQuizQuestion(chatID)
}

func (b *Bot) sendQuizQuestion(chatID int64) {
	session, ok := b.quizSessions[chatID]
	if !ok || session.current >= len(session.questions) {
		return
	}
	q := session.questions[session.current]

	text := fmt.Sprintf("Question %d/%d\n\n%s", session.current+1, len(session.questions), q.Question)
	var buttons [][]MenuButton
	for i, option := range q.Options {
		buttons = append(buttons, []MenuButton{{
			Text:         option,
			CallbackData: "quiz:" + strconv.Itoa(i),
		}})
	}
	if err := b.sendWithKeyboard(chatID, text, buttons); err != nil {
		log.Printf("Error sending quiz question: %v", err)
	}
}

func (b *Bot) handleQuizAnswer(chatID int64, optionIdx int) {
	session, ok := b.quizSessions[chatID]
	if !ok || session.current >= len(session.questions) {
		return
	}
	q := session.questions[session.current]

	var feedback string
	if optionIdx == q.CorrectAnswer {
		session.correct++
		feedback = "✅ Correct!"
	} else if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options) {
		feedback = fmt.Sprintf("❌ The answer was %q.", q.Options[q.CorrectAnswer])
	}
	if q.Explanation != "" {
		feedback += "\n" + q.Explanation
	}
	if err := b.send(chatID, feedback); err != nil {
		log.Printf("Error sending message: %v", err)
	}

	session.current++
	if session.current < len(session.questions) {
		b.sendQuizQuestion(chatID)
		return
	}
	b.finishQuiz(chatID, session)
}

func (b *Bot) finishQuiz(chatID int64, session *quizSession) {
	delete(b.quizSessions, chatID)

	total := len(session.questions)
	score := scorePercent(session.correct, total)
	timeSpent := int(time.Since(session.startedAt).Seconds())

	before := b.tracker.Progress().Achievements
	if err := b.tracker.RecordQuizResult(session.quizType, score, total, timeSpent); err != nil {
		log.Printf("Error recording quiz result: %v", err)
		return
	}
	after := b.tracker.Progress()

	text := fmt.Sprintf("Quiz finished! Score: %d%% (%d/%d correct), +%d XP.",
		score, session.correct, total, score)
	for _, a := range after.Achievements[len(before):] {
		text += fmt.Sprintf("\n%s Achievement unlocked: %s — %s", a.Icon, a.Name, a.Description)
	}
	if err := b.send(chatID, text); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (b *Bot) handleTutor(chatID int64, text string) {
	if b.chatGPT == nil {
		if err := b.send(chatID, "The AI tutor is not configured."); err != nil {
			log.Printf("Error sending message: %v", err)
		}
		return
	}

	history := b.tutorHistory[chatID]
	reply, err := b.chatGPT.ChatWithTutor(text, history)
	if err != nil {
		log.Printf("Tutor error: %v", err)
		reply = "I cannot respond right now. Please try again in a moment."
	} else {
		b.tutorHistory[chatID] = append(history,
			ai.Message{Role: "user", Content: text},
			ai.Message{Role: "assistant", Content: reply},
		)
	}
	if err := b.send(chatID, reply); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (b *Bot) handleTranslate(chatID int64, text string) {
	if b.chatGPT == nil {
		if err := b.send(chatID, "Translation is not configured."); err != nil {
			log.Printf("Error sending message: %v", err)
		}
		return
	}

	from, to := "en", "ja"
	if containsJapanese(text) {
		from, to = "ja", "en"
	}
	result, err := b.chatGPT.Translate(text, from, to)
	if err != nil {
		log.Printf("Translation error: %v", err)
		if err := b.send(chatID, "Translation failed. Please try again."); err != nil {
			log.Printf("Error sending message: %v", err)
		}
		return
	}

	reply := fmt.Sprintf("🇯🇵 %s\n🇬🇧 %s", result.Japanese, result.English)
	if result.Romaji != "" {
		reply += "\n🔤 " + result.Romaji
	}
	if err := b.send(chatID, reply); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// containsJapanese reports whether the text holds kana or kanji runes.
func containsJapanese(text string) bool {
	for _, r := range text {
		if (r >= 0x3040 && r <= 0x30FF) || (r >= 0x4E00 && r <= 0x9FFF) {
			return true
		}
	}
	return false
}

const helpText = `こんにちは! I help you study Japanese.

/study [hiragana|katakana|kanji] — flashcard session
/vocab — vocabulary flashcards
/quiz [type] — take a quiz (hiragana, katakana, kanji, vocabulary)
/review — see what is due for review
/progress — your statistics and achievements
/tutor <question> — ask the AI tutor
/translate <text> — translate between English and Japanese
/reset confirm — erase all progress`
