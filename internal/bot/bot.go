package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/nihongobot/internal/ai"
	"github.com/example/nihongobot/internal/catalog"
	"github.com/example/nihongobot/internal/progress"
	"github.com/example/nihongobot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// studySession is a user's ongoing flashcard run over one item class.
type studySession struct {
	class      models.CharacterClass // unset when vocabulary
	vocabulary bool
	keys       []string
	current    int
	correct    int
}

// quizSession is a user's ongoing multiple-choice quiz.
type quizSession struct {
	quizType  string
	questions []ai.QuizQuestion
	current   int
	correct   int
	startedAt time.Time
}

// Bot represents the Telegram application surface. It renders tracker
// snapshots and funnels every mutation through the tracker operations.
type Bot struct {
	api           *tgbotapi.BotAPI
	tracker       *progress.Tracker
	catalog       *catalog.Catalog
	chatGPT       *ai.Client
	config        *Config
	studySessions map[int64]*studySession
	quizSessions  map[int64]*quizSession
	tutorHistory  map[int64][]ai.Message
	// last chat seen, used as the reminder target in this
	// single-user deployment
	reminderChat int64
}

// New creates a new bot instance. aiClient may be nil, in which case
// quizzes fall back to catalog-built questions and tutor chat is off.
func New(token string, tracker *progress.Tracker, cat *catalog.Catalog, aiClient *ai.Client, config *Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %v", err)
	}

	if config == nil {
		config = DefaultConfig()
	}

	return &Bot{
		api:           api,
		tracker:       tracker,
		catalog:       cat,
		chatGPT:       aiClient,
		config:        config,
		studySessions: make(map[int64]*studySession),
		quizSessions:  make(map[int64]*quizSession),
		tutorHistory:  make(map[int64][]ai.Message),
	}, nil
}

// Start begins processing updates until the context is canceled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

// Stop shuts down the update stream.
func (b *Bot) Stop(ctx context.Context) error {
	b.api.StopReceivingUpdates()
	return nil
}

// SendReviewReminder pings the last known chat about due reviews. It
// implements scheduler.Notifier.
func (b *Bot) SendReviewReminder(count int) error {
	if b.reminderChat == 0 {
		// Nobody has talked to the bot yet this session.
		return nil
	}
	text := fmt.Sprintf("⏰ You have %d items due for review. Use /review to see them.", count)
	return b.send(b.reminderChat, text)
}

// send delivers a plain text message.
func (b *Bot) send(chatID int64, text string) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}
	return nil
}

// sendWithKeyboard delivers a message with an inline keyboard.
func (b *Bot) sendWithKeyboard(chatID int64, text string, buttons [][]MenuButton) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(buttons)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}
	return nil
}
