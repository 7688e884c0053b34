package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/nihongobot/internal/progress"
	"github.com/example/nihongobot/pkg/models"
	"github.com/go-co-op/gocron"
)

// Default notification window (hours of day, inclusive).
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier interface for sending review reminders
type Notifier interface {
	SendReviewReminder(count int) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	tracker   *progress.Tracker
	notifier  Notifier
}

// New creates a new scheduler instance
func New(tracker *progress.Tracker, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		tracker:   tracker,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for due reviews
	s.scheduler.Every(1).Hour().Do(s.checkDueReviews)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkDueReviews sends a reminder when items are due and the current
// hour falls inside the notification window.
func (s *Scheduler) checkDueReviews() {
	currentHour := time.Now().Hour()
	startHour, endHour := notificationWindow()

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminder",
			currentHour, startHour, endHour)
		return
	}

	count := s.DueCount()
	if count == 0 {
		return
	}

	if err := s.notifier.SendReviewReminder(count); err != nil {
		log.Printf("Error sending review reminder: %v", err)
	}
}

// DueCount returns the number of items due for review across every
// populated ledger.
func (s *Scheduler) DueCount() int {
	count := 0
	for _, class := range []models.CharacterClass{models.Hiragana, models.Katakana, models.Kanji} {
		count += len(s.tracker.CharactersForReview(class))
	}
	count += len(s.tracker.VocabularyForReview())
	return count
}

// RunManualCheck forces a reminder check regardless of the window.
func (s *Scheduler) RunManualCheck() error {
	count := s.DueCount()
	if count == 0 {
		return nil
	}
	return s.notifier.SendReviewReminder(count)
}

// notificationWindow reads the reminder window from the environment,
// falling back to the defaults on missing or invalid values.
func notificationWindow() (int, int) {
	startHour := DefaultNotificationStartHour
	endHour := DefaultNotificationEndHour

	if startHourStr := os.Getenv("NOTIFICATION_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if endHourStr := os.Getenv("NOTIFICATION_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	return startHour, endHour
}
