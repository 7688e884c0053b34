package scheduler

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/example/nihongobot/internal/progress"
	"github.com/example/nihongobot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	calls     int
	lastCount int
	err       error
}

func (n *stubNotifier) SendReviewReminder(count int) error {
	n.calls++
	n.lastCount = count
	return n.err
}

// seededStore serves one pre-built progress record.
type seededStore struct {
	data []byte
}

func (s *seededStore) Load(key string) ([]byte, error) { return s.data, nil }
func (s *seededStore) Save(key string, data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}
func (s *seededStore) Delete(key string) error {
	s.data = nil
	return nil
}

// trackerWithDueItems builds a tracker whose persisted record already
// holds items past their review dates.
func trackerWithDueItems(t *testing.T) *progress.Tracker {
	t.Helper()
	past := time.Now().Add(-48 * time.Hour)
	record := models.UserProgress{
		UserID: "default_user",
		Hiragana: []models.CharacterProgress{
			{Character: "あ", Mastery: 30, NextReview: past},
			{Character: "い", Mastery: 30, NextReview: past},
		},
		Katakana: []models.CharacterProgress{
			{Character: "ア", Mastery: 30, NextReview: past},
		},
		Vocabulary: []models.VocabularyProgress{
			{Word: "みず", Mastery: 30, NextReview: past},
		},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	return progress.New(&seededStore{data: data})
}

func TestDueCount(t *testing.T) {
	t.Run("empty tracker has nothing due", func(t *testing.T) {
		s := New(progress.New(nil), &stubNotifier{})
		assert.Zero(t, s.DueCount())
	})

	t.Run("counts every populated ledger", func(t *testing.T) {
		s := New(trackerWithDueItems(t), &stubNotifier{})
		assert.Equal(t, 4, s.DueCount())
	})
}

func TestRunManualCheck(t *testing.T) {
	t.Run("skips the reminder when nothing is due", func(t *testing.T) {
		notifier := &stubNotifier{}
		s := New(progress.New(nil), notifier)
		require.NoError(t, s.RunManualCheck())
		assert.Zero(t, notifier.calls)
	})

	t.Run("sends the due count", func(t *testing.T) {
		notifier := &stubNotifier{}
		s := New(trackerWithDueItems(t), notifier)
		require.NoError(t, s.RunManualCheck())
		assert.Equal(t, 1, notifier.calls)
		assert.Equal(t, 4, notifier.lastCount)
	})

	t.Run("surfaces notifier failures", func(t *testing.T) {
		notifier := &stubNotifier{err: errors.New("chat unavailable")}
		s := New(trackerWithDueItems(t), notifier)
		require.Error(t, s.RunManualCheck())
	})
}

func TestNotificationWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart int
		wantEnd   int
	}{
		{"defaults", "", "", DefaultNotificationStartHour, DefaultNotificationEndHour},
		{"custom window", "9", "18", 9, 18},
		{"invalid values fall back", "not-a-number", "25", DefaultNotificationStartHour, DefaultNotificationEndHour},
		{"negative start falls back", "-1", "18", DefaultNotificationStartHour, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NOTIFICATION_START_HOUR", tt.start)
			t.Setenv("NOTIFICATION_END_HOUR", tt.end)
			start, end := notificationWindow()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
