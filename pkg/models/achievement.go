package models

import "time"

// Achievement is an unlocked badge. The ID doubles as the idempotency
// key: a rule never unlocks twice for the same user.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	Category    string    `json:"category"` // e.g. "learning", "streak", "quiz", "special"
}
