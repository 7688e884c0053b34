package progress

import "time"

// Review intervals in days per mastery band. Thresholds apply to the
// post-update mastery value.
const (
	intervalDefault  = 1
	intervalFamiliar = 2 // mastery >= 40
	intervalStrong   = 3 // mastery >= 60
	intervalMastered = 7 // mastery >= 80
)

// nextReviewAt schedules the next review from the current mastery:
// stronger items are pushed further out.
func nextReviewAt(mastery int, now time.Time) time.Time {
	days := intervalDefault
	switch {
	case mastery >= 80:
		days = intervalMastered
	case mastery >= 60:
		days = intervalStrong
	case mastery >= 40:
		days = intervalFamiliar
	}
	return now.AddDate(0, 0, days)
}
