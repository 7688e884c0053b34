package progress

import "github.com/example/nihongobot/pkg/models"

// achievementRule is one unlockable badge. The id is the idempotency
// key; a rule whose id is already unlocked is never appended again.
type achievementRule struct {
	id          string
	name        string
	description string
	icon        string
	category    string
	unlocked    func(p *models.UserProgress) bool
}

var achievementRules = []achievementRule{
	{
		id:          "first_quiz",
		name:        "First Steps",
		description: "Complete your first quiz",
		icon:        "🌟",
		category:    "quiz",
		unlocked: func(p *models.UserProgress) bool {
			return p.Stats.TotalQuizzes == 1
		},
	},
	{
		id:          "perfect_score",
		name:        "Perfect!",
		description: "Get a perfect score on a quiz",
		icon:        "💯",
		category:    "quiz",
		// Holds only while the history contains exactly one perfect
		// quiz. A second perfect quiz makes the condition false again,
		// so the unlock happens at the first perfect score or not at all.
		unlocked: func(p *models.UserProgress) bool {
			perfect := 0
			for _, q := range p.Quizzes {
				if q.Score == 100 {
					perfect++
				}
			}
			return perfect == 1
		},
	},
}

// checkAchievements appends a badge for every rule whose condition
// holds and whose id is not yet unlocked. Re-running with unchanged
// state never produces duplicates.
func (t *Tracker) checkAchievements() {
	for _, rule := range achievementRules {
		if !rule.unlocked(t.progress) || t.hasAchievement(rule.id) {
			continue
		}
		t.progress.Achievements = append(t.progress.Achievements, models.Achievement{
			ID:          rule.id,
			Name:        rule.name,
			Description: rule.description,
			Icon:        rule.icon,
			UnlockedAt:  t.now(),
			Category:    rule.category,
		})
	}
}

func (t *Tracker) hasAchievement(id string) bool {
	for _, a := range t.progress.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
