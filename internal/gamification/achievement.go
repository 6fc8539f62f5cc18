package gamification

// Achievement identifies a one-time badge earned during a session.
type Achievement string

const (
	StreakMaster  Achievement = "Streak Master"
	SharpShooter  Achievement = "Sharp Shooter"
	CodeInspector Achievement = "Code Inspector"
)

// AllAchievements returns all achievements in display order.
func AllAchievements() []Achievement {
	return []Achievement{StreakMaster, SharpShooter, CodeInspector}
}

// DisplayName returns a human-readable label for the achievement.
func (a Achievement) DisplayName() string {
	switch a {
	case StreakMaster:
		return "Streak Master"
	case SharpShooter:
		return "Sharp Shooter"
	case CodeInspector:
		return "Code Inspector"
	default:
		return string(a)
	}
}

// Icon returns the display icon for the achievement.
func (a Achievement) Icon() string {
	switch a {
	case StreakMaster:
		return "🔥"
	case SharpShooter:
		return "🎯"
	case CodeInspector:
		return "🔍"
	default:
		return "✦"
	}
}

// Description explains how the achievement is earned.
func (a Achievement) Description() string {
	switch a {
	case StreakMaster:
		return "Answer 3 lessons in a row without a mistake"
	case SharpShooter:
		return "Get 5 graded answers right"
	case CodeInspector:
		return "Reach 10 correct answers on a spot-the-error lesson"
	default:
		return ""
	}
}

// Label returns the icon and display name together.
func (a Achievement) Label() string {
	return a.Icon() + " " + a.DisplayName()
}
