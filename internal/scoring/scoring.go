package scoring

import (
	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/gamification"
)

// Point awards.
const (
	ContentPoints        = 5
	QuestionBasePoints   = 10
	QuestionStreakBonus  = 2
	CodeErrorBasePoints  = 15
	CodeErrorStreakBonus = 3
)

// Achievement thresholds.
const (
	StreakMasterStreak   = 3
	SharpShooterCorrect  = 5
	CodeInspectorCorrect = 10
)

// Outcome is the graded result of one answer.
type Outcome struct {
	Correct bool
	Kind    catalog.Kind
}

// GradeQuestion reports whether selected is the correct answer index.
func GradeQuestion(q catalog.Question, selected int) bool {
	return selected == q.CorrectIndex
}

// GradeCodeError reports whether the selected lines are exactly the
// designated error lines. Order and repeats in selected do not matter.
func GradeCodeError(c catalog.CodeError, selected []int) bool {
	want := make(map[int]bool, len(c.ErrorLines))
	for _, l := range c.ErrorLines {
		want[l] = true
	}
	got := make(map[int]bool, len(selected))
	for _, l := range selected {
		if !want[l] {
			return false
		}
		got[l] = true
	}
	return len(got) == len(want)
}

// Award returns the points for a correct answer of kind, given the streak
// before this answer was counted.
func Award(kind catalog.Kind, streakBefore int) int {
	switch kind {
	case catalog.KindContent:
		return ContentPoints
	case catalog.KindQuestion:
		return QuestionBasePoints + streakBefore*QuestionStreakBonus
	case catalog.KindCodeError:
		return CodeErrorBasePoints + streakBefore*CodeErrorStreakBonus
	default:
		return 0
	}
}

// Evaluate pairs an outcome with its award. Incorrect answers earn nothing.
func Evaluate(kind catalog.Kind, correct bool, streakBefore int) (Outcome, int) {
	out := Outcome{Correct: correct, Kind: kind}
	if !correct {
		return out, 0
	}
	return out, Award(kind, streakBefore)
}

// Achievements returns the achievements whose conditions hold in s after a
// correct answer of kind. Callers unlock them idempotently.
func Achievements(kind catalog.Kind, s gamification.State) []gamification.Achievement {
	var out []gamification.Achievement
	if s.Streak >= StreakMasterStreak {
		out = append(out, gamification.StreakMaster)
	}
	if s.TotalCorrect >= SharpShooterCorrect {
		out = append(out, gamification.SharpShooter)
	}
	if kind == catalog.KindCodeError && s.TotalCorrect >= CodeInspectorCorrect {
		out = append(out, gamification.CodeInspector)
	}
	return out
}
