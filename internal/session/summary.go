package session

import (
	"time"

	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/progress"
)

// Summary holds the data displayed on the game-over panel.
type Summary struct {
	Duration     time.Duration
	Points       int
	MaxStreak    int
	Attempts     int
	Correct      int
	Accuracy     int
	Completed    int
	Total        int
	Achievements []gamification.Achievement
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(s *Session) *Summary {
	st := s.engine.State()

	completed := 0
	nodes := s.tracker.Nodes()
	for _, n := range nodes {
		if n.Status == progress.StatusCompleted {
			completed++
		}
	}

	return &Summary{
		Duration:     s.Elapsed(),
		Points:       st.Points,
		MaxStreak:    st.MaxStreak,
		Attempts:     st.TotalAttempts,
		Correct:      st.TotalCorrect,
		Accuracy:     s.engine.Accuracy(),
		Completed:    completed,
		Total:        len(nodes),
		Achievements: st.Achievements,
	}
}
