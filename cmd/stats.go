package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shinypath/shinypath/internal/gamification"
	"github.com/shinypath/shinypath/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, _ := cmd.Flags().GetInt("recent")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.EventRepo()
		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sessions:     %d\n", stats.Sessions)
		fmt.Fprintf(out, "Answers:      %d (%d correct, %d%% accuracy)\n",
			stats.Attempts, stats.Correct, gamification.Accuracy(stats.Correct, stats.Attempts))
		fmt.Fprintf(out, "Best points:  %d\n", stats.BestPoints)
		fmt.Fprintf(out, "Best streak:  %d\n", stats.BestStreak)

		if len(stats.Achievements) > 0 {
			fmt.Fprintln(out, "\nAchievements")
			for _, a := range gamification.AllAchievements() {
				if n := stats.Achievements[string(a)]; n > 0 {
					fmt.Fprintf(out, "  %-22s %d\n", a.Label(), n)
				}
			}
		}

		if len(stats.LessonsMissed) > 0 {
			fmt.Fprintln(out, "\nMost missed")
			ids := make([]string, 0, len(stats.LessonsMissed))
			for id := range stats.LessonsMissed {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool {
				a, b := stats.LessonsMissed[ids[i]], stats.LessonsMissed[ids[j]]
				if a != b {
					return a > b
				}
				return ids[i] < ids[j]
			})
			for _, id := range ids[:min(5, len(ids))] {
				fmt.Fprintf(out, "  %-12s %d\n", id, stats.LessonsMissed[id])
			}
		}

		if recent <= 0 {
			return nil
		}
		sessions, err := repo.RecentSessions(cmd.Context(), store.QueryOpts{Limit: recent})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Fprintln(out, "\nRecent sessions")
			for _, s := range sessions {
				fmt.Fprintf(out, "  %s  %-10s  %4d pts  streak %-3d  %3d%%\n",
					s.Timestamp.Format("2006-01-02 15:04"), s.Action, s.Points, s.MaxStreak,
					gamification.Accuracy(s.Correct, s.Attempts))
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 5, "Number of recent sessions to show (0 to hide)")
}
