package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinypath/shinypath/internal/config"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run with per-run overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		lives, _ := cmd.Flags().GetInt("lives")
		if lives < 0 || lives > config.MaxLivesLimit {
			return fmt.Errorf("--lives must be between 1 and %d", config.MaxLivesLimit)
		}
		mute, _ := cmd.Flags().GetBool("mute")
		noJournal, _ := cmd.Flags().GetBool("no-journal")

		return runAppWith(cmd, runOptions{
			maxLives:  lives,
			mute:      mute,
			noJournal: noJournal,
		})
	},
}

func init() {
	playCmd.Flags().Int("lives", 0, "Lives for this run (default from SHINYPATH_MAX_LIVES)")
	playCmd.Flags().Bool("mute", false, "Disable the terminal bell")
	playCmd.Flags().Bool("no-journal", false, "Do not record this run")
}
