package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinypath/shinypath/internal/app"
	"github.com/shinypath/shinypath/internal/feedback"
	"github.com/shinypath/shinypath/internal/session"
	"github.com/shinypath/shinypath/internal/store"
)

// runOptions override configuration for a single run.
type runOptions struct {
	maxLives  int
	mute      bool
	noJournal bool
}

// runApp opens the journal, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return runAppWith(cmd, runOptions{})
}

func runAppWith(cmd *cobra.Command, opts runOptions) error {
	ctx := cmd.Context()

	cat, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	maxLives := cfg.MaxLives
	if opts.maxLives > 0 {
		maxLives = opts.maxLives
	}
	sessOpts := []session.Option{
		session.WithMaxLives(maxLives),
		session.WithFeedback(feedback.New(cfg.Sound && !opts.mute)),
	}

	var journal store.EventRepo
	if !opts.noJournal {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		journal = st.EventRepo()
		sessOpts = append(sessOpts, session.WithJournal(journal))
	}

	sess := session.New(cat, sessOpts...)
	runErr := app.Run(sess, journal)

	if err := sess.Close(ctx); err != nil {
		logrus.WithError(err).Warn("close session")
	}
	return runErr
}
