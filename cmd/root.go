package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinypath/shinypath/internal/catalog"
	"github.com/shinypath/shinypath/internal/config"
	"github.com/shinypath/shinypath/internal/logging"
	"github.com/shinypath/shinypath/internal/store"
)

var (
	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "shinypath",
	Short: "Clean code learning path in your terminal",
	Long: "Shiny Path - walk a path of islands that teach clean code, " +
		"earning points, streaks and achievements while keeping your lives.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logCloser, err = logging.Setup(cfg)
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		logrus.Debugf("command %s", cmd.CommandPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite journal file (overrides SHINYPATH_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a lesson catalog JSON file (overrides SHINYPATH_CATALOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SHINYPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveCatalog loads the catalog from --catalog, then SHINYPATH_CATALOG,
// falling back to the built-in path.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" && cfg != nil {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logrus.Infof("loaded catalog %s (%s)", path, cat.Version)
	return cat, nil
}

// openStore opens the journal at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
