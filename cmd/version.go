package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinypath/shinypath/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the program and catalog format versions",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "shinypath", version)
		fmt.Fprintf(out, "catalog format %s.x.x, built-in catalog %s\n",
			catalog.SupportedMajor, catalog.Default().Version)
	},
}
