package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinypath/shinypath/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate lesson catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lessons (optionally filtered by section or kind)",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")
		kind, _ := cmd.Flags().GetString("kind")

		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}

		var lessons []catalog.Lesson
		for _, l := range cat.Lessons() {
			if section != "" && string(l.Section) != section {
				continue
			}
			if kind != "" && string(l.Kind) != kind {
				continue
			}
			lessons = append(lessons, l)
		}
		if len(lessons) == 0 {
			return fmt.Errorf("no lessons match section %q kind %q", section, kind)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %-40s  %-16s  %s\n", "ID", "Name", "Kind", "Section")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, l := range lessons {
			name := l.Name
			if r := []rune(name); len(r) > 40 {
				name = string(r[:37]) + "..."
			}
			fmt.Fprintf(out, "%-12s  %-40s  %-16s  %s\n",
				l.ID, name, l.Kind.DisplayName(), l.Section)
		}

		fmt.Fprintf(out, "\n%d lessons\n", len(lessons))
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file (defaults to the built-in catalog)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			cat := catalog.Default()
			fmt.Fprintf(out, "built-in catalog %s: %d lessons OK\n", cat.Version, len(cat.Lessons()))
			return nil
		}

		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			var verr *catalog.ValidationError
			if errors.As(err, &verr) {
				for _, p := range verr.Problems {
					fmt.Fprintln(out, "  -", p)
				}
			}
			return err
		}
		fmt.Fprintf(out, "%s %s: %d lessons OK\n", args[0], cat.Version, len(cat.Lessons()))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the built-in catalog as JSON (a starting point for custom catalogs)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(catalog.DefaultJSON())
		return err
	},
}

func init() {
	catalogListCmd.Flags().String("section", "", "Filter by section id (e.g. variables)")
	catalogListCmd.Flags().String("kind", "", "Filter by kind (content, question, code-error)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
