package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/logging"
	"github.com/rengarcia/web-quality-skills/internal/skill/scanner"
	"github.com/rengarcia/web-quality-skills/internal/skill/search"
)

var (
	searchJSON        bool
	searchInteractive bool
	searchLicense     string
)

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false,
		"pick a skill with a fuzzy finder")
	searchCmd.Flags().StringVar(&searchLicense, "license", "", "Filter by license")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query] [root]",
	Short: "Search skill packages by name and description",
	Long: `Search the skill packages under a root directory (default ./skills).

The search is case-insensitive and matches against package names and
frontmatter descriptions. Results are sorted by match quality: exact
name matches first, then prefix matches, then substring matches, then
description-only matches.

If no query is provided, all packages are listed (subject to filters).`,
	Example: `  # Search for packages mentioning images
  skillcheck search image

  # Restrict by license
  skillcheck search --license MIT

  # Fuzzy-pick interactively
  skillcheck search --interactive

  # Output as JSON
  skillcheck search image --json

  See Also:
    skillcheck list - List all packages
    skillcheck show - Show one package`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	return runSearchWithWriter(cmd, cmd.OutOrStdout(), args)
}

// runSearchWithWriter allows injecting a writer for testing.
func runSearchWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}
	root := resolveRootArg(activeConfig(), args, 1)

	s := scanner.NewScannerWithLogger(logging.FromContext(cmd.Context()))
	pkgs, err := s.Scan(root)
	if err != nil {
		return errors.Wrapf(err, "scanning %s", root)
	}
	entries := search.Collect(pkgs)

	results := search.Search(entries, query, search.Options{License: searchLicense})

	if searchInteractive {
		return runInteractiveSearch(w, results)
	}
	if searchJSON {
		return outputSearchJSON(w, results)
	}
	return outputSearchTabular(w, results)
}

// searchResult represents a search hit in JSON output format.
type searchResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	License     string `json:"license,omitempty"`
	Dir         string `json:"dir"`
}

func outputSearchJSON(w io.Writer, results []search.Entry) error {
	out := make([]searchResult, len(results))
	for i, e := range results {
		out[i] = searchResult{
			Name:        e.Name,
			Description: e.Description,
			License:     e.License,
			Dir:         e.Dir,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputSearchTabular(w io.Writer, results []search.Entry) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No matching skill packages")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sDESCRIPTION%s\n", colorBold, colorReset, colorBold, colorReset)
	for _, e := range results {
		fmt.Fprintf(tw, "%s%s%s\t%s\n", colorGreen, e.Name, colorReset, truncate(e.Description, 80))
	}
	return tw.Flush()
}
