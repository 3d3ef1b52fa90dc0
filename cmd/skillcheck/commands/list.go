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

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List skill packages under a root directory",
	Long: `List every skill package found directly under the given root
directory (default ./skills), with the name, version, auxiliary file
count, and description from each package's frontmatter.

Packages whose SKILL.md is missing or unreadable still appear, marked
with a dash where the frontmatter fields would be. Run validate to see
what exactly is wrong with them.`,
	Example: `  # List packages under ./skills
  skillcheck list

  # List another tree
  skillcheck list ./my-skills

  # Output as JSON
  skillcheck list --json

  See Also:
    skillcheck show     - Show one package in detail
    skillcheck validate - Validate the whole tree`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

// listEntry represents a package in JSON output format.
type listEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version,omitempty"`
	License     string `json:"license,omitempty"`
	Files       int    `json:"files"`
	HasDoc      bool   `json:"has_doc"`
}

func runList(cmd *cobra.Command, args []string) error {
	return runListWithWriter(cmd, cmd.OutOrStdout(), args)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
	root := resolveRootArg(activeConfig(), args, 0)

	s := scanner.NewScannerWithLogger(logging.FromContext(cmd.Context()))
	pkgs, err := s.Scan(root)
	if err != nil {
		return errors.Wrapf(err, "scanning %s", root)
	}
	entries := search.Collect(pkgs)

	if listJSON {
		return outputListJSON(w, entries)
	}
	return outputListTabular(w, entries)
}

// outputListJSON outputs the catalog in JSON format.
func outputListJSON(w io.Writer, entries []search.Entry) error {
	out := make([]listEntry, len(entries))
	for i, e := range entries {
		out[i] = listEntry{
			Name:        e.Name,
			Description: e.Description,
			Version:     e.Version,
			License:     e.License,
			Files:       e.Files,
			HasDoc:      e.HasDoc,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// outputListTabular outputs the catalog as a table.
func outputListTabular(w io.Writer, entries []search.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No skill packages found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sVERSION%s\t%sFILES%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset, colorBold, colorReset,
		colorBold, colorReset, colorBold, colorReset)

	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		desc := truncate(e.Description, 60)
		if !e.HasDoc {
			desc = colorGray + "(no SKILL.md)" + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%d\t%s\n",
			colorGreen, e.Name, colorReset, version, e.Files, desc)
	}
	return tw.Flush()
}
