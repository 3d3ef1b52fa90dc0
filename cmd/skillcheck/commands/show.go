package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/logging"
	"github.com/rengarcia/web-quality-skills/internal/skill"
	"github.com/rengarcia/web-quality-skills/internal/skill/parser"
	"github.com/rengarcia/web-quality-skills/internal/skill/scanner"
)

const defaultInstructionsPreviewLength = 200

var (
	showJSON bool
	showFull bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showFull, "full", false, "Show complete instructions (default truncated)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name> [root]",
	Short: "Display detailed skill package information",
	Long: `Display one skill package: its frontmatter fields, auxiliary files,
and an instructions preview.

The package is looked up by directory name under the skills root
(default ./skills).`,
	Example: `  # Show the image-optimization package
  skillcheck show image-optimization

  # Show full instructions
  skillcheck show image-optimization --full

  # Show as JSON
  skillcheck show image-optimization --json

  See Also:
    skillcheck list - List packages
    skillcheck edit - Open a package in $EDITOR`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

// showDetail holds the package information for display.
type showDetail struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	License      string            `json:"license,omitempty"`
	Version      string            `json:"version,omitempty"`
	Author       string            `json:"author,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Dir          string            `json:"dir"`
	Scripts      []string          `json:"scripts,omitempty"`
	References   []string          `json:"references,omitempty"`
	Instructions string            `json:"instructions,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	return runShowWithWriter(cmd, cmd.OutOrStdout(), args)
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
	name := args[0]
	root := resolveRootArg(activeConfig(), args, 1)

	s := scanner.NewScannerWithLogger(logging.FromContext(cmd.Context()))
	pkgs, err := s.Scan(root)
	if err != nil {
		return errors.Wrapf(err, "scanning %s", root)
	}

	pkg := findPackage(pkgs, name)
	if pkg == nil {
		return errors.Newf("skill %q not found under %s", name, root)
	}
	if !pkg.HasDoc() {
		return errors.Newf("skill %q has no SKILL.md document", name)
	}

	manifest, err := parser.New().ParseFile(pkg.DocPath)
	if err != nil {
		return errors.Wrapf(err, "reading skill %q", name)
	}

	detail := &showDetail{
		Name:         manifest.Name,
		Description:  manifest.Description,
		License:      manifest.License,
		Version:      manifest.Version(),
		Author:       manifest.Author(),
		Metadata:     manifest.Metadata,
		Dir:          pkg.Dir,
		Scripts:      pkg.Scripts(),
		References:   pkg.References(),
		Instructions: manifest.Instructions,
	}
	if detail.Name == "" {
		detail.Name = pkg.Name
	}

	if !showFull && len(detail.Instructions) > defaultInstructionsPreviewLength {
		detail.Instructions = detail.Instructions[:defaultInstructionsPreviewLength] + "..."
	}

	if showJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(detail)
	}
	return outputShowText(w, detail)
}

func findPackage(pkgs []skill.Package, name string) *skill.Package {
	for i := range pkgs {
		if pkgs[i].Name == name {
			return &pkgs[i]
		}
	}
	return nil
}

func outputShowText(w io.Writer, d *showDetail) error {
	fmt.Fprintf(w, "%s%s%s\n", colorCyan+colorBold, d.Name, colorReset)
	fmt.Fprintf(w, "  Description: %s\n", d.Description)
	if d.License != "" {
		fmt.Fprintf(w, "  License:     %s\n", d.License)
	}
	if d.Version != "" {
		fmt.Fprintf(w, "  Version:     %s\n", d.Version)
	}
	if d.Author != "" {
		fmt.Fprintf(w, "  Author:      %s\n", d.Author)
	}
	fmt.Fprintf(w, "  Directory:   %s\n", d.Dir)

	if len(d.Scripts) > 0 {
		fmt.Fprintf(w, "\n  %sScripts%s\n", colorBold, colorReset)
		for _, s := range d.Scripts {
			fmt.Fprintf(w, "    %s\n", s)
		}
	}
	if len(d.References) > 0 {
		fmt.Fprintf(w, "\n  %sReferences%s\n", colorBold, colorReset)
		for _, r := range d.References {
			fmt.Fprintf(w, "    %s\n", r)
		}
	}

	if d.Instructions != "" {
		fmt.Fprintf(w, "\n  %sInstructions%s\n", colorBold, colorReset)
		for _, line := range strings.Split(d.Instructions, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	return nil
}
