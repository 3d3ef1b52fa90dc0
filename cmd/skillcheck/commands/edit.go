package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rengarcia/web-quality-skills/internal/editor"
	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/logging"
	"github.com/rengarcia/web-quality-skills/internal/skill"
	"github.com/rengarcia/web-quality-skills/internal/skill/scanner"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <name|path> [root]",
	Short: "Open a skill's SKILL.md in $EDITOR",
	Long: `Open a skill package's SKILL.md document in your default editor.

You can provide either:
  - The name of a package under the skills root (e.g. "image-optimization")
  - A path to a skill directory or document (e.g. "./my-skill" or ".")

Uses the $EDITOR environment variable, then $VISUAL, then nano, then vi.`,
	Example: `  # Open a package by name
  skillcheck edit image-optimization

  # Open a local directory
  skillcheck edit ./my-new-skill

  See Also:
    skillcheck show - Show package details
    skillcheck list - List packages`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	target := args[0]

	// A local path wins over a package name.
	if info, err := os.Stat(target); err == nil {
		path := target
		if info.IsDir() {
			path = filepath.Join(target, skill.DocFileName)
			if _, err := os.Stat(path); err != nil {
				return errors.Newf("no %s in directory %s", skill.DocFileName, target)
			}
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrap(err, "getting absolute path")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Opening %s...\n", absPath)
		return errors.Wrap(editor.Open(absPath), "opening editor")
	}

	// Otherwise look the package up by name.
	root := resolveRootArg(activeConfig(), args, 1)
	s := scanner.NewScannerWithLogger(logging.FromContext(cmd.Context()))
	pkgs, err := s.Scan(root)
	if err != nil {
		return errors.Wrapf(err, "scanning %s", root)
	}

	pkg := findPackage(pkgs, target)
	if pkg == nil {
		return errors.Newf("skill %q not found (checked local path and %s)", target, root)
	}
	if !pkg.HasDoc() {
		return errors.Newf("skill %q has no %s to edit", target, skill.DocFileName)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Opening %s...\n", pkg.DocPath)
	return errors.Wrap(editor.Open(pkg.DocPath), "opening editor")
}
