package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/paths"
	"github.com/rengarcia/web-quality-skills/pkg/fileutil"
	"github.com/rengarcia/web-quality-skills/pkg/frontmatter"
)

var (
	initDescription string
	initLicense     string
	initVersion     string
	initAuthor      string
	initForce       bool
)

func init() {
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "", "skill description")
	initCmd.Flags().StringVar(&initLicense, "license", "MIT", "license (e.g. MIT)")
	initCmd.Flags().StringVar(&initVersion, "version", "1.0.0", "skill version")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "skill author")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing SKILL.md")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name> [root]",
	Short: "Scaffold a new skill package",
	Long: `Create a new skill package directory under the skills root
(default ./skills): a SKILL.md document with valid frontmatter, plus
empty scripts/ and references/ directories.

The generated package passes validation as-is. The default description
carries a quoted trigger phrase built from the name; replace it with
something meaningful.`,
	Example: `  # Scaffold skills/image-optimization
  skillcheck init image-optimization

  # Scaffold under another root with details filled in
  skillcheck init seo-audit ./my-skills -d 'Run when asked to "audit SEO".' --author jane

  See Also:
    skillcheck validate - Validate the new package
    skillcheck edit     - Open it in $EDITOR`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInit,
}

// initNameRegex validates new skill names: lowercase alphanumeric segments
// separated by single hyphens, starting with a letter.
var initNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// errInitFailed is a sentinel error that signals non-zero exit.
var errInitFailed = errors.New("skill initialization failed")

func runInit(cmd *cobra.Command, args []string) error {
	return runInitWithWriter(cmd.OutOrStdout(), args)
}

// runInitWithWriter allows injecting a writer for testing.
func runInitWithWriter(w io.Writer, args []string) error {
	name := args[0]
	if err := validateInitName(name); err != nil {
		fmt.Fprintf(w, "Error: %s\n", err)
		return errInitFailed
	}

	root := resolveRootArg(activeConfig(), args, 1)
	dir := filepath.Join(root, name)
	docPath := filepath.Join(dir, "SKILL.md")

	if _, err := os.Stat(docPath); err == nil && !initForce {
		fmt.Fprintf(w, "Error: %s already exists (use --force to overwrite)\n", docPath)
		return errInitFailed
	}

	description := initDescription
	if description == "" {
		description = fmt.Sprintf("Use when asked to %q.", name)
	}

	metadata := make(map[string]string)
	if initVersion != "" {
		metadata["version"] = initVersion
	}
	if initAuthor != "" {
		metadata["author"] = initAuthor
	}

	meta := struct {
		Name        string            `yaml:"name"`
		Description string            `yaml:"description"`
		License     string            `yaml:"license,omitempty"`
		Metadata    map[string]string `yaml:"metadata,omitempty"`
	}{
		Name:        name,
		Description: description,
		License:     initLicense,
		Metadata:    metadata,
	}

	body := fmt.Sprintf(`# %s

Describe what this skill does and how to apply it.

## Usage

1. Step one
2. Step two

## References

Put longer background material under references/ and link it here.
`, name)

	content, err := frontmatter.Format(meta, body)
	if err != nil {
		return errors.Wrap(err, "generating document")
	}

	for _, sub := range []string{"scripts", "references"} {
		if err := paths.EnsureDir(filepath.Join(dir, sub), 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", sub)
		}
	}

	if err := fileutil.AtomicWriteFile(docPath, content, 0o644); err != nil {
		return errors.Wrap(err, "writing SKILL.md")
	}

	fmt.Fprintf(w, "Created skill %q at %s\n", name, dir)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Next steps:")
	fmt.Fprintf(w, "    1. Edit %s with your skill's instructions\n", docPath)
	fmt.Fprintf(w, "    2. Run: skillcheck validate %s\n", root)

	return nil
}

// validateInitName checks a new skill name against the naming convention.
func validateInitName(name string) error {
	if name == "" {
		return errors.New("skill name is required")
	}
	if len(name) > 64 {
		return errors.Newf("skill name must be at most 64 characters (got %d)", len(name))
	}
	if !initNameRegex.MatchString(name) {
		return errors.New("skill name must be lowercase alphanumeric with hyphens, starting with a letter")
	}
	return nil
}
