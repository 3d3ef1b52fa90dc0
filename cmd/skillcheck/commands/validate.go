package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rengarcia/web-quality-skills/internal/config"
	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/logging"
	"github.com/rengarcia/web-quality-skills/internal/paths"
	"github.com/rengarcia/web-quality-skills/internal/skill/rules"
	"github.com/rengarcia/web-quality-skills/internal/skill/scanner"
	"github.com/rengarcia/web-quality-skills/internal/validator"
	"github.com/rengarcia/web-quality-skills/pkg/fileutil"
)

var (
	validateStrict  bool
	validateFormat  string
	validateExclude []string
	validateJobs    int
	validateOutput  string
)

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"treat warnings as failures for the exit code")
	validateCmd.Flags().StringVar(&validateFormat, "format", "",
		"report format: text, json (default text)")
	validateCmd.Flags().StringSliceVar(&validateExclude, "exclude", nil,
		"glob pattern of skill directory names to skip (repeatable)")
	validateCmd.Flags().IntVar(&validateJobs, "jobs", 0,
		"number of packages validated concurrently (0 = one per CPU)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "",
		"also write the JSON report to this file")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [root]",
	Short: "Validate every skill package under a root directory",
	Long: `Validate all skill packages found directly under the given root
directory (default ./skills).

Every immediate subdirectory is one package. Each package needs a
SKILL.md document whose YAML frontmatter names the skill, describes
when to use it, and declares a license. The document body, files under
references/, and scripts under scripts/ are checked too.

All problems across all packages are reported in one run; nothing
stops at the first finding. Warnings never affect the exit code
unless --strict is set.

Exit codes:
  0 - All packages passed
  1 - At least one error (or warning with --strict)
  2 - Bad invocation (root missing or not a directory, unknown format)`,
	Example: `  # Validate ./skills
  skillcheck validate

  # Validate a specific tree
  skillcheck validate ./my-skills

  # Fail on warnings too
  skillcheck validate --strict

  # Machine-readable output
  skillcheck validate --format json

  # Skip draft packages
  skillcheck validate --exclude 'draft-*'

  See Also:
    skillcheck list - List discovered packages
    skillcheck show - Show one package`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

// errValidationFailed is a sentinel error that signals non-zero exit after
// the report has been printed.
var errValidationFailed = errors.New("validation failed")

func runValidate(cmd *cobra.Command, args []string) error {
	return runValidateWithWriter(cmd, cmd.OutOrStdout(), args)
}

// runValidateWithWriter allows injecting a writer for testing.
func runValidateWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
	cfg := activeConfig()

	root := cfg.Root
	if len(args) > 0 {
		root = args[0]
	}
	root = paths.ResolveRoot(root)

	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = validateStrict
	}

	formatValue := cfg.Format
	if cmd.Flags().Changed("format") {
		formatValue = validateFormat
	}
	format, err := validator.ParseFormat(formatValue)
	if err != nil {
		return errors.NewUsageError(err, "Valid formats are: text, json")
	}

	exclude := cfg.Exclude
	if cmd.Flags().Changed("exclude") {
		exclude = validateExclude
	}

	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = validateJobs
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewUsageError(errors.Newf("skills root %q does not exist", root),
				"Pass the root directory as an argument: skillcheck validate <root>")
		}
		return errors.NewExitError(errors.Wrapf(err, "inspecting skills root %q", root), errors.ExitUsage)
	}
	if !info.IsDir() {
		return errors.NewUsageError(errors.Newf("skills root %q is not a directory", root), "")
	}

	logger := logging.FromContext(cmd.Context())

	s := scanner.NewScannerWithLogger(logger)
	s.Exclude = exclude
	pkgs, err := s.Scan(root)
	if err != nil {
		return errors.NewExitError(err, errors.ExitUsage)
	}
	logger.Debug("scan complete", "root", root, "packages", len(pkgs))

	engine := rules.NewEngineWithLogger(logger)
	engine.Limits = cfg.Limits
	engine.Workers = jobs
	report := engine.ValidateAll(pkgs)

	summary := report.Summarize()
	logger.Info("validation complete",
		"packages", len(pkgs),
		"errors", summary.Errors,
		"warnings", summary.Warnings)

	reporter := validator.NewReporter(w, format)
	if err := reporter.Report(report); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if validateOutput != "" {
		data, err := validator.MarshalReport(report)
		if err != nil {
			return errors.Wrap(err, "encoding report")
		}
		if err := fileutil.AtomicWriteFile(validateOutput, data, 0o644); err != nil {
			return errors.Wrap(err, "writing report file")
		}
		logger.Info("report written", "path", validateOutput)
	}

	if !report.Passed(strict) {
		return errValidationFailed
	}
	return nil
}

// resolveRootArg picks the skills root for commands that take an optional
// trailing [root] argument after their primary argument.
func resolveRootArg(cfg *config.Config, args []string, pos int) string {
	root := cfg.Root
	if len(args) > pos {
		root = args[pos]
	}
	return paths.ResolveRoot(root)
}
