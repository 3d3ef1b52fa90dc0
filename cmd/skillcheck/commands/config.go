package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/paths"
	"github.com/rengarcia/web-quality-skills/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration in YAML format, after merging the
config file, SKILLCHECK_* environment variables, and defaults.

Configuration is read from ./config.yaml or ` + "`<config dir>/skillcheck/config.yaml`" + `.`,
	Example: `  # Show effective configuration
  skillcheck config

  # Write a starter config file
  skillcheck config init

  # Print the config file location
  skillcheck config path

See Also: skillcheck validate`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write the current effective configuration to the user config
directory, creating it if needed. Existing files are not overwritten
unless --force is set.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configFilePath())
		return nil
	},
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"overwrite an existing config file")
}

func configFilePath() string {
	return filepath.Join(paths.AppConfigDir(), "config.yaml")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	return writeConfigYAML(cmd.OutOrStdout())
}

func writeConfigYAML(w io.Writer) error {
	data, err := yaml.Marshal(activeConfig())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = w.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configFilePath()

	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := paths.EnsureDir(paths.AppConfigDir(), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, activeConfig()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
