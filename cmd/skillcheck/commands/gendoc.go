package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/rengarcia/web-quality-skills/internal/errors"
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate Markdown documentation for the CLI",
	Hidden: true,
	RunE:   runGenDoc,
}

func init() {
	genDocCmd.Flags().StringP("dir", "d", "", "Output directory for documentation")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(cmd *cobra.Command, _ []string) error {
	outputDir, _ := cmd.Flags().GetString("dir")
	if outputDir == "" {
		return errors.New("output directory is required")
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	if err := doc.GenMarkdownTreeCustom(rootCmd, outputDir, docFrontmatter, docLink); err != nil {
		return errors.Wrap(err, "generating markdown")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", outputDir)
	return nil
}

// docFrontmatter prepends site frontmatter to each generated page. The page
// for skillcheck_config_init.md is titled "config init"; the root page keeps
// the bare binary name.
func docFrontmatter(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), ".md")
	title := strings.ReplaceAll(base, "_", " ")
	if rest, ok := strings.CutPrefix(title, "skillcheck "); ok {
		title = rest
	}

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for the %s command"
draft: false
toc: true
---
`, title, title)
}

func docLink(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
