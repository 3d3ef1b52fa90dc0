package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/skill/search"
)

func runInteractiveSearch(w io.Writer, entries []search.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No skill packages found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return entries[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			var b strings.Builder
			fmt.Fprintf(&b, "Name: %s\n", e.Name)
			if e.Version != "" {
				fmt.Fprintf(&b, "Version: %s\n", e.Version)
			}
			if e.License != "" {
				fmt.Fprintf(&b, "License: %s\n", e.License)
			}
			fmt.Fprintf(&b, "Files: %d\n\nDescription:\n%s", e.Files, e.Description)
			return b.String()
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive search failed")
	}

	e := entries[idx]
	fmt.Fprintf(w, "Selected: %s\n", e.Name)
	fmt.Fprintf(w, "Directory: %s\n", e.Dir)
	fmt.Fprintf(w, "Description: %s\n", e.Description)

	return nil
}
