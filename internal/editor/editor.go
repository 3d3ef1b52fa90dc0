// Package editor launches the user's preferred text editor.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/rengarcia/web-quality-skills/internal/errors"
)

// Open launches the user's preferred editor on path and waits for it to
// exit. The editor command comes from $EDITOR, then $VISUAL, then nano,
// then vi. The value may carry arguments ("code --wait").
func Open(path string) error {
	command := detectEditor()
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return errors.Newf("empty editor command %q", command)
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", parts[0])
	}
	return nil
}

// detectEditor returns the editor command. Fallback chain:
// $EDITOR, $VISUAL, nano when installed, vi.
func detectEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
