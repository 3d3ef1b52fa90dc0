package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used for skillcheck's own files under the
// XDG base directories.
const AppName = "skillcheck"

// DefaultSkillsRoot is the skills root used when no path is given on the
// command line and none is configured.
const DefaultSkillsRoot = "./skills"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
// Note: It returns an empty string on error.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns skillcheck's own config directory.
// Returns: <ConfigHome>/skillcheck/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ResolveRoot normalizes a skills root given on the command line or in
// configuration. An empty value falls back to DefaultSkillsRoot, and a "~/"
// prefix is expanded against the user's home directory.
func ResolveRoot(root string) string {
	if root == "" {
		root = DefaultSkillsRoot
	}
	if len(root) >= 2 && root[:2] == "~/" {
		if home := Home(); home != "" {
			return filepath.Join(home, root[2:])
		}
	}
	return root
}
