// Package scanner discovers skill packages beneath a skills root directory.
// Every immediate subdirectory of the root is a package candidate; the
// scanner records its SKILL.md document and the files directly under
// scripts/ and references/.
package scanner

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rengarcia/web-quality-skills/internal/errors"
	"github.com/rengarcia/web-quality-skills/internal/logging"
	"github.com/rengarcia/web-quality-skills/internal/skill"
)

// Scanner discovers skill packages. Discovery only reads the file system and
// never mutates it.
type Scanner struct {
	// Exclude lists glob patterns (doublestar syntax) matched against
	// directory base names; matching directories are skipped entirely.
	Exclude []string

	logger *slog.Logger
}

// NewScanner creates a new Scanner with a default stderr warn logger.
func NewScanner() *Scanner {
	return &Scanner{logger: logging.Default()}
}

// NewScannerWithLogger creates a new Scanner with the given logger.
func NewScannerWithLogger(logger *slog.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan walks the immediate subdirectories of root and returns one Package
// per directory, sorted by name ascending. Explicit sorting keeps the result
// independent of file-system iteration order.
//
// A subdirectory that cannot be read still yields a Package; the failure is
// recorded on it so the caller can report the path instead of silently
// dropping the skill.
func (s *Scanner) Scan(root string) ([]skill.Package, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading skills root %s", root)
	}

	pkgs := make([]skill.Package, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if s.excluded(name) {
			s.logger.Debug("skipping excluded skill directory", "dir", name)
			continue
		}
		pkgs = append(pkgs, s.scanPackage(root, name))
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })
	return pkgs, nil
}

// scanPackage inspects a single skill directory. The SKILL.md lookup compares
// entry names exactly, so a differently-cased file does not count even on
// case-insensitive file systems.
func (s *Scanner) scanPackage(root, name string) skill.Package {
	dir := filepath.Join(root, name)
	pkg := skill.Package{Name: name, Dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warn("failed to read skill directory",
			"dir", dir,
			"error", err)
		pkg.ReadFailures = append(pkg.ReadFailures, skill.ReadFailure{Path: ".", Err: err})
		return pkg
	}

	subdirs := make(map[string]bool, 2)
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs[entry.Name()] = true
			continue
		}
		if entry.Name() == skill.DocFileName {
			pkg.DocPath = filepath.Join(dir, skill.DocFileName)
		}
	}

	for _, sub := range []string{"scripts", "references"} {
		if !subdirs[sub] {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, sub))
		if err != nil {
			s.logger.Warn("failed to read auxiliary directory",
				"dir", filepath.Join(dir, sub),
				"error", err)
			pkg.ReadFailures = append(pkg.ReadFailures, skill.ReadFailure{Path: sub, Err: err})
			continue
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			pkg.AuxiliaryFiles = append(pkg.AuxiliaryFiles, path.Join(sub, f.Name()))
		}
	}

	sort.Strings(pkg.AuxiliaryFiles)
	return pkg
}

func (s *Scanner) excluded(name string) bool {
	for _, pattern := range s.Exclude {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			s.logger.Warn("ignoring invalid exclude pattern",
				"pattern", pattern,
				"error", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
