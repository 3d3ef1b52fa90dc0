package fileutil

import (
	"io"
	"os"

	"github.com/rengarcia/web-quality-skills/internal/errors"
)

// MaxFileSize caps how much of any one file the tool loads. Skill documents
// and reference files are small Markdown; a stray binary dropped into a
// package should not balloon memory.
const MaxFileSize = 1 << 20

// ErrFileTooLarge reports a file over MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds %d bytes", MaxFileSize)

// ReadFileWithLimit reads the file at path, refusing files larger than
// MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// The stat is an early out; the bounded read below is what enforces
	// the limit.
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
