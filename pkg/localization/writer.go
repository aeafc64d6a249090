package localization

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteError is returned when the localization file could not be read for
// comparison or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write localization file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Changed reports whether content differs from the file at path. A missing
// file counts as changed.
func Changed(path string, content []byte) (bool, error) {
	old, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, &WriteError{Path: path, Err: err}
	}

	return !bytes.Equal(old, content), nil
}

// WriteIfChanged writes content to path unless the file already holds exactly
// that content. It reports whether the file was written.
func WriteIfChanged(path string, content []byte) (bool, error) {
	changed, err := Changed(path, content)
	if err != nil || !changed {
		return false, err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, &WriteError{Path: path, Err: err}
	}
	if err = os.WriteFile(path, content, 0644); err != nil {
		return false, &WriteError{Path: path, Err: err}
	}

	return true, nil
}
