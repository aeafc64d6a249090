package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var ErrIsDirectory = errors.New("is a directory")

// FileExists reports whether path exists and is a regular file. A missing
// path is not an error; a directory is reported as ErrIsDirectory.
func FileExists(path string) (bool, error) {
	st, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if st.IsDir() {
		return false, fmt.Errorf("%s %w", path, ErrIsDirectory)
	}

	return true, nil
}

// FirstLine returns the first non-empty line of s that is not a # comment.
func FirstLine(s string) (string, bool) {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}

	return "", false
}
