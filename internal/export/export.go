// Package export writes rendered maps to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FilePattern is the name template for map files; the verb is replaced by a UUID.
const FilePattern = "map_%s.txt"

// UniqueName returns a fresh file name for the given pattern.
func UniqueName(pattern string) string {
	return fmt.Sprintf(pattern, uuid.NewString())
}

// WriteMap writes lines to a uniquely named file in dir and returns its path.
// The directory is created if needed.
func WriteMap(dir string, lines []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, UniqueName(FilePattern))
	content := strings.Join(lines, "\n") + "\n"

	// O_EXCL: never overwrite an existing map
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create map file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", fmt.Errorf("write map file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close map file %s: %w", path, err)
	}
	return path, nil
}
