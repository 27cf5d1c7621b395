package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMap(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "maps")
	lines := []string{"###", "#.#", "###"}

	path, err := WriteMap(dir, lines)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "###\n#.#\n###\n", string(content))
}

func TestWriteMapNamesAreUnique(t *testing.T) {
	dir := t.TempDir()
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		path, err := WriteMap(dir, []string{"#"})
		require.NoError(t, err)
		assert.False(t, seen[path], "duplicate path %s", path)
		seen[path] = true
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestUniqueName(t *testing.T) {
	name := UniqueName(FilePattern)
	require.True(t, strings.HasPrefix(name, "map_"))
	require.True(t, strings.HasSuffix(name, ".txt"))

	id := strings.TrimSuffix(strings.TrimPrefix(name, "map_"), ".txt")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
