package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"types": {}}`), 0o644))

	t.Run("reads a file", func(t *testing.T) {
		text, err := ReadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, `{"types": {}}`, text)
	})

	t.Run("empty path is an absent document", func(t *testing.T) {
		text, err := ReadDocument("")
		require.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadDocument(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("reader", func(t *testing.T) {
		text, err := Read(strings.NewReader("{}"))
		require.NoError(t, err)
		assert.Equal(t, "{}", text)
	})
}

func TestReadDocuments(t *testing.T) {
	dir := t.TempDir()
	elements := filepath.Join(dir, "elements.json")
	types := filepath.Join(dir, "types.json")
	require.NoError(t, os.WriteFile(elements, []byte(`{"edges": {}}`), 0o644))
	require.NoError(t, os.WriteFile(types, []byte(`{"types": {}}`), 0o644))

	t.Run("keeps the order of kinds", func(t *testing.T) {
		documents, err := ReadDocuments([]string{"elements", "types"}, map[string]string{"types": types, "elements": elements})
		require.NoError(t, err)
		require.Len(t, documents, 2)

		assert.Equal(t, Document{Kind: "elements", Path: elements, Text: `{"edges": {}}`}, documents[0])
		assert.Equal(t, "types", documents[1].Kind)
	})

	t.Run("skips kinds without a path", func(t *testing.T) {
		documents, err := ReadDocuments([]string{"elements", "types"}, map[string]string{"types": types})
		require.NoError(t, err)
		require.Len(t, documents, 1)
		assert.Equal(t, "types", documents[0].Kind)
	})

	t.Run("names the failing document", func(t *testing.T) {
		_, err := ReadDocuments([]string{"elements"}, map[string]string{"elements": filepath.Join(dir, "nope.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "elements schema")
	})
}
