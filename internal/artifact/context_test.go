package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectContext(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	nested := filepath.Join(root, "context", "projects")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "context", "goals.md"), []byte("ship it"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "alpha.md"), []byte("alpha notes"), 0o644))

	content := store.CollectContext()

	assert.Contains(t, content, "## "+filepath.Join("context", "goals.md"))
	assert.Contains(t, content, "ship it")
	assert.Contains(t, content, "## "+filepath.Join("context", "projects", "alpha.md"))
	assert.Contains(t, content, "alpha notes")
}

func TestCollectContextMissingRoot(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.Empty(t, store.CollectContext())
}
