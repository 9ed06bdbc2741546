package retrieval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeywordTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chemistry:\n  - acid\n  - base\nphysics:\n  - velocity\n"), 0o644))

	table, err := LoadKeywordTable(path)
	require.NoError(t, err)

	topic, ok := table.ForeignTopic("What is the velocity of light?", "Chemistry")
	require.True(t, ok)
	assert.Equal(t, "physics", topic)

	_, ok = table.ForeignTopic("Is vinegar an acid?", "Chemistry")
	assert.False(t, ok)
}

func TestLoadKeywordTable_Errors(t *testing.T) {
	_, err := LoadKeywordTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	_, err = LoadKeywordTable(path)
	assert.Error(t, err)
}
