package indexer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTreeOmitsExcludedEntries(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"README.md":          "readme",
		"b.txt":              "b",
		"logo.png":           "png",
		"src/main.go":        "main",
		"src/util/Helper.go": "helper",
		"node_modules/x.js":  "x",
		"pubspec.lock":       "lock",
	})

	tree, err := RenderTree(root, nil, nil)
	require.NoError(t, err)

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	want := strings.Join([]string{
		absRoot + "/",
		"├── src/",
		"│   ├── util/",
		"│   │   └── Helper.go",
		"│   └── main.go",
		"├── b.txt",
		"└── README.md",
		"",
	}, "\n")
	assert.Equal(t, want, tree)
}

func TestRenderTreeOmitsDirectorySymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a"})
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	tree, err := RenderTree(root, nil, nil)
	require.NoError(t, err)

	assert.NotContains(t, tree, "linked")
	assert.True(t, strings.HasSuffix(tree, "└── a.txt\n"), tree)
}

func TestRenderTreeEmptyDirectory(t *testing.T) {
	root := t.TempDir()

	tree, err := RenderTree(root, nil, nil)
	require.NoError(t, err)

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, absRoot+"/\n", tree)
}

func TestRenderTreeMissingRoot(t *testing.T) {
	_, err := RenderTree(filepath.Join(t.TempDir(), "missing"), nil, nil)

	assert.Error(t, err)
}
