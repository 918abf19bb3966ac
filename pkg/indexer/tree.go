// File: pkg/indexer/tree.go
package indexer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// RenderTree returns the directory tree under root as the indexer would see
// it, with excluded directories and files left out.
func RenderTree(root string, excl *ExclusionConfig, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if excl == nil {
		excl = DefaultExclusions(DefaultOutput)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	subtree, err := renderTreeRecursively(absRoot, excl, "", logger)
	if err != nil {
		return "", err
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(absRoot + "/\n")
	if subtree != "" {
		treeBuilder.WriteString(subtree)
		treeBuilder.WriteString("\n")
	}
	return treeBuilder.String(), nil
}

// renderTreeRecursively builds the subtree of directory, directories first and
// then files, each group ordered case-insensitively.
func renderTreeRecursively(directory string, excl *ExclusionConfig, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return "", fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	var kept []fs.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			if !excl.SkipDir(entry.Name()) {
				kept = append(kept, entry)
			}
			continue
		}
		if isDirSymlink(filepath.Join(directory, entry.Name()), entry) {
			continue
		}
		if skip, _ := excl.SkipFile(entry.Name()); !skip {
			kept = append(kept, entry)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		return strings.ToLower(kept[i].Name()) < strings.ToLower(kept[j].Name())
	})

	var output []string
	for i, entry := range kept {
		connector := "├── "
		extension := "│   "
		if i == len(kept)-1 {
			connector = "└── "
			extension = "    "
		}

		if !entry.IsDir() {
			output = append(output, prefix+connector+entry.Name())
			continue
		}

		output = append(output, prefix+connector+entry.Name()+"/")
		entryPath := filepath.Join(directory, entry.Name())
		subtree, err := renderTreeRecursively(entryPath, excl, prefix+extension, logger)
		if err != nil {
			logger.Warn("Failed to render subtree", zap.String("directory", entryPath), zap.Error(err))
			continue
		}
		if subtree != "" {
			output = append(output, subtree)
		}
	}

	return strings.Join(output, "\n"), nil
}
