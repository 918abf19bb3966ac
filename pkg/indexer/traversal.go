// File: pkg/indexer/traversal.go
package indexer

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// fileVisitor is called for every file that survives exclusion, with its
// absolute path and its path relative to the traversal root.
type fileVisitor func(path, relPath string) error

// walkIncluded walks root top-down, pruning excluded directories before
// descending and calling visit for every included file. skipPath, when set,
// is an absolute path that is never visited.
func walkIncluded(root string, excl *ExclusionConfig, skipPath string, stats *Stats, logger *zap.Logger, visit fileVisitor) error {
	logger.Debug("Starting traversal", zap.String("root", root))

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != root && excl.SkipDir(d.Name()) {
				stats.DirectoriesPruned++
				logger.Debug("Pruning excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if isDirSymlink(path, d) {
			logger.Debug("Skipping symlinked directory", zap.String("path", path))
			return nil
		}

		if skip, reason := excl.SkipFile(d.Name()); skip {
			switch reason {
			case SkippedByName:
				stats.FilesSkippedByName++
			case SkippedByExtension:
				stats.FilesSkippedByExt++
			}
			logger.Debug("Skipping excluded file", zap.String("file", path), zap.Stringer("reason", reason))
			return nil
		}

		if skipPath != "" && path == skipPath {
			stats.FilesSkippedByName++
			logger.Debug("Skipping output file", zap.String("file", path))
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path, using absolute path",
				zap.String("filePath", path),
				zap.Error(relErr))
			relPath = path
		}

		return visit(path, relPath)
	})
}

// isDirSymlink reports whether d is a symbolic link resolving to a directory.
// Such links are neither followed nor indexed.
func isDirSymlink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
