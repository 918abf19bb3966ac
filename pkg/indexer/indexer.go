package indexer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// GenerateProjectIndex indexes the current working directory into outputPath
// using the default exclusion table.
func GenerateProjectIndex(outputPath string, logger *zap.Logger) (Stats, error) {
	return Run(Options{Output: outputPath}, logger)
}

// Run walks opts.Root and writes every included file, preceded by its banner,
// to opts.Output. Per-file read failures are written as placeholders and do
// not stop the run; failing to open or write the output does.
func Run(opts Options, logger *zap.Logger) (Stats, error) {
	var stats Stats
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.Exclusions == nil {
		opts.Exclusions = DefaultExclusions(opts.Output)
	}

	root := opts.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return stats, fmt.Errorf("failed to get current directory: %w", err)
		}
		root = cwd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		logger.Error("Failed to resolve root path", zap.Error(err))
		return stats, fmt.Errorf("failed to get absolute path: %w", err)
	}

	absOutput, err := filepath.Abs(opts.Output)
	if err != nil {
		return stats, fmt.Errorf("failed to resolve output path: %w", err)
	}

	logger.Info("Starting index generation",
		zap.String("root", root),
		zap.String("output", opts.Output))

	outFile, err := os.Create(opts.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", opts.Output), zap.Error(err))
		return stats, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", opts.Output), zap.Error(closeErr))
		}
	}()

	out := &indexWriter{w: bufio.NewWriter(outFile), stats: &stats}

	walkErr := walkIncluded(root, opts.Exclusions, absOutput, &stats, logger, func(path, relPath string) error {
		if err := out.write(FileBanner(relPath)); err != nil {
			return err
		}

		body, readErr := ReadFileText(path, logger)
		if readErr != nil {
			stats.FilesFailedToRead++
			logger.Warn("Failed to read file", zap.String("filePath", path), zap.Error(readErr))
			body = ErrorBody(readErr)
		}
		if err := out.write(body); err != nil {
			return err
		}

		stats.FilesWritten++
		return nil
	})

	// Flush whatever was written even when the walk stopped early.
	flushErr := out.w.Flush()

	if walkErr != nil {
		logger.Error("Index generation failed", zap.Error(walkErr))
		return stats, fmt.Errorf("failed to index %s: %w", root, walkErr)
	}
	if flushErr != nil {
		logger.Error("Failed to flush output file", zap.String("file", opts.Output), zap.Error(flushErr))
		return stats, fmt.Errorf("failed to flush output: %w", flushErr)
	}

	logger.Info("Index generation completed",
		zap.String("output", opts.Output),
		zap.Int("filesWritten", stats.FilesWritten),
		zap.Int("filesFailed", stats.FilesFailedToRead),
		zap.Int("directoriesPruned", stats.DirectoriesPruned),
		zap.Duration("elapsed", time.Since(startTime)))
	return stats, nil
}

// indexWriter wraps the buffered output and keeps the byte count current.
type indexWriter struct {
	w     *bufio.Writer
	stats *Stats
}

func (iw *indexWriter) write(s string) error {
	n, err := iw.w.WriteString(s)
	iw.stats.BytesWritten += int64(n)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
