// File: pkg/indexer/exclusions.go
package indexer

import (
	"path/filepath"
	"strings"
)

// DefaultOutput is the output file name used when none is supplied.
const DefaultOutput = "full_project_index.txt"

// DefaultExcludedDirs lists directory names that are never descended into.
// Names are compared against the directory's base name at any depth.
var DefaultExcludedDirs = []string{
	".git",
	".idea",
	".vscode",
	"__pycache__",
	"node_modules",
	"build",
	".dart_tool",
	"dist",
	"venv",
	"zeytin",
	"zeytin_err",
	"env",
	"lock",
}

// DefaultExcludedExtensions lists file suffixes that are never indexed.
// Matching is a case-sensitive suffix comparison.
var DefaultExcludedExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".ico", ".svg", ".env",
	".pdf", ".exe", ".dll", ".so", ".dylib",
	".zip", ".tar", ".gz", ".7z",
	".pyc", ".class",
}

// DefaultExcludedFiles lists exact file names that are never indexed.
// The output file's own name is added by DefaultExclusions.
var DefaultExcludedFiles = []string{
	"revani.db", "revani", "revani.exe",
	"project_indexer.py",
	".DS_Store",
	"server.crt", "server.key",
	"cert.pem", "key.pem",
	"test.py",
	"package-lock.json", "yarn.lock", "pubspec.lock",
	"analysis_options.yaml",
	"Dockerfile", ".dockerignore",
}

// SkipReason explains why a file was left out of the index.
type SkipReason int

const (
	NotSkipped SkipReason = iota
	SkippedByName
	SkippedByExtension
)

func (r SkipReason) String() string {
	switch r {
	case SkippedByName:
		return "name"
	case SkippedByExtension:
		return "extension"
	default:
		return "none"
	}
}

// ExclusionConfig holds the directory, extension and file name sets that gate
// which files reach the output. It is not modified after construction.
type ExclusionConfig struct {
	dirs       map[string]struct{}
	extensions []string
	files      map[string]struct{}
}

// NewExclusionConfig builds an ExclusionConfig from explicit lists.
func NewExclusionConfig(dirs, extensions, files []string) *ExclusionConfig {
	return &ExclusionConfig{
		dirs:       toSet(dirs),
		extensions: dedupe(extensions),
		files:      toSet(files),
	}
}

// DefaultExclusions returns the built-in exclusion table with the base name of
// outputPath added to the excluded file names.
func DefaultExclusions(outputPath string) *ExclusionConfig {
	files := append([]string{}, DefaultExcludedFiles...)
	if outputPath != "" {
		files = append(files, filepath.Base(outputPath))
	}
	return NewExclusionConfig(DefaultExcludedDirs, DefaultExcludedExtensions, files)
}

// SkipDir reports whether a directory with the given base name is pruned.
func (e *ExclusionConfig) SkipDir(name string) bool {
	_, ok := e.dirs[name]
	return ok
}

// SkipFile reports whether a file with the given base name is excluded and why.
// Exact names are checked before extensions.
func (e *ExclusionConfig) SkipFile(name string) (bool, SkipReason) {
	if _, ok := e.files[name]; ok {
		return true, SkippedByName
	}
	for _, ext := range e.extensions {
		if strings.HasSuffix(name, ext) {
			return true, SkippedByExtension
		}
	}
	return false, NotSkipped
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
