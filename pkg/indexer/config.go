// File: pkg/indexer/config.go
package indexer

// Options holds the configuration for a single indexing run.
type Options struct {
	Root       string           // Traversal root; empty means the current working directory.
	Output     string           // Destination path for the index; empty means DefaultOutput.
	Exclusions *ExclusionConfig // Exclusion table; nil means DefaultExclusions(Output).
}

// Stats summarises what a run did.
type Stats struct {
	FilesWritten       int   // Files that received a banner and body.
	FilesSkippedByName int   // Files excluded by exact name.
	FilesSkippedByExt  int   // Files excluded by extension.
	DirectoriesPruned  int   // Directories not descended into.
	FilesFailedToRead  int   // Files whose body is an error placeholder.
	BytesWritten       int64 // Bytes written to the output, banners included.
}

// Constants
const (
	separatorWidth   = 60                     // Width of the '=' rule in each banner
	errorPlaceholder = "[ERROR READING FILE]" // Prefix written in place of an unreadable file's body
)
