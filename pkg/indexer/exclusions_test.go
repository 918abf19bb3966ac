package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultExclusionsSkipFile(t *testing.T) {
	excl := DefaultExclusions("out/full_project_index.txt")

	tests := []struct {
		name   string
		skip   bool
		reason SkipReason
	}{
		{"full_project_index.txt", true, SkippedByName},
		{"server.key", true, SkippedByName},
		{"Dockerfile", true, SkippedByName},
		{"package-lock.json", true, SkippedByName},
		{"logo.svg", true, SkippedByExtension},
		{"module.cpython-312.pyc", true, SkippedByExtension},
		{".env", true, SkippedByExtension},
		{"prod.env", true, SkippedByExtension},
		{"LOGO.SVG", false, NotSkipped},
		{"main.go", false, NotSkipped},
		{"dockerfile", false, NotSkipped},
		{"out", false, NotSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, reason := excl.SkipFile(tt.name)
			assert.Equal(t, tt.skip, skip)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestSkipFileChecksNameBeforeExtension(t *testing.T) {
	excl := NewExclusionConfig(nil, []string{".pem"}, []string{"cert.pem"})

	skip, reason := excl.SkipFile("cert.pem")
	assert.True(t, skip)
	assert.Equal(t, SkippedByName, reason)

	skip, reason = excl.SkipFile("other.pem")
	assert.True(t, skip)
	assert.Equal(t, SkippedByExtension, reason)
}

func TestDefaultExclusionsSkipDir(t *testing.T) {
	excl := DefaultExclusions(DefaultOutput)

	for _, name := range DefaultExcludedDirs {
		assert.True(t, excl.SkipDir(name), name)
	}
	// Entries are whole names, never concatenations of neighbours.
	assert.False(t, excl.SkipDir("zeytin_errenv"))
	assert.False(t, excl.SkipDir("src"))
	assert.False(t, excl.SkipDir("Build"))
}

func TestDefaultExclusionsWithoutOutput(t *testing.T) {
	excl := DefaultExclusions("")

	skip, _ := excl.SkipFile(DefaultOutput)
	assert.False(t, skip)
}

func TestSkipReasonString(t *testing.T) {
	assert.Equal(t, "name", SkippedByName.String())
	assert.Equal(t, "extension", SkippedByExtension.String())
	assert.Equal(t, "none", NotSkipped.String())
}
