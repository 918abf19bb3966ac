package indexer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newlineReplacer folds Windows and classic Mac line endings into '\n'.
var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// FileBanner returns the separator block written before a file's body.
func FileBanner(relativePath string) string {
	rule := strings.Repeat("=", separatorWidth)
	return fmt.Sprintf("\n\n%s\nFILE: %s\n%s\n\n", rule, relativePath, rule)
}

// ErrorBody returns the text written in place of a file that could not be read.
func ErrorBody(err error) string {
	return fmt.Sprintf("%s - %v", errorPlaceholder, err)
}

// ReadFileText reads the whole file and decodes it as UTF-8. Invalid byte
// sequences become U+FFFD rather than failing, and line endings are
// normalised to '\n'. Only I/O failures are returned as errors; they already
// carry the operation and path.
func ReadFileText(filePath string, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := transform.NewReader(file, unicode.UTF8.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	logger.Debug("Read file content",
		zap.String("filePath", filePath),
		zap.Int("decodedSizeBytes", len(decoded)))

	return newlineReplacer.Replace(string(decoded)), nil
}
