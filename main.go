package main

import (
	"log"
	"os"
	"strings"

	"projindex/cmd"
	"projindex/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Logger.Fatal("projindex execution failed", zap.Error(err))
	}
	syncLogger()
}

// syncLogger flushes the logger when stderr can be synced. Syncing a pipe or
// console fails with "invalid argument" on some platforms.
func syncLogger() {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logging.Logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") && !strings.Contains(lowerErr, "inappropriate ioctl") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
