package fsio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TemporaryFilePath returns a path for a new file inside the operating
// system's temporary directory, with a unique generated base name and the
// given extension appended (with or without a leading dot). No file is
// created; the returned path does not exist at the time the call returns,
// and repeated calls return distinct paths.
func TemporaryFilePath(extension string) string {
	suffix := ""
	if extension != "" {
		suffix = "." + strings.TrimPrefix(extension, ".")
	}
	tempDir := os.TempDir()
	for {
		candidate := filepath.Join(tempDir, uuid.NewString()+suffix)
		if _, err := os.Lstat(candidate); err != nil {
			return candidate
		}
	}
}
