package fsio

import (
	"os"
)

// CreateDir creates the directory at the given path together with any
// missing parent directories. An existing directory is left untouched.
func CreateDir[P PathLike](path P) error {
	if err := os.MkdirAll(string(path), 0o755); err != nil {
		return newIOError("unable to create directory: "+string(path), err)
	}
	return nil
}

// CreateParentDir creates the parent directory of the given file path
// together with any missing ancestors. It is a no-op when the path has no
// parent component.
func CreateParentDir[P PathLike](path P) error {
	return createParentDir(string(path))
}

func createParentDir(path string) error {
	parent, ok := ParentDirectory(path)
	if !ok {
		return nil
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return newIOError("unable to create directory: "+parent, err)
	}
	return nil
}
