// Package fsiomust wraps the fsio package with panic-based error handling.
//
// It provides the same path and file system operations as the root-level
// fsio package, but instead of returning errors, all exported functions
// panic on failure. It is intended for scripts and tests where a failed
// file system operation is unrecoverable.
package fsiomust

import (
	"github.com/gofsio/fsio"
)

// CanonicalizeAsString resolves the given path against the file system and
// returns the fully resolved absolute path.
//
// It panics if the path does not exist or cannot be resolved.
func CanonicalizeAsString[P fsio.PathLike](path P) string {
	return must1(fsio.CanonicalizeAsString(path))
}

// Basename returns the final path component of the given path.
//
// It panics if the path has no final component, for example the root path.
func Basename[P fsio.PathLike](path P) string {
	name, ok := fsio.Basename(path)
	if !ok {
		panic("path has no final component: " + string(path))
	}
	return name
}

// ParentDirectory returns the path with its final component removed.
//
// It panics if the path has no parent, for example the root path or a
// single-component relative path.
func ParentDirectory[P fsio.PathLike](path P) string {
	parent, ok := fsio.ParentDirectory(path)
	if !ok {
		panic("path has no parent directory: " + string(path))
	}
	return parent
}

// EnsureExists creates an empty file at the given path if nothing exists
// there yet, creating missing parent directories as needed.
//
// It panics if the file cannot be created.
func EnsureExists[P fsio.PathLike](path P) {
	must0(fsio.EnsureExists(path))
}

// WriteFile writes data to the file at the given path, creating the file
// and any missing parent directories, and truncating existing content.
//
// It panics if the file cannot be written.
func WriteFile[P fsio.PathLike](path P, data []byte) {
	must0(fsio.WriteFile(path, data))
}

// WriteTextFile writes text to the file at the given path, creating the
// file and any missing parent directories, and truncating existing content.
//
// It panics if the file cannot be written.
func WriteTextFile[P fsio.PathLike](path P, text string) {
	must0(fsio.WriteTextFile(path, text))
}

// AppendFile appends data to the file at the given path, creating the file
// and any missing parent directories if needed.
//
// It panics if the file cannot be written.
func AppendFile[P fsio.PathLike](path P, data []byte) {
	must0(fsio.AppendFile(path, data))
}

// AppendTextFile appends text to the file at the given path, creating the
// file and any missing parent directories if needed.
//
// It panics if the file cannot be written.
func AppendTextFile[P fsio.PathLike](path P, text string) {
	must0(fsio.AppendTextFile(path, text))
}

// ReadFile reads the entire content of the file at the given path.
//
// It panics if the file cannot be read.
func ReadFile[P fsio.PathLike](path P) []byte {
	return must1(fsio.ReadFile(path))
}

// ReadTextFile reads the entire content of the file at the given path as a
// string.
//
// It panics if the file cannot be read.
func ReadTextFile[P fsio.PathLike](path P) string {
	return must1(fsio.ReadTextFile(path))
}

// ModifyFile reads the file at the given path, applies modify to its
// content and writes the result back.
//
// It panics if the file cannot be read or written.
func ModifyFile[P fsio.PathLike](path P, modify func(data []byte) []byte) {
	must0(fsio.ModifyFile(path, modify))
}

// Delete removes the file or directory tree at the given path. A path that
// does not exist is not an error.
//
// It panics if removal fails.
func Delete[P fsio.PathLike](path P) {
	must0(fsio.Delete(path))
}

// CreateDir creates the directory at the given path together with any
// missing parent directories.
//
// It panics if the directory cannot be created.
func CreateDir[P fsio.PathLike](path P) {
	must0(fsio.CreateDir(path))
}

// CreateParentDir creates the parent directory of the given file path
// together with any missing ancestors.
//
// It panics if the directory cannot be created.
func CreateParentDir[P fsio.PathLike](path P) {
	must0(fsio.CreateParentDir(path))
}
