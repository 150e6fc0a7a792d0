// Package fsio provides path utility functions and basic file and
// directory I/O on top of the operating system's path facilities.
package fsio

import (
	"os"
	"path/filepath"
)

// Path represents a filesystem path in the platform's native representation.
// It carries no invariants beyond those of the underlying string; relative
// paths, `.` and `..` segments and trailing separators are all allowed.
type Path string

// PathLike is satisfied by any string-typed value and lets callers pass
// either a plain string or a Path wherever a path is expected. The
// conversion is resolved at compile time and never fails; a path that does
// not exist only surfaces later, when it is resolved against the file
// system.
type PathLike interface{ ~string }

// AsPath converts a path-like value into its native Path representation.
func AsPath[P PathLike](path P) Path {
	return Path(path)
}

// String returns the display string of the path. The result round-trips
// through AsPath unchanged.
func (p Path) String() string {
	return string(p)
}

// Basename returns the final path component (file or last directory name).
// The result is derived from the textual structure of the path only; the
// file system is never consulted. The second return value reports whether a
// final component exists: it is false for the root path, for an empty path
// and for paths consisting only of `.` or ending in `..`.
func Basename[P PathLike](path P) (string, bool) {
	name := lastComponent(string(path))
	if name == "" || name == ".." {
		return "", false
	}
	return name, true
}

// ParentDirectory returns the path with its final component removed, again
// purely textually. The second return value reports whether a parent
// exists: it is false for the root path and for single-component relative
// paths. An empty parent string is normalized to "no parent", never
// returned as "".
func ParentDirectory[P PathLike](path P) (string, bool) {
	s := string(path)
	start := len(filepath.VolumeName(s))
	i := len(s)
	for i > start {
		for i > start && os.IsPathSeparator(s[i-1]) {
			i--
		}
		j := i
		for j > start && !os.IsPathSeparator(s[j-1]) {
			j--
		}
		if j == i {
			break
		}
		if s[j:i] == "." && j > start {
			i = j
			continue
		}
		dir := s[:j]
		for len(dir) > start+1 && os.IsPathSeparator(dir[len(dir)-1]) {
			dir = dir[:len(dir)-1]
		}
		if dir == "" {
			return "", false
		}
		return dir, true
	}
	return "", false
}

// lastComponent returns the final component of the path, ignoring trailing
// separators and `.` components the way the platform path parser does.
// It returns "" when no component remains.
func lastComponent(path string) string {
	start := len(filepath.VolumeName(path))
	i := len(path)
	for i > start {
		for i > start && os.IsPathSeparator(path[i-1]) {
			i--
		}
		j := i
		for j > start && !os.IsPathSeparator(path[j-1]) {
			j--
		}
		if path[j:i] == "." {
			i = j
			continue
		}
		return path[j:i]
	}
	return ""
}
