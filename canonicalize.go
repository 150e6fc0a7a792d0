package fsio

import (
	"path/filepath"
)

// CanonicalizeAsString resolves the given path against the file system and
// returns the fully resolved absolute path: symbolic links are followed and
// `.`/`..` segments are eliminated. This is the only path operation that
// touches the file system; it fails with an error wrapping ErrIOError when
// the path does not exist or cannot be resolved.
func CanonicalizeAsString[P PathLike](path P) (string, error) {
	absPath, err := filepath.Abs(string(path))
	if err != nil {
		return "", newIOError("unable to canonicalize path: "+string(path), err)
	}
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", newIOError("unable to canonicalize path: "+string(path), err)
	}
	return resolved, nil
}

// CanonicalizeOr resolves the given path like CanonicalizeAsString but
// never fails: on any error the supplied orValue is returned verbatim.
func CanonicalizeOr[P PathLike](path P, orValue string) string {
	value, err := CanonicalizeAsString(path)
	if err != nil {
		return orValue
	}
	return value
}
