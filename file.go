package fsio

import (
	"errors"
	"io/fs"
	"os"
)

// EnsureExists creates an empty file at the given path if nothing exists
// there yet, creating missing parent directories as needed. An existing
// file or directory is left untouched.
func EnsureExists[P PathLike](path P) error {
	_, err := os.Lstat(string(path))
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return newIOError("unable to stat path: "+string(path), err)
	}
	return WriteFile(path, nil)
}

// WriteFile writes data to the file at the given path, creating the file
// and any missing parent directories, and truncating existing content.
func WriteFile[P PathLike](path P, data []byte) error {
	return writeFile(string(path), data, false)
}

// WriteTextFile writes text to the file at the given path, creating the
// file and any missing parent directories, and truncating existing content.
func WriteTextFile[P PathLike](path P, text string) error {
	return writeFile(string(path), []byte(text), false)
}

// AppendFile appends data to the file at the given path, creating the file
// and any missing parent directories if needed.
func AppendFile[P PathLike](path P, data []byte) error {
	return writeFile(string(path), data, true)
}

// AppendTextFile appends text to the file at the given path, creating the
// file and any missing parent directories if needed.
func AppendTextFile[P PathLike](path P, text string) error {
	return writeFile(string(path), []byte(text), true)
}

func writeFile(path string, data []byte, appendMode bool) error {
	if err := createParentDir(path); err != nil {
		return err
	}
	flag := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	file, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return newIOError("unable to open file: "+path, err)
	}
	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return newIOError("unable to write file: "+path, err)
	}
	return nil
}

// ReadFile reads the entire content of the file at the given path.
func ReadFile[P PathLike](path P) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, newIOError("unable to read file: "+string(path), err)
	}
	return data, nil
}

// ReadTextFile reads the entire content of the file at the given path as a
// string.
func ReadTextFile[P PathLike](path P) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ModifyFile reads the file at the given path, applies modify to its
// content and writes the result back, truncating the original content.
func ModifyFile[P PathLike](path P, modify func(data []byte) []byte) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	return WriteFile(path, modify(data))
}

// Delete removes the file or directory tree at the given path. A path that
// does not exist is not an error.
func Delete[P PathLike](path P) error {
	if err := os.RemoveAll(string(path)); err != nil {
		return newIOError("unable to delete path: "+string(path), err)
	}
	return nil
}

// DeleteIgnoreError removes the file or directory tree at the given path,
// discarding any error.
func DeleteIgnoreError[P PathLike](path P) {
	_ = os.RemoveAll(string(path))
}
