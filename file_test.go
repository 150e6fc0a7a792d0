package fsio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofsio/fsio"
)

func TestWriteAndReadTextFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.txt")

	if err := fsio.WriteTextFile(file, "some content"); err != nil {
		t.Fatalf("WriteTextFile() error = %v", err)
	}

	got, err := fsio.ReadTextFile(file)
	if err != nil {
		t.Fatalf("ReadTextFile() error = %v", err)
	}
	if got != "some content" {
		t.Errorf("ReadTextFile() = %q, want %q", got, "some content")
	}
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a", "b", "c", "out.bin")
	data := []byte{0x00, 0x01, 0x02}

	if err := fsio.WriteFile(file, data); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := fsio.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadFile() = %v, want %v", got, data)
	}
}

func TestWriteFile_TruncatesExistingContent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.txt")

	if err := fsio.WriteTextFile(file, "original longer content"); err != nil {
		t.Fatal(err)
	}
	if err := fsio.WriteTextFile(file, "short"); err != nil {
		t.Fatal(err)
	}

	got, err := fsio.ReadTextFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if got != "short" {
		t.Errorf("ReadTextFile() = %q, want %q", got, "short")
	}
}

func TestAppendTextFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "log.txt")

	// Appending to a missing file creates it.
	if err := fsio.AppendTextFile(file, "first\n"); err != nil {
		t.Fatalf("AppendTextFile() error = %v", err)
	}
	if err := fsio.AppendTextFile(file, "second\n"); err != nil {
		t.Fatalf("AppendTextFile() error = %v", err)
	}

	got, err := fsio.ReadTextFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if got != "first\nsecond\n" {
		t.Errorf("ReadTextFile() = %q, want %q", got, "first\nsecond\n")
	}
}

func TestEnsureExists(t *testing.T) {
	t.Run("CreatesMissingFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "nested", "empty.txt")

		if err := fsio.EnsureExists(file); err != nil {
			t.Fatalf("EnsureExists() error = %v", err)
		}

		info, err := os.Stat(file)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if info.Size() != 0 {
			t.Errorf("Size() = %d, want 0", info.Size())
		}
	})

	t.Run("KeepsExistingContent", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "data.txt")
		if err := fsio.WriteTextFile(file, "keep me"); err != nil {
			t.Fatal(err)
		}

		if err := fsio.EnsureExists(file); err != nil {
			t.Fatalf("EnsureExists() error = %v", err)
		}

		got, err := fsio.ReadTextFile(file)
		if err != nil {
			t.Fatal(err)
		}
		if got != "keep me" {
			t.Errorf("ReadTextFile() = %q, want %q", got, "keep me")
		}
	})
}

func TestModifyFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data.txt")
	if err := fsio.WriteTextFile(file, "abc"); err != nil {
		t.Fatal(err)
	}

	err := fsio.ModifyFile(file, func(data []byte) []byte {
		return append(data, []byte("def")...)
	})
	if err != nil {
		t.Fatalf("ModifyFile() error = %v", err)
	}

	got, err := fsio.ReadTextFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if got != "abcdef" {
		t.Errorf("ReadTextFile() = %q, want %q", got, "abcdef")
	}
}

func TestReadFile_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, err := fsio.ReadFile(missing)
	if err == nil {
		t.Fatal("ReadFile() error = nil, want error")
	}
	if !errors.Is(err, fsio.ErrIOError) {
		t.Errorf("errors.Is(err, ErrIOError) = false, want true; err = %v", err)
	}
	if fsio.Cause(err) == nil {
		t.Errorf("Cause(err) = nil, want underlying os error; err = %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "doomed.txt")
		if err := fsio.WriteTextFile(file, "x"); err != nil {
			t.Fatal(err)
		}

		if err := fsio.Delete(file); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := os.Lstat(file); err == nil {
			t.Errorf("Lstat(%q) error = nil, want not-exist", file)
		}
	})

	t.Run("DirectoryTree", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "tree")
		if err := fsio.WriteTextFile(filepath.Join(dir, "sub", "leaf.txt"), "x"); err != nil {
			t.Fatal(err)
		}

		if err := fsio.Delete(dir); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := os.Lstat(dir); err == nil {
			t.Errorf("Lstat(%q) error = nil, want not-exist", dir)
		}
	})

	t.Run("MissingPathIsNotAnError", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "never-created")
		if err := fsio.Delete(missing); err != nil {
			t.Errorf("Delete(%q) error = %v, want nil", missing, err)
		}
		fsio.DeleteIgnoreError(missing)
	})
}
