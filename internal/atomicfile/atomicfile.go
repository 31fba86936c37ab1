// Package atomicfile replaces files without exposing partial writes.
package atomicfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the path of the copy kept by WriteFileBackup.
const BackupSuffix = ".bak"

// WriteFile writes data to a temporary file next to path and renames it into
// place, so readers see either the old or the new content.
//
// If perm is 0 the mode of the existing file is kept, falling back to 0644.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = existingMode(path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	// Not every filesystem supports chmod here.
	_ = tmp.Chmod(perm)

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Windows cannot rename over an existing file.
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(path)
		if err2 := os.Rename(tmpPath, path); err2 != nil {
			return fmt.Errorf("rename temp file: %w", err)
		}
	}

	committed = true
	return nil
}

// WriteFileBackup is WriteFile that first copies the current content of path
// to path+BackupSuffix. A missing original is not an error; there is simply
// nothing to back up. It returns the backup path, or "" when none was written.
func WriteFileBackup(path string, data []byte, perm os.FileMode) (string, error) {
	backup := ""
	original, err := os.ReadFile(path)
	switch {
	case err == nil:
		backup = path + BackupSuffix
		if err := WriteFile(backup, original, existingMode(path)); err != nil {
			return "", fmt.Errorf("write backup: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("read original: %w", err)
	}

	if err := WriteFile(path, data, perm); err != nil {
		return backup, err
	}
	return backup, nil
}

func existingMode(path string) os.FileMode {
	if st, err := os.Stat(path); err == nil {
		return st.Mode().Perm()
	}
	return 0o644
}
