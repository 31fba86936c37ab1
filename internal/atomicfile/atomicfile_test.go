package atomicfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.vcf")

	if err := WriteFile(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, []byte("second"), 0); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want second", got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteFileBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.vcf")

	backup, err := WriteFileBackup(path, []byte("v1"), 0)
	if err != nil {
		t.Fatalf("WriteFileBackup: %v", err)
	}
	if backup != "" {
		t.Errorf("backup = %q for a new file, want none", backup)
	}

	backup, err = WriteFileBackup(path, []byte("v2"), 0)
	if err != nil {
		t.Fatalf("WriteFileBackup: %v", err)
	}
	if backup != path+BackupSuffix {
		t.Errorf("backup = %q", backup)
	}

	old, _ := os.ReadFile(backup)
	current, _ := os.ReadFile(path)
	if string(old) != "v1" || string(current) != "v2" {
		t.Errorf("backup = %q, current = %q", old, current)
	}
}
