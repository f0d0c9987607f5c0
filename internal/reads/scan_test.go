package reads_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"qimu/internal/reads"
)

func writeReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("@read\nACGT\n+\n!!!!\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestScanDirectoriesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeReadFile(t, dir, "a.fastq")
	writeReadFile(t, dir, "b.fastq.gz")
	writeReadFile(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeReadFile(t, filepath.Join(dir, "nested"), "c.fastq")

	files, err := reads.ScanDirectories([]string{dir}, []string{".fastq", ".fastq.gz"})
	if err != nil {
		t.Fatalf("ScanDirectories: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if _, ok := files["a.fastq"]; !ok {
		t.Fatal("expected a.fastq in result")
	}
	if !filepath.IsAbs(files["a.fastq"]) {
		t.Fatalf("expected absolute path, got %q", files["a.fastq"])
	}
	if _, ok := files["c.fastq"]; ok {
		t.Fatal("scan must not recurse into subdirectories")
	}
}

func TestScanDirectoriesRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeReadFile(t, dir, "a.fastq")

	_, err := reads.ScanDirectories([]string{file}, []string{".fastq"})
	if !errors.Is(err, reads.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestScanDirectoriesLastDirectoryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeReadFile(t, first, "a.fastq")
	want := writeReadFile(t, second, "a.fastq")

	files, err := reads.ScanDirectories([]string{first, second}, []string{".fastq"})
	if err != nil {
		t.Fatalf("ScanDirectories: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected duplicate basename to collapse, got %v", files)
	}
	if files["a.fastq"] != want {
		t.Fatalf("expected last-scanned path %q, got %q", want, files["a.fastq"])
	}
}

func TestScanDirectoriesFollowsSymlinks(t *testing.T) {
	storage := t.TempDir()
	target := writeReadFile(t, storage, "a.fastq")
	if err := os.Mkdir(filepath.Join(storage, "run"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	dir := t.TempDir()
	if err := os.Symlink(target, filepath.Join(dir, "linked.fastq")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(storage, "run"), filepath.Join(dir, "dir.fastq")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(storage, "gone.fastq"), filepath.Join(dir, "broken.fastq")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	files, err := reads.ScanDirectories([]string{dir}, []string{".fastq"})
	if err != nil {
		t.Fatalf("ScanDirectories: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected only the file-backed link, got %v", files)
	}
	if files["linked.fastq"] != filepath.Join(dir, "linked.fastq") {
		t.Fatalf("expected link path under scanned directory, got %q", files["linked.fastq"])
	}
}

func TestScanDirectoriesNoMatchesYieldsEmptyMap(t *testing.T) {
	dir := t.TempDir()
	writeReadFile(t, dir, "reads.bam")

	files, err := reads.ScanDirectories([]string{dir}, []string{".fastq"})
	if err != nil {
		t.Fatalf("ScanDirectories: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected empty map, got %v", files)
	}
}
