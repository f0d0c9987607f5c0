package reads

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ScanDirectories enumerates regular files directly inside each given
// directory (no recursion) whose name ends with one of the accepted
// extensions, returning filename mapped to absolute path. Files sharing a
// basename across directories overwrite one another; the last directory
// scanned wins. Collisions that matter surface later as duplicate sample
// IDs.
func ScanDirectories(dirs []string, extensions []string) (map[string]string, error) {
	files := make(map[string]string)
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("inspect path %q: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read directory %q: %w", dir, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if !hasAllowedExtension(name, extensions) {
				continue
			}
			if !isRegularFile(dir, entry) {
				continue
			}
			abs, err := filepath.Abs(filepath.Join(dir, name))
			if err != nil {
				return nil, fmt.Errorf("resolve path %q: %w", name, err)
			}
			files[name] = abs
		}
	}
	return files, nil
}

// isRegularFile reports whether entry is a regular file, following
// symlinks to their target. Broken links and links to directories are
// skipped.
func isRegularFile(dir string, entry fs.DirEntry) bool {
	entryType := entry.Type()
	if entryType&fs.ModeSymlink != 0 {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		return err == nil && info.Mode().IsRegular()
	}
	return entryType.IsRegular()
}

func hasAllowedExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
