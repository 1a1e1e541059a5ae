package hmcreport

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindInputFiles lists the workbooks directly inside dir. Files are grouped
// by extension in the order of exts and sorted by name within a group.
// Extensions may be given with or without the leading dot. A missing
// directory yields no files.
func FindInputFiles(dir string, exts []string) ([]string, error) {
	exts = NormalizeExtensions(exts)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, ext := range exts {
		var group []string
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), "~$") {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ext) {
				group = append(group, filepath.Join(dir, e.Name()))
			}
		}
		sort.Strings(group)
		files = append(files, group...)
	}

	return files, nil
}

// NormalizeExtensions trims each extension, adds the missing leading dot and
// drops blanks and duplicates, keeping the first occurrence.
func NormalizeExtensions(exts []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		key := strings.ToLower(ext)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ext)
	}
	return out
}
