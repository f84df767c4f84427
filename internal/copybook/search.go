package copybook

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FSSearcher finds copybooks on the local filesystem. Folders may be glob
// patterns ("copy/*", "lib/**"); relative folders are taken from Root, or
// from the storage path when Root is empty.
type FSSearcher struct {
	Root string
}

// Search implements SearchFunc. Folders are tried in order and, within a
// folder, extensions are tried in order; the first regular file wins.
func (s FSSearcher) Search(name string, folders, extensions []string, storagePath string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) {
		return "", false
	}
	base := s.Root
	if strings.TrimSpace(base) == "" {
		base = storagePath
	}
	for _, folder := range folders {
		for _, dir := range expandFolder(base, folder) {
			for _, ext := range extensions {
				candidate := filepath.Join(dir, name+ext)
				if isRegularFile(candidate) {
					return candidate, true
				}
			}
		}
	}
	return "", false
}

func expandFolder(base, folder string) []string {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return nil
	}
	if !filepath.IsAbs(folder) && base != "" {
		folder = filepath.Join(base, folder)
	}
	if !containsGlob(folder) {
		return []string{folder}
	}
	matches, err := doublestar.FilepathGlob(folder)
	if err != nil {
		return nil
	}
	dirs := matches[:0]
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			dirs = append(dirs, m)
		}
	}
	sort.Strings(dirs)
	return dirs
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
