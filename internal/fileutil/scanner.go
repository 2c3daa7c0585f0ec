package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., "txt", ".txt").
	// Matching is exact and case-sensitive. Empty means every file.
	Extensions []string
}

// Entry is one file found by a scan.
type Entry struct {
	// Path is the file path, rooted at the scanned directory
	Path string
	// Name is the base name of the file
	Name string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files holds the matched files sorted by Name
	Files []Entry
}

// ScanDirectory lists the regular files directly inside dir that match the
// provided options. Symlinks to regular files count as files. Any error met
// while scanning aborts the scan.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{
		Files: make([]Entry, 0),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	extMap := extensionSet(opts.Extensions)

	for _, entry := range entries {
		name := entry.Name()
		if !matchesExtension(extMap, name) {
			continue
		}

		path := filepath.Join(dir, name)

		// Stat follows symlinks so a link to a regular file counts as one.
		fi, err := os.Stat(path)
		if err != nil {
			if entry.Type()&fs.ModeSymlink != 0 && os.IsNotExist(err) {
				continue // dangling link
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !fi.Mode().IsRegular() {
			continue
		}

		result.Files = append(result.Files, Entry{Path: path, Name: name})
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Name < result.Files[j].Name
	})

	return result, nil
}

// WalkFiles walks fsys from its root and calls fn with the slash-separated
// path of every regular file, in fs.WalkDir order: depth-first, entries of
// each directory in lexical order. Directories are traversed but not reported;
// symlinks are neither followed nor reported. The first error from the walk
// or from fn stops it and is returned.
func WalkFiles(fsys fs.FS, fn func(rel string) error) error {
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		return fn(path)
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}

	return nil
}

// Extension returns the extension of name without the leading dot.
// A name whose only dot is the first character (".profile") has none.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

func extensionSet(exts []string) map[string]bool {
	extMap := make(map[string]bool)
	for _, ext := range exts {
		extMap[strings.TrimPrefix(ext, ".")] = true
	}
	return extMap
}

func matchesExtension(extMap map[string]bool, name string) bool {
	if len(extMap) == 0 {
		return true
	}
	return extMap[Extension(name)]
}
