// Package fileutil provides the directory scanning used by the find and scan operations.
//
// Two shapes of scan are supported, both deterministic:
//
//   - ScanDirectory lists the regular files directly inside a directory and
//     returns them sorted by file name. Symlinks to regular files
//     count as files. This is how the find operation picks its .txt corpus.
//   - WalkFiles walks the whole tree depth-first with the entries of every
//     directory visited in lexical order, the order of fs.WalkDir. Only regular
//     files are reported; symlinks are not followed. This is how the scan
//     operation builds an archive listing.
//
// Usage:
//
//	result, err := fileutil.ScanDirectory(archiveDir, fileutil.ScanOptions{
//	    Extensions: []string{"txt"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, f := range result.Files {
//	    fmt.Println(f.Name)
//	}
//
// Streaming a recursive listing from a directory handle:
//
//	root, err := os.OpenRoot(dir)
//	...
//	err = fileutil.WalkFiles(root.FS(), func(rel string) error {
//	    _, err := fmt.Fprintln(w, "./"+rel)
//	    return err
//	})
//
// Extension matching is exact and case-sensitive ("txt" does not match "a.TXT").
// Every error aborts the scan; nothing is collected and skipped.
package fileutil
