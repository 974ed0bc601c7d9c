package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListTranscripts returns the transcript files in a directory: every regular
// file with a case-insensitive ".txt" extension, as full paths in name-sorted
// order. An empty slice is not an error; callers decide how to report it.
func ListTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	// ReadDir already sorts by name, but the ordering is part of the
	// contract, so make it explicit.
	sort.Strings(files)

	return files, nil
}
