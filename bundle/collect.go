package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// AssetMap maps an asset key (file stem) to escaped file content.
type AssetMap map[string]string

// Collection is the outcome of scanning one asset directory.
type Collection struct {
	Dir    string
	Assets AssetMap
	// Files lists every file read, in the order it was read.
	Files []string
}

// Collect scans the immediate entries of dir, keeping the files accepted by
// include. Subdirectories are ignored. When two files share a stem the one
// read last wins; that is accepted rather than reported.
func Collect(dir string, include Filter) (*Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, dir, err)
	}

	c := &Collection{
		Dir:    dir,
		Assets: make(AssetMap),
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !include(path) {
			continue
		}

		content, err := readText(path)
		if err != nil {
			return nil, err
		}

		stem, _ := SplitName(entry.Name())
		c.Assets[stem] = Escape(content)
		c.Files = append(c.Files, path)
	}

	return c, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: not valid UTF-8 text", ErrFileUnreadable, path)
	}
	return string(data), nil
}
