package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindAncestorFile looks for filename in the directory containing startPath
// and then in each parent directory up to and including the filesystem root.
// It returns the first path found, or "" if no directory contains filename.
func FindAncestorFile(startPath, filename string) (string, error) {
	path := startPath
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	dir := filepath.Dir(path)
	for {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// NormalizeLexical removes "." and ".." components from path without touching
// the filesystem. A ".." pops the last accumulated component; popping an
// empty accumulator does nothing, so unbalanced ".." sequences are dropped
// rather than reported.
func NormalizeLexical(path string) string {
	volume := filepath.VolumeName(path)
	rest := path[len(volume):]

	root := ""
	if rest != "" && os.IsPathSeparator(rest[0]) {
		root = string(filepath.Separator)
	}

	var parts []string
	for _, component := range strings.FieldsFunc(rest, isSeparator) {
		switch component {
		case ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, component)
		}
	}

	return volume + root + strings.Join(parts, string(filepath.Separator))
}

// SameFile reports whether a and b name the same file on disk. Paths that
// cannot be stat'ed are never the same file.
func SameFile(a, b string) bool {
	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}
