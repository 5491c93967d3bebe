// Package compdb checks whether a source file is listed in a
// compile_commands.json compilation database.
package compdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noperator/run-cppcheck/pkg/pathutil"
	"github.com/tidwall/gjson"
)

var ErrNotArray = errors.New("compilation database is not a JSON array")

// Match is the outcome of looking a file up in a compilation database.
type Match struct {
	// Applicable is false when the project file is not a .json database and
	// no lookup was performed.
	Applicable bool `json:"applicable"`
	Listed     bool `json:"listed"`
	// Entries is the number of entries examined before the lookup stopped.
	Entries int `json:"entries"`
	// File is the database entry that matched, as written in the database
	// (joined with its directory when relative).
	File string `json:"file,omitempty"`
}

// Lookup reads the compilation database at projectFile and reports whether
// filename appears in it. Entries are compared by filesystem identity, so
// differently spelled paths to the same file match.
func Lookup(projectFile, filename string) (Match, error) {
	var m Match
	if projectFile == "" || filepath.Ext(projectFile) != ".json" {
		return m, nil
	}
	m.Applicable = true

	content, err := os.ReadFile(projectFile)
	if err != nil {
		return m, err
	}
	if !gjson.ValidBytes(content) {
		return m, fmt.Errorf("%s: invalid JSON", projectFile)
	}

	doc := gjson.ParseBytes(content)
	if !doc.IsArray() {
		return m, ErrNotArray
	}

	for i, entry := range doc.Array() {
		if !entry.IsObject() {
			return m, fmt.Errorf("entry %d is not a JSON object", i)
		}
		m.Entries++

		file := entry.Get("file")
		if file.Type != gjson.String {
			continue
		}

		path := file.Str
		if dir := entry.Get("directory"); !filepath.IsAbs(path) && dir.Type == gjson.String {
			path = filepath.Join(dir.Str, path)
		}

		if pathutil.SameFile(path, filename) {
			m.Listed = true
			m.File = path
			return m, nil
		}
	}

	return m, nil
}
