// Package scaffold materializes the project skeleton on disk without ever
// overwriting what is already there.
package scaffold

import (
	"fmt"
	"path"
)

// contentFunc returns placeholder content for the file at relPath.
type contentFunc func(relPath string) []byte

var placeholders = map[string]contentFunc{
	".dart": sourceStub,
	".json": emptyJSONObject,
}

// Placeholder returns the content a newly created file at relPath receives.
// Extensions without a rule get an empty file. Matching is case-sensitive.
func Placeholder(relPath string) []byte {
	fn, ok := placeholders[path.Ext(relPath)]
	if !ok {
		return nil
	}
	return fn(relPath)
}

func sourceStub(relPath string) []byte {
	return []byte(fmt.Sprintf("// %s file\n", path.Base(relPath)))
}

func emptyJSONObject(string) []byte {
	return []byte("{}")
}
