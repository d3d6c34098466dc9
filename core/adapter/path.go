package adapter

import (
	"path/filepath"
	"strings"
)

// normalizePath turns any backslash into a forward slash so object paths look the
// same whatever the local separator is.
func normalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// objectPath joins targetDir and filename with the local separator, then normalizes.
// The join happens first so trailing separators in targetDir are cleaned the same way
// on every platform.
func objectPath(filename, targetDir string) string {
	p := filename
	if targetDir != "" {
		p = filepath.Join(targetDir, filename)
	}
	return normalizePath(p)
}
