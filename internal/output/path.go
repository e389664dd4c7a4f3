package output

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultStem   = "predictions"
	DefaultSuffix = ".json"
)

// SplitDestination returns the directory, stem and suffix used to name chunk
// files for destination.
func SplitDestination(destination string) (dir, stem, suffix string) {
	clean := filepath.Clean(destination)
	dir = filepath.Dir(clean)
	base := filepath.Base(clean)

	if base == "." || base == string(filepath.Separator) {
		dir = clean
		base = ""
	}

	stem, suffix = splitExt(base)
	if stem == "" {
		stem = DefaultStem
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return dir, stem, suffix
}

// splitExt splits the final extension off name. A name whose only dot is the
// leading one, such as ".json", has no extension.
func splitExt(name string) (string, string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

// ChunkPath returns the file path for the chunk covering entries start..end.
func ChunkPath(destination string, start, end int) string {
	dir, stem, suffix := SplitDestination(destination)
	return filepath.Join(dir, fmt.Sprintf("%s_%d-%d%s", stem, start, end, suffix))
}
