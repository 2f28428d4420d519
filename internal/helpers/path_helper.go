package helpers

import (
	"fmt"
	"strings"
)

// Disk-scoped paths look like "diskID::/a/b/c". Folder paths always end in a
// separator, file paths never do. The trash folder of a disk sits at
// "diskID::.trash/".
const (
	DiskPrefixSeparator = "::"
	PathSeparator       = "/"
)

// DiskOfPath returns the disk id prefix of a full path.
func DiskOfPath(path string) (string, error) {
	idx := strings.Index(path, DiskPrefixSeparator)
	if idx <= 0 {
		return "", fmt.Errorf("path %q has no disk prefix", path)
	}
	return path[:idx], nil
}

// RootPath is the full path of a disk's root folder.
func RootPath(diskID string) string {
	return diskID + DiskPrefixSeparator + PathSeparator
}

// TrashPath is the full path of a disk's trash folder.
func TrashPath(diskID string) string {
	return diskID + DiskPrefixSeparator + ".trash" + PathSeparator
}

// SanitizePath collapses repeated separators and strips a single trailing
// separator after the disk prefix. The root path "diskID::/" is preserved.
// Segment names may not contain the disk prefix separator.
func SanitizePath(path string) (string, error) {
	idx := strings.Index(path, DiskPrefixSeparator)
	if idx <= 0 {
		return "", fmt.Errorf("path %q has no disk prefix", path)
	}
	prefix := path[:idx]
	rest := path[idx+len(DiskPrefixSeparator):]
	if strings.Contains(rest, DiskPrefixSeparator) {
		return "", fmt.Errorf("path %q contains a nested disk prefix", path)
	}
	for strings.Contains(rest, PathSeparator+PathSeparator) {
		rest = strings.ReplaceAll(rest, PathSeparator+PathSeparator, PathSeparator)
	}
	if rest != PathSeparator {
		rest = strings.TrimSuffix(rest, PathSeparator)
	}
	return prefix + DiskPrefixSeparator + rest, nil
}

// IsFolderPath reports whether a full path denotes a folder.
func IsFolderPath(path string) bool {
	return strings.HasSuffix(path, PathSeparator)
}

// SplitPath splits a full path into the parent folder path and the leaf name.
// The parent path keeps its trailing separator. Splitting a disk root returns
// the root itself with an empty leaf.
func SplitPath(path string) (parentPath, leafName string) {
	trimmed := strings.TrimSuffix(path, PathSeparator)
	idx := strings.LastIndex(trimmed, PathSeparator)
	if idx < 0 {
		// "diskID::.trash" style paths directly under the prefix.
		pfx := strings.Index(trimmed, DiskPrefixSeparator)
		if pfx >= 0 && pfx+len(DiskPrefixSeparator) < len(trimmed) {
			return trimmed[:pfx+len(DiskPrefixSeparator)], trimmed[pfx+len(DiskPrefixSeparator):]
		}
		return path, ""
	}
	return trimmed[:idx+1], trimmed[idx+1:]
}

// JoinPath appends a leaf name to a folder path, keeping the folder-paths-end-
// in-separator convention.
func JoinPath(parentPath, name string, isFolder bool) string {
	p := parentPath
	if !strings.HasSuffix(p, PathSeparator) {
		p += PathSeparator
	}
	if isFolder {
		return p + name + PathSeparator
	}
	return p + name
}

// ClipPath shortens a full path for breadcrumb display, collapsing
// intermediate segments to "..": "disk::/a/b/c.txt" -> "disk::/../c.txt".
func ClipPath(fullPath string) string {
	idx := strings.Index(fullPath, DiskPrefixSeparator)
	if idx <= 0 {
		return fullPath
	}
	prefix := fullPath[:idx+len(DiskPrefixSeparator)]
	rest := strings.TrimPrefix(fullPath[idx+len(DiskPrefixSeparator):], PathSeparator)
	isFolder := strings.HasSuffix(rest, PathSeparator)
	rest = strings.TrimSuffix(rest, PathSeparator)
	if rest == "" {
		return prefix + PathSeparator
	}
	segments := strings.Split(rest, PathSeparator)
	leaf := segments[len(segments)-1]
	if isFolder {
		leaf += PathSeparator
	}
	if len(segments) <= 1 {
		return prefix + PathSeparator + leaf
	}
	return prefix + PathSeparator + ".." + PathSeparator + leaf
}

// PathSegments returns the segments of a path below the disk prefix.
func PathSegments(path string) []string {
	idx := strings.Index(path, DiskPrefixSeparator)
	if idx < 0 {
		return nil
	}
	rest := strings.Trim(path[idx+len(DiskPrefixSeparator):], PathSeparator)
	if rest == "" {
		return nil
	}
	return strings.Split(rest, PathSeparator)
}

// SplitExtension splits a file name into base and extension (without the dot).
// Names with no dot, or a leading dot only, have no extension.
func SplitExtension(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
