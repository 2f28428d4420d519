package models

// ConflictPolicy governs naming collisions on create/move/copy/restore.
type ConflictPolicy string

const (
	ConflictReplace      ConflictPolicy = "replace"
	ConflictKeepNewer    ConflictPolicy = "keep_newer"
	ConflictKeepOriginal ConflictPolicy = "keep_original"
	ConflictKeepBoth     ConflictPolicy = "keep_both"
)

// NormalizeConflictPolicy maps the empty value to the KEEP_BOTH default.
func NormalizeConflictPolicy(p ConflictPolicy) ConflictPolicy {
	if p == "" {
		return ConflictKeepBoth
	}
	return p
}
