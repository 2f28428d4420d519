package apperr

import "errors"

// Sentinel errors for the directory engine. Services wrap these with
// fmt.Errorf("...: %w", ...) and handlers map them to HTTP statuses with
// errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrConflictAbort      = errors.New("conflict: entity already exists")
	ErrCrossDiskOperation = errors.New("source and destination disks differ")
	ErrCircularReference  = errors.New("cannot move a folder into its own descendant")
	ErrProtectedResource  = errors.New("resource is protected")
	ErrInvalidTrashState  = errors.New("invalid trash state")
	ErrStorageBackend     = errors.New("storage backend error")
)
