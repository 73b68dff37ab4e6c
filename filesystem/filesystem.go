// Package filesystem provides the constants shared across filesystem
// implementations in subpackages, e.g. github.com/diskfs/go-blockfs/filesystem/blockfs.
package filesystem

import "errors"

var (
	// ErrNotSupported is returned for an operation a filesystem implementation
	// does not support at all (as opposed to one that simply failed).
	ErrNotSupported = errors.New("method not supported by this filesystem")
	// ErrReadonlyFilesystem is returned when a mutating operation is attempted
	// against a filesystem opened read-only.
	ErrReadonlyFilesystem = errors.New("read-only filesystem")
)

// Type represents the type of filesystem found on, or written to, a device.
type Type int

const (
	// TypeBlockFS is the minimal UNIX-style block filesystem implemented in
	// the blockfs subpackage.
	TypeBlockFS Type = iota
)

// FileSystem is the minimal contract shared across filesystem implementations
// in subpackages. Trimmed from the teacher's much larger interface down to
// what this module's single implementation actually needs: Mknod, Link,
// Chmod, Chown, Rename, Remove, Label/SetLabel all named features this
// module's Non-goals exclude (symlinks, ownership, renaming, deletion,
// labels).
type FileSystem interface {
	// Type returns the type of filesystem.
	Type() Type
}
