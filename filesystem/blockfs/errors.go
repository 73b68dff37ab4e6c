package blockfs

import "errors"

// Sentinel errors returned by FileSystem operations. Callers should compare
// against these with errors.Is rather than matching error strings.
var (
	// ErrIO wraps a failure reading or writing a sector through the
	// underlying device.
	ErrIO = errors.New("blockfs: device i/o error")

	// ErrNotFormatted is returned by Ls, Mkdir, Touch and Cp when the image's
	// superblock does not carry MagicNum.
	ErrNotFormatted = errors.New("blockfs: image is not formatted")

	// ErrNotFound is returned when a path component does not resolve to any
	// directory entry, or an intermediate component is not a folder.
	ErrNotFound = errors.New("blockfs: no such file or directory")

	// ErrAlreadyExists is returned by Mkdir and Touch when the target path
	// already resolves to an entry of the expected kind.
	ErrAlreadyExists = errors.New("blockfs: already exists")

	// ErrOutOfInodes is returned when the inode bitmap has no free inode
	// left to allocate.
	ErrOutOfInodes = errors.New("blockfs: no free inodes")

	// ErrOutOfSpace is returned when the block bitmap cannot satisfy a
	// block allocation request.
	ErrOutOfSpace = errors.New("blockfs: no free blocks")

	// ErrDirFull is returned by Mkdir and Touch when a parent folder's
	// block_point[1..6] slots are all occupied.
	ErrDirFull = errors.New("blockfs: directory has no free entry slots")

	// ErrNotAFile is returned when Cp's source resolves to a folder rather
	// than a regular file.
	ErrNotAFile = errors.New("blockfs: source is not a regular file")

	// ErrNameTooLong is returned when a path component exceeds MaxNameLen
	// bytes.
	ErrNameTooLong = errors.New("blockfs: path component too long")
)
