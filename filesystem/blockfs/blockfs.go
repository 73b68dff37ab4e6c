// Package blockfs implements the minimal UNIX-style block filesystem laid
// out directly on a device.Device: a single superblock, a fixed inode
// table, and directory blocks addressed through six block pointers per
// inode. There is no journal, no extents, and no free-space fragmentation
// handling - the whole design fits in one block-sized superblock.
package blockfs

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/diskfs/go-blockfs/device"
	"github.com/diskfs/go-blockfs/filesystem"
)

const (
	// BlockSize is the size, in bytes, of one logical filesystem block. Every
	// logical block occupies exactly two device sectors.
	BlockSize = 1024

	// BlockCount is the number of logical blocks addressable on a device
	// sized to device.Size.
	BlockCount = device.Size / BlockSize

	// SuperblockIndex is the logical block holding the superblock.
	SuperblockIndex = 0

	// InodeBlockStart is the first logical block of the inode table.
	InodeBlockStart = 1
	// InodeBlocksCount is the number of logical blocks occupied by the inode
	// table.
	InodeBlocksCount = 32
	// InodesPerBlock is the number of fixed-size inode records packed into
	// one inode table block.
	InodesPerBlock = 32
	// InodeCount is the total number of inodes the filesystem can hold.
	InodeCount = InodeBlocksCount * InodesPerBlock

	// RootDirBlock is the logical block holding the root directory's own
	// directory entries. It sits immediately after the inode table.
	RootDirBlock = InodeBlockStart + InodeBlocksCount

	// RootInode is the inode number of the filesystem root.
	RootInode = 0

	// DirItemsPerBlock is the number of directory entries a directory block
	// can hold. Only entry 0 of each child-bearing block is ever populated;
	// the remaining slots are a vestige of the on-disk format.
	DirItemsPerBlock = 8

	// BlockPointCount is the number of block pointers carried by an inode.
	BlockPointCount = 6

	// MaxNameLen is the longest name (in bytes) a directory entry can hold,
	// not counting the trailing NUL.
	MaxNameLen = 120

	// TypeFolder and TypeFile are the two values an inode's or directory
	// entry's type field may carry. Left as untyped constants since they are
	// assigned into both the uint8 DirItem.Type field and the uint16
	// Inode.FileType field.
	TypeFolder = 0
	TypeFile   = 1

	// DirValid and DirInvalid are the two values a directory entry's valid
	// field may carry.
	DirValid   uint16 = 1
	DirInvalid uint16 = 0

	// MagicNum identifies a formatted image when found at the head of the
	// superblock.
	MagicNum int32 = 180110318
)

// FileSystem is a handle onto a formatted (or about-to-be-formatted) image.
// It caches the superblock in memory and flushes it to disk on every
// operation that changes allocation state; callers do not need to call
// anything like Sync themselves.
type FileSystem struct {
	dev *device.Device
	sb  Superblock
	log *logrus.Entry
}

// Open wraps dev in a FileSystem handle and loads whatever superblock is
// currently on disk, formatted or not. Call Init to format an unformatted
// image, or IsFormatted to check first.
func Open(dev *device.Device) (*FileSystem, error) {
	fs := &FileSystem{
		dev: dev,
		log: logrus.WithField("device_id", dev.ID()),
	}
	if err := fs.loadSuperblock(); err != nil {
		return nil, err
	}
	return fs, nil
}

// readBlock reads logical block b from dev into a function-local 1024-byte
// buffer, assembled from the two device sectors 2b and 2b+1. The buffer is
// never shared across calls.
func readBlock(dev *device.Device, b int) ([BlockSize]byte, error) {
	var block [BlockSize]byte
	if b < 0 || b >= BlockCount {
		return block, fmt.Errorf("%w: block %d out of range", ErrIO, b)
	}
	var lo, hi [device.SectorSize]byte
	if err := dev.ReadSector(b*2, &lo); err != nil {
		return block, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := dev.ReadSector(b*2+1, &hi); err != nil {
		return block, fmt.Errorf("%w: %v", ErrIO, err)
	}
	copy(block[:device.SectorSize], lo[:])
	copy(block[device.SectorSize:], hi[:])
	return block, nil
}

// writeBlock splits block into the two device sectors backing logical block
// b and writes them both.
func writeBlock(dev *device.Device, b int, block [BlockSize]byte) error {
	if b < 0 || b >= BlockCount {
		return fmt.Errorf("%w: block %d out of range", ErrIO, b)
	}
	var lo, hi [device.SectorSize]byte
	copy(lo[:], block[:device.SectorSize])
	copy(hi[:], block[device.SectorSize:])
	if err := dev.WriteSector(b*2, &lo); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := dev.WriteSector(b*2+1, &hi); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Type reports the filesystem type, satisfying filesystem.FileSystem.
func (fs *FileSystem) Type() filesystem.Type {
	return filesystem.TypeBlockFS
}

// filesystem.FileSystem interface guard.
var _ filesystem.FileSystem = (*FileSystem)(nil)

// ReadBlock exposes the sector-pair codec for a single logical block.
func (fs *FileSystem) ReadBlock(b int) ([BlockSize]byte, error) {
	return readBlock(fs.dev, b)
}

// WriteBlock exposes the sector-pair codec for a single logical block.
func (fs *FileSystem) WriteBlock(b int, buf [BlockSize]byte) error {
	return writeBlock(fs.dev, b, buf)
}
