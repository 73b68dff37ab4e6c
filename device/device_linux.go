//go:build linux

package device

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ioctl request numbers for querying block device sector sizes, mirroring
// github.com/diskfs/go-diskfs's diskfs.go (blksszGet/blkbszGet).
const (
	blkSSZGet = 0x1268
	blkBSZGet = 0x80081270
)

func sectorSizes(f *os.File) (logical, physical int64, err error) {
	fd := int(f.Fd())
	l, err := unix.IoctlGetInt(fd, blkSSZGet)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to get logical sector size: %w", err)
	}
	p, err := unix.IoctlGetInt(fd, blkBSZGet)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to get physical sector size: %w", err)
	}
	return int64(l), int64(p), nil
}

// OpenBlockDevice opens a real block device (e.g. /dev/loop0) as a Device,
// verifying via ioctl that its logical sector size matches SectorSize. Regular
// image files should use Open instead, which has no use for ioctls.
func OpenBlockDevice(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("device: open block device %s: %w", path, err)
	}
	logical, _, err := sectorSizes(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if logical != SectorSize {
		_ = f.Close()
		return nil, fmt.Errorf("device: %s reports logical sector size %d, want %d", path, logical, SectorSize)
	}
	_ = f.Close()
	return Open(path)
}
