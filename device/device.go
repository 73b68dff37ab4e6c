// Package device implements the fixed block-device contract the filesystem in
// filesystem/blockfs is built on: 8192 sectors of 512 bytes each, addressed only
// through Open, Close, ReadSector and WriteSector. It does not know anything about
// logical blocks, inodes or directories - that belongs to filesystem/blockfs.
package device

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/diskfs/go-blockfs/backend"
	backendfile "github.com/diskfs/go-blockfs/backend/file"
)

const (
	// SectorSize is the fixed size, in bytes, of a single device sector.
	SectorSize = 512
	// SectorCount is the fixed number of sectors on the device.
	SectorCount = 8192
	// Size is the total size, in bytes, of a conformant device image.
	Size = SectorSize * SectorCount
)

var (
	// ErrClosed is returned by any operation performed on a Device after Close.
	ErrClosed = errors.New("device: already closed")
	// ErrSectorRange is returned when a sector index falls outside [0, SectorCount).
	ErrSectorRange = errors.New("device: sector index out of range")
)

// Device is a sector-addressed store over a backend.Storage. It models the block
// device driver the filesystem treats as an opaque external collaborator: the
// filesystem never reasons about what is underneath a Device, only that sectors
// read back what was last written to them.
type Device struct {
	storage backend.Storage
	id      uuid.UUID
	log     *logrus.Entry
	closed  bool
}

// New wraps an already-open backend.Storage as a Device. The caller is
// responsible for ensuring the storage is exactly Size bytes.
func New(storage backend.Storage) *Device {
	id := uuid.New()
	return &Device{
		storage: storage,
		id:      id,
		log:     logrus.WithField("device_id", id.String()),
	}
}

// Open opens an existing device image file at path. The file must already be
// exactly Size bytes; it is not truncated or extended.
func Open(path string) (*Device, error) {
	storage, err := backendfile.OpenFromPath(path, false)
	if err != nil {
		return nil, fmt.Errorf("device: open %s: %w", path, err)
	}
	if err := checkSize(storage); err != nil {
		_ = storage.Close()
		return nil, err
	}
	return New(storage), nil
}

// Create creates a new device image file at path, sized to exactly Size bytes.
// The path must not already exist.
func Create(path string) (*Device, error) {
	storage, err := backendfile.CreateFromPath(path, Size)
	if err != nil {
		return nil, fmt.Errorf("device: create %s: %w", path, err)
	}
	return New(storage), nil
}

func checkSize(storage backend.Storage) error {
	info, err := storage.Stat()
	if err != nil {
		return fmt.Errorf("device: stat: %w", err)
	}
	if info.Size() != Size {
		return fmt.Errorf("device: image is %d bytes, want %d", info.Size(), Size)
	}
	return nil
}

// ID returns a run-scoped identifier for this open device handle. It is never
// persisted to the image; it exists purely to correlate log lines from one open
// session when multiple processes touch the same image over time.
func (d *Device) ID() uuid.UUID {
	return d.id
}

// ReadSector reads exactly SectorSize bytes from sector idx into buf.
func (d *Device) ReadSector(idx int, buf *[SectorSize]byte) error {
	if d.closed {
		return ErrClosed
	}
	if idx < 0 || idx >= SectorCount {
		return fmt.Errorf("%w: %d", ErrSectorRange, idx)
	}
	n, err := d.storage.ReadAt(buf[:], int64(idx)*SectorSize)
	if err != nil {
		d.log.WithError(err).WithField("sector", idx).Error("read_sector failed")
		return fmt.Errorf("device: read sector %d: %w", idx, err)
	}
	if n != SectorSize {
		return fmt.Errorf("device: short read on sector %d: got %d bytes", idx, n)
	}
	return nil
}

// WriteSector writes exactly SectorSize bytes from buf to sector idx.
func (d *Device) WriteSector(idx int, buf *[SectorSize]byte) error {
	if d.closed {
		return ErrClosed
	}
	if idx < 0 || idx >= SectorCount {
		return fmt.Errorf("%w: %d", ErrSectorRange, idx)
	}
	writable, err := d.storage.Writable()
	if err != nil {
		return fmt.Errorf("device: write sector %d: %w", idx, err)
	}
	n, err := writable.WriteAt(buf[:], int64(idx)*SectorSize)
	if err != nil {
		d.log.WithError(err).WithField("sector", idx).Error("write_sector failed")
		return fmt.Errorf("device: write sector %d: %w", idx, err)
	}
	if n != SectorSize {
		return fmt.Errorf("device: short write on sector %d: wrote %d bytes", idx, n)
	}
	return nil
}

// Close closes the underlying storage. Subsequent ReadSector/WriteSector calls
// fail with ErrClosed.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.storage.Close(); err != nil {
		d.log.WithError(err).Error("close failed")
		return fmt.Errorf("device: close: %w", err)
	}
	d.log.Info("device closed")
	return nil
}
