// Package testhelper provides stand-ins for backend.Storage used across this
// module's tests, so that no test has to touch a real file on disk.
package testhelper

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/diskfs/go-blockfs/backend"
)

// MemStorage implements backend.Storage over an in-memory byte slice. It
// replaces github.com/diskfs/go-diskfs's testhelper.FileImpl, which stubbed
// out the pre-backend.Storage util.File interface with caller-supplied
// reader/writer funcs; here the backing bytes are owned outright so tests can
// inspect them directly after a filesystem operation.
type MemStorage struct {
	buf      []byte
	pos      int64
	readOnly bool
}

// NewMemStorage creates a MemStorage of exactly size bytes, all zeroed.
func NewMemStorage(size int64) *MemStorage {
	return &MemStorage{buf: make([]byte, size)}
}

// Bytes returns the live backing slice - mutations by the filesystem under
// test are visible through it immediately, no Sync() required.
func (m *MemStorage) Bytes() []byte {
	return m.buf
}

// memFileInfo implements fs.FileInfo for MemStorage.Stat.
type memFileInfo struct{ size int64 }

func (i memFileInfo) Name() string       { return "memstorage" }
func (i memFileInfo) Size() int64        { return i.size }
func (i memFileInfo) Mode() fs.FileMode  { return 0o600 }
func (i memFileInfo) ModTime() time.Time { return time.Time{} }
func (i memFileInfo) IsDir() bool        { return false }
func (i memFileInfo) Sys() interface{}   { return nil }

func (m *MemStorage) Stat() (fs.FileInfo, error) {
	return memFileInfo{size: int64(len(m.buf))}, nil
}

func (m *MemStorage) Read(b []byte) (int, error) {
	n, err := m.ReadAt(b, m.pos)
	m.pos += int64(n)
	return n, err
}

func (m *MemStorage) ReadAt(b []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(b, m.buf[off:])
	if n < len(b) {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemStorage) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = m.pos + offset
	case io.SeekEnd:
		pos = int64(len(m.buf)) + offset
	default:
		return 0, errors.New("memstorage: invalid whence")
	}
	m.pos = pos
	return pos, nil
}

func (m *MemStorage) Close() error {
	return nil
}

func (m *MemStorage) Sys() (*os.File, error) {
	return nil, backend.ErrNotSuitable
}

func (m *MemStorage) Writable() (backend.WritableFile, error) {
	if m.readOnly {
		return nil, backend.ErrIncorrectOpenMode
	}
	return memWritable{m}, nil
}

type memWritable struct {
	m *MemStorage
}

func (w memWritable) Stat() (fs.FileInfo, error) { return w.m.Stat() }
func (w memWritable) Read(b []byte) (int, error) { return w.m.Read(b) }
func (w memWritable) ReadAt(b []byte, off int64) (int, error) { return w.m.ReadAt(b, off) }
func (w memWritable) Seek(off int64, whence int) (int64, error) { return w.m.Seek(off, whence) }
func (w memWritable) Close() error { return w.m.Close() }

func (w memWritable) WriteAt(b []byte, off int64) (int, error) {
	m := w.m
	if off < 0 {
		return 0, errors.New("memstorage: negative offset")
	}
	end := off + int64(len(b))
	if end > int64(len(m.buf)) {
		return 0, errors.New("memstorage: write beyond fixed size")
	}
	return copy(m.buf[off:end], b), nil
}

var (
	_ backend.Storage      = (*MemStorage)(nil)
	_ backend.WritableFile = memWritable{}
)
