package blockfs

import (
	"bytes"
	"encoding/binary"
)

// dirItemEncodedSize is the on-disk size, in bytes, of one directory entry.
const dirItemEncodedSize = 4 + 2 + 1 + (MaxNameLen + 1)

// DirItem is one entry in a directory block: the inode it names, whether
// the slot is in use, the kind of inode it names, and the name itself.
type DirItem struct {
	InodeID uint32
	Valid   uint16
	Type    uint8
	Name    [MaxNameLen + 1]byte
}

// NewDirItem builds a valid directory entry naming inodeID, failing if name
// does not fit in the fixed-width name field.
func NewDirItem(inodeID uint32, typ uint8, name string) (DirItem, error) {
	if len(name) > MaxNameLen {
		return DirItem{}, ErrNameTooLong
	}
	var d DirItem
	d.InodeID = inodeID
	d.Valid = DirValid
	d.Type = typ
	copy(d.Name[:], name)
	return d, nil
}

// NameString returns the entry's name as a Go string, stopping at the first
// NUL byte.
func (d DirItem) NameString() string {
	n := bytes.IndexByte(d.Name[:], 0)
	if n < 0 {
		n = len(d.Name)
	}
	return string(d.Name[:n])
}

func (d *DirItem) toBytes() [dirItemEncodedSize]byte {
	var b [dirItemEncodedSize]byte
	binary.LittleEndian.PutUint32(b[0x0:0x4], d.InodeID)
	binary.LittleEndian.PutUint16(b[0x4:0x6], d.Valid)
	b[0x6] = d.Type
	copy(b[0x7:], d.Name[:])
	return b
}

func dirItemFromBytes(b []byte) DirItem {
	var d DirItem
	d.InodeID = binary.LittleEndian.Uint32(b[0x0:0x4])
	d.Valid = binary.LittleEndian.Uint16(b[0x4:0x6])
	d.Type = b[0x6]
	copy(d.Name[:], b[0x7:0x7+MaxNameLen+1])
	return d
}

// ReadDir loads the DirItemsPerBlock entries packed into directory block b.
func (fs *FileSystem) ReadDir(b int) ([DirItemsPerBlock]DirItem, error) {
	var entries [DirItemsPerBlock]DirItem
	block, err := readBlock(fs.dev, b)
	if err != nil {
		return entries, err
	}
	for i := range entries {
		off := i * dirItemEncodedSize
		entries[i] = dirItemFromBytes(block[off : off+dirItemEncodedSize])
	}
	return entries, nil
}

// WriteDir packs entries into directory block b and writes it out whole.
func (fs *FileSystem) WriteDir(b int, entries [DirItemsPerBlock]DirItem) error {
	var block [BlockSize]byte
	for i, e := range entries {
		off := i * dirItemEncodedSize
		encoded := e.toBytes()
		copy(block[off:off+dirItemEncodedSize], encoded[:])
	}
	return writeBlock(fs.dev, b, block)
}
