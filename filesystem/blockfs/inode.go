package blockfs

import (
	"encoding/binary"
	"fmt"
)

// inodeEncodedSize is the on-disk size, in bytes, of one inode record.
const inodeEncodedSize = 4 + 2 + 2 + BlockPointCount*4

// Inode is a single filesystem object: a file or a folder. Size is never
// interpreted as a byte length. For a folder it is one more than the number
// of child blocks linked into BlockPoint[1:], and Ls and the path resolver
// scan BlockPoint[1:Size]; for a file it is carried verbatim (Cp copies it).
type Inode struct {
	Size       uint32
	FileType   uint16
	Link       uint16
	BlockPoint [BlockPointCount]uint32
}

func (i *Inode) toBytes() [inodeEncodedSize]byte {
	var b [inodeEncodedSize]byte
	binary.LittleEndian.PutUint32(b[0x0:0x4], i.Size)
	binary.LittleEndian.PutUint16(b[0x4:0x6], i.FileType)
	binary.LittleEndian.PutUint16(b[0x6:0x8], i.Link)
	off := 0x8
	for _, bp := range i.BlockPoint {
		binary.LittleEndian.PutUint32(b[off:off+4], bp)
		off += 4
	}
	return b
}

func inodeFromBytes(b []byte) Inode {
	var i Inode
	i.Size = binary.LittleEndian.Uint32(b[0x0:0x4])
	i.FileType = binary.LittleEndian.Uint16(b[0x4:0x6])
	i.Link = binary.LittleEndian.Uint16(b[0x6:0x8])
	off := 0x8
	for k := range i.BlockPoint {
		i.BlockPoint[k] = binary.LittleEndian.Uint32(b[off : off+4])
		off += 4
	}
	return i
}

func inodeBlockFor(id uint32) int {
	return InodeBlockStart + int(id)/InodesPerBlock
}

func inodeSlotFor(id uint32) int {
	return int(id) % InodesPerBlock
}

// ReadInode loads inode id from its table block.
func (fs *FileSystem) ReadInode(id uint32) (Inode, error) {
	if id >= InodeCount {
		return Inode{}, fmt.Errorf("blockfs: inode %d out of range", id)
	}
	block, err := readBlock(fs.dev, inodeBlockFor(id))
	if err != nil {
		return Inode{}, err
	}
	slot := inodeSlotFor(id)
	return inodeFromBytes(block[slot*inodeEncodedSize : (slot+1)*inodeEncodedSize]), nil
}

// WriteInode stores inode at id, read-modify-writing the table block it
// lives in since other inodes share that block.
func (fs *FileSystem) WriteInode(id uint32, inode Inode) error {
	if id >= InodeCount {
		return fmt.Errorf("blockfs: inode %d out of range", id)
	}
	blockID := inodeBlockFor(id)
	block, err := readBlock(fs.dev, blockID)
	if err != nil {
		return err
	}
	slot := inodeSlotFor(id)
	encoded := inode.toBytes()
	copy(block[slot*inodeEncodedSize:(slot+1)*inodeEncodedSize], encoded[:])
	return writeBlock(fs.dev, blockID, block)
}
