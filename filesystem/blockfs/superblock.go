package blockfs

import (
	"encoding/binary"

	"github.com/diskfs/go-blockfs/util/bitmap32"
)

// blockMapWords and inodeMapWords size the two bitmaps carried in the
// superblock: one bit per logical block, one bit per inode.
const (
	blockMapWords = BlockCount / 32
	inodeMapWords = InodeCount / 32
)

// superblockEncodedSize is the number of bytes the fields below actually
// occupy inside the 1024-byte superblock block; the rest of the block is
// reserved and stays zeroed.
const superblockEncodedSize = 4*4 + blockMapWords*4 + inodeMapWords*4

// Superblock is the filesystem-wide metadata block: the format marker, the
// two free-space counters, the count of directory inodes in use, and the
// block/inode allocation bitmaps.
type Superblock struct {
	MagicNum       int32
	FreeBlockCount int32
	FreeInodeCount int32
	DirInodeCount  int32
	BlockMap       [blockMapWords]uint32
	InodeMap       [inodeMapWords]uint32
}

func (s *Superblock) toBytes() [BlockSize]byte {
	var b [BlockSize]byte
	binary.LittleEndian.PutUint32(b[0x0:0x4], uint32(s.MagicNum))
	binary.LittleEndian.PutUint32(b[0x4:0x8], uint32(s.FreeBlockCount))
	binary.LittleEndian.PutUint32(b[0x8:0xc], uint32(s.FreeInodeCount))
	binary.LittleEndian.PutUint32(b[0xc:0x10], uint32(s.DirInodeCount))
	off := 0x10
	for _, w := range s.BlockMap {
		binary.LittleEndian.PutUint32(b[off:off+4], w)
		off += 4
	}
	for _, w := range s.InodeMap {
		binary.LittleEndian.PutUint32(b[off:off+4], w)
		off += 4
	}
	return b
}

func superblockFromBytes(b [BlockSize]byte) Superblock {
	var s Superblock
	s.MagicNum = int32(binary.LittleEndian.Uint32(b[0x0:0x4]))
	s.FreeBlockCount = int32(binary.LittleEndian.Uint32(b[0x4:0x8]))
	s.FreeInodeCount = int32(binary.LittleEndian.Uint32(b[0x8:0xc]))
	s.DirInodeCount = int32(binary.LittleEndian.Uint32(b[0xc:0x10]))
	off := 0x10
	for i := range s.BlockMap {
		s.BlockMap[i] = binary.LittleEndian.Uint32(b[off : off+4])
		off += 4
	}
	for i := range s.InodeMap {
		s.InodeMap[i] = binary.LittleEndian.Uint32(b[off : off+4])
		off += 4
	}
	return s
}

func (fs *FileSystem) loadSuperblock() error {
	block, err := readBlock(fs.dev, SuperblockIndex)
	if err != nil {
		return err
	}
	fs.sb = superblockFromBytes(block)
	return nil
}

func (fs *FileSystem) storeSuperblock() error {
	return writeBlock(fs.dev, SuperblockIndex, fs.sb.toBytes())
}

// Load re-reads the superblock from disk, discarding the cached copy. Most
// callers never need this - FileSystem keeps its cache current as it
// performs operations - but it is useful after writing to the device out of
// band, e.g. in tests that poke at raw bytes.
func (fs *FileSystem) Load() error {
	return fs.loadSuperblock()
}

// Store flushes the cached superblock to disk.
func (fs *FileSystem) Store() error {
	return fs.storeSuperblock()
}

// IsFormatted reports whether the cached superblock carries the format
// marker.
func (fs *FileSystem) IsFormatted() bool {
	return fs.sb.MagicNum == MagicNum
}

// Format resets the cached superblock to a freshly formatted state: the
// magic number, the free counters for a single-root image, and the two
// bitmaps with exactly the bits a root-only image must already have set.
// It does not write anything to disk; callers pair it with Store (Init
// does both, plus writing the root inode and its directory block).
func (fs *FileSystem) Format() {
	fs.sb = Superblock{
		MagicNum:       MagicNum,
		FreeBlockCount: int32(BlockCount) - int32(InodeBlockStart+InodeBlocksCount+1),
		FreeInodeCount: int32(InodeCount) - 1,
		DirInodeCount:  1,
	}
	bm := bitmap32.NewWords(blockMapWords)
	for b := 0; b < InodeBlockStart+InodeBlocksCount+1; b++ {
		_ = bm.Set(b)
	}
	copy(fs.sb.BlockMap[:], bm.Words())

	im := bitmap32.NewWords(inodeMapWords)
	_ = im.Set(RootInode)
	copy(fs.sb.InodeMap[:], im.Words())
}
