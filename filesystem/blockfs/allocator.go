package blockfs

import "github.com/diskfs/go-blockfs/util/bitmap32"

// allocInode claims the lowest-numbered free inode, persisting the updated
// bitmap and counter before returning.
func (fs *FileSystem) allocInode() (uint32, error) {
	if fs.sb.FreeInodeCount <= 0 {
		return 0, ErrOutOfInodes
	}
	bm := bitmap32.FromWords(fs.sb.InodeMap[:])
	loc := bm.FirstFree(0)
	if loc < 0 || loc >= InodeCount {
		return 0, ErrOutOfInodes
	}
	if err := bm.Set(loc); err != nil {
		return 0, err
	}
	copy(fs.sb.InodeMap[:], bm.Words())
	fs.sb.FreeInodeCount--
	if err := fs.storeSuperblock(); err != nil {
		return 0, err
	}
	return uint32(loc), nil
}

// allocBlock claims the lowest-numbered free block, persisting the updated
// bitmap and counter before returning.
func (fs *FileSystem) allocBlock() (uint32, error) {
	if fs.sb.FreeBlockCount <= 0 {
		return 0, ErrOutOfSpace
	}
	bm := bitmap32.FromWords(fs.sb.BlockMap[:])
	loc := bm.FirstFree(0)
	if loc < 0 || loc >= BlockCount {
		return 0, ErrOutOfSpace
	}
	if err := bm.Set(loc); err != nil {
		return 0, err
	}
	copy(fs.sb.BlockMap[:], bm.Words())
	fs.sb.FreeBlockCount--
	if err := fs.storeSuperblock(); err != nil {
		return 0, err
	}
	return uint32(loc), nil
}
