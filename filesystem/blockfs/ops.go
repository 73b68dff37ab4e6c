package blockfs

import (
	"errors"
	"fmt"
)

// Entry is one line of an Ls listing.
type Entry struct {
	InodeID uint32
	Type    uint8
	Name    string
}

// Init formats the image if it is not already formatted, then returns. It is
// idempotent: calling it again on an already-formatted image is a no-op.
//
// A fresh format lays down the superblock, then the root inode (a folder of
// size 1 whose sole populated block_point entry is RootDirBlock), then the
// root's own directory block holding a single "." entry. Root is the one
// folder in the filesystem whose block_point[0] is ever populated; every
// other folder's block_point[0] is permanently unused, reserved so that
// child entries always start at index 1 - see findEntry.
func (fs *FileSystem) Init() error {
	if err := fs.loadSuperblock(); err != nil {
		return err
	}
	if fs.IsFormatted() {
		fs.log.Info("init: already formatted")
		return nil
	}

	fs.Format()
	if err := fs.storeSuperblock(); err != nil {
		return err
	}

	root := Inode{Size: 1, FileType: TypeFolder, Link: 0}
	root.BlockPoint[0] = RootDirBlock
	if err := fs.WriteInode(RootInode, root); err != nil {
		return err
	}

	var items [DirItemsPerBlock]DirItem
	dot, err := NewDirItem(RootInode, TypeFolder, ".")
	if err != nil {
		return err
	}
	items[0] = dot
	if err := fs.WriteDir(RootDirBlock, items); err != nil {
		return err
	}

	fs.log.Info("init: formatted new image")
	return nil
}

// Ls lists the contents of the folder at path: "." and ".." always come
// first, followed by each child recorded in the folder's own block_point
// slots (slot 0 excluded - see Init).
func (fs *FileSystem) Ls(path string) ([]Entry, error) {
	if !fs.IsFormatted() {
		return nil, ErrNotFormatted
	}
	nodeID, parentID, _, err := fs.resolve(path, expectDir)
	if err != nil {
		fs.log.WithError(err).WithField("path", path).Warn("ls failed")
		return nil, err
	}
	inode, err := fs.ReadInode(nodeID)
	if err != nil {
		return nil, err
	}

	entries := []Entry{
		{InodeID: nodeID, Type: TypeFolder, Name: "."},
		{InodeID: parentID, Type: TypeFolder, Name: ".."},
	}
	for k := 1; k < int(inode.Size) && k < BlockPointCount; k++ {
		blockID := inode.BlockPoint[k]
		if blockID == 0 {
			continue
		}
		items, err := fs.ReadDir(int(blockID))
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.Valid == DirValid && item.Name[0] != 0 {
				entries = append(entries, Entry{InodeID: item.InodeID, Type: item.Type, Name: item.NameString()})
			}
		}
	}

	fs.log.WithField("path", path).WithField("count", len(entries)).Info("ls succeeded")
	return entries, nil
}

// addChild allocates a new inode and a new directory block for it, links the
// block into parent's first free block_point[1..6] slot, and writes the
// child-naming entry into that block. It returns the new inode's id.
func (fs *FileSystem) addChild(parentID uint32, name string, typ uint8) (uint32, error) {
	parent, err := fs.ReadInode(parentID)
	if err != nil {
		return 0, err
	}
	slot := -1
	for i := 1; i < BlockPointCount; i++ {
		if parent.BlockPoint[i] == 0 {
			slot = i
			break
		}
	}
	if slot < 0 {
		return 0, ErrDirFull
	}

	blockID, err := fs.allocBlock()
	if err != nil {
		return 0, err
	}
	childID, err := fs.allocInode()
	if err != nil {
		return 0, err
	}

	parent.BlockPoint[slot] = blockID
	parent.Size++
	if err := fs.WriteInode(parentID, parent); err != nil {
		return 0, err
	}

	var items [DirItemsPerBlock]DirItem
	entry, err := NewDirItem(childID, typ, name)
	if err != nil {
		return 0, err
	}
	items[0] = entry
	if err := fs.WriteDir(int(blockID), items); err != nil {
		return 0, err
	}

	child := Inode{Size: 1, FileType: typ, Link: 1}
	if err := fs.WriteInode(childID, child); err != nil {
		return 0, err
	}

	if typ == TypeFolder {
		fs.sb.DirInodeCount++
		if err := fs.storeSuperblock(); err != nil {
			return 0, err
		}
	}

	return childID, nil
}

// Mkdir creates a new, empty folder at path. It fails with ErrAlreadyExists
// if path already names a folder, and with ErrNotFound if path's parent
// does not exist.
func (fs *FileSystem) Mkdir(path string) error {
	if !fs.IsFormatted() {
		return ErrNotFormatted
	}
	if _, _, err := fs.ResolveDir(path); err == nil {
		return ErrAlreadyExists
	}

	parentID, name, err := fs.ResolveParent(path)
	if err != nil {
		fs.log.WithError(err).WithField("path", path).Warn("mkdir failed")
		return err
	}

	childID, err := fs.addChild(parentID, name, TypeFolder)
	if err != nil {
		fs.log.WithError(err).WithField("path", path).Warn("mkdir failed")
		return err
	}

	fs.log.WithField("path", path).WithField("inode", childID).Info("mkdir succeeded")
	return nil
}

// Touch creates a new, empty regular file at path. It fails with
// ErrAlreadyExists if path already names a file, and with ErrNotFound if
// path's parent does not exist.
func (fs *FileSystem) Touch(path string) error {
	if !fs.IsFormatted() {
		return ErrNotFormatted
	}
	if _, _, err := fs.ResolveFile(path); err == nil {
		return ErrAlreadyExists
	}

	parentID, name, err := fs.ResolveParent(path)
	if err != nil {
		fs.log.WithError(err).WithField("path", path).Warn("touch failed")
		return err
	}

	childID, err := fs.addChild(parentID, name, TypeFile)
	if err != nil {
		fs.log.WithError(err).WithField("path", path).Warn("touch failed")
		return err
	}

	fs.log.WithField("path", path).WithField("inode", childID).Info("touch succeeded")
	return nil
}

// Cp copies the content blocks of the regular file at src onto dest,
// creating dest via Touch first if it does not already exist. src must
// resolve to a regular file; copying from a folder fails with ErrNotAFile.
func (fs *FileSystem) Cp(dest, src string) error {
	if !fs.IsFormatted() {
		return ErrNotFormatted
	}

	srcID, err := fs.requireSourceFile(src)
	if err != nil {
		fs.log.WithError(err).WithField("src", src).Warn("cp failed")
		return err
	}
	srcInode, err := fs.ReadInode(srcID)
	if err != nil {
		return err
	}

	destID, _, err := fs.ResolveFile(dest)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			fs.log.WithError(err).WithField("dest", dest).Warn("cp failed")
			return err
		}
		if err := fs.Touch(dest); err != nil {
			return err
		}
		destID, _, err = fs.ResolveFile(dest)
		if err != nil {
			return err
		}
	}
	destInode, err := fs.ReadInode(destID)
	if err != nil {
		return err
	}

	destInode.Size = srcInode.Size
	destInode.FileType = srcInode.FileType
	destInode.Link = srcInode.Link
	for i := 0; i < BlockPointCount; i++ {
		if srcInode.BlockPoint[i] == 0 {
			destInode.BlockPoint[i] = 0
			continue
		}
		content, err := readBlock(fs.dev, int(srcInode.BlockPoint[i]))
		if err != nil {
			return err
		}
		newBlockID, err := fs.allocBlock()
		if err != nil {
			fs.log.WithError(err).WithField("dest", dest).Warn("cp failed")
			return err
		}
		if err := writeBlock(fs.dev, int(newBlockID), content); err != nil {
			return err
		}
		destInode.BlockPoint[i] = newBlockID
	}

	if err := fs.WriteInode(destID, destInode); err != nil {
		return err
	}

	fs.log.WithField("src", src).WithField("dest", dest).Info("cp succeeded")
	return nil
}

// Shutdown flushes the cached superblock to disk and closes the underlying
// device. The FileSystem must not be used afterward.
func (fs *FileSystem) Shutdown() error {
	if err := fs.storeSuperblock(); err != nil {
		return fmt.Errorf("blockfs: shutdown: %w", err)
	}
	if err := fs.dev.Close(); err != nil {
		return fmt.Errorf("blockfs: shutdown: %w", err)
	}
	fs.log.Info("shutdown: superblock flushed and device closed")
	return nil
}
