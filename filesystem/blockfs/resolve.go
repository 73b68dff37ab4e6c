package blockfs

import "strings"

// terminalExpect selects what the final path component must resolve to.
type terminalExpect int

const (
	expectDir terminalExpect = iota
	expectParent
	expectFile
)

// splitPath breaks path into its non-empty components, so that repeated,
// leading and trailing slashes are all equivalent to their collapsed form.
func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	comps := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			comps = append(comps, p)
		}
	}
	return comps
}

// findEntry looks for name among the children recorded in parentID's
// directory blocks, skipping the reserved block_point[0] slot (see Init for
// why it is reserved).
func (fs *FileSystem) findEntry(parentID uint32, name string) (DirItem, error) {
	parent, err := fs.ReadInode(parentID)
	if err != nil {
		return DirItem{}, err
	}
	for k := 1; k < int(parent.Size) && k < BlockPointCount; k++ {
		blockID := parent.BlockPoint[k]
		if blockID == 0 {
			continue
		}
		items, err := fs.ReadDir(int(blockID))
		if err != nil {
			return DirItem{}, err
		}
		for _, item := range items {
			if item.Valid == DirValid && item.NameString() == name {
				return item, nil
			}
		}
	}
	return DirItem{}, ErrNotFound
}

// resolve is the single path walker behind ResolveDir, ResolveParent and
// ResolveFile. It walks every component but the last through folders only,
// then applies expect to the last component. It also returns the inode id
// of whichever folder hosts the resolved entry, for callers - Ls, in
// particular - that need a ".." target without re-walking the path.
func (fs *FileSystem) resolve(path string, expect terminalExpect) (nodeID, parentID uint32, name string, err error) {
	comps := splitPath(path)

	if len(comps) == 0 {
		// the root is a folder: it has no parent and is never a file.
		if expect != expectDir {
			return 0, 0, "", ErrNotFound
		}
		return RootInode, RootInode, "", nil
	}

	finalName := comps[len(comps)-1]
	if len(finalName) > MaxNameLen {
		return 0, 0, "", ErrNameTooLong
	}

	cur := uint32(RootInode)
	for _, c := range comps[:len(comps)-1] {
		if len(c) > MaxNameLen {
			return 0, 0, "", ErrNameTooLong
		}
		item, err := fs.findEntry(cur, c)
		if err != nil {
			return 0, 0, "", err
		}
		if item.Type != TypeFolder {
			return 0, 0, "", ErrNotFound
		}
		cur = item.InodeID
	}

	if expect == expectParent {
		return cur, cur, finalName, nil
	}

	item, err := fs.findEntry(cur, finalName)
	if err != nil {
		return 0, 0, "", err
	}
	var wantType uint8 = TypeFolder
	if expect == expectFile {
		wantType = TypeFile
	}
	if item.Type != wantType {
		return 0, 0, "", ErrNotFound
	}
	return item.InodeID, cur, finalName, nil
}

// ResolveDir walks path and returns the inode id of the folder it names.
// The empty path and "/" both resolve to the root, with an empty final name.
func (fs *FileSystem) ResolveDir(path string) (uint32, string, error) {
	id, _, name, err := fs.resolve(path, expectDir)
	return id, name, err
}

// ResolveParent walks every component of path but the last and returns the
// id of the folder that hosts (or would host) it, plus the last component
// itself. It fails if path has no final component to resolve, i.e. the
// root.
func (fs *FileSystem) ResolveParent(path string) (uint32, string, error) {
	id, _, name, err := fs.resolve(path, expectParent)
	return id, name, err
}

// ResolveFile walks path and returns the inode id of the regular file it
// names.
func (fs *FileSystem) ResolveFile(path string) (uint32, string, error) {
	id, _, name, err := fs.resolve(path, expectFile)
	return id, name, err
}

// requireSourceFile resolves src for Cp, distinguishing "no such entry"
// (ErrNotFound) from "entry exists but is a folder" (ErrNotAFile) - a
// distinction ResolveFile alone does not make, since it reports both cases
// as ErrNotFound.
func (fs *FileSystem) requireSourceFile(src string) (uint32, error) {
	parentID, name, err := fs.ResolveParent(src)
	if err != nil {
		return 0, err
	}
	item, err := fs.findEntry(parentID, name)
	if err != nil {
		return 0, err
	}
	if item.Type != TypeFile {
		return 0, ErrNotAFile
	}
	return item.InodeID, nil
}
