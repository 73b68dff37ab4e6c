package blockfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diskfs/go-blockfs/filesystem/blockfs"
)

func TestMkdirAllocatesLowestFreeInodeAndBlock(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())
	require.NoError(t, fs.Mkdir("/a"))

	entries, err := fs.Ls("/")
	require.NoError(t, err)
	var found blockfs.Entry
	for _, e := range entries {
		if e.Name == "a" {
			found = e
		}
	}
	// inode 0 is root; the next free inode is 1.
	require.Equal(t, uint32(1), found.InodeID)

	// blocks 0..RootDirBlock are taken by a fresh format; the next free block
	// is linked into root's first child slot.
	root, err := fs.ReadInode(blockfs.RootInode)
	require.NoError(t, err)
	require.Equal(t, uint32(blockfs.RootDirBlock+1), root.BlockPoint[1])
}

func TestDirectoryFillsUpAfterFiveChildren(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())

	for i := 0; i < 5; i++ {
		require.NoError(t, fs.Mkdir(fmt.Sprintf("/child%d", i)))
	}
	err := fs.Mkdir("/child5")
	require.ErrorIs(t, err, blockfs.ErrDirFull)

	entries, err := fs.Ls("/")
	require.NoError(t, err)
	require.Len(t, entries, 2+5)
}

func TestOutOfInodesAfterTableExhausted(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())

	// Root can only ever hold 5 direct children (block_point[1..6)); nest
	// folders one per level so each consumes exactly one inode without
	// hitting ErrDirFull, until the 1024-entry inode table is exhausted.
	path := ""
	created := 0
	for {
		next := path + "/d"
		err := fs.Mkdir(next)
		if err != nil {
			require.ErrorIs(t, err, blockfs.ErrOutOfInodes)
			break
		}
		path = next
		created++
	}
	// one inode is root; the rest are available for allocation.
	require.Equal(t, blockfs.InodeCount-1, created)
}
