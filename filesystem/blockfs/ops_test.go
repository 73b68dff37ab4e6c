package blockfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diskfs/go-blockfs/filesystem/blockfs"
)

// S1: fresh image -> ls / prints exactly . then .. (no other entries).
func TestFreshImageListsOnlyDotAndDotDot(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())

	entries, err := fs.Ls("/")
	require.NoError(t, err)
	require.Equal(t, []string{".", ".."}, entryNames(entries))
}

// S2: mkdir /a then ls / prints ., .., a in that order.
func TestMkdirThenLsRoot(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())
	require.NoError(t, fs.Mkdir("/a"))

	entries, err := fs.Ls("/")
	require.NoError(t, err)
	require.Equal(t, []string{".", "..", "a"}, entryNames(entries))
}

// S3: mkdir /a/b after S2 -> resolve /a/b yields a new inode; ls /a prints
// ., .., b.
func TestMkdirNestedThenLsChild(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())
	require.NoError(t, fs.Mkdir("/a"))
	require.NoError(t, fs.Mkdir("/a/b"))

	id, _, err := fs.ResolveDir("/a/b")
	require.NoError(t, err)
	require.NotZero(t, id)

	entries, err := fs.Ls("/a")
	require.NoError(t, err)
	require.Equal(t, []string{".", "..", "b"}, entryNames(entries))
}

// touch /a/f creates a regular file; cp /a/g /a/f duplicates its content
// blocks onto a freshly created /a/g, leaving /a/f untouched.
func TestTouchThenCp(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())
	require.NoError(t, fs.Mkdir("/a"))
	require.NoError(t, fs.Touch("/a/f"))

	// Touch alone never populates block_point; drive real content through it
	// directly (there is no public operation that writes file content) so Cp's
	// block-copy loop is actually exercised, not just its no-op empty-file path.
	srcID, _, err := fs.ResolveFile("/a/f")
	require.NoError(t, err)
	srcInode, err := fs.ReadInode(srcID)
	require.NoError(t, err)

	var content [blockfs.BlockSize]byte
	copy(content[:], "hello from f")
	const contentBlock = 4000
	require.NoError(t, fs.WriteBlock(contentBlock, content))
	srcInode.BlockPoint[0] = contentBlock
	require.NoError(t, fs.WriteInode(srcID, srcInode))

	require.NoError(t, fs.Cp("/a/g", "/a/f"))

	entries, err := fs.Ls("/a")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{".", "..", "f", "g"}, entryNames(entries))

	destID, _, err := fs.ResolveFile("/a/g")
	require.NoError(t, err)

	src, err := fs.ReadInode(srcID)
	require.NoError(t, err)
	dest, err := fs.ReadInode(destID)
	require.NoError(t, err)
	require.Equal(t, src.Size, dest.Size)
	require.Equal(t, src.FileType, dest.FileType)
	require.Equal(t, src.Link, dest.Link)
	require.NotZero(t, dest.BlockPoint[0])
	require.NotEqual(t, src.BlockPoint, dest.BlockPoint, "cp must allocate fresh blocks, not alias the source's")

	destContent, err := fs.ReadBlock(int(dest.BlockPoint[0]))
	require.NoError(t, err)
	require.Equal(t, content, destContent, "cp must copy the source block's content onto the new block")
}

// S5: five mkdir calls into the same parent succeed; the sixth fails with
// ErrDirFull (block_point[1..6) exhausted).
func TestFiveChildrenThenDirFull(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())

	for i := 0; i < 5; i++ {
		require.NoError(t, fs.Mkdir("/"+string(rune('a'+i))))
	}
	require.ErrorIs(t, fs.Mkdir("/z"), blockfs.ErrDirFull)
}

// mkdir then mkdir again on the same path fails with ErrAlreadyExists;
// the same holds for touch.
func TestDuplicateMkdirAndTouchRejected(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())

	require.NoError(t, fs.Mkdir("/a"))
	require.ErrorIs(t, fs.Mkdir("/a"), blockfs.ErrAlreadyExists)

	require.NoError(t, fs.Touch("/f"))
	require.ErrorIs(t, fs.Touch("/f"), blockfs.ErrAlreadyExists)
}

func TestMkdirMissingParentFails(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())

	require.ErrorIs(t, fs.Mkdir("/missing/child"), blockfs.ErrNotFound)
	require.ErrorIs(t, fs.Touch("/missing/child"), blockfs.ErrNotFound)
}

func TestCpFromFolderFails(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())
	require.NoError(t, fs.Mkdir("/d"))

	err := fs.Cp("/out", "/d")
	require.ErrorIs(t, err, blockfs.ErrNotAFile)
}

func TestCpMissingSourceFails(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())

	err := fs.Cp("/out", "/missing")
	require.ErrorIs(t, err, blockfs.ErrNotFound)
}

func TestCpOntoExistingFileKeepsDistinctInodes(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())
	require.NoError(t, fs.Touch("/src"))
	require.NoError(t, fs.Touch("/dst"))

	require.NoError(t, fs.Cp("/dst", "/src"))

	srcID, _, err := fs.ResolveFile("/src")
	require.NoError(t, err)
	dstID, _, err := fs.ResolveFile("/dst")
	require.NoError(t, err)
	require.NotEqual(t, srcID, dstID)
}

func TestShutdownSucceedsAfterMkdir(t *testing.T) {
	fs := newFileSystem(t)
	require.NoError(t, fs.Init())
	require.NoError(t, fs.Mkdir("/a"))
	require.NoError(t, fs.Shutdown())
}
