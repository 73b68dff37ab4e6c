package blockfs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuperblockByteRoundTrip(t *testing.T) {
	var sb Superblock
	sb.MagicNum = MagicNum
	sb.FreeBlockCount = 4062
	sb.FreeInodeCount = 1023
	sb.DirInodeCount = 1
	sb.BlockMap[0] = 0xFFFFFFFF
	sb.BlockMap[1] = 0xC0000000
	sb.InodeMap[0] = 0x80000000

	got := superblockFromBytes(sb.toBytes())
	require.Equal(t, sb, got)
}

func TestFormatMatchesKnownConstants(t *testing.T) {
	var fs FileSystem
	fs.Format()
	require.Equal(t, MagicNum, fs.sb.MagicNum)
	require.Equal(t, int32(4062), fs.sb.FreeBlockCount)
	require.Equal(t, int32(1023), fs.sb.FreeInodeCount)
	require.Equal(t, int32(1), fs.sb.DirInodeCount)
	require.Equal(t, uint32(0xFFFFFFFF), fs.sb.BlockMap[0])
	require.Equal(t, uint32(0xC0000000), fs.sb.BlockMap[1])
	require.Equal(t, uint32(0x80000000), fs.sb.InodeMap[0])
}

func TestInodeByteRoundTrip(t *testing.T) {
	in := Inode{Size: 3, FileType: TypeFolder, Link: 2}
	in.BlockPoint[0] = 33
	in.BlockPoint[1] = 40
	encoded := in.toBytes()
	require.Equal(t, in, inodeFromBytes(encoded[:]))
}

func TestDirItemByteRoundTripAndNameTooLong(t *testing.T) {
	d, err := NewDirItem(7, TypeFile, "report.txt")
	require.NoError(t, err)
	encoded := d.toBytes()
	got := dirItemFromBytes(encoded[:])
	require.Equal(t, d, got)
	require.Equal(t, "report.txt", got.NameString())

	_, err = NewDirItem(1, TypeFile, string(make([]byte, MaxNameLen+1)))
	require.ErrorIs(t, err, ErrNameTooLong)
}

func TestBlockAndInodeEncodedSizesFitOneBlock(t *testing.T) {
	require.Equal(t, BlockSize, InodesPerBlock*inodeEncodedSize)
	require.Equal(t, BlockSize, DirItemsPerBlock*dirItemEncodedSize)
}
