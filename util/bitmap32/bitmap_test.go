package bitmap32

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetClearIsSet(t *testing.T) {
	bm := NewWords(2) // 64 bits
	set, err := bm.IsSet(0)
	require.NoError(t, err)
	require.False(t, set)

	require.NoError(t, bm.Set(0))
	set, err = bm.IsSet(0)
	require.NoError(t, err)
	require.True(t, set)

	// bit 0 of word 0 is the MSB, i.e. mask 0x80000000
	require.Equal(t, []uint32{0x80000000, 0}, bm.Words())

	require.NoError(t, bm.Clear(0))
	set, err = bm.IsSet(0)
	require.NoError(t, err)
	require.False(t, set)
}

func TestMSBFirstOrdering(t *testing.T) {
	bm := NewWords(1)
	require.NoError(t, bm.Set(31))
	require.Equal(t, []uint32{0x00000001}, bm.Words())

	bm2 := NewWords(1)
	require.NoError(t, bm2.Set(0))
	require.Equal(t, []uint32{0x80000000}, bm2.Words())
}

func TestFirstFree(t *testing.T) {
	bm := FromWords([]uint32{0xFFFFFFFF, 0xC0000000})
	require.Equal(t, 34, bm.FirstFree(0))
	require.Equal(t, 34, bm.FirstFree(32))
	require.Equal(t, -1, FromWords([]uint32{0xFFFFFFFF}).FirstFree(0))
}

func TestPopCount(t *testing.T) {
	bm := FromWords([]uint32{0xFFFFFFFF, 0xC0000000, 0x80000000})
	require.Equal(t, 32+2+1, bm.PopCount())
}

func TestOutOfRange(t *testing.T) {
	bm := NewWords(1)
	_, err := bm.IsSet(-1)
	require.Error(t, err)
	_, err = bm.IsSet(32)
	require.Error(t, err)
	require.Error(t, bm.Set(32))
	require.Error(t, bm.Clear(-1))
}
