package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diskfs/go-blockfs/device"
	"github.com/diskfs/go-blockfs/testhelper"
)

func TestReadWriteSectorRoundTrip(t *testing.T) {
	mem := testhelper.NewMemStorage(device.Size)
	d := device.New(mem)
	defer d.Close()

	var buf [device.SectorSize]byte
	for i := range buf {
		buf[i] = byte(i % 251)
	}
	require.NoError(t, d.WriteSector(5, &buf))

	var out [device.SectorSize]byte
	require.NoError(t, d.ReadSector(5, &out))
	require.Equal(t, buf, out)

	// unwritten sector stays zero
	var zero, other [device.SectorSize]byte
	require.NoError(t, d.ReadSector(6, &other))
	require.Equal(t, zero, other)
}

func TestSectorRangeValidation(t *testing.T) {
	mem := testhelper.NewMemStorage(device.Size)
	d := device.New(mem)
	defer d.Close()

	var buf [device.SectorSize]byte
	require.Error(t, d.ReadSector(-1, &buf))
	require.Error(t, d.ReadSector(device.SectorCount, &buf))
	require.Error(t, d.WriteSector(-1, &buf))
	require.Error(t, d.WriteSector(device.SectorCount, &buf))
}

func TestOperationsFailAfterClose(t *testing.T) {
	mem := testhelper.NewMemStorage(device.Size)
	d := device.New(mem)
	require.NoError(t, d.Close())
	require.NoError(t, d.Close()) // idempotent

	var buf [device.SectorSize]byte
	require.ErrorIs(t, d.ReadSector(0, &buf), device.ErrClosed)
	require.ErrorIs(t, d.WriteSector(0, &buf), device.ErrClosed)
}

func TestIDIsStableAndUnique(t *testing.T) {
	d1 := device.New(testhelper.NewMemStorage(device.Size))
	d2 := device.New(testhelper.NewMemStorage(device.Size))
	require.Equal(t, d1.ID(), d1.ID())
	require.NotEqual(t, d1.ID(), d2.ID())
}
