package bootmem

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/frames/memutils"
)

func TestAllocatorAlloc(t *testing.T) {
	allocator, err := New(Region{Base: 0x8000, Length: 64, Type: RegionAvailable})
	require.NoError(t, err)

	addr, err := allocator.Alloc(3)
	require.NoError(t, err)
	require.Equal(t, uintptr(0x8000), addr)

	// Allocations are word-aligned
	addr, err = allocator.Alloc(memutils.WordSize)
	require.NoError(t, err)
	require.Equal(t, uintptr(0x8000+memutils.WordSize), addr)
	require.Equal(t, 2*memutils.WordSize, allocator.Used())
	require.Equal(t, 64-2*memutils.WordSize, allocator.Remaining())

	_, err = allocator.Alloc(64)
	require.ErrorIs(t, err, ErrOutOfMemory)

	addr, err = allocator.Alloc(allocator.Remaining())
	require.NoError(t, err)
	require.Equal(t, uintptr(0x8000+2*memutils.WordSize), addr)
	require.Zero(t, allocator.Remaining())

	_, err = allocator.Alloc(1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestAllocatorInvalidParameters(t *testing.T) {
	_, err := New(Region{Base: 0x8000, Length: 64, Type: RegionReserved})
	require.ErrorIs(t, err, memutils.ErrInvalidParameter)

	_, err = New(Region{Base: 0x8000, Type: RegionAvailable})
	require.ErrorIs(t, err, memutils.ErrInvalidParameter)

	allocator, err := New(Region{Base: 0x8000, Length: 64, Type: RegionAvailable})
	require.NoError(t, err)

	_, err = allocator.Alloc(0)
	require.ErrorIs(t, err, memutils.ErrInvalidParameter)
	_, err = allocator.Alloc(-8)
	require.ErrorIs(t, err, memutils.ErrInvalidParameter)
}
