package bootmem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionPageRange(t *testing.T) {
	base, pages := Region{Base: 0x1000, Length: 0x4000, Type: RegionAvailable}.PageRange()
	require.Equal(t, uintptr(0x1000), base)
	require.Equal(t, 4, pages)

	// Partial pages at either end are dropped
	base, pages = Region{Base: 0x1800, Length: 0x4000, Type: RegionAvailable}.PageRange()
	require.Equal(t, uintptr(0x2000), base)
	require.Equal(t, 3, pages)

	_, pages = Region{Base: 0x1800, Length: 0x900, Type: RegionAvailable}.PageRange()
	require.Zero(t, pages)
}

func TestLargestAvailable(t *testing.T) {
	regions := []Region{
		{Base: 0, Length: 0x9fc00, Type: RegionAvailable},
		{Base: 0x9fc00, Length: 0x400, Type: RegionReserved},
		{Base: 0x100000, Length: 0x7ee0000, Type: RegionAvailable},
		{Base: 0x7fe0000, Length: 0x20000, Type: RegionACPIReclaimable},
		{Base: 0xfffc0000, Length: 0x40000000, Type: RegionReserved},
	}

	base, pages, ok := LargestAvailable(regions)
	require.True(t, ok)
	require.Equal(t, uintptr(0x100000), base)
	require.Equal(t, 0x7ee0, pages)

	_, _, ok = LargestAvailable(regions[1:2])
	require.False(t, ok)
}

func TestRegionTypeString(t *testing.T) {
	require.Equal(t, "available", RegionAvailable.String())
	require.Equal(t, "ACPI (reclaimable)", RegionACPIReclaimable.String())
	require.Equal(t, "unknown", RegionType(42).String())
}
