// Package bootmem contains the early-boot collaborators of the page-frame allocator: memory map
// entries reported by the bootloader, selection of the range that backs a pool, and a bump
// allocator that can hold a pool's zone table outside of the pool itself.
package bootmem

import "github.com/vkngwrapper/frames/memutils"

// RegionType describes how firmware reported a memory region
type RegionType uint32

const (
	// RegionAvailable indicates memory that can be freely used
	RegionAvailable RegionType = iota + 1
	// RegionReserved indicates memory that must not be touched
	RegionReserved
	// RegionACPIReclaimable indicates memory holding ACPI tables that can be reclaimed once they are parsed
	RegionACPIReclaimable
	// RegionNVS indicates memory that must be preserved across hibernation
	RegionNVS
)

var regionTypeMapping = map[RegionType]string{
	RegionAvailable:       "available",
	RegionReserved:        "reserved",
	RegionACPIReclaimable: "ACPI (reclaimable)",
	RegionNVS:             "NVS",
}

func (t RegionType) String() string {
	str, ok := regionTypeMapping[t]
	if !ok {
		return "unknown"
	}
	return str
}

// Region is a single entry of the system memory map
type Region struct {
	Base   uintptr
	Length uint64
	Type   RegionType
}

// PageRange returns the first page-aligned address inside the region and the number of whole pages
// that follow it. Reported addresses may not be page-aligned, so the start is rounded up and the
// end is rounded down.
func (r Region) PageRange() (uintptr, int) {
	start := memutils.AlignUp[uintptr](r.Base, memutils.PageSize)
	end := memutils.AlignDown[uintptr](r.Base+uintptr(r.Length), memutils.PageSize)
	if end <= start {
		return start, 0
	}

	return start, int((end - start) >> memutils.PageShift)
}

// LargestAvailable returns the page range of the largest available region in the memory map. It
// returns false if no available region holds a whole page.
func LargestAvailable(regions []Region) (uintptr, int, bool) {
	var bestBase uintptr
	bestPages := 0

	for _, region := range regions {
		if region.Type != RegionAvailable {
			continue
		}

		base, pages := region.PageRange()
		if pages > bestPages {
			bestBase = base
			bestPages = pages
		}
	}

	return bestBase, bestPages, bestPages > 0
}
