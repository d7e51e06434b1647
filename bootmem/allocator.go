package bootmem

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/frames/memutils"
)

// ErrOutOfMemory is returned by Allocator.Alloc when the region has no room left for the request
var ErrOutOfMemory = errors.New("boot memory allocator is out of memory")

// Allocator is a rudimentary bump allocator over a single memory region, used to place data
// structures such as a pool's zone table before any page allocator exists. Allocations are
// word-aligned and can never be freed.
type Allocator struct {
	start uintptr
	next  uintptr
	end   uintptr
}

// New creates an Allocator over the provided region, which must be available memory
func New(region Region) (*Allocator, error) {
	if region.Type != RegionAvailable {
		return nil, errors.Wrapf(memutils.ErrInvalidParameter, "a region of type %s cannot back boot allocations", region.Type)
	}

	if region.Length == 0 {
		return nil, errors.Wrap(memutils.ErrInvalidParameter, "a boot allocator region must not be empty")
	}

	return &Allocator{
		start: region.Base,
		next:  region.Base,
		end:   region.Base + uintptr(region.Length),
	}, nil
}

// Alloc reserves size bytes and returns the address of the first one
func (a *Allocator) Alloc(size int) (uintptr, error) {
	if size <= 0 {
		return 0, errors.Wrapf(memutils.ErrInvalidParameter, "received an allocation size of %d", size)
	}

	addr := memutils.AlignUp[uintptr](a.next, memutils.WordSize)
	if addr < a.next || addr > a.end || uintptr(size) > a.end-addr {
		return 0, errors.Wrapf(ErrOutOfMemory, "requested %d bytes, but only %d remain", size, a.Remaining())
	}

	a.next = addr + uintptr(size)
	return addr, nil
}

// Used returns the number of bytes handed out so far, including alignment padding
func (a *Allocator) Used() int {
	return int(a.next - a.start)
}

// Remaining returns the number of bytes that have not been handed out
func (a *Allocator) Remaining() int {
	return int(a.end - a.next)
}
