package buddy

import (
	"unsafe"

	"github.com/vkngwrapper/frames/memutils"
)

// Memory is the typed word view through which the pool reads and writes free-block headers
// and its zone table. Headers live in the first bytes of each free block, the same bytes that
// are later handed to the caller, so every access to pool memory goes through this interface
// rather than through reinterpreted pointers held by the pool.
type Memory interface {
	// Load reads the machine word stored at addr
	Load(addr uintptr) uintptr
	// Store writes value as a machine word at addr
	Store(addr uintptr, value uintptr)
}

// MappedMemory is a Memory implementation for address ranges that are directly dereferenceable
// by the current process: identity-mapped kernel memory, or a Go byte slice provided to
// NewMappedMemory. The zero value dereferences raw addresses.
type MappedMemory struct {
	backing []byte
}

var _ Memory = &MappedMemory{}

// NewMappedMemory creates a MappedMemory over a Go byte slice. The slice is retained for the
// lifetime of the MappedMemory so that the addresses handed out by a pool built on top of it
// remain valid.
func NewMappedMemory(backing []byte) *MappedMemory {
	return &MappedMemory{backing: backing}
}

// Base returns the address of the first byte of the backing slice, or 0 if the MappedMemory
// was not created from a slice
func (m *MappedMemory) Base() uintptr {
	if len(m.backing) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&m.backing[0]))
}

// Len returns the length in bytes of the backing slice
func (m *MappedMemory) Len() int {
	return len(m.backing)
}

func (m *MappedMemory) Load(addr uintptr) uintptr {
	memutils.DebugAssert(addr%memutils.WordSize == 0, "unaligned word load at 0x%x", addr)
	m.checkBounds(addr)
	return *(*uintptr)(unsafe.Pointer(addr))
}

func (m *MappedMemory) Store(addr uintptr, value uintptr) {
	memutils.DebugAssert(addr%memutils.WordSize == 0, "unaligned word store at 0x%x", addr)
	m.checkBounds(addr)
	*(*uintptr)(unsafe.Pointer(addr)) = value
}

func (m *MappedMemory) checkBounds(addr uintptr) {
	if !memutils.DebugChecks || len(m.backing) == 0 {
		return
	}

	base := m.Base()
	memutils.DebugAssert(addr >= base && addr+memutils.WordSize <= base+uintptr(len(m.backing)),
		"word access at 0x%x falls outside of the mapped range [0x%x, 0x%x)", addr, base, base+uintptr(len(m.backing)))
}
