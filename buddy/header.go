package buddy

import "github.com/vkngwrapper/frames/memutils"

// noBlock terminates zone lists and marks empty zones. Address 0 is a legal block address
// when the zone table lives off-pool, so it cannot be used for this purpose.
const noBlock = ^uintptr(0)

// blockHeader is written in place at the base address of every free block. It is
// overwritten by caller data as soon as the block is allocated.
type blockHeader struct {
	next     uintptr
	buddyTag uintptr
}

// buddyTag encodes the sibling a block was created next to. Blocks without a sibling get 0.
func buddyTag(addr uintptr, sibling uintptr) uintptr {
	if sibling == noBlock {
		return 0
	}
	return addr ^ sibling
}

// isSiblingOf returns true if the block at addr recorded sibling as its buddy when it was created
func (h blockHeader) isSiblingOf(addr uintptr, sibling uintptr) bool {
	return h.buddyTag != 0 && h.buddyTag^sibling == addr
}

// sibling returns the recorded sibling of the block at addr, if any
func (h blockHeader) sibling(addr uintptr) (uintptr, bool) {
	if h.buddyTag == 0 {
		return 0, false
	}
	return h.buddyTag ^ addr, true
}

func readHeader(memory Memory, addr uintptr) blockHeader {
	return blockHeader{
		next:     memory.Load(addr),
		buddyTag: memory.Load(addr + memutils.WordSize),
	}
}

func writeHeader(memory Memory, addr uintptr, header blockHeader) {
	memory.Store(addr, header.next)
	memory.Store(addr+memutils.WordSize, header.buddyTag)
}
