package buddy

import (
	"fmt"

	"github.com/vkngwrapper/frames/memutils"
)

// zoneTable holds one singly linked free list per order. The list heads are machine words
// stored through the pool's Memory at address, one word per order.
type zoneTable struct {
	memory    Memory
	address   uintptr
	maxOrder  int
	freePages int
}

func (z *zoneTable) init(memory Memory, address uintptr, maxOrder int) {
	z.memory = memory
	z.address = address
	z.maxOrder = maxOrder
	z.freePages = 0

	for order := 0; order <= maxOrder; order++ {
		z.setHead(order, noBlock)
	}
}

func (z *zoneTable) slot(order int) uintptr {
	if order < 0 || order > z.maxOrder {
		panic(fmt.Sprintf("order %d is outside of the zone table [0, %d]", order, z.maxOrder))
	}
	return z.address + uintptr(order)*memutils.WordSize
}

func (z *zoneTable) head(order int) uintptr {
	return z.memory.Load(z.slot(order))
}

func (z *zoneTable) setHead(order int, addr uintptr) {
	z.memory.Store(z.slot(order), addr)
}

func (z *zoneTable) isEmpty(order int) bool {
	return z.head(order) == noBlock
}

// push places a free block at the head of its zone
func (z *zoneTable) push(order int, addr uintptr, tag uintptr) {
	writeHeader(z.memory, addr, blockHeader{
		next:     z.head(order),
		buddyTag: tag,
	})
	z.setHead(order, addr)
	z.freePages += memutils.OrderPages(order)
}

// pop removes the head of a zone. The zone must not be empty.
func (z *zoneTable) pop(order int) uintptr {
	addr := z.head(order)
	if addr == noBlock {
		panic(fmt.Sprintf("attempted to pop from empty zone %d", order))
	}

	z.setHead(order, readHeader(z.memory, addr).next)
	z.freePages -= memutils.OrderPages(order)
	return addr
}

// takeSibling searches zone order for a block located at addr that recorded sibling as its
// buddy. If one is found, it is unlinked from the zone and takeSibling returns true.
func (z *zoneTable) takeSibling(order int, addr uintptr, sibling uintptr) bool {
	prev := noBlock
	for current := z.head(order); current != noBlock; {
		header := readHeader(z.memory, current)
		if current == addr {
			if !header.isSiblingOf(current, sibling) {
				return false
			}

			if prev == noBlock {
				z.setHead(order, header.next)
			} else {
				prevHeader := readHeader(z.memory, prev)
				prevHeader.next = header.next
				writeHeader(z.memory, prev, prevHeader)
			}
			z.freePages -= memutils.OrderPages(order)
			return true
		}

		prev = current
		current = header.next
	}

	return false
}

// visit calls visitor for each block in zone order, head first, until visitor returns false.
// limit bounds the walk so that a corrupted, cyclic list cannot hang the caller; visit returns
// false if the limit was reached before the end of the list.
func (z *zoneTable) visit(order int, limit int, visitor func(addr uintptr, header blockHeader) bool) bool {
	count := 0
	for current := z.head(order); current != noBlock; {
		if count >= limit {
			return false
		}
		count++

		header := readHeader(z.memory, current)
		if !visitor(current, header) {
			return true
		}
		current = header.next
	}

	return true
}
