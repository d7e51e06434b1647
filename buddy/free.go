package buddy

import (
	"github.com/vkngwrapper/frames/memutils"
	"golang.org/x/exp/slog"
)

// Free returns pageCount pages beginning at addr to the pool. pageCount must be exactly the value
// passed to the Allocate call that returned addr. This is not checked unless memutils is built
// with the debug_mem_utils build tag; a mismatched page count corrupts the zones.
//
// Free walks the split lineage of the original allocation: each block that Allocate split off
// past the requested pages is reclaimed as long as it is still free and untouched. If every piece
// is recovered, the original block is rebuilt and then merged with any upper halves still free
// from an oversized donor. If a piece has since been allocated elsewhere, the walk stops at that
// hole and the freed pages, along with the pieces recovered before the hole, are returned as
// smaller blocks.
func (p *Pool) Free(addr uintptr, pageCount int) {
	p.logger.Debug("Pool::Free", slog.Uint64("Address", uint64(addr)), slog.Int("PageCount", pageCount))

	if pageCount <= 0 {
		return
	}

	if memutils.DebugChecks {
		p.checkFreeRange(addr, pageCount)
	}

	order := memutils.CeilLog2(pageCount)
	relocated := memutils.OrderPages(order) - pageCount

	last := addr
	cursor := addr + memutils.PagesToBytes(pageCount)
	for z := order; z >= 0 && relocated > 0; z-- {
		size := memutils.OrderPages(z)
		if relocated < size {
			continue
		}

		if !p.zones.takeSibling(z, cursor, last) {
			break
		}

		last = cursor
		cursor += memutils.PagesToBytes(size)
		relocated -= size
	}

	p.allocatedPages -= pageCount

	if relocated > 0 {
		runPages := int((cursor - addr) >> memutils.PageShift)
		p.logger.Debug("    Pool::Free stopped at a hole", slog.Int("RecoveredPages", runPages))
		p.carve(addr, runPages, noBlock)

		memutils.DebugValidate(p)
		return
	}

	for order < p.maxOrder && p.zones.takeSibling(order, addr+memutils.PagesToBytes(memutils.OrderPages(order)), addr) {
		order++
	}

	p.zones.push(order, addr, 0)

	memutils.DebugValidate(p)
}

func (p *Pool) checkFreeRange(addr uintptr, pageCount int) {
	end := addr + memutils.PagesToBytes(pageCount)
	memutils.DebugAssert(addr%memutils.PageSize == 0, "freed address 0x%x is not page-aligned", addr)
	memutils.DebugAssert(addr >= p.base && end <= p.base+memutils.PagesToBytes(p.totalPages),
		"freed range [0x%x, 0x%x) falls outside of the pool", addr, end)
	memutils.DebugAssert(pageCount <= p.allocatedPages,
		"freed %d pages but only %d pages are allocated", pageCount, p.allocatedPages)

	for order := 0; order <= p.maxOrder; order++ {
		p.zones.visit(order, p.totalPages, func(block uintptr, header blockHeader) bool {
			blockEnd := block + memutils.PagesToBytes(memutils.OrderPages(order))
			memutils.DebugAssert(blockEnd <= addr || block >= end,
				"freed range [0x%x, 0x%x) overlaps free block [0x%x, 0x%x)", addr, end, block, blockEnd)
			return true
		})
	}
}
