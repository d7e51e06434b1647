package buddy

import (
	"github.com/vkngwrapper/frames/memutils"
	"golang.org/x/exp/slog"
)

// Allocate reserves pageCount contiguous pages and returns the address of the first one. It
// returns false if pageCount is not positive, exceeds 1<<MaxOrder() pages, or no free block of
// sufficient order exists. Allocate never combines fragmented blocks to satisfy a request.
//
// The block is taken from the lowest non-empty zone whose blocks can hold pageCount pages. Any
// surplus is returned to the zones right away: the block is first halved down to the smallest
// order that holds pageCount pages, then the pages past pageCount are split into descending
// power-of-two blocks that Free can later reunite.
func (p *Pool) Allocate(pageCount int) (uintptr, bool) {
	p.logger.Debug("Pool::Allocate", slog.Int("PageCount", pageCount))

	if pageCount <= 0 || pageCount > memutils.OrderPages(p.maxOrder) {
		p.logger.Debug("    Pool::Allocate FAILED", slog.String("Reason", "invalid page count"))
		return 0, false
	}

	order := memutils.CeilLog2(pageCount)

	donorOrder := order
	for donorOrder <= p.maxOrder && p.zones.isEmpty(donorOrder) {
		donorOrder++
	}

	if donorOrder > p.maxOrder {
		p.logger.Debug("    Pool::Allocate FAILED", slog.String("Reason", "out of memory"))
		return 0, false
	}

	addr := p.zones.pop(donorOrder)

	// Return the upper halves of an oversized donor. Each half records addr as its sibling
	// so that Free can rebuild the donor once the low half is whole again.
	for half := donorOrder - 1; half >= order; half-- {
		upper := addr + memutils.PagesToBytes(memutils.OrderPages(half))
		p.zones.push(half, upper, buddyTag(upper, addr))
	}

	leftover := memutils.OrderPages(order) - pageCount
	if leftover > 0 {
		p.carve(addr+memutils.PagesToBytes(pageCount), leftover, addr)
	}

	p.allocatedPages += pageCount

	memutils.DebugValidate(p)

	return addr, true
}
