package buddy

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/frames/memutils"
)

// Validate performs internal consistency checks on the pool: every free block must be page-aligned,
// lie within the pool, and overlap no other free block, every zone list must terminate, and the
// free and allocated page counts must add up to the pool size. These checks touch every free page
// and so are expensive; Validate is meant for diagnostics and tests.
func (p *Pool) Validate() error {
	if p.allocatedPages < 0 || p.allocatedPages > p.totalPages {
		return errors.Newf("the pool lists %d allocated pages, but it only holds %d pages", p.allocatedPages, p.totalPages)
	}

	poolEnd := p.base + memutils.PagesToBytes(p.totalPages)
	owners := swiss.NewMap[uintptr, uintptr](uint32(p.zones.freePages + 1))
	calculatedFreePages := 0

	for order := 0; order <= p.maxOrder; order++ {
		var err error
		size := memutils.OrderPages(order)

		terminated := p.zones.visit(order, p.totalPages, func(addr uintptr, header blockHeader) bool {
			if addr%memutils.PageSize != 0 {
				err = errors.Newf("free block at 0x%x in zone %d is not page-aligned", addr, order)
				return false
			}

			end := addr + memutils.PagesToBytes(size)
			if addr < p.base || end > poolEnd {
				err = errors.Newf("free block [0x%x, 0x%x) in zone %d falls outside of the pool [0x%x, 0x%x)", addr, end, order, p.base, poolEnd)
				return false
			}

			for page := addr; page < end; page += memutils.PageSize {
				owner, taken := owners.Get(page)
				if taken {
					err = errors.Newf("free block at 0x%x in zone %d overlaps the free block at 0x%x", addr, order, owner)
					return false
				}
				owners.Put(page, addr)
			}

			calculatedFreePages += size
			return true
		})

		if err != nil {
			return err
		}

		if !terminated {
			return errors.Newf("zone %d holds more blocks than the pool has pages", order)
		}
	}

	if calculatedFreePages != p.zones.freePages {
		return errors.Newf("the free page count of the pool is %d, but the zones only added up to %d", p.zones.freePages, calculatedFreePages)
	}

	if calculatedFreePages+p.allocatedPages != p.totalPages {
		return errors.Newf("the pool holds %d pages, but %d free pages and %d allocated pages were found", p.totalPages, calculatedFreePages, p.allocatedPages)
	}

	return nil
}
