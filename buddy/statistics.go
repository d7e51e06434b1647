package buddy

import (
	"fmt"
	"strconv"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/frames/memutils"
)

// AddStatistics sums this pool's page counts into the statistics currently present in the
// provided memutils.Statistics object.
func (p *Pool) AddStatistics(stats *memutils.Statistics) {
	stats.PoolCount++
	stats.PoolPages += p.totalPages
	stats.FreePages += p.zones.freePages
	stats.AllocatedPages += p.allocatedPages

	for order := 0; order <= p.maxOrder; order++ {
		stats.FreeBlockCount += p.ZoneBlockCount(order)
	}
}

// AddDetailedStatistics sums this pool's page counts and free block sizes into the statistics
// currently present in the provided memutils.DetailedStatistics object.
func (p *Pool) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	stats.PoolCount++
	stats.PoolPages += p.totalPages
	stats.AllocatedPages += p.allocatedPages

	for order := 0; order <= p.maxOrder; order++ {
		p.zones.visit(order, p.totalPages, func(addr uintptr, header blockHeader) bool {
			stats.AddFreeBlock(order)
			return true
		})
	}
}

// PrintDetailedMap writes a json object describing the pool and every free block in its zones
func (p *Pool) PrintDetailedMap(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("Base").String(formatAddress(p.base))
	obj.Name("ZoneTable").String(formatAddress(p.zones.address))
	obj.Name("TotalPages").Int(p.totalPages)
	obj.Name("FreePages").Int(p.zones.freePages)
	obj.Name("AllocatedPages").Int(p.allocatedPages)
	obj.Name("MaxOrder").Int(p.maxOrder)

	zonesObj := obj.Name("Zones").Object()
	defer zonesObj.End()

	for order := 0; order <= p.maxOrder; order++ {
		if p.zones.isEmpty(order) {
			continue
		}

		blockArray := zonesObj.Name(strconv.Itoa(order)).Array()
		p.zones.visit(order, p.totalPages, func(addr uintptr, header blockHeader) bool {
			blockObj := blockArray.Object()
			defer blockObj.End()

			blockObj.Name("Address").String(formatAddress(addr))
			blockObj.Name("Pages").Int(memutils.OrderPages(order))

			sibling, ok := header.sibling(addr)
			if ok {
				blockObj.Name("Sibling").String(formatAddress(sibling))
			}
			return true
		})
		blockArray.End()
	}
}

func formatAddress(addr uintptr) string {
	return fmt.Sprintf("0x%x", addr)
}
