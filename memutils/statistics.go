package memutils

import "math"

// Statistics sums page counts across one or more pools. All sizes are in pages.
type Statistics struct {
	PoolCount      int
	FreeBlockCount int
	PoolPages      int
	FreePages      int
	AllocatedPages int
}

func (s *Statistics) Clear() {
	s.PoolCount = 0
	s.FreeBlockCount = 0
	s.PoolPages = 0
	s.FreePages = 0
	s.AllocatedPages = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.PoolCount += other.PoolCount
	s.FreeBlockCount += other.FreeBlockCount
	s.PoolPages += other.PoolPages
	s.FreePages += other.FreePages
	s.AllocatedPages += other.AllocatedPages
}

type DetailedStatistics struct {
	Statistics
	FreeBlockPagesMin int
	FreeBlockPagesMax int
	// OrderBlockCounts holds the number of free blocks found in each zone, indexed by order
	OrderBlockCounts []int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.FreeBlockPagesMin = math.MaxInt
	s.FreeBlockPagesMax = 0
	s.OrderBlockCounts = nil
}

func (s *DetailedStatistics) AddFreeBlock(order int) {
	pages := OrderPages(order)
	s.FreeBlockCount++
	s.FreePages += pages

	if pages < s.FreeBlockPagesMin {
		s.FreeBlockPagesMin = pages
	}

	if pages > s.FreeBlockPagesMax {
		s.FreeBlockPagesMax = pages
	}

	for len(s.OrderBlockCounts) <= order {
		s.OrderBlockCounts = append(s.OrderBlockCounts, 0)
	}
	s.OrderBlockCounts[order]++
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)

	if other.FreeBlockPagesMin < s.FreeBlockPagesMin {
		s.FreeBlockPagesMin = other.FreeBlockPagesMin
	}

	if other.FreeBlockPagesMax > s.FreeBlockPagesMax {
		s.FreeBlockPagesMax = other.FreeBlockPagesMax
	}

	for order, count := range other.OrderBlockCounts {
		for len(s.OrderBlockCounts) <= order {
			s.OrderBlockCounts = append(s.OrderBlockCounts, 0)
		}
		s.OrderBlockCounts[order] += count
	}
}
