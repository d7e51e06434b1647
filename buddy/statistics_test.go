package buddy_test

import (
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/frames/memutils"
)

func TestDetailedStatistics(t *testing.T) {
	pool := newTestPool(t, 1023)

	var stats memutils.DetailedStatistics
	stats.Clear()
	pool.AddDetailedStatistics(&stats)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			PoolCount:      1,
			FreeBlockCount: 9,
			PoolPages:      1022,
			FreePages:      1022,
			AllocatedPages: 0,
		},
		FreeBlockPagesMin: 2,
		FreeBlockPagesMax: 512,
		OrderBlockCounts:  []int{0, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	}, stats)

	_, ok := pool.Allocate(13)
	require.True(t, ok)

	stats.Clear()
	pool.AddDetailedStatistics(&stats)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			PoolCount:      1,
			FreeBlockCount: 10,
			PoolPages:      1022,
			FreePages:      1009,
			AllocatedPages: 13,
		},
		FreeBlockPagesMin: 1,
		FreeBlockPagesMax: 512,
		OrderBlockCounts:  []int{1, 2, 1, 1, 0, 1, 1, 1, 1, 1},
	}, stats)
}

func TestStatistics(t *testing.T) {
	first := newTestPool(t, 1023)
	second := newTestPool(t, 64)

	_, ok := second.Allocate(5)
	require.True(t, ok)

	var stats memutils.Statistics
	first.AddStatistics(&stats)
	second.AddStatistics(&stats)

	require.Equal(t, memutils.Statistics{
		PoolCount:      2,
		FreeBlockCount: 9 + 7,
		PoolPages:      1022 + 63,
		FreePages:      1022 + 58,
		AllocatedPages: 5,
	}, stats)
}

func TestPrintDetailedMap(t *testing.T) {
	pool := newTestPool(t, 8)

	writer := jwriter.NewWriter()
	pool.PrintDetailedMap(&writer)
	require.NoError(t, writer.Error())

	require.JSONEq(t, `{
		"Base": "0x101000",
		"ZoneTable": "0x100000",
		"TotalPages": 7,
		"FreePages": 7,
		"AllocatedPages": 0,
		"MaxOrder": 2,
		"Zones": {
			"0": [{"Address": "0x107000", "Pages": 1, "Sibling": "0x105000"}],
			"1": [{"Address": "0x105000", "Pages": 2, "Sibling": "0x101000"}],
			"2": [{"Address": "0x101000", "Pages": 4}]
		}
	}`, string(writer.Bytes()))
}
