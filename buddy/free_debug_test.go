//go:build debug_mem_utils

package buddy_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeMisuse(t *testing.T) {
	pool := newTestPool(t, 1023)

	addr, ok := pool.Allocate(13)
	require.True(t, ok)

	// Page 1008 is part of a free 8-page block
	require.Panics(t, func() { pool.Free(pageAddress(pool, 1008), 1) })
	require.Panics(t, func() { pool.Free(addr+1, 13) })
	require.Panics(t, func() { pool.Free(pageAddress(pool, 1022), 1) })
	require.Panics(t, func() { pool.Free(addr, 14) })
	require.Panics(t, func() { pool.Free(addr, 20) })

	pool.Free(addr, 13)
	require.NoError(t, pool.Validate())
}
