package memutils

import (
	"math/bits"

	cerrors "github.com/cockroachdb/errors"
)

const (
	// PageShift is log2(PageSize)
	PageShift = 12
	// PageSize is the size in bytes of a single page frame
	PageSize = 1 << PageShift
	// WordSize is the size in bytes of a machine word as stored in block headers and the zone table
	WordSize = bits.UintSize / 8
)

type Number interface {
	~int | ~uint | ~uintptr
}

func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp[T Number](value T, alignment T) T {
	return (value + alignment - 1) & ^(alignment - 1)
}

func AlignDown[T Number](value T, alignment T) T {
	return value & ^(alignment - 1)
}

// FloorLog2 returns the largest k such that 1<<k <= value. value must be positive.
func FloorLog2(value int) int {
	return bits.Len(uint(value)) - 1
}

// CeilLog2 returns the smallest k such that 1<<k >= value. value must be positive.
func CeilLog2(value int) int {
	if value <= 1 {
		return 0
	}
	return bits.Len(uint(value - 1))
}

// PagesToBytes converts a page count into a byte length
func PagesToBytes(pages int) uintptr {
	return uintptr(pages) << PageShift
}

// OrderPages returns the number of pages spanned by a block of the given order
func OrderPages(order int) int {
	return 1 << order
}
