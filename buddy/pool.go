package buddy

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/frames/memutils"
	"golang.org/x/exp/slog"
)

//go:generate mockgen -destination ../mocks/bootstrap.go -package mocks github.com/vkngwrapper/frames/buddy BootstrapAllocator

// BootstrapAllocator is an early allocator that can place the zone table outside of the pool.
// Alloc returns the address of at least size bytes of word-aligned memory that is addressable
// through the pool's Memory.
type BootstrapAllocator interface {
	Alloc(size int) (uintptr, error)
}

// CreateOptions contains the settings used to create a Pool
type CreateOptions struct {
	// Memory is the typed view of the pool range used to read and write free-block headers and
	// the zone table. It is required.
	Memory Memory
	// Bootstrap is optional. When it is provided, the zone table is placed in memory it returns
	// and the whole range is available for allocations. When it is nil, the first page of the
	// range holds the zone table.
	Bootstrap BootstrapAllocator
	// Logger is optional. slog.Default() is used when it is nil.
	Logger *slog.Logger
}

// Pool is a page-frame allocator over a single contiguous range of pages. A request for N pages
// is carved out of the smallest sufficient power-of-two block and the surplus is returned to the
// free lists immediately as smaller blocks. The pool keeps no record of live allocations: Free
// must be called with the same page count that was passed to Allocate.
//
// Pool performs no internal synchronization. Consumers must guarantee that only one goroutine
// uses a given Pool at a time.
type Pool struct {
	logger *slog.Logger
	memory Memory
	zones  zoneTable

	base           uintptr
	totalPages     int
	maxOrder       int
	allocatedPages int
}

var _ memutils.Validatable = &Pool{}

// New creates a Pool over pageCount pages beginning at base.
//
// base - The first address of the range. If it is not page-aligned, it is advanced to the next
// page boundary and the range loses a page.
//
// pageCount - The number of pages in the range. It must be greater than 2.
//
// options - Memory is required; all other fields may be left blank
func New(base uintptr, pageCount int, options CreateOptions) (*Pool, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if options.Memory == nil {
		return nil, errors.Wrap(memutils.ErrInvalidParameter, "buddy.CreateOptions.Memory must be provided")
	}

	if pageCount <= 2 {
		return nil, errors.Wrapf(memutils.ErrPoolTooSmall, "received a range of %d pages", pageCount)
	}

	if base%memutils.PageSize != 0 {
		base = memutils.AlignUp[uintptr](base, memutils.PageSize)
		pageCount--
	}

	tableAddress := base
	if options.Bootstrap == nil {
		base += memutils.PageSize
		pageCount--
	}

	maxOrder := memutils.FloorLog2(pageCount)

	if options.Bootstrap != nil {
		var err error
		tableAddress, err = options.Bootstrap.Alloc((maxOrder + 1) * memutils.WordSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to allocate the zone table")
		}
	}

	pool := &Pool{
		logger:     logger,
		memory:     options.Memory,
		base:       base,
		totalPages: pageCount,
		maxOrder:   maxOrder,
	}
	pool.zones.init(options.Memory, tableAddress, maxOrder)
	pool.carve(base, pageCount, noBlock)

	logger.Debug("Pool::New",
		slog.Uint64("Base", uint64(base)),
		slog.Int("Pages", pageCount),
		slog.Int("MaxOrder", maxOrder),
		slog.Uint64("ZoneTable", uint64(tableAddress)),
	)

	memutils.DebugValidate(pool)

	return pool, nil
}

// Base returns the address of the first page available for allocations
func (p *Pool) Base() uintptr { return p.base }

// TotalPages returns the number of pages available for allocations, after alignment and zone table
// reservation
func (p *Pool) TotalPages() int { return p.totalPages }

// MaxOrder returns the order of the largest block the pool can hold. No allocation larger than
// 1<<MaxOrder() pages can succeed.
func (p *Pool) MaxOrder() int { return p.maxOrder }

// FreePages returns the number of pages currently held in the zone lists
func (p *Pool) FreePages() int { return p.zones.freePages }

// AllocatedPages returns the number of pages currently held by callers
func (p *Pool) AllocatedPages() int { return p.allocatedPages }

// ZoneTableAddress returns the address of the zone table
func (p *Pool) ZoneTableAddress() uintptr { return p.zones.address }

// ZoneBlockCount returns the number of free blocks of the provided order
func (p *Pool) ZoneBlockCount(order int) int {
	count := 0
	p.zones.visit(order, p.totalPages, func(addr uintptr, header blockHeader) bool {
		count++
		return true
	})
	return count
}

// ZoneBlocks returns the addresses of the free blocks of the provided order, in list order
func (p *Pool) ZoneBlocks(order int) []uintptr {
	var blocks []uintptr
	p.zones.visit(order, p.totalPages, func(addr uintptr, header blockHeader) bool {
		blocks = append(blocks, addr)
		return true
	})
	return blocks
}

// carve decomposes pages, starting at cursor, into descending power-of-two blocks and pushes each
// into its zone, tagged against the block placed before it. prev is the block that precedes the
// first one, or noBlock. It returns the address just past the last block.
func (p *Pool) carve(cursor uintptr, pages int, prev uintptr) uintptr {
	for order := memutils.FloorLog2(pages); pages > 0; order-- {
		size := memutils.OrderPages(order)
		if size > pages {
			continue
		}

		p.zones.push(order, cursor, buddyTag(cursor, prev))
		prev = cursor
		cursor += memutils.PagesToBytes(size)
		pages -= size
	}

	return cursor
}
