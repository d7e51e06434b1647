package buddy

import "github.com/dolthub/swiss"

// SparseMemory is a Memory implementation for address spaces that the current process cannot
// dereference, such as raw physical ranges reported by a boot memory map. Words are kept in a
// hash map keyed by address; unwritten words read as zero.
type SparseMemory struct {
	words *swiss.Map[uintptr, uintptr]
}

var _ Memory = &SparseMemory{}

func NewSparseMemory() *SparseMemory {
	return &SparseMemory{
		words: swiss.NewMap[uintptr, uintptr](64),
	}
}

func (m *SparseMemory) Load(addr uintptr) uintptr {
	value, _ := m.words.Get(addr)
	return value
}

func (m *SparseMemory) Store(addr uintptr, value uintptr) {
	if value == 0 {
		m.words.Delete(addr)
		return
	}

	m.words.Put(addr, value)
}

// WordCount returns the number of non-zero words currently stored
func (m *SparseMemory) WordCount() int {
	return m.words.Count()
}
