package brainfuck

const DEFAULT_CELL_COUNT uint = 1000

// Storage is what a Machine needs from its tape. None of the operations can
// fail; how the pointer behaves at the edges is up to the implementation.
type Storage interface {
	MovePointerRight()
	MovePointerLeft()
	Increment()
	Decrement()
	Read() int64
	Write(value int64)
	Reset()
}

type MemoryConfig struct {
	CellCount uint `toml:"cell_count" yaml:"cell_count"`
	Sparse    bool `toml:"sparse" yaml:"sparse"`
}

func NewStorageFromConfig(mc *MemoryConfig) Storage {
	if mc == nil {
		return NewMemory(DEFAULT_CELL_COUNT)
	}
	if mc.Sparse {
		return NewSparseMemory()
	}
	return NewMemory(mc.CellCount)
}

// Memory is a ring of int64 cells. Moving off either end wraps around to the
// other, and cell arithmetic wraps at the int64 bounds. A zero Memory
// allocates its cells on first use, CellCount of them or DEFAULT_CELL_COUNT.
type Memory struct {
	Cells         []int64
	CellCount     uint
	MemoryPointer uint
}

// NewMemory allocates cellCount zeroed cells, DEFAULT_CELL_COUNT when zero.
func NewMemory(cellCount uint) *Memory {
	if cellCount == 0 {
		cellCount = DEFAULT_CELL_COUNT
	}
	return &Memory{
		Cells:         make([]int64, cellCount),
		CellCount:     cellCount,
		MemoryPointer: 0,
	}
}

func (m *Memory) init() {
	if len(m.Cells) > 0 && uint(len(m.Cells)) == m.CellCount {
		return
	}
	if len(m.Cells) == 0 {
		if m.CellCount == 0 {
			m.CellCount = DEFAULT_CELL_COUNT
		}
		m.Cells = make([]int64, m.CellCount)
	}
	m.CellCount = uint(len(m.Cells))
	m.MemoryPointer %= m.CellCount
}

func (m *Memory) Reset() {
	m.init()
	for i := range m.Cells {
		m.Cells[i] = 0
	}
	m.MemoryPointer = 0
}

func (m *Memory) MovePointerRight() {
	m.init()
	m.MemoryPointer = (m.MemoryPointer + 1) % m.CellCount
}

func (m *Memory) MovePointerLeft() {
	m.init()
	if m.MemoryPointer == 0 {
		m.MemoryPointer = m.CellCount - 1
		return
	}
	m.MemoryPointer = m.MemoryPointer - 1
}

func (m *Memory) Increment() {
	m.init()
	m.Cells[m.MemoryPointer]++
}

func (m *Memory) Decrement() {
	m.init()
	m.Cells[m.MemoryPointer]--
}

func (m *Memory) Read() int64 {
	m.init()
	return m.Cells[m.MemoryPointer]
}

func (m *Memory) Write(value int64) {
	m.init()
	m.Cells[m.MemoryPointer] = value
}
