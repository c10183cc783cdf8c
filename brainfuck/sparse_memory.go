package brainfuck

// SparseMemory is an unbounded tape keyed by signed position. Cells that were
// never written read as zero and zeroed cells are dropped from the map, so
// only non-zero cells take space.
type SparseMemory struct {
	Cells         map[int64]int64
	MemoryPointer int64
}

func NewSparseMemory() *SparseMemory {
	return &SparseMemory{Cells: make(map[int64]int64)}
}

func (m *SparseMemory) Reset() {
	m.Cells = make(map[int64]int64)
	m.MemoryPointer = 0
}

func (m *SparseMemory) MovePointerRight() {
	m.MemoryPointer++
}

func (m *SparseMemory) MovePointerLeft() {
	m.MemoryPointer--
}

func (m *SparseMemory) Increment() {
	m.Write(m.Read() + 1)
}

func (m *SparseMemory) Decrement() {
	m.Write(m.Read() - 1)
}

func (m *SparseMemory) Read() int64 {
	return m.Cells[m.MemoryPointer]
}

func (m *SparseMemory) Write(value int64) {
	if value == 0 {
		delete(m.Cells, m.MemoryPointer)
		return
	}
	m.Cells[m.MemoryPointer] = value
}
