package brainfuck

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type MachineConfig struct {
	// Zero means no limit.
	MaxInstructionExecutionCount uint `toml:"max_instruction_execution_count" yaml:"max_instruction_execution_count"`
	// Accept OP_WHILE markers that are never closed.
	LenientBrackets bool          `toml:"lenient_brackets" yaml:"lenient_brackets"`
	MemoryConfig    *MemoryConfig `toml:"memory" yaml:"memory"`
}

func DefaultMachineConfig() *MachineConfig {
	return &MachineConfig{
		MemoryConfig: &MemoryConfig{CellCount: DEFAULT_CELL_COUNT},
	}
}

// Machine runs one Program over one Storage. It is not safe for concurrent
// use; run independent programs on independent Machines.
type Machine struct {
	Program            *Program
	Memory             Storage
	Config             *MachineConfig
	InstructionPointer int
	InstructionCount   uint
	Logger             *logrus.Entry

	input      []byte
	inputIndex int
	output     strings.Builder
}

// NewMachine parses program and builds Storage from mc. A nil mc means
// DefaultMachineConfig.
func NewMachine(program, input string, mc *MachineConfig) (*Machine, error) {
	if mc == nil {
		mc = DefaultMachineConfig()
	}
	return NewMachineWithStorage(program, input, NewStorageFromConfig(mc.MemoryConfig), mc)
}

func NewMachineWithStorage(program, input string, storage Storage, mc *MachineConfig) (*Machine, error) {
	if mc == nil {
		mc = DefaultMachineConfig()
	}

	var p *Program
	var err error
	if mc.LenientBrackets {
		p, err = ParseProgramLenient(program)
	} else {
		p, err = ParseProgram(program)
	}
	if err != nil {
		return nil, err
	}

	return NewMachineFromProgram(p, input, storage, mc), nil
}

// NewMachineFromProgram skips parsing, for callers that already hold a
// Program.
func NewMachineFromProgram(p *Program, input string, storage Storage, mc *MachineConfig) *Machine {
	if mc == nil {
		mc = DefaultMachineConfig()
	}
	return &Machine{
		Program: p,
		Memory:  storage,
		Config:  mc,
		Logger:  logrus.NewEntry(logrus.StandardLogger()),
		input:   []byte(input),
	}
}

// Reset rewinds the machine so the same program and input can run again.
func (m *Machine) Reset() {
	m.Memory.Reset()
	m.InstructionPointer = 0
	m.InstructionCount = 0
	m.inputIndex = 0
	m.output.Reset()
}

// Output is everything written so far, including what a failed Run produced
// before it stopped.
func (m *Machine) Output() string {
	return m.output.String()
}

// Run executes until the instruction pointer falls off the end of the program.
// On failure the error is returned with an empty string; Output still holds the
// partial output.
func (m *Machine) Run() (string, error) {
	log := m.Logger.WithField("instructions", m.Program.Len())
	log.Debug("Machine run starting")

	for m.InstructionPointer < m.Program.Len() {
		if limit := m.Config.MaxInstructionExecutionCount; limit > 0 && m.InstructionCount >= limit {
			log.WithField("executed", m.InstructionCount).Debug("Machine stopped at instruction limit")
			return "", ErrMaxInstructionExecutionCountReached
		}
		if err := m.Step(); err != nil {
			log.WithError(err).WithField("executed", m.InstructionCount).Debug("Machine run failed")
			return "", err
		}
	}

	log.WithField("executed", m.InstructionCount).Debug("Machine halted")
	return m.output.String(), nil
}

// Step executes the instruction at the instruction pointer. A halted machine
// does nothing.
func (m *Machine) Step() error {
	if m.InstructionPointer < 0 || m.InstructionPointer >= m.Program.Len() {
		return nil
	}
	op := m.Program.At(m.InstructionPointer)
	m.InstructionCount++

	switch op {
	case OP_POINTER_RIGHT:
		m.Memory.MovePointerRight()
	case OP_POINTER_LEFT:
		m.Memory.MovePointerLeft()
	case OP_INC:
		m.Memory.Increment()
	case OP_DEC:
		m.Memory.Decrement()
	case OP_WHILE:
		// Only a target for OP_WHILE_END.
	case OP_INPUT:
		if m.inputIndex >= len(m.input) {
			return fmt.Errorf("OP_INPUT at tape index [%d] failed. %w", m.InstructionPointer, ErrNoInput)
		}
		m.Memory.Write(int64(m.input[m.inputIndex]))
		m.inputIndex++
	case OP_OUTPUT:
		m.output.WriteByte(byte(m.Memory.Read()))
	case OP_WHILE_END:
		if m.Memory.Read() != 0 {
			start, err := m.Program.MatchingOpen(m.InstructionPointer)
			if err != nil {
				return err
			}
			if m.Logger.Logger.IsLevelEnabled(logrus.TraceLevel) {
				m.Logger.WithFields(logrus.Fields{"from": m.InstructionPointer, "to": start}).Trace("Jumping back")
			}
			// Don't advance since we just moved the pointer directly to OP_WHILE
			m.InstructionPointer = start
			return nil
		}
	default:
		return fmt.Errorf("Unknown OP [%d] at tape index [%d]: %w", op, m.InstructionPointer, ErrRuntime)
	}

	m.InstructionPointer++
	return nil
}
