package bfsim

import (
	"time"

	"github.com/sirupsen/logrus"

	bf "nickandperla.net/bfsim/brainfuck"
)

// RunResult is a snapshot of one program execution. A program that fails to
// load never runs: Loaded is false and MachineError holds the load error.
type RunResult struct {
	Program              string
	Input                string
	Output               string
	InstructionCount     uint
	InstructionsExecuted uint
	Loaded               bool
	Halted               bool
	MachineError         *string
	Duration             time.Duration

	// Err is the error itself, for errors.Is checks. Not persisted.
	Err error
}

// Execute loads and runs program on a fresh Machine. The output of a failed
// run is whatever the program wrote before it stopped.
func Execute(program, input string, mc *bf.MachineConfig, log *logrus.Entry) *RunResult {
	result := &RunResult{Program: program, Input: input}

	m, err := bf.NewMachine(program, input, mc)
	if err != nil {
		result.fail(err)
		return result
	}
	if log != nil {
		m.Logger = log
	}
	result.Loaded = true
	result.InstructionCount = uint(m.Program.Len())

	start := time.Now()
	output, err := m.Run()
	result.Duration = time.Since(start)
	result.InstructionsExecuted = m.InstructionCount

	if err != nil {
		result.Output = m.Output()
		result.fail(err)
		return result
	}

	result.Output = output
	result.Halted = true
	return result
}

func (r *RunResult) fail(err error) {
	msg := err.Error()
	r.MachineError = &msg
	r.Err = err
}
