package bfsim

import (
	"errors"
	"testing"

	bf "nickandperla.net/bfsim/brainfuck"
)

func TestExecuteHalts(t *testing.T) {
	result := Execute(bf.HELLO_WORLD, "", nil, nil)

	if !result.Loaded || !result.Halted {
		t.Fatalf("Unexpected failure executing HELLO_WORLD. %v", result.Err)
	}
	if result.Output != "Hello World\n" {
		t.Errorf("Output |%q| is not |%q|", result.Output, "Hello World\n")
	}
	if result.InstructionCount != uint(len(bf.HELLO_WORLD)) {
		t.Errorf("InstructionCount [%d] is not [%d]", result.InstructionCount, len(bf.HELLO_WORLD))
	}
	if result.InstructionsExecuted <= result.InstructionCount {
		t.Errorf("InstructionsExecuted [%d] should exceed the program length for a looping program", result.InstructionsExecuted)
	}
	if result.MachineError != nil {
		t.Errorf("Unexpected MachineError %s", *result.MachineError)
	}
}

func TestExecuteLoadFailure(t *testing.T) {
	result := Execute("+?", "", nil, nil)

	if result.Loaded || result.Halted {
		t.Errorf("Program with an invalid character reported loaded [%v] halted [%v]", result.Loaded, result.Halted)
	}

	var invalid *bf.InvalidProgramError
	if !errors.As(result.Err, &invalid) || invalid.Char != '?' {
		t.Errorf("Execute returned [%v], expected InvalidProgramError", result.Err)
	}
	if result.MachineError == nil || *result.MachineError != "Invalid character ['?'] in program" {
		t.Errorf("MachineError doesn't match: %v", result.MachineError)
	}
}

func TestExecuteKeepsPartialOutput(t *testing.T) {
	result := Execute(",.,.", "z", nil, nil)

	if !result.Loaded || result.Halted {
		t.Errorf("Expected a loaded program that did not halt")
	}
	if !errors.Is(result.Err, bf.ErrNoInput) {
		t.Errorf("Execute returned [%v], expected ErrNoInput", result.Err)
	}
	if result.Output != "z" {
		t.Errorf("Partial output |%s| is not |z|", result.Output)
	}
}
