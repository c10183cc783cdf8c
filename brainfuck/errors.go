package brainfuck

import (
	"errors"
	"fmt"
)

var (
	ErrNoInput                             = errors.New("Program expected input but there was none left")
	ErrRuntime                             = errors.New("Runtime error during program execution")
	ErrMaxInstructionExecutionCountReached = errors.New("Instruction execution count limit reached")
)

// InvalidProgramError reports a character in program text that is neither a
// recognized symbol nor whitespace.
type InvalidProgramError struct {
	Char rune
}

func (e *InvalidProgramError) Error() string {
	return fmt.Sprintf("Invalid character [%q] in program", e.Char)
}

// UnmatchedBracketError reports the instruction index of a bracket without a
// partner. Unclosed is set for an OP_WHILE still open at the end of the
// program, otherwise it is an OP_WHILE_END seen at depth zero.
type UnmatchedBracketError struct {
	Position int
	Unclosed bool
}

func (e *UnmatchedBracketError) Error() string {
	if e.Unclosed {
		return fmt.Sprintf("Unclosed bracket at position [%d]", e.Position)
	}
	return fmt.Sprintf("Unmatched bracket at position [%d]", e.Position)
}
