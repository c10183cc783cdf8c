package brainfuck

import (
	"fmt"
	"strings"
)

const noMatch = -1

// Program is a validated, immutable list of instructions. The position of an
// OP in Instructions is its address.
type Program struct {
	Instructions []OP
	// matches[i] holds the address of the bracket paired with the bracket at
	// i, or noMatch. nil for programs built with NewProgram.
	matches []int
}

// NewProgram wraps instructions as-is. Nothing is validated and no jump table
// is built, so OP_WHILE_END falls back to FindMatchingOpen.
func NewProgram(instructions []OP) *Program {
	return &Program{Instructions: instructions}
}

// ParseProgram loads program text, rejecting unknown symbols, OP_WHILE_END
// without an opener and OP_WHILE left open at the end.
func ParseProgram(text string) (*Program, error) {
	return parseProgram(text, true)
}

// ParseProgramLenient accepts OP_WHILE markers that are never closed. They
// act as no-ops when reached.
func ParseProgramLenient(text string) (*Program, error) {
	return parseProgram(text, false)
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func parseProgram(text string, strict bool) (*Program, error) {
	ops := make([]OP, 0, len(text))
	for _, r := range text {
		if isBlank(r) {
			continue
		}
		op, ok := ParseOP(r)
		if !ok {
			return nil, &InvalidProgramError{Char: r}
		}
		ops = append(ops, op)
	}

	matches := make([]int, len(ops))
	open := make([]int, 0, 16)
	for i, op := range ops {
		matches[i] = noMatch
		switch op {
		case OP_WHILE:
			open = append(open, i)
		case OP_WHILE_END:
			if len(open) == 0 {
				return nil, &UnmatchedBracketError{Position: i}
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			matches[start] = i
			matches[i] = start
		}
	}

	if strict && len(open) > 0 {
		return nil, &UnmatchedBracketError{Position: open[len(open)-1], Unclosed: true}
	}

	return &Program{Instructions: ops, matches: matches}, nil
}

func (p *Program) Len() int {
	return len(p.Instructions)
}

func (p *Program) At(addr int) OP {
	return p.Instructions[addr]
}

// String renders the program back to canonical text, without whitespace.
func (p *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Instructions))
	for _, op := range p.Instructions {
		sb.WriteByte(byte(op))
	}
	return sb.String()
}

// MatchingOpen returns the OP_WHILE paired with the OP_WHILE_END at addr,
// using the jump table when there is one.
func (p *Program) MatchingOpen(addr int) (int, error) {
	if p.matches != nil && addr >= 0 && addr < len(p.matches) {
		if m := p.matches[addr]; m != noMatch {
			return m, nil
		}
	}
	return p.FindMatchingOpen(addr)
}

// FindMatchingOpen scans backwards from the OP_WHILE_END at from until as many
// OP_WHILE as OP_WHILE_END have been seen.
func (p *Program) FindMatchingOpen(from int) (int, error) {
	if from < 0 || from >= len(p.Instructions) || p.Instructions[from] != OP_WHILE_END {
		return 0, fmt.Errorf("No OP_WHILE_END at tape index [%d]: %w", from, ErrRuntime)
	}
	closed, opened := 1, 0
	addr := from
	for {
		if addr < 1 {
			return 0, fmt.Errorf("No OP_WHILE matches OP_WHILE_END at tape index [%d]: %w", from, ErrRuntime)
		}
		addr--
		switch p.Instructions[addr] {
		case OP_WHILE:
			opened++
		case OP_WHILE_END:
			closed++
		}
		if opened == closed {
			return addr, nil
		}
	}
}
