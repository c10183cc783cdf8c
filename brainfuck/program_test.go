package brainfuck

import (
	"errors"
	"strings"
	"testing"
)

func TestParseProgram(t *testing.T) {
	program, err := ParseProgram("+ +\t>\n[-]<\r\n.,")
	if err != nil {
		t.Fatalf("Unexpected failure calling ParseProgram(). %v", err)
	}

	expected := []OP{OP_INC, OP_INC, OP_POINTER_RIGHT, OP_WHILE, OP_DEC, OP_WHILE_END, OP_POINTER_LEFT, OP_OUTPUT, OP_INPUT}
	if program.Len() != len(expected) {
		t.Fatalf("Program length [%d] is not [%d]", program.Len(), len(expected))
	}
	for i, op := range expected {
		if program.At(i) != op {
			t.Errorf("Instruction at [%d] is |%v|, expected |%v|", i, program.At(i), op)
		}
	}

	if program.String() != "++>[-]<.," {
		t.Errorf("Program rendered as |%s|", program.String())
	}
}

func TestParseProgramCountsNonWhitespace(t *testing.T) {
	for _, text := range []string{"", "   ", "+-<>.,", "[ [ ] ]", HELLO_WORLD, "++\n[>++<-]\t>."} {
		program, err := ParseProgram(text)
		if err != nil {
			t.Errorf("Unexpected failure calling ParseProgram(%q). %v", text, err)
			continue
		}

		count := len(strings.Join(strings.Fields(text), ""))
		if program.Len() != count {
			t.Errorf("ParseProgram(%q) returned [%d] instructions, expected [%d]", text, program.Len(), count)
		}
	}
}

func TestParseProgramInvalidCharacter(t *testing.T) {
	for _, c := range []rune{'a', '#', '!', 'é', '0'} {
		text := "++[>" + string(c) + "<-]"
		_, err := ParseProgram(text)

		var invalid *InvalidProgramError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseProgram(%q) returned [%v], expected InvalidProgramError", text, err)
			continue
		}
		if invalid.Char != c {
			t.Errorf("InvalidProgramError reported |%c|, expected |%c|", invalid.Char, c)
		}
	}

	_, err := ParseProgram("+a")
	if err == nil || err.Error() != "Invalid character ['a'] in program" {
		t.Errorf("Error string doesn't match: %v", err)
	}
}

func TestParseProgramUnmatchedClose(t *testing.T) {
	tests := []struct {
		text     string
		position int
	}{
		{"]", 0},
		{"+]", 1},
		{"+ + ]", 2},
		{"[-]]", 3},
		{"[]][", 2},
	}

	for _, test := range tests {
		_, err := ParseProgram(test.text)

		var unmatched *UnmatchedBracketError
		if !errors.As(err, &unmatched) {
			t.Errorf("ParseProgram(%q) returned [%v], expected UnmatchedBracketError", test.text, err)
			continue
		}
		if unmatched.Position != test.position || unmatched.Unclosed {
			t.Errorf("ParseProgram(%q) reported position [%d] unclosed [%v], expected [%d]", test.text, unmatched.Position, unmatched.Unclosed, test.position)
		}
	}
}

func TestParseProgramUnclosedOpen(t *testing.T) {
	_, err := ParseProgram("++[>[-]")

	var unmatched *UnmatchedBracketError
	if !errors.As(err, &unmatched) {
		t.Fatalf("Unexpected result calling ParseProgram(). %v", err)
	}
	if !unmatched.Unclosed || unmatched.Position != 2 {
		t.Errorf("Unexpected UnmatchedBracketError %+v", unmatched)
	}
	if err.Error() != "Unclosed bracket at position [2]" {
		t.Errorf("Error string doesn't match: %v", err)
	}

	program, err := ParseProgramLenient("++[")
	if err != nil {
		t.Fatalf("Unexpected failure calling ParseProgramLenient(). %v", err)
	}
	if program.Len() != 3 {
		t.Errorf("Program length [%d] is not [3]", program.Len())
	}

	if _, err := ParseProgramLenient("]"); err == nil {
		t.Errorf("Unexpected success calling ParseProgramLenient() with a leading OP_WHILE_END")
	}
}

func TestMatchingOpen(t *testing.T) {
	text := "+[>[-]<-]"
	program, err := ParseProgram(text)
	if err != nil {
		t.Fatalf("Unexpected failure calling ParseProgram(). %v", err)
	}

	for _, check := range []struct{ close, open int }{{5, 3}, {8, 1}} {
		if addr, err := program.MatchingOpen(check.close); err != nil || addr != check.open {
			t.Errorf("MatchingOpen(%d) returned [%d] %v, expected [%d]", check.close, addr, err, check.open)
		}

		// The scan and the jump table must agree.
		if addr, err := program.FindMatchingOpen(check.close); err != nil || addr != check.open {
			t.Errorf("FindMatchingOpen(%d) returned [%d] %v, expected [%d]", check.close, addr, err, check.open)
		}
	}
}

func TestFindMatchingOpenRunsOffStart(t *testing.T) {
	program := NewProgram([]OP{OP_INC, OP_WHILE_END})

	if _, err := program.FindMatchingOpen(1); !errors.Is(err, ErrRuntime) {
		t.Errorf("FindMatchingOpen returned [%v], expected ErrRuntime", err)
	}

	if _, err := program.MatchingOpen(1); !errors.Is(err, ErrRuntime) {
		t.Errorf("MatchingOpen returned [%v], expected ErrRuntime", err)
	}
}

func TestFindMatchingOpenBadAddress(t *testing.T) {
	program := NewProgram([]OP{OP_WHILE, OP_INC, OP_WHILE_END})

	for _, from := range []int{-1, 1, 3, 4} {
		if _, err := program.FindMatchingOpen(from); !errors.Is(err, ErrRuntime) {
			t.Errorf("FindMatchingOpen(%d) returned [%v], expected ErrRuntime", from, err)
		}
		if _, err := program.MatchingOpen(from); !errors.Is(err, ErrRuntime) {
			t.Errorf("MatchingOpen(%d) returned [%v], expected ErrRuntime", from, err)
		}
	}

	if addr, err := program.FindMatchingOpen(2); err != nil || addr != 0 {
		t.Errorf("FindMatchingOpen(2) returned [%d] %v, expected [0]", addr, err)
	}
}
