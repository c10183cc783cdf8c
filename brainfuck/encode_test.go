package brainfuck

import (
	"testing"
)

func TestPackUnpack(t *testing.T) {
	for _, text := range []string{"", "+", "++++++++", "+++++++++", HELLO_WORLD, ",[.,]"} {
		program, err := ParseProgram(text)
		if err != nil {
			t.Fatalf("Unexpected failure calling ParseProgram(%q). %v", text, err)
		}

		packed, err := Pack(program.Instructions)
		if err != nil {
			t.Fatalf("Unexpected failure calling Pack(%q). %v", text, err)
		}

		words := (program.Len() + 7) / 8
		if len(packed) != words*4 {
			t.Errorf("Pack(%q) returned [%d] bytes, expected [%d]", text, len(packed), words*4)
		}

		ops, err := Unpack(packed)
		if err != nil {
			t.Fatalf("Unexpected failure calling Unpack(%q). %v", text, err)
		}
		if NewProgram(ops).String() != program.String() {
			t.Errorf("Unpack returned |%s|, expected |%s|", NewProgram(ops).String(), program.String())
		}
	}
}

func TestPackLayout(t *testing.T) {
	packed, err := Pack([]OP{OP_POINTER_LEFT, OP_OUTPUT})
	if err != nil {
		t.Fatalf("Unexpected failure calling Pack(). %v", err)
	}

	expected := []byte{0x18, 0, 0, 0}
	for i := range expected {
		if packed[i] != expected[i] {
			t.Errorf("Packed byte [%d] is [%#x], expected [%#x]", i, packed[i], expected[i])
		}
	}
}

func TestPackRejectsUnknownOP(t *testing.T) {
	if _, err := Pack([]OP{OP_INC, OP('#')}); err == nil {
		t.Errorf("Unexpected success calling Pack() with an unknown OP")
	}
}

func TestUnpackRejectsBadInput(t *testing.T) {
	if _, err := Unpack([]byte{1, 2, 3}); err == nil {
		t.Errorf("Unexpected success calling Unpack() with a partial word")
	}

	if _, err := Unpack([]byte{0xF0, 0, 0, 0}); err == nil {
		t.Errorf("Unexpected success calling Unpack() with an unknown symbol")
	}
}
