package brainfuck

// The OPs for Brainfuck. Each symbol in program text maps to exactly one OP,
// whitespace aside. The byte value of an OP is its symbol so a []OP can be
// turned back into program text without a lookup.

type OP byte

const (
	OP_POINTER_RIGHT = OP('>')
	OP_POINTER_LEFT  = OP('<')
	OP_INC           = OP('+')
	OP_DEC           = OP('-')
	OP_WHILE         = OP('[')
	OP_WHILE_END     = OP(']')
	OP_INPUT         = OP(',')
	OP_OUTPUT        = OP('.')
)

var OP_SET [8]OP = [...]OP{
	OP_POINTER_RIGHT,
	OP_POINTER_LEFT,
	OP_INC,
	OP_DEC,
	OP_WHILE,
	OP_WHILE_END,
	OP_INPUT,
	OP_OUTPUT,
}

// Some handy fragments, mostly for tests and the REPL.
const (
	SET_TO_ZERO     = `[-]`
	FIND_ZERO_RIGHT = `[>]`
	FIND_ZERO_LEFT  = `[<]`
	ECHO            = `,.`
	HELLO_WORLD     = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>>++.`
)

func ParseOP(r rune) (OP, bool) {
	switch r {
	case '>':
		return OP_POINTER_RIGHT, true
	case '<':
		return OP_POINTER_LEFT, true
	case '+':
		return OP_INC, true
	case '-':
		return OP_DEC, true
	case '[':
		return OP_WHILE, true
	case ']':
		return OP_WHILE_END, true
	case ',':
		return OP_INPUT, true
	case '.':
		return OP_OUTPUT, true
	}
	return 0, false
}

func (o OP) Valid() bool {
	_, ok := ParseOP(rune(o))
	return ok
}

func (o OP) String() string {
	if !o.Valid() {
		return "?"
	}
	return string(rune(o))
}

// Name is used in log fields.
func (o OP) Name() string {
	switch o {
	case OP_POINTER_RIGHT:
		return "OP_POINTER_RIGHT"
	case OP_POINTER_LEFT:
		return "OP_POINTER_LEFT"
	case OP_INC:
		return "OP_INC"
	case OP_DEC:
		return "OP_DEC"
	case OP_WHILE:
		return "OP_WHILE"
	case OP_WHILE_END:
		return "OP_WHILE_END"
	case OP_INPUT:
		return "OP_INPUT"
	case OP_OUTPUT:
		return "OP_OUTPUT"
	}
	return "UNKNOWN_OP"
}
