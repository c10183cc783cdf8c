package brainfuck

import (
	"bytes"
	bin "encoding/binary"
	"fmt"
	"io"
)

// Programs are packed four bits per OP, eight OPs to a big endian uint32. The
// zero symbol is padding and ends the program.

const opsPerWord = 8

func symbolFor(op OP) (uint32, bool) {
	switch op {
	case OP_POINTER_LEFT:
		return 1, true
	case OP_POINTER_RIGHT:
		return 2, true
	case OP_INC:
		return 3, true
	case OP_DEC:
		return 4, true
	case OP_WHILE:
		return 5, true
	case OP_WHILE_END:
		return 6, true
	case OP_INPUT:
		return 7, true
	case OP_OUTPUT:
		return 8, true
	}
	return 0, false
}

var opForSymbol = [...]OP{
	1: OP_POINTER_LEFT,
	2: OP_POINTER_RIGHT,
	3: OP_INC,
	4: OP_DEC,
	5: OP_WHILE,
	6: OP_WHILE_END,
	7: OP_INPUT,
	8: OP_OUTPUT,
}

func Pack(ops []OP) ([]byte, error) {
	buffer := bytes.NewBuffer(make([]byte, 0, (len(ops)+opsPerWord-1)/opsPerWord*4))
	for start := 0; start < len(ops); start += opsPerWord {
		var packed uint32
		for i := 0; i < opsPerWord && start+i < len(ops); i++ {
			symbol, ok := symbolFor(ops[start+i])
			if !ok {
				return nil, fmt.Errorf("Unknown OP [%d] at index [%d]", ops[start+i], start+i)
			}
			packed |= symbol << (28 - 4*i)
		}
		if err := bin.Write(buffer, bin.BigEndian, packed); err != nil {
			return nil, err
		}
	}
	return buffer.Bytes(), nil
}

func Unpack(packed []byte) ([]OP, error) {
	if len(packed)%4 != 0 {
		return nil, fmt.Errorf("Packed program length [%d] is not a multiple of 4", len(packed))
	}

	buffer := bytes.NewReader(packed)
	ops := make([]OP, 0, len(packed)*2)
	for {
		var word uint32
		if err := bin.Read(buffer, bin.BigEndian, &word); err == io.EOF {
			return ops, nil
		} else if err != nil {
			return nil, err
		}
		for i := 0; i < opsPerWord; i++ {
			symbol := (word >> (28 - 4*i)) & 15
			if symbol == 0 {
				return ops, nil
			}
			if int(symbol) >= len(opForSymbol) {
				return nil, fmt.Errorf("Unknown symbol [%d] encountered", symbol)
			}
			ops = append(ops, opForSymbol[symbol])
		}
	}
}
