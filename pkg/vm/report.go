package vm

import (
	"fmt"
	"io"
)

// WriteRegisterDump writes PC followed by all 32 registers, in the exact
// format the original VM's register_dump produces (also reachable as
// virtual routine 7).
func WriteRegisterDump(w io.Writer, m *Machine) {
	fmt.Fprintf(w, "PC = 0x%08x;\n", m.PC)
	for i := 0; i < 32; i++ {
		fmt.Fprintf(w, "R[%d] = 0x%08x;\n", i, m.ReadReg(uint8(i)))
	}
}

func reportDecodeFailure(w io.Writer, m *Machine, word uint32) {
	fmt.Fprintf(w, "Instruction Not Implemented: 0x%08x\n", word)
	WriteRegisterDump(w, m)
}

func reportIllegalOperation(w io.Writer, m *Machine, word uint32) {
	fmt.Fprintf(w, "Illegal Operation: 0x%08x\n", word)
	WriteRegisterDump(w, m)
}
