package vm

import "fmt"

// virtualRoutine implements the ports mapped at VRBase+4*port. reg is the
// register carrying the routine's datum: the destination register for a
// load (its value going in, not a value freshly fetched from anywhere),
// or rs2 for a store. isLoad distinguishes the two stdin-reading ports,
// which have no defined behavior on a store.
func virtualRoutine(m *Machine, port int, reg uint8, isLoad bool) error {
	switch port {
	case 0: // print reg as a character
		fmt.Fprintf(m.Stdout, "%c", byte(m.ReadReg(reg)))
	case 1: // print reg as a signed decimal
		fmt.Fprintf(m.Stdout, "%d", int32(m.ReadReg(reg)))
	case 2: // print reg as lowercase hex, no leading zeros
		fmt.Fprintf(m.Stdout, "%x", m.ReadReg(reg))
	case 3: // halt
		fmt.Fprintln(m.Stdout, "CPU Halt Requested")
		return errHalted
	case 4: // read one character into reg
		if !isLoad {
			return nil
		}
		if c, err := m.Stdin.ReadByte(); err == nil {
			m.WriteReg(reg, uint32(c))
		}
	case 5: // read a signed decimal into reg
		if !isLoad {
			return nil
		}
		var n int32
		if _, err := fmt.Fscan(m.Stdin, &n); err == nil {
			m.WriteReg(reg, uint32(n))
		}
	case 6: // print PC as lowercase hex
		fmt.Fprintf(m.Stdout, "%x", m.PC)
	case 7: // dump all registers and PC
		WriteRegisterDump(m.Stdout, m)
	case 8: // print reg as lowercase hex
		fmt.Fprintf(m.Stdout, "%x", m.ReadReg(reg))
	}
	return nil
}
