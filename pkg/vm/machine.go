// Package vm implements the RISKXVII fetch-decode-execute engine: the
// register file, the fixed memory-mapped address space, the heap bank
// allocator, and the opcode handlers driving it. The package imports
// nothing beyond the standard library and this module's pkg/bitfield;
// everything a caller needs to load
// an image and run it lives in pkg/loader and cmd/riskxvii instead.
package vm

import (
	"bufio"
	"io"
	"os"
)

const (
	// InstrMemWords is the instruction memory's size in 32-bit words.
	InstrMemWords = 256
	// DataMemWords is the data memory's size in 32-bit words.
	DataMemWords = 256

	// InstrMemSize is the instruction memory's size in bytes, and also
	// its base address (0x000) plus its size, i.e. the address one past
	// its last valid byte.
	InstrMemSize = InstrMemWords * 4

	// DataMemBase is the data memory's base address (0x400).
	DataMemBase = 0x400
	// DataMemSize is the data memory's size in bytes.
	DataMemSize = DataMemWords * 4

	// VRBase is the base address of the virtual-routine port band.
	VRBase = 0x800
	// VRSize is the size of the virtual-routine port band in bytes.
	VRSize = 0x100

	// MallocAddr is the heap-allocation entry port.
	MallocAddr = 0x850
	// FreeAddr is the heap-release entry port.
	FreeAddr = 0x854
)

// Machine holds the entire architectural state of a RISKXVII core:
// registers, program counter, instruction and data memory, and the heap
// bank allocator. The zero value is not ready to run; use NewMachine.
type Machine struct {
	PC   uint32
	Regs [32]uint32

	InstrMem [InstrMemWords]uint32
	DataMem  [DataMemWords]uint32

	heap heap

	Stdin  *bufio.Reader
	Stdout io.Writer
}

// NewMachine returns a Machine with registers and memory zeroed, the heap
// bank table reset to all-free, and stdin/stdout wired to the process's.
func NewMachine() *Machine {
	m := &Machine{
		Stdin:  bufio.NewReader(os.Stdin),
		Stdout: os.Stdout,
	}
	m.heap.reset()
	return m
}

// ReadReg returns the current value of register r. Register 0 always
// reads as zero.
func (m *Machine) ReadReg(r uint8) uint32 {
	if r == 0 {
		return 0
	}
	return m.Regs[r]
}

// WriteReg sets register r to v. Writes to register 0 are discarded.
func (m *Machine) WriteReg(r uint8, v uint32) {
	if r == 0 {
		return
	}
	m.Regs[r] = v
}
