package vm

import "github.com/enesgide/RISKXVII-Virtual-Machine/pkg/bitfield"

// Format identifies one of RISKXVII's six instruction encodings.
type Format int

const (
	FormatUnknown Format = iota
	FormatR
	FormatI
	FormatS
	FormatSB
	FormatU
	FormatUJ
)

// Opcode values for the six instruction encodings.
const (
	opR      = 0b0110011
	opIArith = 0b0010011
	opLoad   = 0b0000011
	opJALR   = 0b1100111
	opStore  = 0b0100011
	opBranch = 0b1100011
	opLUI    = 0b0110111
	opJAL    = 0b1101111
)

// Instruction is a decoded instruction word: every field the encoding
// makes available, plus the already-sign-extended immediate where the
// format has one.
type Instruction struct {
	Word   uint32
	Opcode uint8
	Format Format
	Funct3 uint8
	Funct7 uint8
	Rd     uint8
	Rs1    uint8
	Rs2    uint8
	Imm    int32
}

func classify(opcode uint8) Format {
	switch opcode {
	case opR:
		return FormatR
	case opIArith, opLoad, opJALR:
		return FormatI
	case opStore:
		return FormatS
	case opBranch:
		return FormatSB
	case opLUI:
		return FormatU
	case opJAL:
		return FormatUJ
	default:
		return FormatUnknown
	}
}

// Decode extracts every field of word relevant to its format. Callers
// must check Format != FormatUnknown before dispatching; Decode itself
// never fails.
func Decode(word uint32) Instruction {
	opcode := bitfield.Opcode(word)
	in := Instruction{
		Word:   word,
		Opcode: opcode,
		Format: classify(opcode),
		Funct3: bitfield.Funct3(word),
		Funct7: bitfield.Funct7(word),
		Rd:     bitfield.Rd(word),
		Rs1:    bitfield.Rs1(word),
		Rs2:    bitfield.Rs2(word),
	}
	switch in.Format {
	case FormatI:
		in.Imm = bitfield.IImm(word)
	case FormatS:
		in.Imm = bitfield.SImm(word)
	case FormatSB:
		in.Imm = bitfield.BImm(word)
	case FormatU:
		in.Imm = bitfield.UImm(word)
	case FormatUJ:
		in.Imm = bitfield.JImm(word)
	}
	return in
}
