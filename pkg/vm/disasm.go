package vm

import "fmt"

// Disassemble renders a single instruction word as RISKXVII assembly
// syntax, for the --trace diagnostic only. It is never consulted by
// Step/Run and never fails; an unrecognized combination renders as a
// literal hex comment instead of erroring, since a trace line should
// never be the reason execution can't proceed.
func Disassemble(word uint32) string {
	in := Decode(word)
	switch in.Format {
	case FormatR:
		return disasmR(in)
	case FormatI:
		return disasmI(in)
	case FormatS:
		return disasmS(in)
	case FormatSB:
		return disasmSB(in)
	case FormatU:
		return fmt.Sprintf("lui x%d, %d", in.Rd, in.Imm>>12)
	case FormatUJ:
		return fmt.Sprintf("jal x%d, %d", in.Rd, in.Imm)
	default:
		return fmt.Sprintf("; unknown 0x%08x", word)
	}
}

func disasmR(in Instruction) string {
	var mnemonic string
	switch {
	case in.Funct3 == 0b000 && in.Funct7 == 0b0000000:
		mnemonic = "add"
	case in.Funct3 == 0b000 && in.Funct7 == 0b0100000:
		mnemonic = "sub"
	case in.Funct3 == 0b100 && in.Funct7 == 0b0000000:
		mnemonic = "xor"
	case in.Funct3 == 0b110 && in.Funct7 == 0b0000000:
		mnemonic = "or"
	case in.Funct3 == 0b111 && in.Funct7 == 0b0000000:
		mnemonic = "and"
	case in.Funct3 == 0b001 && in.Funct7 == 0b0000000:
		mnemonic = "sll"
	case in.Funct3 == 0b101 && in.Funct7 == 0b0000000:
		mnemonic = "srl"
	case in.Funct3 == 0b101 && in.Funct7 == 0b0100000:
		mnemonic = "sra"
	case in.Funct3 == 0b010 && in.Funct7 == 0b0000000:
		mnemonic = "slt"
	case in.Funct3 == 0b011 && in.Funct7 == 0b0000000:
		mnemonic = "sltu"
	default:
		return fmt.Sprintf("; unknown R 0x%08x", in.Word)
	}
	return fmt.Sprintf("%s x%d, x%d, x%d", mnemonic, in.Rd, in.Rs1, in.Rs2)
}

func disasmI(in Instruction) string {
	switch in.Opcode {
	case opIArith:
		mnemonics := map[uint8]string{
			0b000: "addi", 0b100: "xori", 0b110: "ori",
			0b111: "andi", 0b010: "slti", 0b011: "sltiu",
		}
		if mnemonic, ok := mnemonics[in.Funct3]; ok {
			return fmt.Sprintf("%s x%d, x%d, %d", mnemonic, in.Rd, in.Rs1, in.Imm)
		}
	case opLoad:
		mnemonics := map[uint8]string{
			0b000: "lb", 0b001: "lh", 0b010: "lw", 0b100: "lbu", 0b101: "lhu",
		}
		if mnemonic, ok := mnemonics[in.Funct3]; ok {
			return fmt.Sprintf("%s x%d, %d(x%d)", mnemonic, in.Rd, in.Imm, in.Rs1)
		}
	case opJALR:
		if in.Funct3 == 0 {
			return fmt.Sprintf("jalr x%d, x%d, %d", in.Rd, in.Rs1, in.Imm)
		}
	}
	return fmt.Sprintf("; unknown I 0x%08x", in.Word)
}

func disasmS(in Instruction) string {
	mnemonics := map[uint8]string{0b000: "sb", 0b001: "sh", 0b010: "sw"}
	mnemonic, ok := mnemonics[in.Funct3]
	if !ok {
		return fmt.Sprintf("; unknown S 0x%08x", in.Word)
	}
	return fmt.Sprintf("%s x%d, %d(x%d)", mnemonic, in.Rs2, in.Imm, in.Rs1)
}

func disasmSB(in Instruction) string {
	mnemonics := map[uint8]string{
		0b000: "beq", 0b001: "bne", 0b100: "blt",
		0b110: "bltu", 0b101: "bge", 0b111: "bgeu",
	}
	mnemonic, ok := mnemonics[in.Funct3]
	if !ok {
		return fmt.Sprintf("; unknown SB 0x%08x", in.Word)
	}
	return fmt.Sprintf("%s x%d, x%d, %d", mnemonic, in.Rs1, in.Rs2, in.Imm)
}
