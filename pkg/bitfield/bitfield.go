// Package bitfield extracts the fixed-position fields RISKXVII's six
// instruction encodings (R, I, S, SB, U, UJ) pack into a 32-bit word, and
// sign-extends the scattered SB/UJ immediates. All of it is plain shifts
// and masks over native integers; none of the source project's
// char-array-and-pow() bit manipulation survives here.
package bitfield

// Opcode returns the low 7 bits of the instruction word.
func Opcode(word uint32) uint8 {
	return uint8(word & 0x7F)
}

// Rd returns the destination register field (bits 11-7).
func Rd(word uint32) uint8 {
	return uint8((word >> 7) & 0x1F)
}

// Funct3 returns the funct3 field (bits 14-12).
func Funct3(word uint32) uint8 {
	return uint8((word >> 12) & 0x7)
}

// Rs1 returns the first source register field (bits 19-15).
func Rs1(word uint32) uint8 {
	return uint8((word >> 15) & 0x1F)
}

// Rs2 returns the second source register field (bits 24-20).
func Rs2(word uint32) uint8 {
	return uint8((word >> 20) & 0x1F)
}

// Funct7 returns the funct7 field (bits 31-25).
func Funct7(word uint32) uint8 {
	return uint8((word >> 25) & 0x7F)
}

// SignExtend sign-extends the low `bits` bits of v to a full 32-bit
// two's-complement value.
func SignExtend(v uint32, bits uint) int32 {
	shift := 32 - bits
	return int32(v<<shift) >> shift
}

// IImm decodes the 12-bit I-type immediate (bits 31-20).
func IImm(word uint32) int32 {
	v := (word >> 20) & 0xFFF
	return SignExtend(v, 12)
}

// SImm decodes the 12-bit S-type immediate, {bits 31-25, bits 11-7}.
func SImm(word uint32) int32 {
	hi := (word >> 25) & 0x7F
	lo := (word >> 7) & 0x1F
	v := (hi << 5) | lo
	return SignExtend(v, 12)
}

// BImm decodes the 13-bit SB-type immediate, {bit 31, bit 7, bits 30-25,
// bits 11-8, 0}. The implicit trailing zero is part of the decoded value,
// per the standard RISC-V layout; RISKXVII's branch handlers additionally
// treat the decoded value as a halfword offset (see the opcode handlers),
// which is a deliberate property of this instruction set, not a decode bug.
func BImm(word uint32) int32 {
	b12 := (word >> 31) & 0x1
	b11 := (word >> 7) & 0x1
	b10_5 := (word >> 25) & 0x3F
	b4_1 := (word >> 8) & 0xF
	v := (b12 << 12) | (b11 << 11) | (b10_5 << 5) | (b4_1 << 1)
	return SignExtend(v, 13)
}

// UImm decodes the 20-bit U-type immediate, positioned in bits 31-12 with
// the low 12 bits zero, exactly as `lui` needs it.
func UImm(word uint32) int32 {
	return int32(word & 0xFFFFF000)
}

// JImm decodes the 21-bit UJ-type immediate, {bit 31, bits 19-12, bit 20,
// bits 30-21, 0}.
func JImm(word uint32) int32 {
	b20 := (word >> 31) & 0x1
	b19_12 := (word >> 12) & 0xFF
	b11 := (word >> 20) & 0x1
	b10_1 := (word >> 21) & 0x3FF
	v := (b20 << 20) | (b19_12 << 12) | (b11 << 11) | (b10_1 << 1)
	return SignExtend(v, 21)
}
