package vm

// Small instruction encoders used only by tests, mirroring the bit
// layouts pkg/bitfield decodes, so test programs read as assembly rather
// than as opaque hex literals.

func encodeR(funct7, rs2, rs1, funct3, rd uint8) uint32 {
	return uint32(funct7)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | uint32(funct3)<<12 | uint32(rd)<<7 | opR
}

func encodeI(opcode uint8, imm int32, rs1, funct3, rd uint8) uint32 {
	return (uint32(imm)&0xFFF)<<20 | uint32(rs1)<<15 | uint32(funct3)<<12 | uint32(rd)<<7 | uint32(opcode)
}

func encodeAddi(imm int32, rs1, rd uint8) uint32 {
	return encodeI(opIArith, imm, rs1, 0b000, rd)
}

func encodeS(imm int32, rs2, rs1, funct3 uint8) uint32 {
	u := uint32(imm) & 0xFFF
	hi := (u >> 5) & 0x7F
	lo := u & 0x1F
	return hi<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | uint32(funct3)<<12 | lo<<7 | opStore
}

func encodeSW(imm int32, rs2, rs1 uint8) uint32 {
	return encodeS(imm, rs2, rs1, 0b010)
}

// encodeSB takes imm as the already-assembled, trailing-zero-included
// decoded value (what BImm would return), not a raw byte offset.
func encodeSB(imm int32, rs2, rs1, funct3 uint8) uint32 {
	u := uint32(imm) & 0x1FFF
	b12 := (u >> 12) & 0x1
	b11 := (u >> 11) & 0x1
	b10_5 := (u >> 5) & 0x3F
	b4_1 := (u >> 1) & 0xF
	return b12<<31 | b10_5<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | uint32(funct3)<<12 | b4_1<<8 | b11<<7 | opBranch
}

func encodeU(imm uint32, rd uint8) uint32 {
	return (imm & 0xFFFFF000) | uint32(rd)<<7 | opLUI
}
