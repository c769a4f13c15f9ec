package cpu

// opEntry is one row of the dense opcode table: the static portion of
// a decoded Instruction, plus whether this specific opcode byte is
// one of the documented indexed-addressing variants that earns an
// extra cycle on a page crossing (STA/STX/STY's indexed forms and the
// read-modify-write shift/inc/dec forms already bake the worst case
// into BaseCycles and never take the conditional penalty).
type opEntry struct {
	mnemonic    Mnemonic
	mode        Mode
	baseCycles  uint8
	pagePenalty bool
}

// opcodeTable is indexed directly by opcode byte. opcodeValid[op] is false
// for any of the 105 byte values with no documented instruction.
var opcodeTable [256]opEntry
var opcodeValid [256]bool

func reg(op uint8, m Mnemonic, mode Mode, cycles uint8) {
	opcodeTable[op] = opEntry{mnemonic: m, mode: mode, baseCycles: cycles}
	opcodeValid[op] = true
}

func regPenalty(op uint8, m Mnemonic, mode Mode, cycles uint8) {
	opcodeTable[op] = opEntry{mnemonic: m, mode: mode, baseCycles: cycles, pagePenalty: true}
	opcodeValid[op] = true
}

// init populates the canonical 6502 documented-opcode table: 151
// entries taken from the standard reference timing chart (e.g.
// http://obelisk.me.uk/6502/reference.html).
func init() {
	reg(0x69, ADC, Immediate, 2)
	reg(0x65, ADC, ZeroPage, 3)
	reg(0x75, ADC, ZeroPageX, 4)
	reg(0x6D, ADC, Absolute, 4)
	regPenalty(0x7D, ADC, AbsoluteX, 4)
	regPenalty(0x79, ADC, AbsoluteY, 4)
	reg(0x61, ADC, IndirectX, 6)
	regPenalty(0x71, ADC, IndirectY, 5)

	reg(0x29, AND, Immediate, 2)
	reg(0x25, AND, ZeroPage, 3)
	reg(0x35, AND, ZeroPageX, 4)
	reg(0x2D, AND, Absolute, 4)
	regPenalty(0x3D, AND, AbsoluteX, 4)
	regPenalty(0x39, AND, AbsoluteY, 4)
	reg(0x21, AND, IndirectX, 6)
	regPenalty(0x31, AND, IndirectY, 5)

	reg(0x0A, ASL, Accumulator, 2)
	reg(0x06, ASL, ZeroPage, 5)
	reg(0x16, ASL, ZeroPageX, 6)
	reg(0x0E, ASL, Absolute, 6)
	reg(0x1E, ASL, AbsoluteX, 7)

	reg(0x90, BCC, Relative, 2)
	reg(0xB0, BCS, Relative, 2)
	reg(0xF0, BEQ, Relative, 2)

	reg(0x24, BIT, ZeroPage, 3)
	reg(0x2C, BIT, Absolute, 4)

	reg(0x30, BMI, Relative, 2)
	reg(0xD0, BNE, Relative, 2)
	reg(0x10, BPL, Relative, 2)

	reg(0x00, BRK, Implied, 7)

	reg(0x50, BVC, Relative, 2)
	reg(0x70, BVS, Relative, 2)

	reg(0x18, CLC, Implied, 2)
	reg(0xD8, CLD, Implied, 2)
	reg(0x58, CLI, Implied, 2)
	reg(0xB8, CLV, Implied, 2)

	reg(0xC9, CMP, Immediate, 2)
	reg(0xC5, CMP, ZeroPage, 3)
	reg(0xD5, CMP, ZeroPageX, 4)
	reg(0xCD, CMP, Absolute, 4)
	regPenalty(0xDD, CMP, AbsoluteX, 4)
	regPenalty(0xD9, CMP, AbsoluteY, 4)
	reg(0xC1, CMP, IndirectX, 6)
	regPenalty(0xD1, CMP, IndirectY, 5)

	reg(0xE0, CPX, Immediate, 2)
	reg(0xE4, CPX, ZeroPage, 3)
	reg(0xEC, CPX, Absolute, 4)

	reg(0xC0, CPY, Immediate, 2)
	reg(0xC4, CPY, ZeroPage, 3)
	reg(0xCC, CPY, Absolute, 4)

	reg(0xC6, DEC, ZeroPage, 5)
	reg(0xD6, DEC, ZeroPageX, 6)
	reg(0xCE, DEC, Absolute, 6)
	reg(0xDE, DEC, AbsoluteX, 7)

	reg(0xCA, DEX, Implied, 2)
	reg(0x88, DEY, Implied, 2)

	reg(0x49, EOR, Immediate, 2)
	reg(0x45, EOR, ZeroPage, 3)
	reg(0x55, EOR, ZeroPageX, 4)
	reg(0x4D, EOR, Absolute, 4)
	regPenalty(0x5D, EOR, AbsoluteX, 4)
	regPenalty(0x59, EOR, AbsoluteY, 4)
	reg(0x41, EOR, IndirectX, 6)
	regPenalty(0x51, EOR, IndirectY, 5)

	reg(0xE6, INC, ZeroPage, 5)
	reg(0xF6, INC, ZeroPageX, 6)
	reg(0xEE, INC, Absolute, 6)
	reg(0xFE, INC, AbsoluteX, 7)

	reg(0xE8, INX, Implied, 2)
	reg(0xC8, INY, Implied, 2)

	reg(0x4C, JMP, Absolute, 3)
	reg(0x6C, JMP, Indirect, 5)

	reg(0x20, JSR, Absolute, 6)

	reg(0xA9, LDA, Immediate, 2)
	reg(0xA5, LDA, ZeroPage, 3)
	reg(0xB5, LDA, ZeroPageX, 4)
	reg(0xAD, LDA, Absolute, 4)
	regPenalty(0xBD, LDA, AbsoluteX, 4)
	regPenalty(0xB9, LDA, AbsoluteY, 4)
	reg(0xA1, LDA, IndirectX, 6)
	regPenalty(0xB1, LDA, IndirectY, 5)

	reg(0xA2, LDX, Immediate, 2)
	reg(0xA6, LDX, ZeroPage, 3)
	reg(0xB6, LDX, ZeroPageY, 4)
	reg(0xAE, LDX, Absolute, 4)
	regPenalty(0xBE, LDX, AbsoluteY, 4)

	reg(0xA0, LDY, Immediate, 2)
	reg(0xA4, LDY, ZeroPage, 3)
	reg(0xB4, LDY, ZeroPageX, 4)
	reg(0xAC, LDY, Absolute, 4)
	regPenalty(0xBC, LDY, AbsoluteX, 4)

	reg(0x4A, LSR, Accumulator, 2)
	reg(0x46, LSR, ZeroPage, 5)
	reg(0x56, LSR, ZeroPageX, 6)
	reg(0x4E, LSR, Absolute, 6)
	reg(0x5E, LSR, AbsoluteX, 7)

	reg(0xEA, NOP, Implied, 2)

	reg(0x09, ORA, Immediate, 2)
	reg(0x05, ORA, ZeroPage, 3)
	reg(0x15, ORA, ZeroPageX, 4)
	reg(0x0D, ORA, Absolute, 4)
	regPenalty(0x1D, ORA, AbsoluteX, 4)
	regPenalty(0x19, ORA, AbsoluteY, 4)
	reg(0x01, ORA, IndirectX, 6)
	regPenalty(0x11, ORA, IndirectY, 5)

	reg(0x48, PHA, Implied, 3)
	reg(0x08, PHP, Implied, 3)
	reg(0x68, PLA, Implied, 4)
	reg(0x28, PLP, Implied, 4)

	reg(0x2A, ROL, Accumulator, 2)
	reg(0x26, ROL, ZeroPage, 5)
	reg(0x36, ROL, ZeroPageX, 6)
	reg(0x2E, ROL, Absolute, 6)
	reg(0x3E, ROL, AbsoluteX, 7)

	reg(0x6A, ROR, Accumulator, 2)
	reg(0x66, ROR, ZeroPage, 5)
	reg(0x76, ROR, ZeroPageX, 6)
	reg(0x6E, ROR, Absolute, 6)
	reg(0x7E, ROR, AbsoluteX, 7)

	reg(0x40, RTI, Implied, 6)
	reg(0x60, RTS, Implied, 6)

	reg(0xE9, SBC, Immediate, 2)
	reg(0xE5, SBC, ZeroPage, 3)
	reg(0xF5, SBC, ZeroPageX, 4)
	reg(0xED, SBC, Absolute, 4)
	regPenalty(0xFD, SBC, AbsoluteX, 4)
	regPenalty(0xF9, SBC, AbsoluteY, 4)
	reg(0xE1, SBC, IndirectX, 6)
	regPenalty(0xF1, SBC, IndirectY, 5)

	reg(0x38, SEC, Implied, 2)
	reg(0xF8, SED, Implied, 2)
	reg(0x78, SEI, Implied, 2)

	reg(0x85, STA, ZeroPage, 3)
	reg(0x95, STA, ZeroPageX, 4)
	reg(0x8D, STA, Absolute, 4)
	reg(0x9D, STA, AbsoluteX, 5)
	reg(0x99, STA, AbsoluteY, 5)
	reg(0x81, STA, IndirectX, 6)
	reg(0x91, STA, IndirectY, 6)

	reg(0x86, STX, ZeroPage, 3)
	reg(0x96, STX, ZeroPageY, 4)
	reg(0x8E, STX, Absolute, 4)

	reg(0x84, STY, ZeroPage, 3)
	reg(0x94, STY, ZeroPageX, 4)
	reg(0x8C, STY, Absolute, 4)

	reg(0xAA, TAX, Implied, 2)
	reg(0xA8, TAY, Implied, 2)
	reg(0xBA, TSX, Implied, 2)
	reg(0x8A, TXA, Implied, 2)
	reg(0x9A, TXS, Implied, 2)
	reg(0x98, TYA, Implied, 2)
}

// decode looks up opcode's static Instruction row. Decode failure
// must not mutate CPU state beyond whatever fetches already happened
// to read the opcode byte itself.
func decode(opcode uint8) (Instruction, error) {
	if !opcodeValid[opcode] {
		return Instruction{}, InvalidOpCode{Opcode: opcode}
	}
	e := opcodeTable[opcode]
	return Instruction{Mnemonic: e.mnemonic, Mode: e.mode, BaseCycles: e.baseCycles}, nil
}
