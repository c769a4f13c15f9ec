package cpu

// resolved is what the addressing-mode resolver hands back to the
// executor: the effective address (or, for Relative, the sign-extended
// offset the branch executor will add to PC) plus the dereferenced
// operand byte, and whether an indexed dereference crossed a page.
type resolved struct {
	addr        uint16
	operand     uint8
	pageCrossed bool
}

// resolve translates a decoded mode and its raw payload bytes (the
// literal bytes following the opcode, already consumed from the
// instruction stream by fetchPayload) into an effective address and
// operand, using the current register file. All arithmetic wraps at
// its natural width, as required for zero-page and absolute indexing.
func (c *Chip) resolve(mode Mode, payload uint16) resolved {
	switch mode {
	case Accumulator, Implied:
		return resolved{operand: c.A}

	case Immediate:
		return resolved{addr: c.PC - 1, operand: uint8(payload)}

	case Relative:
		// Sign-extend the 8-bit displacement; the branch executor adds
		// this to PC only when the branch is taken.
		return resolved{addr: uint16(int16(int8(payload))), operand: uint8(payload)}

	case ZeroPage:
		addr := payload & 0x00FF
		return resolved{addr: addr, operand: c.Read(addr)}

	case ZeroPageX:
		addr := uint16(uint8(payload) + c.X)
		return resolved{addr: addr, operand: c.Read(addr)}

	case ZeroPageY:
		addr := uint16(uint8(payload) + c.Y)
		return resolved{addr: addr, operand: c.Read(addr)}

	case Absolute:
		return resolved{addr: payload, operand: c.Read(payload)}

	case AbsoluteX:
		return c.resolveIndexedAbsolute(payload, c.X)

	case AbsoluteY:
		return c.resolveIndexedAbsolute(payload, c.Y)

	case Indirect:
		return resolved{addr: c.readIndirectVector(payload)}

	case IndirectX:
		zp := uint8(payload) + c.X
		lo := c.Read(uint16(zp))
		hi := c.Read(uint16(uint8(zp + 1)))
		addr := uint16(hi)<<8 | uint16(lo)
		return resolved{addr: addr, operand: c.Read(addr)}

	case IndirectY:
		lo := c.Read(uint16(uint8(payload)))
		hi := c.Read(uint16(uint8(payload) + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		return resolved{addr: addr, operand: c.Read(addr), pageCrossed: pageOf(addr) != pageOf(base)}
	}
	return resolved{}
}

// resolveIndexedAbsolute implements AbsoluteX/AbsoluteY: address is
// the 16-bit base plus the index register, wrapping at 16 bits; a
// page crossing (high byte changes) is reported so the caller can
// apply the conditional +1 cycle for read instructions.
func (c *Chip) resolveIndexedAbsolute(base uint16, index uint8) resolved {
	addr := base + uint16(index)
	return resolved{addr: addr, operand: c.Read(addr), pageCrossed: pageOf(addr) != pageOf(base)}
}

// readIndirectVector implements JMP (a)'s addressing, including the
// documented page-boundary hardware bug: if the pointer's low byte is
// 0xFF, the high byte of the target wraps to the start of the same
// page instead of crossing into the next one.
func (c *Chip) readIndirectVector(ptr uint16) uint16 {
	lo := c.Read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// pageOf returns the 256-byte page (the high byte) an address falls
// in, used to detect page-crossing indexed accesses.
func pageOf(addr uint16) uint16 {
	return addr & 0xFF00
}

// fetchPayload consumes the operand bytes mode requires from the
// instruction stream (advancing PC) and returns them packed
// little-endian into a uint16 (the low byte alone for one-byte modes).
func (c *Chip) fetchPayload(mode Mode) uint16 {
	switch mode.operandBytes() {
	case 0:
		return 0
	case 1:
		return uint16(c.fetch())
	default:
		lo := c.fetch()
		hi := c.fetch()
		return uint16(hi)<<8 | uint16(lo)
	}
}
