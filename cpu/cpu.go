// Package cpu implements the MOS 6502 architectural state, its
// decoder/addressing/executor pipeline, and the reset/IRQ/NMI
// sequences, driven one whole instruction at a time by Clock.
package cpu

import (
	"fmt"

	"github.com/sixtyfiveohtwo/go6502/bus"
)

// Status flag bits, laid out NV-BDIZC per the 6502 P register.
const (
	FlagCarry            = uint8(0x01)
	FlagZero             = uint8(0x02)
	FlagInterruptDisable = uint8(0x04)
	FlagDecimal          = uint8(0x08)
	FlagBreak            = uint8(0x10)
	FlagUnused           = uint8(0x20)
	FlagOverflow         = uint8(0x40)
	FlagNegative         = uint8(0x80)
)

// Fixed vector locations per the 6502 reset/interrupt convention.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)

	stackBase = uint16(0x0100)
)

// Chip is the 6502 architectural state and execution engine: the
// registers, the status flags, the cycle counter, and the bus it
// reads and writes through.
type Chip struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  uint8
	PC uint16

	bus             *bus.Bus
	clockHz         float64
	cyclesRemaining uint8
	halted          bool
	haltErr         error
}

// New returns a Chip with all registers zero and no flags set,
// connected to bus b and paced at clockHz by Run (Clock itself never
// sleeps; clockHz of 0 or below means Run does not pace at all, which
// is what most tests in this package use). Call Reset before the
// first Clock to load PC from the reset vector, as real hardware
// requires.
func New(b *bus.Bus, clockHz float64) *Chip {
	return &Chip{bus: b, clockHz: clockHz}
}

// Connect forwards to the underlying bus, allowing devices to be
// attached after construction.
func (c *Chip) Connect(dev bus.Device) {
	c.bus.Connect(dev)
}

// Read is the bus passthrough for a live (non-inspecting) read.
func (c *Chip) Read(addr uint16) uint8 {
	return c.bus.Read(addr, false)
}

// Write is the bus passthrough.
func (c *Chip) Write(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// fetch reads the byte at PC and advances PC, the building block both
// opcode fetch and operand fetch are made of.
func (c *Chip) fetch() uint8 {
	v := c.Read(c.PC)
	c.PC++
	return v
}

// Push writes val to the stack page (0x0100 + S) and predecrements S,
// wrapping modulo 256.
func (c *Chip) Push(val uint8) {
	c.Write(stackBase+uint16(c.S), val)
	c.S--
}

// Pop postincrements S, wrapping modulo 256, and returns the byte read
// from the stack page.
func (c *Chip) Pop() uint8 {
	c.S++
	return c.Read(stackBase + uint16(c.S))
}

// Reset puts the CPU in its documented power-on/reset state: A, X, Y
// cleared, S = 0xFD, only the Unused flag set in P, PC loaded from the
// reset vector, and 8 cycles charged for the sequence.
func (c *Chip) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = FlagUnused
	lo := c.Read(ResetVector)
	hi := c.Read(ResetVector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.cyclesRemaining = 8
	c.halted = false
	c.haltErr = nil
}

// Irq raises a maskable interrupt. It is only accepted when the
// InterruptDisable flag is clear and the CPU is at an instruction
// boundary (no instruction in flight); the host is expected to only
// call this when it knows Clock is about to start a new instruction
// (e.g. immediately after a Clock call that brought cyclesRemaining
// down to zero). Returns whether the interrupt was accepted.
func (c *Chip) Irq() bool {
	if c.P&FlagInterruptDisable != 0 || c.cyclesRemaining != 0 || c.halted {
		return false
	}
	c.runInterrupt(IRQVector, false)
	c.cyclesRemaining = 7
	return true
}

// Nmi raises a non-maskable interrupt, always accepted at an
// instruction boundary regardless of InterruptDisable. See Irq for
// the instruction-boundary caveat.
func (c *Chip) Nmi() bool {
	if c.cyclesRemaining != 0 || c.halted {
		return false
	}
	c.runInterrupt(NMIVector, false)
	c.cyclesRemaining = 8
	return true
}

// runInterrupt performs the shared push/vector sequence for IRQ, NMI
// and BRK: push PC high then low, push P with Break and Unused set as
// the situation dictates, set InterruptDisable, and load PC from the
// given vector. isBRK distinguishes the software-interrupt case, which
// pushes a copy of P with Break set while leaving the live P's Break
// bit clear afterward.
func (c *Chip) runInterrupt(vector uint16, isBRK bool) {
	c.Push(uint8(c.PC >> 8))
	c.Push(uint8(c.PC & 0xFF))

	pushed := c.P | FlagUnused
	if isBRK {
		pushed |= FlagBreak
	} else {
		pushed &^= FlagBreak
	}
	c.Push(pushed)

	c.P |= FlagInterruptDisable
	c.P &^= FlagBreak

	lo := c.Read(vector)
	hi := c.Read(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Clock runs one clock cycle: if the previous instruction's cycles
// have all elapsed, fetch/decode/execute a new one and charge its
// total (base plus any page-cross or branch penalty) to
// cyclesRemaining; otherwise just decrement the counter. Returns the
// decode error (if any) and leaves the CPU halted so every subsequent
// Clock call returns the same error without doing further work.
func (c *Chip) Clock() error {
	if c.halted {
		return c.haltErr
	}

	if c.cyclesRemaining == 0 {
		op := c.fetch()
		instr, err := decode(op)
		if err != nil {
			c.halted = true
			c.haltErr = err
			return err
		}
		payload := c.fetchPayload(instr.Mode)
		r := c.resolve(instr.Mode, payload)
		extra, err := c.execute(instr, r, opcodeTable[op].pagePenalty)
		if err != nil {
			c.halted = true
			c.haltErr = err
			return err
		}
		total := int(instr.BaseCycles) + extra
		if total < 1 {
			total = 1
		}
		c.cyclesRemaining = uint8(total)
	}

	c.cyclesRemaining--
	return nil
}

// String implements fmt.Stringer, rendering a one-line register
// snapshot used by cmd/go6502 -dump and test failure messages.
func (c *Chip) String() string {
	return fmt.Sprintf("A=%#02x X=%#02x Y=%#02x S=%#02x P=%#02x PC=%#04x cycles=%d",
		c.A, c.X, c.Y, c.S, c.P, c.PC, c.cyclesRemaining)
}
