package cpu

import (
	"testing"

	"github.com/sixtyfiveohtwo/go6502/bus"
	"github.com/sixtyfiveohtwo/go6502/memory"
)

func newResolverChip(t *testing.T) *Chip {
	t.Helper()
	ram, err := memory.NewRAM(0x0000, 0xFFFF)
	if err != nil {
		t.Fatalf("memory.NewRAM: %v", err)
	}
	b := bus.New()
	b.Connect(ram)
	return New(b, 0)
}

func TestResolveZeroPageXWrapsWithinPageZero(t *testing.T) {
	c := newResolverChip(t)
	c.X = 0xFF
	c.Write(0x007F, 0x55) // 0x80 + 0xFF wraps to 0x7F
	r := c.resolve(ZeroPageX, 0x80)
	if r.addr != 0x007F {
		t.Errorf("addr = %#04x, want 0x007f", r.addr)
	}
	if r.operand != 0x55 {
		t.Errorf("operand = %#02x, want 0x55", r.operand)
	}
}

func TestResolveAbsoluteYDetectsPageCross(t *testing.T) {
	c := newResolverChip(t)
	c.Y = 0x01
	r := c.resolve(AbsoluteY, 0x02FF)
	if !r.pageCrossed {
		t.Error("expected pageCrossed = true for 0x02FF + 1")
	}
	if r.addr != 0x0300 {
		t.Errorf("addr = %#04x, want 0x0300", r.addr)
	}
}

func TestResolveAbsoluteXNoPageCross(t *testing.T) {
	c := newResolverChip(t)
	c.X = 0x01
	r := c.resolve(AbsoluteX, 0x0200)
	if r.pageCrossed {
		t.Error("expected pageCrossed = false for 0x0200 + 1")
	}
}

func TestResolveIndirectXReadsZeroPagePointer(t *testing.T) {
	c := newResolverChip(t)
	c.X = 0x04
	c.Write(0x0024, 0x00) // (0x20 + 4) low byte
	c.Write(0x0025, 0x03) // high byte
	c.Write(0x0300, 0x77)
	r := c.resolve(IndirectX, 0x20)
	if r.addr != 0x0300 {
		t.Errorf("addr = %#04x, want 0x0300", r.addr)
	}
	if r.operand != 0x77 {
		t.Errorf("operand = %#02x, want 0x77", r.operand)
	}
}

func TestResolveIndirectYAddsAfterDereference(t *testing.T) {
	c := newResolverChip(t)
	c.Y = 0x10
	c.Write(0x0020, 0xFF) // base low
	c.Write(0x0021, 0x02) // base high -> 0x02FF
	c.Write(0x030F, 0x99) // 0x02FF + 0x10 = 0x030F
	r := c.resolve(IndirectY, 0x20)
	if r.addr != 0x030F {
		t.Errorf("addr = %#04x, want 0x030f", r.addr)
	}
	if !r.pageCrossed {
		t.Error("expected pageCrossed = true crossing from page 2 to page 3")
	}
	if r.operand != 0x99 {
		t.Errorf("operand = %#02x, want 0x99", r.operand)
	}
}

func TestResolveRelativeSignExtendsNegativeOffset(t *testing.T) {
	c := newResolverChip(t)
	r := c.resolve(Relative, 0xFE) // -2
	if int16(r.addr) != -2 {
		t.Errorf("addr (as signed) = %d, want -2", int16(r.addr))
	}
}

func TestReadIndirectVectorHonorsPageBoundaryBug(t *testing.T) {
	c := newResolverChip(t)
	c.Write(0x02FF, 0x00)
	c.Write(0x0200, 0x80) // buggy wraparound source
	c.Write(0x0300, 0x90) // correct (non-buggy) source, must be ignored
	got := c.readIndirectVector(0x02FF)
	if got != 0x8000 {
		t.Errorf("readIndirectVector(0x02ff) = %#04x, want 0x8000", got)
	}
}

func TestFetchPayloadConsumesExpectedByteCount(t *testing.T) {
	c := newResolverChip(t)
	c.Write(0x0000, 0x11)
	c.Write(0x0001, 0x22)
	c.PC = 0x0000

	if p := c.fetchPayload(Implied); p != 0 || c.PC != 0x0000 {
		t.Errorf("Implied: payload=%#02x PC=%#04x, want 0, PC unchanged", p, c.PC)
	}
	if p := c.fetchPayload(Immediate); p != 0x11 || c.PC != 0x0001 {
		t.Errorf("Immediate: payload=%#02x PC=%#04x, want 0x11, PC=0x0001", p, c.PC)
	}
	c.PC = 0x0000
	if p := c.fetchPayload(Absolute); p != 0x2211 || c.PC != 0x0002 {
		t.Errorf("Absolute: payload=%#04x PC=%#04x, want 0x2211, PC=0x0002", p, c.PC)
	}
}
