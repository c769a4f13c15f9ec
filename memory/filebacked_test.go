package memory_test

import (
	"path/filepath"
	"testing"

	"github.com/sixtyfiveohtwo/go6502/memory"
)

func TestFileRAMNewFileIsZeroFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ram.bin")
	r, err := memory.NewFileRAM(path, 0x0000, 0x00FF)
	if err != nil {
		t.Fatalf("NewFileRAM: %v", err)
	}
	defer r.Close()

	for addr := uint16(0); addr <= 0xFF; addr++ {
		if got := r.Read(addr, true); got != 0 {
			t.Fatalf("Read(%#04x) = %#02x, want 0 on fresh file", addr, got)
		}
	}
}

func TestFileRAMPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ram.bin")
	r, err := memory.NewFileRAM(path, 0x0000, 0x00FF)
	if err != nil {
		t.Fatalf("NewFileRAM: %v", err)
	}
	r.Write(0x0010, 0x99)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r2, err := memory.NewFileRAM(path, 0x0000, 0x00FF)
	if err != nil {
		t.Fatalf("reopen NewFileRAM: %v", err)
	}
	defer r2.Close()
	if got := r2.Read(0x0010, false); got != 0x99 {
		t.Fatalf("Read(0x10) after reopen = %#02x, want 0x99", got)
	}
}

func TestFileRAMLoadBulkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ram.bin")
	r, err := memory.NewFileRAM(path, 0x8000, 0x8FFF)
	if err != nil {
		t.Fatalf("NewFileRAM: %v", err)
	}
	defer r.Close()

	prog := []uint8{0xEA, 0xEA, 0x00}
	if err := r.Load(0x8000, prog); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, b := range prog {
		if got := r.Read(0x8000+uint16(i), true); got != b {
			t.Fatalf("Read(%#04x) = %#02x, want %#02x", 0x8000+i, got, b)
		}
	}
}

func TestFileRAMTooShortExistingFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ram.bin")
	small, err := memory.NewFileRAM(path, 0x0000, 0x000F)
	if err != nil {
		t.Fatalf("NewFileRAM: %v", err)
	}
	small.Close()

	if _, err := memory.NewFileRAM(path, 0x0000, 0x00FF); err == nil {
		t.Fatal("expected error reopening a too-short file against a larger range")
	}
}
