package goarch

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/lunixbochs/asmcorn/go/models"
)

func dis(t *testing.T, a models.Architecture, bits int, code string, addr uint64) []models.Ins {
	mem, err := hex.DecodeString(code)
	if err != nil {
		t.Fatal(err)
	}
	d, err := New(models.Arch{Arch: a, Name: a.String(), Bits: bits}, models.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	out, err := d.Dis(mem, addr)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestX86(t *testing.T) {
	// nop; inc eax; ret
	out := dis(t, models.X86, 32, "9040c3", 0x1000)
	want := []string{"nop", "inc", "ret"}
	if len(out) != len(want) {
		t.Fatalf("expected %d instructions, got %d", len(want), len(out))
	}
	for i, ins := range out {
		if ins.Mnemonic() != want[i] {
			t.Fatalf("instruction %d: %q != %q", i, ins.Mnemonic(), want[i])
		}
		if ins.Addr() != 0x1000+uint64(i) {
			t.Fatalf("instruction %d at %#x", i, ins.Addr())
		}
	}
	if out[1].OpStr() != "eax" {
		t.Fatalf("bad operands %q", out[1].OpStr())
	}
	if out[2].OpStr() != "" {
		t.Fatalf("ret should have no operands, got %q", out[2].OpStr())
	}
}

func TestArm64(t *testing.T) {
	// ret
	out := dis(t, models.ARM64, 64, "c0035fd6", 0)
	if len(out) != 1 || out[0].Mnemonic() != "ret" {
		t.Fatalf("bad decode: %v", out)
	}
}

func TestArm(t *testing.T) {
	// bx lr
	out := dis(t, models.ARM, 32, "1eff2fe1", 0)
	if len(out) != 1 || out[0].Mnemonic() != "bx" || out[0].OpStr() != "lr" {
		t.Fatalf("bad decode: %q %q", out[0].Mnemonic(), out[0].OpStr())
	}
}

func TestTruncated(t *testing.T) {
	d, _ := New(models.Arch{Arch: models.ARM64, Name: "arm64", Bits: 64}, nil)
	out, err := d.Dis([]byte{0xc0, 0x03, 0x5f, 0xd6, 0x00, 0x00}, 0)
	if err == nil {
		t.Fatal("expected error for trailing partial instruction")
	}
	if len(out) != 1 {
		t.Fatalf("expected the decoded prefix, got %d", len(out))
	}
}

func TestBigEndianRejected(t *testing.T) {
	_, err := New(models.Arch{Arch: models.ARM, Name: "arm", Bits: 32, Endian: models.Big}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestBranchTargets(t *testing.T) {
	cases := []struct {
		arch   models.Architecture
		bits   int
		code   string
		prefix string
		off    int64
	}{
		{models.X86, 32, "e8fb0f0000", "", 0x1000},    // call
		{models.X86_64, 64, "e8fb0f0000", "", 0x1000}, // call
		{models.ARM, 32, "fe0300eb", "#", 0x1000},     // bl
		{models.ARM64, 64, "00040094", "#", 0x1000},   // bl
		{models.ARM64, 64, "fffbff97", "#", -0x1004},  // bl backwards
	}
	for _, c := range cases {
		for _, base := range []uint64{0x2000, 0x400000} {
			out := dis(t, c.arch, c.bits, c.code, base)
			if len(out) != 1 {
				t.Fatalf("%s: expected 1 instruction, got %d", c.arch, len(out))
			}
			want := fmt.Sprintf("%s%#x", c.prefix, base+uint64(c.off))
			if out[0].OpStr() != want {
				t.Fatalf("%s at %#x: got %q, want %q", c.arch, base, out[0].OpStr(), want)
			}
		}
	}
	// pc 0 is a real load address, not an unknown one
	for _, c := range cases[:4] {
		out := dis(t, c.arch, c.bits, c.code, 0)
		if want := c.prefix + "0x1000"; out[0].OpStr() != want {
			t.Fatalf("%s at 0: got %q, want %q", c.arch, out[0].OpStr(), want)
		}
	}
}

func TestAdrpPage(t *testing.T) {
	// adrp x0, one page ahead
	out := dis(t, models.ARM64, 64, "000000b0", 0x1234)
	if got := out[0].OpStr(); got != "x0, #0x2000" {
		t.Fatalf("got %q", got)
	}
}
