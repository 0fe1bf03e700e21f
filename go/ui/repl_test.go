package ui

import (
	"bytes"
	"strings"
	"testing"

	asmcorn "github.com/lunixbochs/asmcorn/go"
	"github.com/lunixbochs/asmcorn/go/models"
	"github.com/lunixbochs/asmcorn/go/models/mock"
)

func mockRepl(t *testing.T, e *mock.Engines) *Repl {
	s, err := asmcorn.New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.NewAsm, s.NewDis = e.NewAsm, e.NewDis
	r, err := newRepl(s, models.X86, 0x1000)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestReplAdvances(t *testing.T) {
	e := &mock.Engines{
		AsmOut: []byte{0x90, 0x90},
		DisOut: []models.Ins{
			mock.Ins{Address: 0x1000, Raw: []byte{0x90}, Mn: "nop"},
			mock.Ins{Address: 0x1001, Raw: []byte{0x90}, Mn: "nop"},
		},
	}
	r := mockRepl(t, e)
	out, err := r.Eval("nop; nop")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0x1001: 90 nop") {
		t.Fatalf("bad listing %q", out)
	}
	if r.Addr != 0x1002 {
		t.Fatalf("address did not advance: %#x", r.Addr)
	}
}

func TestReplCommands(t *testing.T) {
	r := mockRepl(t, &mock.Engines{})
	if _, err := r.Eval(".arch arm64"); err != nil {
		t.Fatal(err)
	}
	if r.Arch != models.ARM64 {
		t.Fatalf("arch is %s", r.Arch)
	}
	if _, err := r.Eval(".addr 0x4000"); err != nil {
		t.Fatal(err)
	}
	if r.Addr != 0x4000 {
		t.Fatalf("addr is %#x", r.Addr)
	}
	if _, err := r.Eval(".arch mips"); err == nil {
		t.Fatal("mips should be refused")
	}
	if r.Arch != models.ARM64 {
		t.Fatal("failed .arch changed the architecture")
	}
	if _, err := r.Eval(".bogus"); err == nil {
		t.Fatal("expected unknown command error")
	}
	if r.prompt() != "arm64 0x4000> " {
		t.Fatalf("prompt %q", r.prompt())
	}
}

func TestParseHex(t *testing.T) {
	want := []byte{0x90, 0xc3}
	for _, s := range []string{"90 c3", "90c3", "0x90, 0xc3", `\x90\xc3`, "90\n\tC3"} {
		got, err := ParseHex(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("%q: %x", s, got)
		}
	}
	if _, err := ParseHex("9"); err == nil {
		t.Fatal("odd length should fail")
	}
}
