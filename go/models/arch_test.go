package models

import (
	"encoding/json"
	"testing"
)

func TestArchitectureText(t *testing.T) {
	for _, a := range Architectures() {
		b, err := a.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var out Architecture
		if err := out.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if out != a {
			t.Fatalf("%s parsed back as %s", a, out)
		}
	}
}

func TestArchitectureAliases(t *testing.T) {
	cases := map[string]Architecture{
		"x86": X86, "amd64": X86_64, "x86_64": X86_64, "AArch64": ARM64, "arm": ARM, "sparc": SPARC,
	}
	for s, want := range cases {
		got, err := ParseArchitecture(s)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("ParseArchitecture(%q) = %s, want %s", s, got, want)
		}
	}
	if _, err := ParseArchitecture("z80"); err == nil {
		t.Fatal("expected error for z80")
	}
}

func TestRequestJSON(t *testing.T) {
	var req AssembleRequest
	err := json.Unmarshal([]byte(`{"asmStr":"nop","arch":"ARM64","addr":4096,"endian":"Big"}`), &req)
	if err != nil {
		t.Fatal(err)
	}
	if req.Arch != ARM64 || req.Addr != 0x1000 || req.Endian != Big || req.AsmStr != "nop" {
		t.Fatalf("bad request: %+v", req)
	}
	out, err := json.Marshal(DisassembleRequest{Arch: X86_64})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"bytes":null,"arch":"X86_64","addr":0}` {
		t.Fatalf("bad json: %s", out)
	}
}

func TestBytesJSON(t *testing.T) {
	out, err := json.Marshal(AssembleResponse{Bytes: Bytes{0x90, 0xc3}})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"bytes":[144,195]}` {
		t.Fatalf("bad json: %s", out)
	}
	var req DisassembleRequest
	if err := json.Unmarshal([]byte(`{"bytes":[144,195],"arch":"X86"}`), &req); err != nil {
		t.Fatal(err)
	}
	if string(req.Bytes) != "\x90\xc3" {
		t.Fatalf("bad bytes: %x", req.Bytes)
	}
	if err := json.Unmarshal([]byte(`{"bytes":[256]}`), &req); err == nil {
		t.Fatal("expected range error")
	}
	if err := json.Unmarshal([]byte(`{"bytes":"kMM="}`), &req); err == nil {
		t.Fatal("base64 should be rejected")
	}
}

func TestEndianParse(t *testing.T) {
	if e, err := ParseEndian("big"); err != nil || e != Big {
		t.Fatal("big did not parse")
	}
	if e, err := ParseEndian(""); err != nil || e != Little {
		t.Fatal("empty should mean little")
	}
	if _, err := ParseEndian("middle"); err == nil {
		t.Fatal("expected error")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	c := DefaultConfig()
	c.Decoder = "objdump"
	if err := c.Validate(); err == nil {
		t.Fatal("expected decoder error")
	}
}
